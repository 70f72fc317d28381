package vollmacht

import (
	"errors"
	"testing"
)

func TestRenderOptions_Normalize(t *testing.T) {
	t.Run("nil yields defaults", func(t *testing.T) {
		var o *RenderOptions
		got := o.Normalize()
		want := DefaultRenderOptions()
		if *got != *want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("zero fields fall back", func(t *testing.T) {
		got := (&RenderOptions{MarginLeft: 50}).Normalize()
		if got.MarginLeft != 50 {
			t.Errorf("MarginLeft = %v, want 50", got.MarginLeft)
		}
		if got.MarginRight != DefaultMarginRight {
			t.Errorf("MarginRight = %v, want default %v", got.MarginRight, DefaultMarginRight)
		}
		if got.SignatureWidth != DefaultSignatureWidth {
			t.Errorf("SignatureWidth = %v, want default %v", got.SignatureWidth, DefaultSignatureWidth)
		}
		if got.TitleKey != DefaultTitleKey {
			t.Errorf("TitleKey = %q, want %q", got.TitleKey, DefaultTitleKey)
		}
	})

	t.Run("does not mutate receiver", func(t *testing.T) {
		o := &RenderOptions{MarginLeft: 50}
		o.Normalize()
		if o.MarginRight != 0 {
			t.Error("Normalize mutated its receiver")
		}
	})
}

func TestRenderOptions_Validate(t *testing.T) {
	valid := *DefaultRenderOptions()

	tests := []struct {
		name    string
		mutate  func(*RenderOptions)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(o *RenderOptions) {}},
		{name: "negative left margin", mutate: func(o *RenderOptions) { o.MarginLeft = -1 }, wantErr: ErrInvalidMargin},
		{name: "zero top margin", mutate: func(o *RenderOptions) { o.MarginTop = 0 }, wantErr: ErrInvalidMargin},
		{name: "zero signature width", mutate: func(o *RenderOptions) { o.SignatureWidth = 0 }, wantErr: ErrInvalidSignatureSize},
		{name: "negative max height", mutate: func(o *RenderOptions) { o.SignatureMaxHeight = -80 }, wantErr: ErrInvalidSignatureSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)

			err := o.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("nil is valid", func(t *testing.T) {
		var o *RenderOptions
		if err := o.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestFormData_PartyRows(t *testing.T) {
	data := testFormData()

	grantor := data.grantorRows()
	grantee := data.granteeRows()
	if len(grantor) != 4 || len(grantee) != 4 {
		t.Fatalf("row counts = %d/%d, want 4/4", len(grantor), len(grantee))
	}
	if grantor[0].value != "Müller" || grantee[0].value != "Schmidt" {
		t.Errorf("name values = %q/%q", grantor[0].value, grantee[0].value)
	}
	for i := range grantor {
		if grantor[i].labelKey != grantee[i].labelKey {
			t.Errorf("row %d label keys differ: %q vs %q", i, grantor[i].labelKey, grantee[i].labelKey)
		}
	}
}
