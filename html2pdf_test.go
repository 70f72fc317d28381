package vollmacht

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/alnah/go-vollmacht/internal/fileutil"
)

// mockRenderer implements pdfRenderer for testing.
type mockRenderer struct {
	Result     []byte
	Err        error
	CalledWith string
	CalledOpts *RenderOptions
}

func (m *mockRenderer) RenderFromFile(ctx context.Context, filePath string, opts *RenderOptions) ([]byte, error) {
	m.CalledWith = filePath
	m.CalledOpts = opts
	return m.Result, m.Err
}

// testableRodConverter wraps the temp-file flow with a mock renderer.
type testableRodConverter struct {
	mock *mockRenderer
}

func (c *testableRodConverter) ToPDF(ctx context.Context, htmlContent string, opts *RenderOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.mock.RenderFromFile(ctx, tmpPath, opts)
}

func TestBuildPDFOptions(t *testing.T) {
	approx := func(got, want float64) bool {
		return math.Abs(got-want) < 1e-9
	}

	t.Run("default margins", func(t *testing.T) {
		got := buildPDFOptions(nil)

		if *got.PaperWidth != paperWidthInches || *got.PaperHeight != paperHeightInches {
			t.Errorf("paper = %vx%v in, want %vx%v", *got.PaperWidth, *got.PaperHeight, paperWidthInches, paperHeightInches)
		}
		if !approx(*got.MarginLeft, 40.0/72) || !approx(*got.MarginRight, 40.0/72) {
			t.Errorf("horizontal margins = %v/%v in", *got.MarginLeft, *got.MarginRight)
		}
		if !approx(*got.MarginTop, 36.0/72) || !approx(*got.MarginBottom, 36.0/72) {
			t.Errorf("vertical margins = %v/%v in", *got.MarginTop, *got.MarginBottom)
		}
		if !got.PrintBackground {
			t.Error("PrintBackground must be enabled")
		}
		if got.DisplayHeaderFooter {
			t.Error("browser header/footer must stay disabled")
		}
	})

	t.Run("custom margins convert pt to inches", func(t *testing.T) {
		got := buildPDFOptions(&RenderOptions{MarginLeft: 72, MarginTop: 144})

		if !approx(*got.MarginLeft, 1.0) {
			t.Errorf("MarginLeft = %v in, want 1.0", *got.MarginLeft)
		}
		if !approx(*got.MarginTop, 2.0) {
			t.Errorf("MarginTop = %v in, want 2.0", *got.MarginTop)
		}
		// Unset margins fall back to defaults.
		if !approx(*got.MarginRight, 40.0/72) {
			t.Errorf("MarginRight = %v in, want default", *got.MarginRight)
		}
	})
}

func TestRodConverter_ToPDF(t *testing.T) {
	tests := []struct {
		name       string
		html       string
		mock       *mockRenderer
		wantAnyErr bool
	}{
		{
			name: "successful render returns PDF bytes",
			html: "<html><body>Vollmacht</body></html>",
			mock: &mockRenderer{Result: []byte("%PDF-1.4 fake pdf content")},
		},
		{
			name:       "renderer error propagates",
			html:       "<html></html>",
			mock:       &mockRenderer{Err: errors.New("browser crashed")},
			wantAnyErr: true,
		},
		{
			name: "unicode content succeeds",
			html: "<html><body>Müller, توكيل</body></html>",
			mock: &mockRenderer{Result: []byte("%PDF-1.4")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converter := &testableRodConverter{mock: tt.mock}
			opts := DefaultRenderOptions()

			result, err := converter.ToPDF(context.Background(), tt.html, opts)

			if tt.wantAnyErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result) == 0 {
				t.Error("expected PDF bytes")
			}
			if tt.mock.CalledOpts != opts {
				t.Error("options not forwarded to renderer")
			}
			if !strings.HasSuffix(tt.mock.CalledWith, ".html") {
				t.Errorf("temp file %q should have .html extension", tt.mock.CalledWith)
			}
		})
	}
}

func TestRodRenderer_ContextCancelled(t *testing.T) {
	r := newRodRenderer(defaultTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.RenderFromFile(ctx, "/nonexistent.html", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestRodConverter_CloseWithoutUse(t *testing.T) {
	c := newRodConverter(defaultTimeout)
	if err := c.Close(); err != nil {
		t.Errorf("closing unused converter: %v", err)
	}
}

func TestRodRenderer_ConcurrentClose(t *testing.T) {
	r := newRodRenderer(defaultTimeout)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		}()
	}
	wg.Wait()
}
