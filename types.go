package vollmacht

import "fmt"

// Default margins and signature dimensions in points.
const (
	DefaultMarginLeft   = 40.0
	DefaultMarginRight  = 40.0
	DefaultMarginTop    = 36.0
	DefaultMarginBottom = 36.0

	DefaultSignatureWidth     = 180.0
	DefaultSignatureMaxHeight = 80.0
)

// DefaultTitleKey is the localization key used for the document title
// when RenderOptions does not specify one.
const DefaultTitleKey = "app.title"

// FormData holds the validated field values for one authorization form.
// Values are free text and expected to be trimmed by the caller; empty
// fields render as empty strings rather than failing.
type FormData struct {
	GrantorName      string
	GrantorFirstName string
	GrantorBirthDate string
	GrantorAddress   string

	GranteeName      string
	GranteeFirstName string
	GranteeBirthDate string
	GranteeAddress   string

	City string
	Date string

	// Remarks is an optional free-text paragraph rendered between the
	// notice and the date line. Inline Markdown markup is supported.
	Remarks string
}

// partyRow pairs a label localization key with its field value.
// The layout builder consumes these uniformly instead of concatenating
// section and field names ad hoc.
type partyRow struct {
	labelKey string
	fallback string
	value    string
}

// grantorRows returns the grantor table rows in display order.
func (d FormData) grantorRows() []partyRow {
	return partyRows(d.GrantorName, d.GrantorFirstName, d.GrantorBirthDate, d.GrantorAddress)
}

// granteeRows returns the grantee table rows in display order.
func (d FormData) granteeRows() []partyRow {
	return partyRows(d.GranteeName, d.GranteeFirstName, d.GranteeBirthDate, d.GranteeAddress)
}

func partyRows(name, firstName, birthDate, address string) []partyRow {
	return []partyRow{
		{labelKey: "label.name", fallback: "Name:", value: name},
		{labelKey: "label.first_name", fallback: "Vorname:", value: firstName},
		{labelKey: "label.birth_date", fallback: "Geburtsdatum:", value: birthDate},
		{labelKey: "label.address", fallback: "Anschrift:", value: address},
	}
}

// RenderOptions configures page margins, signature sizing, and the title key.
// All dimensions are in points. Zero-value fields fall back to defaults
// through Normalize; explicit negative or zero values fail Validate.
type RenderOptions struct {
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	SignatureWidth     float64
	SignatureMaxHeight float64

	// TitleKey is the localization key for the document title.
	TitleKey string
}

// DefaultRenderOptions returns options with all documented defaults applied.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		MarginLeft:         DefaultMarginLeft,
		MarginRight:        DefaultMarginRight,
		MarginTop:          DefaultMarginTop,
		MarginBottom:       DefaultMarginBottom,
		SignatureWidth:     DefaultSignatureWidth,
		SignatureMaxHeight: DefaultSignatureMaxHeight,
		TitleKey:           DefaultTitleKey,
	}
}

// Normalize returns a copy of o with defaults substituted for unset fields.
// A nil receiver yields the full defaults.
func (o *RenderOptions) Normalize() *RenderOptions {
	out := *DefaultRenderOptions()
	if o == nil {
		return &out
	}
	if o.MarginLeft != 0 {
		out.MarginLeft = o.MarginLeft
	}
	if o.MarginRight != 0 {
		out.MarginRight = o.MarginRight
	}
	if o.MarginTop != 0 {
		out.MarginTop = o.MarginTop
	}
	if o.MarginBottom != 0 {
		out.MarginBottom = o.MarginBottom
	}
	if o.SignatureWidth != 0 {
		out.SignatureWidth = o.SignatureWidth
	}
	if o.SignatureMaxHeight != 0 {
		out.SignatureMaxHeight = o.SignatureMaxHeight
	}
	if o.TitleKey != "" {
		out.TitleKey = o.TitleKey
	}
	return &out
}

// Validate checks that all numeric options are positive.
// Call on normalized options; a nil receiver is valid (defaults apply).
func (o *RenderOptions) Validate() error {
	if o == nil {
		return nil
	}
	margins := []struct {
		name  string
		value float64
	}{
		{"left", o.MarginLeft},
		{"right", o.MarginRight},
		{"top", o.MarginTop},
		{"bottom", o.MarginBottom},
	}
	for _, m := range margins {
		if m.value <= 0 {
			return fmt.Errorf("%w: %s margin %.2fpt (must be positive)", ErrInvalidMargin, m.name, m.value)
		}
	}
	if o.SignatureWidth <= 0 {
		return fmt.Errorf("%w: width %.2fpt (must be positive)", ErrInvalidSignatureSize, o.SignatureWidth)
	}
	if o.SignatureMaxHeight <= 0 {
		return fmt.Errorf("%w: max height %.2fpt (must be positive)", ErrInvalidSignatureSize, o.SignatureMaxHeight)
	}
	return nil
}

// Input contains generation parameters for one document.
type Input struct {
	Data      FormData
	Signature []byte         // Raw PNG/JPEG/WebP/BMP bytes (optional)
	I18n      Table          // Localization table (nil = German defaults)
	Options   *RenderOptions // Layout options (nil = defaults)
}
