package vollmacht

import "errors"

// Sentinel errors for library operations.
var (
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrPDFMalformed   = errors.New("generated PDF failed verification")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrHTMLRender     = errors.New("HTML rendering failed")

	// Render option validation errors.
	ErrInvalidMargin        = errors.New("invalid margin")
	ErrInvalidSignatureSize = errors.New("invalid signature dimensions")

	// Language errors.
	ErrUnknownLanguage = errors.New("unknown language")
)
