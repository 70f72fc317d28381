package vollmacht

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// verifyPDF re-reads rendered bytes with pdfcpu so a broken print surfaces
// as a diagnosable error instead of a corrupt download. Structural check
// only; the bytes are never modified.
func verifyPDF(pdf []byte) error {
	if len(pdf) == 0 {
		return fmt.Errorf("%w: empty output", ErrPDFMalformed)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(pdf), conf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFMalformed, err)
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFMalformed, err)
	}
	if ctx.PageCount < 1 {
		return fmt.Errorf("%w: no pages", ErrPDFMalformed)
	}

	return nil
}
