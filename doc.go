// Package vollmacht renders German power-of-attorney ("Vollmacht") forms to
// PDF using headless Chrome.
//
// # Quick Start
//
// Create a service, generate a document, and close when done:
//
//	svc := vollmacht.New()
//	defer svc.Close()
//
//	pdf, err := svc.Generate(ctx, vollmacht.Input{
//	    Data: vollmacht.FormData{
//	        GrantorName:      "Müller",
//	        GrantorFirstName: "Anna",
//	        City:             "Berlin",
//	        Date:             "15.03.2024",
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("vollmacht_formular.pdf", pdf, 0644)
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. Signature normalization (decode, aspect-preserving scale, height clamp)
//  2. Layout building (title, party tables, boilerplate, signature group)
//  3. HTML serialization of the block sequence
//  4. PDF printing via headless Chrome (go-rod) on A4 paper
//  5. Structural verification of the output (pdfcpu)
//
// Each Generate call is stateless and independent; the service is safe for
// concurrent use. Field validation is the caller's responsibility: missing
// values render as empty strings, and an undecodable signature image is
// dropped rather than failing the document.
//
// # Localization
//
// Visible strings resolve against a localization table with the original
// German texts as fallbacks. Tables for de, en, and ar are embedded:
//
//	table, err := vollmacht.Language("en")
//	pdf, err := svc.Generate(ctx, vollmacht.Input{Data: data, I18n: table})
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Use ROD_BROWSER_BIN to point at a pre-installed binary in containers.
package vollmacht
