package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across concerns.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// partyFlags holds one party's personal data flags.
type partyFlags struct {
	name      string
	firstName string
	birthDate string
	address   string
}

// formFlags holds the form field flags.
type formFlags struct {
	grantor partyFlags
	grantee partyFlags
	city    string
	date    string
	remarks string
}

// pageFlags holds page layout flags (points).
type pageFlags struct {
	marginLeft   float64
	marginRight  float64
	marginTop    float64
	marginBottom float64
	titleKey     string
}

// signatureFlags holds signature image flags.
type signatureFlags struct {
	image     string
	width     float64
	maxHeight float64
}

// cliFlags holds all flags for the vollmacht command.
type cliFlags struct {
	common    commonFlags
	form      formFlags
	page      pageFlags
	signature signatureFlags
	language  string
	output    string
	timeout   string
	version   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path (YAML)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addFormFlags adds form field flags to a FlagSet.
func addFormFlags(fs *flag.FlagSet, f *formFlags) {
	fs.StringVar(&f.grantor.name, "grantor-name", "", "grantor surname")
	fs.StringVar(&f.grantor.firstName, "grantor-first-name", "", "grantor first name")
	fs.StringVar(&f.grantor.birthDate, "grantor-birth-date", "", "grantor date of birth")
	fs.StringVar(&f.grantor.address, "grantor-address", "", "grantor address")
	fs.StringVar(&f.grantee.name, "grantee-name", "", "authorized person surname")
	fs.StringVar(&f.grantee.firstName, "grantee-first-name", "", "authorized person first name")
	fs.StringVar(&f.grantee.birthDate, "grantee-birth-date", "", "authorized person date of birth")
	fs.StringVar(&f.grantee.address, "grantee-address", "", "authorized person address")
	fs.StringVar(&f.city, "city", "", "city for the date line")
	fs.StringVar(&f.date, "date", "", "date for the date line (\"\" = today, DD.MM.YYYY)")
	fs.StringVar(&f.remarks, "remarks", "", "optional remarks paragraph (Markdown inline markup)")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.Float64Var(&f.marginLeft, "margin-left", 0, "left margin in points (default: 40)")
	fs.Float64Var(&f.marginRight, "margin-right", 0, "right margin in points (default: 40)")
	fs.Float64Var(&f.marginTop, "margin-top", 0, "top margin in points (default: 36)")
	fs.Float64Var(&f.marginBottom, "margin-bottom", 0, "bottom margin in points (default: 36)")
	fs.StringVar(&f.titleKey, "title-key", "", "localization key for the document title")
}

// addSignatureFlags adds signature image flags to a FlagSet.
func addSignatureFlags(fs *flag.FlagSet, f *signatureFlags) {
	fs.StringVarP(&f.image, "signature", "s", "", "signature image path (PNG/JPEG/WebP/BMP)")
	fs.Float64Var(&f.width, "signature-width", 0, "rendered signature width in points (default: 180)")
	fs.Float64Var(&f.maxHeight, "signature-max-height", 0, "rendered signature height cap in points (default: 80)")
}

// parseFlags parses all CLI flags and returns remaining positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("vollmacht", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "out", "o", "", "output PDF path (default: vollmacht_formular.pdf)")
	fs.StringVarP(&f.language, "lang", "l", "", "document language: de, en, ar (default: de)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.version, "version", false, "show version information")

	addCommonFlags(fs, &f.common)
	addFormFlags(fs, &f.form)
	addPageFlags(fs, &f.page)
	addSignatureFlags(fs, &f.signature)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
