package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: vollmacht [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a power-of-attorney (Vollmacht) PDF form.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <path>              YAML config file")
	fmt.Fprintln(w, "  -o, --out <path>                 Output PDF path (default: vollmacht_formular.pdf)")
	fmt.Fprintln(w, "  -l, --lang <code>                Document language: de, en, ar (default: de)")
	fmt.Fprintln(w, "  -t, --timeout <dur>              PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet                      Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                    Show detailed progress")
	fmt.Fprintln(w, "      --version                    Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Form fields:")
	fmt.Fprintln(w, "      --grantor-name <s>           Grantor surname")
	fmt.Fprintln(w, "      --grantor-first-name <s>     Grantor first name")
	fmt.Fprintln(w, "      --grantor-birth-date <s>     Grantor date of birth")
	fmt.Fprintln(w, "      --grantor-address <s>        Grantor address")
	fmt.Fprintln(w, "      --grantee-name <s>           Authorized person surname")
	fmt.Fprintln(w, "      --grantee-first-name <s>     Authorized person first name")
	fmt.Fprintln(w, "      --grantee-birth-date <s>     Authorized person date of birth")
	fmt.Fprintln(w, "      --grantee-address <s>        Authorized person address")
	fmt.Fprintln(w, "      --city <s>                   City for the date line")
	fmt.Fprintln(w, "      --date <s>                   Date (\"\" = today, DD.MM.YYYY)")
	fmt.Fprintln(w, "      --remarks <s>                Optional remarks (Markdown inline markup)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Signature:")
	fmt.Fprintln(w, "  -s, --signature <path>           Signature image (PNG/JPEG/WebP/BMP)")
	fmt.Fprintln(w, "      --signature-width <pt>       Rendered width in points (default: 180)")
	fmt.Fprintln(w, "      --signature-max-height <pt>  Height cap in points (default: 80)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page (points):")
	fmt.Fprintln(w, "      --margin-left <pt>           Left margin (default: 40)")
	fmt.Fprintln(w, "      --margin-right <pt>          Right margin (default: 40)")
	fmt.Fprintln(w, "      --margin-top <pt>            Top margin (default: 36)")
	fmt.Fprintln(w, "      --margin-bottom <pt>         Bottom margin (default: 36)")
	fmt.Fprintln(w, "      --title-key <s>              Localization key for the title")
}
