package vollmacht

import (
	"encoding/base64"
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/alnah/go-vollmacht/internal/assets"
)

// documentTemplate wraps the rendered block sequence in a complete HTML5
// document. Loaded and parsed once; the assets are embedded, so a failure
// here is a programmer error.
var documentTemplate = func() *template.Template {
	content, err := assets.LoadTemplate("document")
	if err != nil {
		panic("loading document template: " + err.Error())
	}
	tmpl, err := template.New("document").Parse(content)
	if err != nil {
		panic("parsing document template: " + err.Error())
	}
	return tmpl
}()

// formCSS is the static stylesheet for the form document.
var formCSS = func() string {
	css, err := assets.LoadStyle("form")
	if err != nil {
		panic("loading form style: " + err.Error())
	}
	return css
}()

// documentData feeds the document skeleton template.
type documentData struct {
	Lang  string
	Dir   string
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// renderDocumentHTML serializes the block sequence into a standalone HTML5
// document ready for printing. Blocks are never mutated.
func renderDocumentHTML(blocks []Block, table Table, opts *RenderOptions) (string, error) {
	opts = opts.Normalize()

	var body strings.Builder
	for _, b := range blocks {
		renderBlock(&body, b)
	}

	var out strings.Builder
	err := documentTemplate.Execute(&out, documentData{
		Lang:  table.Resolve("lang", "de"),
		Dir:   table.Resolve("dir", "ltr"),
		Title: table.Resolve(opts.TitleKey, "Vollmacht"),
		CSS:   template.CSS(formCSS),
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return out.String(), nil
}

// renderBlock appends the HTML for one block to the body.
func renderBlock(sb *strings.Builder, b Block) {
	switch blk := b.(type) {
	case TitleBlock:
		sb.WriteString(`<h1 class="title">`)
		sb.WriteString(html.EscapeString(blk.Text))
		sb.WriteString("</h1>\n")

	case ParagraphBlock:
		if blk.Style == StyleSubtitle {
			sb.WriteString(`<p class="subtitle">`)
		} else {
			sb.WriteString("<p>")
		}
		if blk.Markup {
			sb.WriteString(blk.Text)
		} else {
			sb.WriteString(html.EscapeString(blk.Text))
		}
		sb.WriteString("</p>\n")

	case SpacerBlock:
		// Negative spacers pull the next element upward; a div cannot have
		// negative height, so they become a negative bottom margin instead.
		if blk.Height < 0 {
			fmt.Fprintf(sb, `<div class="spacer" style="margin-bottom:%spt"></div>`+"\n", formatPt(blk.Height))
		} else {
			fmt.Fprintf(sb, `<div class="spacer" style="height:%spt"></div>`+"\n", formatPt(blk.Height))
		}

	case TableBlock:
		renderTable(sb, blk)

	case ImageBlock:
		fmt.Fprintf(sb, `<img class="signature" alt="" src="data:%s;base64,%s" style="width:%spt;height:%spt">`+"\n",
			mediaType(blk.Format),
			base64.StdEncoding.EncodeToString(blk.Data),
			formatPt(blk.Width),
			formatPt(blk.Height),
		)

	case KeepTogetherBlock:
		sb.WriteString(`<div class="keep-together">` + "\n")
		for _, child := range blk.Blocks {
			renderBlock(sb, child)
		}
		sb.WriteString("</div>\n")
	}
}

// renderTable writes a fixed-layout bordered table.
func renderTable(sb *strings.Builder, t TableBlock) {
	total := 0.0
	for _, w := range t.ColWidths {
		total += w
	}

	fmt.Fprintf(sb, `<table class="party" style="width:%spt">`+"\n", formatPt(total))
	sb.WriteString("<colgroup>")
	for _, w := range t.ColWidths {
		fmt.Fprintf(sb, `<col style="width:%spt">`, formatPt(w))
	}
	sb.WriteString("</colgroup>\n<tbody>\n")

	for _, row := range t.Rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString("<td>")
			sb.WriteString(html.EscapeString(cell))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>\n")
	}

	sb.WriteString("</tbody>\n</table>\n")
}

// mediaType maps a decoded image format name to its MIME type.
func mediaType(format string) string {
	switch format {
	case "jpeg", "png", "webp", "bmp":
		return "image/" + format
	default:
		return "application/octet-stream"
	}
}

// formatPt renders a point dimension without trailing zeros ("54", "40.5").
func formatPt(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
