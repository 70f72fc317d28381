package vollmacht

import "fmt"

// Table column widths in points, matching the printed form layout.
const (
	labelColumnWidth = 100.0
	valueColumnWidth = 350.0
)

// signatureRuleLine is the literal rule the grantor signs above.
const signatureRuleLine = "_________________________"

// Block is one visual element of the document. The ordered block sequence
// is the sole output of BuildLayout and the sole input to the renderer.
type Block interface {
	block()
}

// TitleBlock renders the document title in the title style.
type TitleBlock struct {
	Text string
}

// ParagraphStyle selects the visual treatment of a paragraph.
type ParagraphStyle string

const (
	// StyleNormal is regular body text.
	StyleNormal ParagraphStyle = "normal"
	// StyleSubtitle is the line directly under the title.
	StyleSubtitle ParagraphStyle = "subtitle"
)

// ParagraphBlock renders one paragraph of text.
// Markup marks the text as a trusted inline-HTML fragment; it is only set
// for embedded boilerplate and sanitized Markdown output, never for user
// field values.
type ParagraphBlock struct {
	Text   string
	Style  ParagraphStyle
	Markup bool
}

// SpacerBlock inserts fixed vertical space. Negative heights pull the
// following element upward (used to tuck the rule line under the signature
// image).
type SpacerBlock struct {
	Height float64
}

// TableBlock renders a bordered table with fixed column widths in points.
type TableBlock struct {
	Rows      [][]string
	ColWidths []float64
}

// ImageBlock carries encoded image bytes plus the computed output size in
// points. The renderer decodes the bytes again at render time.
type ImageBlock struct {
	Data   []byte
	Format string // "png", "jpeg", "webp", "bmp"
	Width  float64
	Height float64
}

// KeepTogetherBlock groups blocks that must not be split across a page
// boundary.
type KeepTogetherBlock struct {
	Blocks []Block
}

func (TitleBlock) block()        {}
func (ParagraphBlock) block()    {}
func (SpacerBlock) block()       {}
func (TableBlock) block()        {}
func (ImageBlock) block()        {}
func (KeepTogetherBlock) block() {}

// BuildLayout assembles the fixed visual structure of the authorization
// form: title, intro, grantor table, connector, grantee table, purpose and
// notice paragraphs, optional remarks, the city/date line, and the
// keep-together signature group. Missing field values render as empty
// strings; validation is the caller's concern. Never fails.
func BuildLayout(data FormData, sig *ImageBlock, table Table, opts *RenderOptions) []Block {
	opts = opts.Normalize()

	blocks := []Block{
		TitleBlock{Text: table.Resolve(opts.TitleKey, "Vollmacht")},
		ParagraphBlock{
			Text:  table.Resolve("pdf.subtitle", "zur Abholung und Beantragung des Aufenthaltstitels/Reiseausweises"),
			Style: StyleSubtitle,
		},
		SpacerBlock{Height: 12},
		ParagraphBlock{Text: table.Resolve("pdf.i", "Ich:"), Style: StyleNormal},
		ParagraphBlock{Text: table.Resolve("pdf.grantor", "Vollmachtgeber"), Style: StyleNormal},
		partyTable(data.grantorRows(), table),
		SpacerBlock{Height: 12},
		ParagraphBlock{Text: table.Resolve("pdf.authorize", "bevollmächtige"), Style: StyleNormal},
		ParagraphBlock{Text: table.Resolve("pdf.grantee", "Bevollmächtigter/-r"), Style: StyleNormal},
		partyTable(data.granteeRows(), table),
		SpacerBlock{Height: 12},
		ParagraphBlock{
			Text:   table.Resolve("pdf.purpose", "den Aufenthaltstitel und Reiseausweis zu beantragen/abzuholen, unter Vorlage <u>meines</u> Personaldokuments."),
			Style:  StyleNormal,
			Markup: true,
		},
		ParagraphBlock{
			Text:   table.Resolve("pdf.notice", "<b>Hinweis:</b> Der Bevollmächtigte muss sich bei Vorsprache zur Abholung durch Vorlage eines eigenen Personaldokuments ausweisen."),
			Style:  StyleNormal,
			Markup: true,
		},
	}

	if data.Remarks != "" {
		blocks = append(blocks, SpacerBlock{Height: 12}, remarksParagraph(data.Remarks))
	}

	blocks = append(blocks,
		SpacerBlock{Height: 24},
		ParagraphBlock{
			Text:  fmt.Sprintf(table.Resolve("pdf.date_line", "%s, den %s"), data.City, data.Date),
			Style: StyleNormal,
		},
		SpacerBlock{Height: 18},
		signatureGroup(sig, table),
	)

	return blocks
}

// partyTable builds the two-column label/value table for one party.
func partyTable(rows []partyRow, table Table) TableBlock {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{table.Resolve(r.labelKey, r.fallback), r.value})
	}
	return TableBlock{
		Rows:      out,
		ColWidths: []float64{labelColumnWidth, valueColumnWidth},
	}
}

// signatureGroup builds the keep-together signature area. The rule line and
// caption always render; the image only when a signature was supplied.
func signatureGroup(sig *ImageBlock, table Table) KeepTogetherBlock {
	var blocks []Block
	if sig != nil {
		blocks = append(blocks, *sig, SpacerBlock{Height: -12})
	}
	blocks = append(blocks,
		ParagraphBlock{Text: signatureRuleLine, Style: StyleNormal},
		ParagraphBlock{Text: table.Resolve("pdf.signature_caption", "Unterschrift des Vollmachtgebers"), Style: StyleNormal},
	)
	return KeepTogetherBlock{Blocks: blocks}
}
