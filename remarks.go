package vollmacht

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// remarksMarkdown renders the optional remarks field. Goldmark's default
// renderer omits raw HTML, so only Markdown-generated inline markup reaches
// the document.
var remarksMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// remarksParagraph converts the remarks Markdown to an inline-markup
// paragraph. Conversion failures degrade to the raw text rendered as a
// plain escaped paragraph; remarks must never block document delivery.
func remarksParagraph(md string) ParagraphBlock {
	var buf bytes.Buffer
	if err := remarksMarkdown.Convert([]byte(md), &buf); err != nil {
		return ParagraphBlock{Text: md, Style: StyleNormal}
	}

	return ParagraphBlock{
		Text:   unwrapParagraph(buf.String()),
		Style:  StyleNormal,
		Markup: true,
	}
}

// unwrapParagraph strips a single outer <p> wrapper from a Goldmark
// fragment so the content nests inside the layout's own paragraph element.
// Multi-paragraph fragments are returned unchanged.
func unwrapParagraph(fragment string) string {
	s := strings.TrimSpace(fragment)
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") {
		inner := s[len("<p>") : len(s)-len("</p>")]
		if !strings.Contains(inner, "<p>") {
			return inner
		}
	}
	return s
}
