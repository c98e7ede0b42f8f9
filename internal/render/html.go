// Package render turns the native block model into display HTML.
// Dispatch is an exhaustive switch over the closed content variants;
// anything outside the set degrades to a visible placeholder instead
// of failing.
package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"portfolio-app/internal/domain/blocks"
)

// Blocks renders an article's blocks in position order.
func Blocks(bs []blocks.Block) string {
	if len(bs) == 0 {
		return `<p class="article-empty">No content</p>`
	}

	var sb strings.Builder
	sb.WriteString(`<div class="article-content">` + "\n")
	for _, b := range bs {
		sb.WriteString(Block(b))
		sb.WriteString("\n")
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// Block renders a single block.
func Block(b blocks.Block) string {
	switch c := b.Content.(type) {
	case *blocks.ParagraphContent:
		if c.Text == "" {
			return `<p>&nbsp;</p>`
		}
		return "<p>" + html.EscapeString(c.Text) + "</p>"

	case *blocks.HeadingContent:
		level := headingLevel(b.Type)
		tag := "h" + strconv.Itoa(level)
		if c.Anchor != "" {
			return fmt.Sprintf(`<%s id="%s">%s</%s>`, tag, html.EscapeString(c.Anchor), html.EscapeString(c.Text), tag)
		}
		return fmt.Sprintf(`<%s>%s</%s>`, tag, html.EscapeString(c.Text), tag)

	case *blocks.ListItemContent:
		item := "<li>" + html.EscapeString(c.Text) + "</li>"
		if b.Type == blocks.NumberedList {
			return "<ol>" + item + "</ol>"
		}
		return "<ul>" + item + "</ul>"

	case *blocks.ToggleContent:
		open := ""
		if c.IsOpen {
			open = " open"
		}
		return "<details" + open + "><summary>" + html.EscapeString(c.Summary) + "</summary></details>"

	case *blocks.QuoteContent:
		var sb strings.Builder
		sb.WriteString("<blockquote>")
		sb.WriteString(html.EscapeString(c.Text))
		if c.Author != "" {
			sb.WriteString("<cite>" + html.EscapeString(c.Author) + "</cite>")
		}
		sb.WriteString("</blockquote>")
		return sb.String()

	case *blocks.CalloutContent:
		var sb strings.Builder
		sb.WriteString(`<div class="callout callout-` + html.EscapeString(c.Color) + `">`)
		sb.WriteString(`<span class="callout-icon">` + html.EscapeString(c.Icon) + `</span>`)
		sb.WriteString(`<div class="callout-text">` + html.EscapeString(c.Text) + `</div>`)
		sb.WriteString(`</div>`)
		return sb.String()

	case *blocks.DividerContent:
		return "<hr>"

	case *blocks.CodeContent:
		return codeBlock(c)

	case *blocks.MathContent:
		if c.Display == "inline" {
			return `<span class="math math-inline">` + html.EscapeString(c.Latex) + `</span>`
		}
		return `<div class="math math-block">` + html.EscapeString(c.Latex) + `</div>`

	case *blocks.ImageContent:
		return imageBlock(c)

	case *blocks.MindmapContent:
		var sb strings.Builder
		sb.WriteString(`<div class="mindmap-embed"`)
		if c.MindmapID != nil {
			sb.WriteString(` data-mindmap-id="` + html.EscapeString(*c.MindmapID) + `"`)
		}
		sb.WriteString(">")
		sb.WriteString(`<span class="mindmap-title">` + html.EscapeString(c.Title) + `</span>`)
		if c.Thumbnail != nil {
			sb.WriteString(`<img src="` + html.EscapeString(*c.Thumbnail) + `" alt="">`)
		}
		sb.WriteString(`</div>`)
		return sb.String()

	case *blocks.TableContent:
		var sb strings.Builder
		sb.WriteString("<table><tbody>")
		for _, row := range c.Rows {
			sb.WriteString("<tr>")
			for _, cell := range row {
				sb.WriteString("<td>" + html.EscapeString(cell) + "</td>")
			}
			sb.WriteString("</tr>")
		}
		sb.WriteString("</tbody></table>")
		return sb.String()

	default:
		return unsupported(string(b.Type))
	}
}

func codeBlock(c *blocks.CodeContent) string {
	var sb strings.Builder
	sb.WriteString(`<div class="code-block">`)

	label := c.Language
	if c.Filename != "" {
		label = c.Filename
	}
	sb.WriteString(`<div class="code-block-header">` + html.EscapeString(label) + `</div>`)

	sb.WriteString("<pre")
	if c.ShowLineNumbers {
		sb.WriteString(` class="line-numbers"`)
	}
	if len(c.HighlightLines) > 0 {
		lines := make([]string, 0, len(c.HighlightLines))
		for _, n := range c.HighlightLines {
			lines = append(lines, strconv.Itoa(n))
		}
		sb.WriteString(` data-highlight="` + strings.Join(lines, ",") + `"`)
	}
	sb.WriteString(`><code class="language-` + html.EscapeString(c.Language) + `">`)
	sb.WriteString(html.EscapeString(c.Code))
	sb.WriteString("</code></pre></div>")
	return sb.String()
}

func imageBlock(c *blocks.ImageContent) string {
	var sb strings.Builder
	sb.WriteString("<figure>")
	sb.WriteString(`<img src="` + html.EscapeString(c.URL) + `" alt="` + html.EscapeString(c.Alt) + `"`)
	if c.Width != nil {
		sb.WriteString(` width="` + strconv.Itoa(*c.Width) + `"`)
	}
	if c.Height != nil {
		sb.WriteString(` height="` + strconv.Itoa(*c.Height) + `"`)
	}
	sb.WriteString(">")
	if c.Caption != "" {
		sb.WriteString("<figcaption>" + html.EscapeString(c.Caption) + "</figcaption>")
	}
	sb.WriteString("</figure>")
	return sb.String()
}

func headingLevel(t blocks.Type) int {
	switch t {
	case blocks.Heading1:
		return 1
	case blocks.Heading2:
		return 2
	case blocks.Heading3:
		return 3
	case blocks.Heading4:
		return 4
	}
	return 1
}

func unsupported(typeName string) string {
	return `<div class="block-unsupported">Unsupported block type: <code>` +
		html.EscapeString(typeName) + `</code></div>`
}
