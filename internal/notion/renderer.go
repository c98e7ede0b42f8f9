package notion

import (
	"html"
	"strings"
)

// Render turns a flat, ordered foreign block list into HTML. A table
// block is grouped with its immediately-following run of table_row
// siblings into one table; rows are never rendered on their own.
// Container blocks recurse into their Children. The renderer is total:
// a block outside its known set degrades to a named placeholder and
// never aborts its siblings.
func Render(bs []Block) string {
	if len(bs) == 0 {
		return `<p class="article-empty">No content</p>`
	}

	var sb strings.Builder
	sb.WriteString(`<div class="notion-content">` + "\n")

	i := 0
	for i < len(bs) {
		b := bs[i]

		if b.Type == "table" {
			i++
			var rows []Block
			for i < len(bs) && bs[i].Type == "table_row" {
				rows = append(rows, bs[i])
				i++
			}
			sb.WriteString(renderTableGroup(rows))
			sb.WriteString("\n")
			continue
		}

		// A stray row outside a table group is swallowed, same as the
		// grouping contract: rows only render inside their table.
		if b.Type == "table_row" {
			i++
			continue
		}

		sb.WriteString(renderBlock(b))
		sb.WriteString("\n")
		i++
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

func renderBlock(b Block) string {
	switch b.Type {
	case "paragraph":
		runs := richTextOf(b.Paragraph)
		if len(runs) == 0 {
			return `<p>&nbsp;</p>`
		}
		return "<p>" + Text(runs) + "</p>"

	case "heading_1":
		return "<h1>" + Text(richTextOf(b.Heading1)) + "</h1>"
	case "heading_2":
		return "<h2>" + Text(richTextOf(b.Heading2)) + "</h2>"
	case "heading_3":
		return "<h3>" + Text(richTextOf(b.Heading3)) + "</h3>"

	case "bulleted_list_item":
		return "<ul><li>" + Text(richTextOf(b.BulletedListItem)) + "</li></ul>"
	case "numbered_list_item":
		return "<ol><li>" + Text(richTextOf(b.NumberedListItem)) + "</li></ol>"

	case "to_do":
		return renderTodo(b.ToDo)

	case "toggle":
		return renderToggle(b)

	case "quote":
		return "<blockquote>" + Text(richTextOf(b.Quote)) + "</blockquote>"

	case "callout":
		return renderCallout(b.Callout)

	case "divider":
		return "<hr>"

	case "code":
		return renderCode(b.Code)

	case "equation":
		expr := ""
		if b.Equation != nil {
			expr = b.Equation.Expression
		}
		return `<div class="math math-block">` + html.EscapeString(expr) + `</div>`

	case "image":
		return renderImage(b.Image)

	case "video":
		return `<video controls src="` + html.EscapeString(b.Video.URL()) + `"></video>`

	case "file":
		name := "Download file"
		if b.File != nil && b.File.Name != "" {
			name = b.File.Name
		}
		return `<a class="file-block" href="` + html.EscapeString(b.File.URL()) + `" download>` +
			html.EscapeString(name) + `</a>`

	case "bookmark":
		return renderBookmark(b.Bookmark)

	case "embed":
		url := ""
		if b.Embed != nil {
			url = b.Embed.URL
		}
		return `<iframe src="` + html.EscapeString(url) + `" title="Embedded content"></iframe>`

	case "link_preview":
		url := ""
		if b.LinkPreview != nil {
			url = b.LinkPreview.URL
		}
		return `<a class="link-preview" href="` + html.EscapeString(url) + `" target="_blank" rel="noopener noreferrer">` +
			html.EscapeString(url) + `</a>`

	case "column_list":
		var sb strings.Builder
		sb.WriteString(`<div class="column-list">`)
		for _, col := range b.Children {
			sb.WriteString(renderBlock(col))
		}
		sb.WriteString(`</div>`)
		return sb.String()

	case "column":
		return `<div class="column">` + Render(b.Children) + `</div>`

	default:
		return renderUnsupported(b)
	}
}

func renderToggle(b Block) string {
	var sb strings.Builder
	sb.WriteString("<details><summary>")
	sb.WriteString(Text(richTextOf(b.Toggle)))
	sb.WriteString("</summary>")
	if len(b.Children) > 0 {
		sb.WriteString(Render(b.Children))
	}
	sb.WriteString("</details>")
	return sb.String()
}

func renderTodo(v *ToDoValue) string {
	if v == nil {
		return `<div class="todo"></div>`
	}
	checked := ""
	class := "todo"
	if v.Checked {
		checked = " checked"
		class = "todo todo-checked"
	}
	return `<div class="` + class + `"><input type="checkbox" disabled` + checked + `>` +
		Text(v.RichText) + `</div>`
}

func renderCallout(v *CalloutValue) string {
	icon := "💡"
	color := "gray_background"
	var runs []RichText
	if v != nil {
		if v.Icon != nil && v.Icon.Emoji != "" {
			icon = v.Icon.Emoji
		}
		if v.Color != "" {
			color = v.Color
		}
		runs = v.RichText
	}
	var sb strings.Builder
	sb.WriteString(`<div class="callout callout-` + html.EscapeString(color) + `">`)
	sb.WriteString(`<span class="callout-icon">` + html.EscapeString(icon) + `</span>`)
	sb.WriteString(`<div class="callout-text">` + Text(runs) + `</div>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

// renderCode emits a highlighted code view, except that the language
// "mermaid" delegates to the diagram sub-component.
func renderCode(v *CodeValue) string {
	code := ""
	language := "text"
	if v != nil {
		code = PlainText(v.RichText)
		if v.Language != "" {
			language = v.Language
		}
	}

	if language == "mermaid" {
		return Mermaid(code)
	}

	var sb strings.Builder
	sb.WriteString(`<div class="code-block">`)
	sb.WriteString(`<div class="code-block-header">` + html.EscapeString(language) + `</div>`)
	sb.WriteString(`<pre><code class="language-` + html.EscapeString(language) + `">`)
	sb.WriteString(html.EscapeString(code))
	sb.WriteString(`</code></pre></div>`)
	return sb.String()
}

// Mermaid is the diagram delegate: the raw definition is handed to the
// client-side renderer untouched, only escaped.
func Mermaid(code string) string {
	return `<div class="mermaid">` + html.EscapeString(code) + `</div>`
}

func renderImage(v *FileValue) string {
	caption := ""
	if v != nil {
		caption = PlainText(v.Caption)
	}
	var sb strings.Builder
	sb.WriteString("<figure>")
	sb.WriteString(`<img src="` + html.EscapeString(v.URL()) + `" alt="` + html.EscapeString(caption) + `">`)
	if caption != "" {
		sb.WriteString("<figcaption>" + html.EscapeString(caption) + "</figcaption>")
	}
	sb.WriteString("</figure>")
	return sb.String()
}

func renderBookmark(v *LinkValue) string {
	url := ""
	caption := ""
	if v != nil {
		url = v.URL
		caption = PlainText(v.Caption)
	}
	if caption == "" {
		caption = url
	}
	return `<a class="bookmark" href="` + html.EscapeString(url) + `" target="_blank" rel="noopener noreferrer">` +
		html.EscapeString(caption) + `</a>`
}

func renderTableGroup(rows []Block) string {
	if len(rows) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<table><tbody>")
	for _, row := range rows {
		sb.WriteString("<tr>")
		if row.TableRow != nil {
			for _, cell := range row.TableRow.Cells {
				sb.WriteString("<td>" + Text(cell) + "</td>")
			}
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>")
	return sb.String()
}

func renderUnsupported(b Block) string {
	return `<div class="block-unsupported">Unsupported block type: <code>` +
		html.EscapeString(b.Type) + `</code></div>`
}

func richTextOf(v *RichTextValue) []RichText {
	if v == nil {
		return nil
	}
	return v.RichText
}
