package notion

import (
	"html"
	"strings"
)

var colorMap = map[string]string{
	"gray":   "#9B9A97",
	"brown":  "#64473A",
	"orange": "#D9730D",
	"yellow": "#DFAB01",
	"green":  "#0F7B6C",
	"blue":   "#0B6E99",
	"purple": "#6940A5",
	"pink":   "#AD1A72",
	"red":    "#E03E3E",

	"gray_background":   "rgba(241, 241, 239, 0.6)",
	"brown_background":  "rgba(244, 238, 238, 0.6)",
	"orange_background": "rgba(251, 236, 221, 0.6)",
	"yellow_background": "rgba(251, 243, 219, 0.6)",
	"green_background":  "rgba(237, 243, 236, 0.6)",
	"blue_background":   "rgba(231, 243, 248, 0.6)",
	"purple_background": "rgba(244, 240, 247, 0.6)",
	"pink_background":   "rgba(249, 238, 243, 0.6)",
	"red_background":    "rgba(253, 235, 236, 0.6)",
}

// Text renders rich-text runs to HTML. Annotations stack additively;
// code and link are fast paths checked in fixed priority order: code
// first, then href, then inline equation, then a plain styled span.
func Text(runs []RichText) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(renderRun(r))
	}
	return sb.String()
}

// PlainText concatenates the runs' raw text, dropping all styling.
func PlainText(runs []RichText) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.PlainText)
	}
	return sb.String()
}

func renderRun(r RichText) string {
	style := runStyle(r.Annotations)
	content := html.EscapeString(r.PlainText)

	if r.Annotations.Code {
		return `<code class="inline-code"` + styleAttr(style) + `>` + content + `</code>`
	}

	if r.Href != nil && *r.Href != "" {
		return `<a href="` + html.EscapeString(*r.Href) + `" target="_blank" rel="noopener noreferrer"` +
			styleAttr(style) + `>` + content + `</a>`
	}

	if r.Type == "equation" && r.Equation != nil {
		return `<span class="math math-inline">` + html.EscapeString(r.Equation.Expression) + `</span>`
	}

	if len(style) == 0 {
		return `<span>` + content + `</span>`
	}
	return `<span` + styleAttr(style) + `>` + content + `</span>`
}

func runStyle(a Annotations) []string {
	var style []string
	if a.Bold {
		style = append(style, "font-weight:600")
	}
	if a.Italic {
		style = append(style, "font-style:italic")
	}

	// strikethrough and underline stack into one text-decoration
	var deco []string
	if a.Strikethrough {
		deco = append(deco, "line-through")
	}
	if a.Underline {
		deco = append(deco, "underline")
	}
	if len(deco) > 0 {
		style = append(style, "text-decoration:"+strings.Join(deco, " "))
	}

	if a.Color != "" && a.Color != "default" {
		if v, ok := colorMap[a.Color]; ok {
			if strings.Contains(a.Color, "background") {
				style = append(style, "background-color:"+v)
			} else {
				style = append(style, "color:"+v)
			}
		}
	}
	return style
}

func styleAttr(style []string) string {
	if len(style) == 0 {
		return ""
	}
	return ` style="` + strings.Join(style, ";") + `"`
}
