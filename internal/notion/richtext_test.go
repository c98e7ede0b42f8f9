package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(text string) RichText {
	return RichText{PlainText: text}
}

func TestTextPlainRun(t *testing.T) {
	out := Text([]RichText{run("hello")})
	assert.Equal(t, "<span>hello</span>", out)
}

func TestTextEscapes(t *testing.T) {
	out := Text([]RichText{run("<script>")})
	assert.Equal(t, "<span>&lt;script&gt;</span>", out)
}

func TestTextConcatenatesRuns(t *testing.T) {
	out := Text([]RichText{run("a"), run("b")})
	assert.Equal(t, "<span>a</span><span>b</span>", out)
}

func TestCodeAnnotationWinsOverLink(t *testing.T) {
	href := "https://example.com"
	r := RichText{
		PlainText:   "x := 1",
		Href:        &href,
		Annotations: Annotations{Code: true},
	}
	out := Text([]RichText{r})
	assert.Contains(t, out, `<code class="inline-code"`)
	assert.NotContains(t, out, "<a ")
}

func TestLinkRun(t *testing.T) {
	href := "https://example.com/?a=1&b=2"
	r := RichText{PlainText: "docs", Href: &href}
	out := Text([]RichText{r})
	assert.Contains(t, out, `<a href="https://example.com/?a=1&amp;b=2"`)
	assert.Contains(t, out, `target="_blank" rel="noopener noreferrer"`)
	assert.Contains(t, out, ">docs</a>")
}

func TestInlineEquationRun(t *testing.T) {
	r := RichText{
		Type:     "equation",
		Equation: &EquationValue{Expression: `\frac{1}{2}`},
	}
	out := Text([]RichText{r})
	assert.Equal(t, `<span class="math math-inline">\frac{1}{2}</span>`, out)
}

func TestStyledSpan(t *testing.T) {
	r := RichText{
		PlainText: "busy",
		Annotations: Annotations{
			Bold:          true,
			Italic:        true,
			Strikethrough: true,
			Underline:     true,
			Color:         "red",
		},
	}
	out := Text([]RichText{r})
	assert.Contains(t, out, "font-weight:600")
	assert.Contains(t, out, "font-style:italic")
	assert.Contains(t, out, "text-decoration:line-through underline")
	assert.Contains(t, out, "color:#E03E3E")
}

func TestBackgroundColor(t *testing.T) {
	r := RichText{
		PlainText:   "note",
		Annotations: Annotations{Color: "yellow_background"},
	}
	out := Text([]RichText{r})
	assert.Contains(t, out, "background-color:rgba(251, 243, 219, 0.6)")
}

func TestDefaultColorAddsNoStyle(t *testing.T) {
	r := RichText{PlainText: "plain", Annotations: Annotations{Color: "default"}}
	assert.Equal(t, "<span>plain</span>", Text([]RichText{r}))

	r.Annotations.Color = "made-up"
	assert.Equal(t, "<span>plain</span>", Text([]RichText{r}))
}

func TestPlainText(t *testing.T) {
	runs := []RichText{
		{PlainText: "a ", Annotations: Annotations{Bold: true}},
		{PlainText: "b"},
	}
	assert.Equal(t, "a b", PlainText(runs))
	assert.Equal(t, "", PlainText(nil))
}
