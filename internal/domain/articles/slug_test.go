package articles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":        "hello-world",
		"  spaced   out  ":     "spaced-out",
		"Go 1.24 Release":      "go-124-release",
		"---":                  "untitled",
		"":                     "untitled",
		"Ünicode Ðropped":      "nicode-ropped",
		"already-a-slug":       "already-a-slug",
		"Mixed CASE and 123 #": "mixed-case-and-123",
	}
	for title, want := range cases {
		assert.Equal(t, want, MakeSlug(title), "title %q", title)
	}
}

func TestNewUntitledSlug(t *testing.T) {
	a := NewUntitledSlug()
	b := NewUntitledSlug()

	assert.True(t, strings.HasPrefix(a, "untitled-"))
	assert.Len(t, a, len("untitled-")+10)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, MakeSlug(a), "generated slug must already be slug-safe")
}
