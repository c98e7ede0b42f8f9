package articles

import (
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

/*
	Article slug helpers
	--------------------
	- generating URL slugs from titles
	- naming freshly created drafts
	- no storage access here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug derives a URL-safe slug from a title.
// Example: "Hello, World!" -> "hello-world"
func MakeSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlug.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "untitled"
	}
	return s
}

// NewUntitledSlug names a draft created without a title. The random
// suffix keeps the unique index on slug out of the way until the
// author picks a real title.
func NewUntitledSlug() string {
	suffix, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 10)
	if err != nil {
		// gonanoid only fails when the OS entropy source does
		suffix = "draft"
	}
	return "untitled-" + suffix
}
