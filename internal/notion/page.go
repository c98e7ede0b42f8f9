package notion

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrDatabaseURL marks a Notion database view URL; only individual
	// page URLs can be synced.
	ErrDatabaseURL = errors.New("database URLs are not supported, open an individual page instead")

	// ErrInvalidPageURL marks a URL no page id could be extracted from.
	ErrInvalidPageURL = errors.New("could not extract a page id from the URL")
)

var pageIDPattern = regexp.MustCompile(`(?i)([a-f0-9]{32}|[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12})`)

// ExtractPageID pulls the page id out of a shared Notion URL and
// normalizes it to the dashed UUID form the API expects.
func ExtractPageID(pageURL string) (string, error) {
	if strings.Contains(pageURL, "?v=") {
		return "", ErrDatabaseURL
	}

	clean := pageURL
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	parts := strings.Split(clean, "/")
	last := parts[len(parts)-1]

	m := pageIDPattern.FindString(last)
	if m == "" {
		return "", ErrInvalidPageURL
	}

	raw := strings.ToLower(strings.ReplaceAll(m, "-", ""))
	return raw[0:8] + "-" + raw[8:12] + "-" + raw[12:16] + "-" + raw[16:20] + "-" + raw[20:], nil
}

// Page is the subset of a Notion page object the sync path reads.
type Page struct {
	ID         string              `json:"id"`
	Cover      *FileValue          `json:"cover,omitempty"`
	Properties map[string]Property `json:"properties"`
}

// Property is a loose union over the property kinds the metadata
// extraction looks at; unused kinds stay nil.
type Property struct {
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	Status      *SelectOption  `json:"status,omitempty"`
	Checkbox    *bool          `json:"checkbox,omitempty"`
}

type SelectOption struct {
	Name string `json:"name"`
}

// Metadata is what the article record needs from the page object.
type Metadata struct {
	Title     string
	Excerpt   string
	Cover     *string
	Tags      []string
	Published bool
}

// ExtractMetadata reads title, cover, excerpt, tags and publish state
// from the page's properties. The title lives under "title" or "Name";
// publish state comes from a "Status" select/status being "published",
// overridden by a "Published" checkbox when one exists.
func ExtractMetadata(p Page) Metadata {
	md := Metadata{Tags: []string{}}

	if t, ok := p.Properties["title"]; ok && len(t.Title) > 0 {
		md.Title = t.Title[0].PlainText
	} else if t, ok := p.Properties["Name"]; ok && len(t.Title) > 0 {
		md.Title = t.Title[0].PlainText
	}

	if url := p.Cover.URL(); url != "" {
		md.Cover = &url
	}

	if e, ok := p.Properties["Excerpt"]; ok && len(e.RichText) > 0 {
		md.Excerpt = e.RichText[0].PlainText
	}

	if t, ok := p.Properties["Tags"]; ok {
		for _, tag := range t.MultiSelect {
			md.Tags = append(md.Tags, tag.Name)
		}
	}

	if s, ok := p.Properties["Status"]; ok {
		if s.Select != nil {
			md.Published = strings.EqualFold(s.Select.Name, "published")
		} else if s.Status != nil {
			md.Published = strings.EqualFold(s.Status.Name, "published")
		}
	}
	if pub, ok := p.Properties["Published"]; ok && pub.Checkbox != nil {
		md.Published = *pub.Checkbox
	}

	return md
}
