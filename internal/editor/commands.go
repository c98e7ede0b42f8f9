// Package editor holds the interactive pieces of the block editor: the
// command palette that inserts new blocks and the per-type edit
// sessions that buffer changes until commit.
package editor

import (
	"strings"

	"portfolio-app/internal/domain/blocks"
)

// Command is one insertable block type with its palette label and
// search keywords.
type Command struct {
	Type     blocks.Type
	Label    string
	Icon     string
	Keywords []string
}

// Commands returns the palette's command set in display order.
func Commands() []Command {
	return []Command{
		{Type: blocks.Paragraph, Label: "Text", Icon: "📝", Keywords: []string{"text", "paragraph", "p"}},
		{Type: blocks.Heading1, Label: "Heading 1", Icon: "H1", Keywords: []string{"h1", "heading1", "title"}},
		{Type: blocks.Heading2, Label: "Heading 2", Icon: "H2", Keywords: []string{"h2", "heading2"}},
		{Type: blocks.Heading3, Label: "Heading 3", Icon: "H3", Keywords: []string{"h3", "heading3"}},
		{Type: blocks.Code, Label: "Code Block", Icon: "💻", Keywords: []string{"code", "snippet", "programming"}},
		{Type: blocks.Math, Label: "Equation", Icon: "∑", Keywords: []string{"math", "latex", "formula", "equation"}},
		{Type: blocks.Callout, Label: "Callout", Icon: "💡", Keywords: []string{"callout", "note", "info"}},
		{Type: blocks.Divider, Label: "Divider", Icon: "—", Keywords: []string{"divider", "separator", "line"}},
		{Type: blocks.Quote, Label: "Quote", Icon: "\"", Keywords: []string{"quote", "blockquote"}},
	}
}

// Palette is the block-type picker. It filters commands as the query
// changes, supports cyclic keyboard navigation, and on confirmation
// hands the highlighted type and the insertion position to onSelect.
// It never touches storage itself.
type Palette struct {
	commands []Command
	onSelect func(blocks.Type, int)

	open     bool
	position int
	query    string
	filtered []Command
	selected int
}

// NewPalette builds a closed palette over the default command set.
func NewPalette(onSelect func(t blocks.Type, position int)) *Palette {
	return &Palette{
		commands: Commands(),
		onSelect: onSelect,
	}
}

// Open shows the palette targeting an insertion position, with an
// empty query.
func (p *Palette) Open(position int) {
	p.open = true
	p.position = position
	p.SetQuery("")
}

// Escape closes the palette without side effect.
func (p *Palette) Escape() {
	p.open = false
	p.query = ""
	p.filtered = nil
	p.selected = 0
}

func (p *Palette) IsOpen() bool { return p.open }

// SetQuery re-filters the command list and resets the highlight to the
// first match. A command matches when the query is a case-insensitive
// substring of any keyword or of the label.
func (p *Palette) SetQuery(query string) {
	p.query = query
	q := strings.ToLower(query)

	p.filtered = p.filtered[:0]
	for _, cmd := range p.commands {
		if commandMatches(cmd, q) {
			p.filtered = append(p.filtered, cmd)
		}
	}
	p.selected = 0
}

func commandMatches(cmd Command, q string) bool {
	for _, kw := range cmd.Keywords {
		if strings.Contains(kw, q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(cmd.Label), q)
}

// Filtered returns the current matches in display order.
func (p *Palette) Filtered() []Command {
	out := make([]Command, len(p.filtered))
	copy(out, p.filtered)
	return out
}

// Selected returns the highlighted command, if any match exists.
func (p *Palette) Selected() (Command, bool) {
	if len(p.filtered) == 0 {
		return Command{}, false
	}
	return p.filtered[p.selected], true
}

// MoveDown advances the highlight, wrapping at the end.
func (p *Palette) MoveDown() {
	if len(p.filtered) == 0 {
		return
	}
	p.selected = (p.selected + 1) % len(p.filtered)
}

// MoveUp retreats the highlight, wrapping at the start.
func (p *Palette) MoveUp() {
	if len(p.filtered) == 0 {
		return
	}
	p.selected = (p.selected - 1 + len(p.filtered)) % len(p.filtered)
}

// Confirm inserts the highlighted command's type at the palette's
// position and closes. With no matches it is a no-op and reports false.
func (p *Palette) Confirm() bool {
	cmd, ok := p.Selected()
	if !ok {
		return false
	}
	if p.onSelect != nil {
		p.onSelect(cmd.Type, p.position)
	}
	p.Escape()
	return true
}
