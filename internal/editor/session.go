package editor

import (
	"fmt"

	"portfolio-app/internal/domain/blocks"
)

// Each block type gets its own edit session: a local buffer seeded
// from the block's stored content, written back through the store only
// on an explicit commit (blur), never per keystroke. Enter in a
// text-like session commits and asks for a fresh paragraph right after
// the current block; Backspace on an empty non-first block deletes it.
// A session owns only its own block's content shape.

type session struct {
	store *blocks.Store
	id    string
}

func (s session) current() (blocks.Block, error) {
	b, ok := s.store.Get(s.id)
	if !ok {
		return blocks.Block{}, fmt.Errorf("block %s no longer exists", s.id)
	}
	return b, nil
}

// insertParagraphAfter is the Enter-key contract shared by text-like
// sessions.
func (s session) insertParagraphAfter() (blocks.Block, error) {
	b, err := s.current()
	if err != nil {
		return blocks.Block{}, err
	}
	return s.store.Add(blocks.Paragraph, nil, b.Position+1)
}

// deleteIfEmpty implements Backspace-on-empty: the first block of the
// article is never deleted this way.
func (s session) deleteIfEmpty(bufferEmpty bool) bool {
	if !bufferEmpty {
		return false
	}
	b, err := s.current()
	if err != nil || b.Position == 0 {
		return false
	}
	s.store.Delete(s.id)
	return true
}

// ---------- paragraph

type TextSession struct {
	session
	buffer string
	marks  []string
}

func NewTextSession(store *blocks.Store, blockID string) (*TextSession, error) {
	s := &TextSession{session: session{store: store, id: blockID}}
	b, err := s.current()
	if err != nil {
		return nil, err
	}
	c, ok := b.Content.(*blocks.ParagraphContent)
	if !ok {
		return nil, fmt.Errorf("block %s is not a paragraph", blockID)
	}
	s.buffer = c.Text
	s.marks = append([]string{}, c.Marks...)
	return s, nil
}

func (s *TextSession) SetText(text string) { s.buffer = text }
func (s *TextSession) Text() string        { return s.buffer }

// Commit writes the buffer back if it differs from the stored text.
func (s *TextSession) Commit() {
	b, err := s.current()
	if err != nil {
		return
	}
	if c, ok := b.Content.(*blocks.ParagraphContent); ok && c.Text == s.buffer {
		return
	}
	s.store.Update(s.id, &blocks.ParagraphContent{Text: s.buffer, Marks: []string{}})
}

func (s *TextSession) EnterKey() (blocks.Block, error) {
	s.Commit()
	return s.insertParagraphAfter()
}

func (s *TextSession) BackspaceOnEmpty() bool {
	return s.deleteIfEmpty(s.buffer == "")
}

// ---------- headings

type HeadingSession struct {
	session
	buffer string
}

func NewHeadingSession(store *blocks.Store, blockID string) (*HeadingSession, error) {
	s := &HeadingSession{session: session{store: store, id: blockID}}
	b, err := s.current()
	if err != nil {
		return nil, err
	}
	c, ok := b.Content.(*blocks.HeadingContent)
	if !ok {
		return nil, fmt.Errorf("block %s is not a heading", blockID)
	}
	s.buffer = c.Text
	return s, nil
}

func (s *HeadingSession) SetText(text string) { s.buffer = text }
func (s *HeadingSession) Text() string        { return s.buffer }

// Commit recomputes the anchor from the buffered text.
func (s *HeadingSession) Commit() {
	b, err := s.current()
	if err != nil {
		return
	}
	if c, ok := b.Content.(*blocks.HeadingContent); ok && c.Text == s.buffer {
		return
	}
	s.store.Update(s.id, &blocks.HeadingContent{
		Text:   s.buffer,
		Anchor: blocks.Anchor(s.buffer),
	})
}

func (s *HeadingSession) EnterKey() (blocks.Block, error) {
	s.Commit()
	return s.insertParagraphAfter()
}

func (s *HeadingSession) BackspaceOnEmpty() bool {
	return s.deleteIfEmpty(s.buffer == "")
}

// ---------- code

type CodeSession struct {
	session
	code     string
	language string
}

func NewCodeSession(store *blocks.Store, blockID string) (*CodeSession, error) {
	s := &CodeSession{session: session{store: store, id: blockID}}
	b, err := s.current()
	if err != nil {
		return nil, err
	}
	c, ok := b.Content.(*blocks.CodeContent)
	if !ok {
		return nil, fmt.Errorf("block %s is not a code block", blockID)
	}
	s.code = c.Code
	s.language = c.Language
	return s, nil
}

func (s *CodeSession) SetCode(code string) { s.code = code }

// SetLanguage commits immediately, matching the language picker.
func (s *CodeSession) SetLanguage(language string) {
	s.language = language
	s.commit(true)
}

// Commit is the blur handler: writes only when code or language moved.
func (s *CodeSession) Commit() { s.commit(false) }

func (s *CodeSession) commit(force bool) {
	b, err := s.current()
	if err != nil {
		return
	}
	c, ok := b.Content.(*blocks.CodeContent)
	if !ok {
		return
	}
	if !force && c.Code == s.code && c.Language == s.language {
		return
	}
	next := *c
	next.Code = s.code
	next.Language = s.language
	s.store.Update(s.id, &next)
}

// ---------- math

type MathSession struct {
	session
	latex string
}

func NewMathSession(store *blocks.Store, blockID string) (*MathSession, error) {
	s := &MathSession{session: session{store: store, id: blockID}}
	b, err := s.current()
	if err != nil {
		return nil, err
	}
	c, ok := b.Content.(*blocks.MathContent)
	if !ok {
		return nil, fmt.Errorf("block %s is not a math block", blockID)
	}
	s.latex = c.Latex
	return s, nil
}

func (s *MathSession) SetLatex(latex string) { s.latex = latex }

// InsertSymbol appends a LaTeX snippet to the buffer.
func (s *MathSession) InsertSymbol(latex string) { s.latex += latex }

func (s *MathSession) Commit() {
	b, err := s.current()
	if err != nil {
		return
	}
	c, ok := b.Content.(*blocks.MathContent)
	if !ok || c.Latex == s.latex {
		return
	}
	next := *c
	next.Latex = s.latex
	s.store.Update(s.id, &next)
}

// ---------- callout

type CalloutSession struct {
	session
	text  string
	color string
	icon  string
}

func NewCalloutSession(store *blocks.Store, blockID string) (*CalloutSession, error) {
	s := &CalloutSession{session: session{store: store, id: blockID}}
	b, err := s.current()
	if err != nil {
		return nil, err
	}
	c, ok := b.Content.(*blocks.CalloutContent)
	if !ok {
		return nil, fmt.Errorf("block %s is not a callout", blockID)
	}
	s.text = c.Text
	s.color = c.Color
	s.icon = c.Icon
	return s, nil
}

func (s *CalloutSession) SetText(text string) { s.text = text }

// SetColor switches the color/icon pair and commits immediately.
func (s *CalloutSession) SetColor(color, icon string) {
	s.color = color
	s.icon = icon
	s.write()
}

func (s *CalloutSession) Commit() {
	b, err := s.current()
	if err != nil {
		return
	}
	c, ok := b.Content.(*blocks.CalloutContent)
	if ok && c.Text == s.text && c.Color == s.color && c.Icon == s.icon {
		return
	}
	s.write()
}

func (s *CalloutSession) write() {
	s.store.Update(s.id, &blocks.CalloutContent{
		Icon:  s.icon,
		Color: s.color,
		Text:  s.text,
	})
}
