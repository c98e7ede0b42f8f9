package blocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Persister is the storage collaborator: select-by-article ordered by
// position on the read side, replace-all on the write side.
type Persister interface {
	LoadRows(ctx context.Context, articleID string) ([]Row, error)
	ReplaceRows(ctx context.Context, articleID string, rows []Row) error
}

// Store is the mutation engine over one article's blocks. It is
// constructed per editing session and owned by it; there is no shared
// package-level instance. All methods are safe for concurrent use.
//
// Positions stay dense (exactly 0..n-1) across every Add, Delete and
// Reorder. Mutations mark the store dirty; Save clears the flag only
// when no further mutation happened while the save ran.
type Store struct {
	mu        sync.Mutex
	persister Persister
	debounce  time.Duration

	articleID string
	blocks    []Block

	dirty     bool
	gen       uint64
	saving    bool
	pending   bool
	lastSaved time.Time

	timer  *time.Timer
	closed bool
}

// Option configures a Store.
type Option func(*Store)

// WithAutosaveDelay sets the debounce interval for automatic saves.
// The timer restarts on every mutation while the store is dirty; zero
// disables autosave entirely.
func WithAutosaveDelay(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// NewStore builds an empty store persisting through p.
func NewStore(p Persister, opts ...Option) *Store {
	s := &Store{persister: p}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load fetches all blocks for the article ordered by position and
// replaces the in-memory collection, marking the store clean. On
// failure the previous snapshot is kept and the error surfaced; the
// caller decides whether to retry.
func (s *Store) Load(ctx context.Context, articleID string) error {
	rows, err := s.persister.LoadRows(ctx, articleID)
	if err != nil {
		return fmt.Errorf("load blocks: %w", err)
	}
	bs, err := Deserialize(rows)
	if err != nil {
		return fmt.Errorf("load blocks: %w", err)
	}
	sort.SliceStable(bs, func(i, j int) bool { return bs[i].Position < bs[j].Position })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.articleID = articleID
	s.blocks = bs
	s.dirty = false
	s.gen++
	return nil
}

// Add constructs a new block of the given type at position. Every
// existing block at position or later shifts down by one first, so the
// sequence stays dense.
func (s *Store) Add(t Type, partial Partial, position int) (Block, error) {
	b, err := New(t, partial, position)
	if err != nil {
		return Block{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blocks {
		if s.blocks[i].Position >= position {
			s.blocks[i].Position++
		}
	}
	s.blocks = append(s.blocks, b)
	sort.SliceStable(s.blocks, func(i, j int) bool { return s.blocks[i].Position < s.blocks[j].Position })
	s.markDirty()
	return b, nil
}

// Update replaces the block's content wholesale (no merge) and
// refreshes updated_at. An absent id is a no-op.
func (s *Store) Update(id string, content Content) {
	if content == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blocks {
		if s.blocks[i].ID == id {
			s.blocks[i].Content = content
			s.blocks[i].UpdatedAt = time.Now().UTC()
			s.markDirty()
			return
		}
	}
}

// Delete removes the block and closes the position gap it leaves.
// An absent id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blocks {
		if s.blocks[i].ID != id {
			continue
		}
		deleted := s.blocks[i].Position
		s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
		for j := range s.blocks {
			if s.blocks[j].Position > deleted {
				s.blocks[j].Position--
			}
		}
		s.markDirty()
		return
	}
}

// Reorder moves the block at fromIndex to toIndex in sequence order,
// then renumbers every block to its new index.
func (s *Store) Reorder(fromIndex, toIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.blocks)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return fmt.Errorf("reorder: index out of range (%d -> %d of %d)", fromIndex, toIndex, n)
	}
	moved := s.blocks[fromIndex]
	rest := append(append([]Block{}, s.blocks[:fromIndex]...), s.blocks[fromIndex+1:]...)
	s.blocks = append(append(append([]Block{}, rest[:toIndex]...), moved), rest[toIndex:]...)
	for i := range s.blocks {
		s.blocks[i].Position = i
	}
	s.markDirty()
	return nil
}

// Save persists the entire current collection by replacing all rows for
// the article. Only one save runs at a time: a Save issued while one is
// in flight returns ErrSaveInFlight and is remembered, and exactly one
// trailing re-save runs when the in-flight one finishes. On failure the
// dirty flag stays set so the next manual save or autosave cycle
// retries the full replace.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.articleID == "" {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	if s.saving {
		s.pending = true
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	s.saving = true

	for {
		gen := s.gen
		rows, err := Serialize(s.blocks)
		if err != nil {
			s.saving = false
			s.mu.Unlock()
			return fmt.Errorf("save blocks: %w", err)
		}
		id := s.articleID
		s.mu.Unlock()

		err = s.persister.ReplaceRows(ctx, id, rows)

		s.mu.Lock()
		if err != nil {
			s.saving = false
			s.pending = false
			s.mu.Unlock()
			return fmt.Errorf("save blocks: %w", err)
		}
		s.lastSaved = time.Now()
		if s.gen == gen {
			s.dirty = false
		}
		if s.pending && s.dirty {
			s.pending = false
			continue
		}
		s.pending = false
		s.saving = false
		s.mu.Unlock()
		return nil
	}
}

// Close stops the autosave timer. The store must not be used after.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Blocks returns a copy of the collection in position order.
func (s *Store) Blocks() []Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// Get returns the block with the given id, if present.
func (s *Store) Get(id string) (Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}

// Len returns the number of blocks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blocks)
}

// Dirty reports whether unsaved mutations exist.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// LastSaved returns the time of the last successful save, zero if none.
func (s *Store) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// markDirty flags unsaved state and restarts the debounce timer.
// Callers hold s.mu.
func (s *Store) markDirty() {
	s.dirty = true
	s.gen++
	if s.debounce <= 0 || s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.autosave)
}

func (s *Store) autosave() {
	s.mu.Lock()
	if s.closed || !s.dirty {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	// Errors stay surfaced through the dirty flag: a failed autosave
	// leaves the store dirty and the next mutation rearms the timer.
	_ = s.Save(context.Background())
}
