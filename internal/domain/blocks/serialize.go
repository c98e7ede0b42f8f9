package blocks

import (
	"encoding/json"
	"fmt"
	"time"
)

// Row is the flat persisted shape of one block: position-ordered, with
// the content bag as raw JSON and timestamps assigned by the store.
type Row struct {
	ID        string
	Position  int
	ParentID  *string
	Type      string
	Content   json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Serialize projects blocks to rows for storage. Timestamps are
// dropped: the persistence layer owns them on write.
func Serialize(bs []Block) ([]Row, error) {
	rows := make([]Row, 0, len(bs))
	for _, b := range bs {
		raw, err := json.Marshal(b.Content)
		if err != nil {
			return nil, fmt.Errorf("serialize block %s: %w", b.ID, err)
		}
		rows = append(rows, Row{
			ID:       b.ID,
			Position: b.Position,
			ParentID: b.ParentID,
			Type:     string(b.Type),
			Content:  raw,
		})
	}
	return rows, nil
}

// Deserialize is the inverse of Serialize, preserving every row field
// including timestamps. A row with a type outside the enumeration or a
// content bag that does not decode is an error; bad rows never reach
// the in-memory collection.
func Deserialize(rows []Row) ([]Block, error) {
	bs := make([]Block, 0, len(rows))
	for _, r := range rows {
		t := Type(r.Type)
		if !KnownType(t) {
			return nil, &ValidationError{Field: "type", Reason: "unknown block type " + r.Type}
		}
		content, err := decodeContent(t, r.Content)
		if err != nil {
			return nil, fmt.Errorf("deserialize block %s: %w", r.ID, err)
		}
		bs = append(bs, Block{
			ID:        r.ID,
			Type:      t,
			Position:  r.Position,
			ParentID:  r.ParentID,
			Content:   content,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return bs, nil
}
