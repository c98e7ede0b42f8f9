package blocks

import "time"

// Type enumerates every block kind the editor can produce.
// The set is closed: the factory, the serialization adapter and the
// renderer all switch over it exhaustively.
type Type string

const (
	Paragraph    Type = "paragraph"
	Heading1     Type = "heading1"
	Heading2     Type = "heading2"
	Heading3     Type = "heading3"
	Heading4     Type = "heading4"
	BulletList   Type = "bulletList"
	NumberedList Type = "numberedList"
	Toggle       Type = "toggle"
	Quote        Type = "quote"
	Callout      Type = "callout"
	Divider      Type = "divider"
	Code         Type = "code"
	Math         Type = "math"
	Image        Type = "image"
	Mindmap      Type = "mindmap"
	Table        Type = "table"
)

var allTypes = []Type{
	Paragraph,
	Heading1, Heading2, Heading3, Heading4,
	BulletList, NumberedList,
	Toggle, Quote, Callout, Divider,
	Code, Math, Image, Mindmap, Table,
}

// KnownType reports whether t is a member of the closed enumeration.
func KnownType(t Type) bool {
	for _, k := range allTypes {
		if k == t {
			return true
		}
	}
	return false
}

// Types returns the enumeration in a stable order.
func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// Block is the atomic content unit of an article.
//
// ID and Type are immutable after construction; changing a block's type
// means delete + recreate. Position is maintained by the Store and is
// always dense (0..n-1) within one article outside of a mutation.
type Block struct {
	ID        string
	Type      Type
	Position  int
	ParentID  *string
	Content   Content
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Content is the closed set of per-type content shapes. Every Type has
// exactly one Content implementation; the pairing is enforced by the
// factory at construction time.
type Content interface {
	blockContent()
}
