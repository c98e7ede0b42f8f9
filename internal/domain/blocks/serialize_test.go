package blocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	parent := "p1"
	width := 640
	in := []Block{
		mustNew(t, Paragraph, Partial{"text": "hello", "marks": []string{"bold"}}, 0),
		mustNew(t, Heading2, Partial{"text": "Section One"}, 1),
		mustNew(t, Code, Partial{"language": "go", "code": "fmt.Println(1)", "showLineNumbers": false}, 2),
		mustNew(t, Image, Partial{"url": "https://x/a.png", "width": width}, 3),
	}
	in[0].ParentID = &parent

	rows, err := Serialize(in)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "paragraph", rows[0].Type)
	assert.Equal(t, &parent, rows[0].ParentID)
	assert.JSONEq(t, `{"text":"hello","marks":["bold"]}`, string(rows[0].Content))

	out, err := Deserialize(rows)
	require.NoError(t, err)
	require.Len(t, out, 4)

	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Type, out[i].Type)
		assert.Equal(t, in[i].Position, out[i].Position)
		assert.Equal(t, in[i].Content, out[i].Content)
	}
}

func TestSerializeDropsTimestamps(t *testing.T) {
	b := mustNew(t, Paragraph, nil, 0)
	rows, err := Serialize([]Block{b})
	require.NoError(t, err)
	assert.True(t, rows[0].CreatedAt.IsZero())
	assert.True(t, rows[0].UpdatedAt.IsZero())
}

func TestDeserializePreservesRowTimestamps(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	rows := []Row{{
		ID:        "a",
		Position:  0,
		Type:      "quote",
		Content:   []byte(`{"text":"q","author":"me"}`),
		CreatedAt: created,
		UpdatedAt: updated,
	}}

	out, err := Deserialize(rows)
	require.NoError(t, err)
	assert.Equal(t, created, out[0].CreatedAt)
	assert.Equal(t, updated, out[0].UpdatedAt)
	assert.Equal(t, &QuoteContent{Text: "q", Author: "me"}, out[0].Content)
}

func TestDeserializeRejectsUnknownType(t *testing.T) {
	_, err := Deserialize([]Row{{ID: "a", Type: "banner", Content: []byte(`{}`)}})
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeserializeRejectsMalformedContent(t *testing.T) {
	_, err := Deserialize([]Row{{ID: "a", Type: "paragraph", Content: []byte(`{"text":`)}})
	require.Error(t, err)
}

func TestDeserializeEmptyContentDefaultsToEmptyBag(t *testing.T) {
	out, err := Deserialize([]Row{{ID: "a", Type: "divider"}})
	require.NoError(t, err)
	assert.Equal(t, &DividerContent{}, out[0].Content)
}

func mustNew(t *testing.T, typ Type, p Partial, pos int) Block {
	t.Helper()
	b, err := New(typ, p, pos)
	require.NoError(t, err)
	return b
}
