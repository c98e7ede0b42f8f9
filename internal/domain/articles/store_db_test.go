package articles

import (
	"context"
	"testing"

	"portfolio-app/internal/domain/blocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the editor store end to end against the real database
// adapter instead of a fake.
func TestStoreAgainstDatabase(t *testing.T) {
	db := testDB(t)
	a := seedArticle(t, db)
	ctx := context.Background()

	store := blocks.NewStore(&BlockPersister{DB: db})
	require.NoError(t, store.Load(ctx, a.ID))
	require.Equal(t, 0, store.Len())

	_, err := store.Add(blocks.Heading1, blocks.Partial{"text": "My Article"}, 0)
	require.NoError(t, err)
	body, err := store.Add(blocks.Paragraph, blocks.Partial{"text": "first draft"}, 1)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx))

	store.Update(body.ID, &blocks.ParagraphContent{Text: "second draft", Marks: []string{}})
	require.NoError(t, store.Save(ctx))

	// a second session sees exactly what was saved
	fresh := blocks.NewStore(&BlockPersister{DB: db})
	require.NoError(t, fresh.Load(ctx, a.ID))
	got := fresh.Blocks()
	require.Len(t, got, 2)
	assert.Equal(t, "My Article", got[0].Content.(*blocks.HeadingContent).Text)
	assert.Equal(t, "my-article", got[0].Content.(*blocks.HeadingContent).Anchor)
	assert.Equal(t, "second draft", got[1].Content.(*blocks.ParagraphContent).Text)
	assert.False(t, fresh.Dirty())
}
