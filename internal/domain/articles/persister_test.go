package articles

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"testing"

	"portfolio-app/internal/domain/blocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	// one shared in-memory database per test, across all pool conns
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Article{}, &Block{}))
	return db
}

func seedArticle(t *testing.T, db *gorm.DB) Article {
	t.Helper()
	a := Article{
		ID:    uuid.NewString(),
		Title: "Test Article",
		Slug:  "test-article",
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func row(id string, position int, typ, content string) blocks.Row {
	return blocks.Row{
		ID:       id,
		Position: position,
		Type:     typ,
		Content:  json.RawMessage(content),
	}
}

func TestReplaceRowsAndLoadRows(t *testing.T) {
	db := testDB(t)
	a := seedArticle(t, db)
	p := &BlockPersister{DB: db}
	ctx := context.Background()

	rows := []blocks.Row{
		row("b1", 0, "heading1", `{"text":"Title","anchor":"title"}`),
		row("b2", 1, "paragraph", `{"text":"body","marks":[]}`),
	}
	require.NoError(t, p.ReplaceRows(ctx, a.ID, rows))

	got, err := p.LoadRows(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "heading1", got[0].Type)
	assert.JSONEq(t, `{"text":"body","marks":[]}`, string(got[1].Content))
}

func TestReplaceRowsReplacesWholeSet(t *testing.T) {
	db := testDB(t)
	a := seedArticle(t, db)
	p := &BlockPersister{DB: db}
	ctx := context.Background()

	require.NoError(t, p.ReplaceRows(ctx, a.ID, []blocks.Row{
		row("old1", 0, "paragraph", `{}`),
		row("old2", 1, "paragraph", `{}`),
	}))
	require.NoError(t, p.ReplaceRows(ctx, a.ID, []blocks.Row{
		row("new1", 0, "quote", `{"text":"q"}`),
	}))

	got, err := p.LoadRows(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new1", got[0].ID)
}

func TestReplaceRowsEmptyClearsArticle(t *testing.T) {
	db := testDB(t)
	a := seedArticle(t, db)
	p := &BlockPersister{DB: db}
	ctx := context.Background()

	require.NoError(t, p.ReplaceRows(ctx, a.ID, []blocks.Row{row("b1", 0, "paragraph", `{}`)}))
	require.NoError(t, p.ReplaceRows(ctx, a.ID, nil))

	got, err := p.LoadRows(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReplaceRowsUnknownArticleFails(t *testing.T) {
	db := testDB(t)
	p := &BlockPersister{DB: db}

	err := p.ReplaceRows(context.Background(), uuid.NewString(), []blocks.Row{
		row("b1", 0, "paragraph", `{}`),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReplaceRowsDoesNotTouchOtherArticles(t *testing.T) {
	db := testDB(t)
	a := seedArticle(t, db)
	other := Article{ID: uuid.NewString(), Title: "Other", Slug: "other"}
	require.NoError(t, db.Create(&other).Error)

	p := &BlockPersister{DB: db}
	ctx := context.Background()

	require.NoError(t, p.ReplaceRows(ctx, other.ID, []blocks.Row{row("ob1", 0, "paragraph", `{}`)}))
	require.NoError(t, p.ReplaceRows(ctx, a.ID, []blocks.Row{row("ab1", 0, "paragraph", `{}`)}))
	require.NoError(t, p.ReplaceRows(ctx, a.ID, nil))

	got, err := p.LoadRows(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ob1", got[0].ID)
}

func TestLoadRowsOrderedByPosition(t *testing.T) {
	db := testDB(t)
	a := seedArticle(t, db)
	p := &BlockPersister{DB: db}
	ctx := context.Background()

	require.NoError(t, p.ReplaceRows(ctx, a.ID, []blocks.Row{
		row("b3", 2, "paragraph", `{}`),
		row("b1", 0, "paragraph", `{}`),
		row("b2", 1, "paragraph", `{}`),
	}))

	got, err := p.LoadRows(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b1", "b2", "b3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestStringListRoundTrip(t *testing.T) {
	db := testDB(t)
	a := Article{
		ID:    uuid.NewString(),
		Title: "Tagged",
		Slug:  "tagged",
		Tags:  StringList{"go", "cms"},
	}
	require.NoError(t, db.Create(&a).Error)

	var got Article
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	assert.Equal(t, StringList{"go", "cms"}, got.Tags)
}
