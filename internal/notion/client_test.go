package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childrenResponse(results []map[string]any, next string) map[string]any {
	resp := map[string]any{
		"results":  results,
		"has_more": next != "",
	}
	if next != "" {
		resp["next_cursor"] = next
	}
	return resp
}

func TestGetPageSendsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))
		assert.Equal(t, "/v1/pages/page-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id": "page-1",
			"properties": map[string]any{
				"title": map[string]any{"title": []map[string]any{{"plain_text": "Hi"}}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("secret-token").WithBaseURL(srv.URL)
	page, raw, err := c.GetPage(context.Background(), "page-1")
	require.NoError(t, err)
	assert.Equal(t, "page-1", page.ID)
	assert.Equal(t, "Hi", ExtractMetadata(page).Title)
	assert.NotEmpty(t, raw)
}

func TestGetPageNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"object":"error","status":404}`)
	}))
	defer srv.Close()

	c := NewClient("t").WithBaseURL(srv.URL)
	_, _, err := c.GetPage(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestGetAllBlocksPaginates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("page_size"))
		cursor := r.URL.Query().Get("start_cursor")
		if cursor == "" {
			json.NewEncoder(w).Encode(childrenResponse([]map[string]any{
				{"id": "b1", "type": "paragraph", "paragraph": map[string]any{"rich_text": []any{}}},
			}, "cursor-2"))
			return
		}
		assert.Equal(t, "cursor-2", cursor)
		json.NewEncoder(w).Encode(childrenResponse([]map[string]any{
			{"id": "b2", "type": "divider"},
		}, ""))
	}))
	defer srv.Close()

	c := NewClient("t").WithBaseURL(srv.URL)
	got, err := c.GetAllBlocks(context.Background(), "root")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "b2", got[1].ID)
}

func TestGetAllBlocksRecursesIntoContainers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/blocks/root/children":
			json.NewEncoder(w).Encode(childrenResponse([]map[string]any{
				{"id": "tog", "type": "toggle", "has_children": true,
					"toggle": map[string]any{"rich_text": []any{}}},
			}, ""))
		case "/v1/blocks/tog/children":
			json.NewEncoder(w).Encode(childrenResponse([]map[string]any{
				{"id": "inner", "type": "paragraph",
					"paragraph": map[string]any{"rich_text": []any{}}},
			}, ""))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient("t").WithBaseURL(srv.URL)
	got, err := c.GetAllBlocks(context.Background(), "root")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Children, 1)
	assert.Equal(t, "inner", got[0].Children[0].ID)
}

func TestGetAllBlocksInlinesTableRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/blocks/root/children":
			json.NewEncoder(w).Encode(childrenResponse([]map[string]any{
				{"id": "tbl", "type": "table", "has_children": true},
				{"id": "after", "type": "divider"},
			}, ""))
		case "/v1/blocks/tbl/children":
			json.NewEncoder(w).Encode(childrenResponse([]map[string]any{
				{"id": "r1", "type": "table_row", "table_row": map[string]any{"cells": []any{}}},
				{"id": "r2", "type": "table_row", "table_row": map[string]any{"cells": []any{}}},
			}, ""))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient("t").WithBaseURL(srv.URL)
	got, err := c.GetAllBlocks(context.Background(), "root")
	require.NoError(t, err)

	// rows sit directly after their table in the flat list, the shape
	// the renderer's grouping pass expects
	require.Len(t, got, 4)
	assert.Equal(t, "tbl", got[0].ID)
	assert.Equal(t, "r1", got[1].ID)
	assert.Equal(t, "r2", got[2].ID)
	assert.Equal(t, "after", got[3].ID)
	assert.Empty(t, got[0].Children)
}
