package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	apiBase    = "https://api.notion.com"
	apiVersion = "2022-06-28"
	pageSize   = 100
)

// Client talks to the Notion API: one page fetch plus the paginated
// children walk that produces the flat, ordered block list the
// renderer consumes.
type Client struct {
	token string
	base  string
	http  *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token: token,
		base:  apiBase,
		http:  &http.Client{Timeout: 30 * time.Second},
	}
}

// WithBaseURL points the client at a different API host. Used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.base = base
	return c
}

// GetPage fetches the page object, returning both the decoded subset
// and the raw JSON so the article can store the page verbatim.
func (c *Client) GetPage(ctx context.Context, pageID string) (Page, json.RawMessage, error) {
	body, err := c.get(ctx, "/v1/pages/"+pageID, nil)
	if err != nil {
		return Page{}, nil, err
	}
	var p Page
	if err := json.Unmarshal(body, &p); err != nil {
		return Page{}, nil, fmt.Errorf("decode page %s: %w", pageID, err)
	}
	return p, body, nil
}

// GetAllBlocks walks the block's children through pagination and
// recurses into container blocks. Children of a table become table_row
// blocks placed immediately after it in the flat list, which is what
// the renderer's grouping pass relies on; children of every other
// container attach to the block's uniform Children edge.
func (c *Client) GetAllBlocks(ctx context.Context, blockID string) ([]Block, error) {
	var fetched []Block

	cursor := ""
	for {
		q := url.Values{"page_size": {fmt.Sprint(pageSize)}}
		if cursor != "" {
			q.Set("start_cursor", cursor)
		}
		body, err := c.get(ctx, "/v1/blocks/"+blockID+"/children", q)
		if err != nil {
			return nil, err
		}

		var page struct {
			Results    []Block `json:"results"`
			HasMore    bool    `json:"has_more"`
			NextCursor *string `json:"next_cursor"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decode children of %s: %w", blockID, err)
		}

		fetched = append(fetched, page.Results...)
		if !page.HasMore || page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}

	out := make([]Block, 0, len(fetched))
	for _, b := range fetched {
		if !b.HasChildren {
			out = append(out, b)
			continue
		}
		children, err := c.GetAllBlocks(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		if b.Type == "table" {
			out = append(out, b)
			out = append(out, children...)
			continue
		}
		b.Children = children
		out = append(out, b)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("notion request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("notion response %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("notion request %s: status %d: %s", path, resp.StatusCode, body)
	}
	return body, nil
}
