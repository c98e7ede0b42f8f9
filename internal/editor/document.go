package editor

import (
	"context"

	"portfolio-app/config"
	"portfolio-app/internal/domain/blocks"
)

// OpenDocument starts an editing session over one article: a fresh
// store loaded with the article's blocks, autosaving at the configured
// interval. Callers own the store and must Close it when the session
// ends.
func OpenDocument(ctx context.Context, p blocks.Persister, articleID string) (*blocks.Store, error) {
	s := blocks.NewStore(p, blocks.WithAutosaveDelay(config.AUTOSAVE_DELAY))
	if err := s.Load(ctx, articleID); err != nil {
		return nil, err
	}
	return s, nil
}
