package articles

import (
	"context"
	"fmt"

	"portfolio-app/internal/domain/blocks"

	"gorm.io/gorm"
)

// BlockPersister adapts the block rows table to the editor store's
// Persister contract. The replace-all write runs delete-then-insert
// inside one transaction, so a failed insert can never leave the
// article with zero rows.
type BlockPersister struct {
	DB *gorm.DB
}

var _ blocks.Persister = (*BlockPersister)(nil)

func (p *BlockPersister) LoadRows(ctx context.Context, articleID string) ([]blocks.Row, error) {
	var stored []Block
	err := p.DB.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("position ASC").
		Find(&stored).Error
	if err != nil {
		return nil, err
	}

	rows := make([]blocks.Row, 0, len(stored))
	for _, b := range stored {
		rows = append(rows, blocks.Row{
			ID:        b.ID,
			Position:  b.Position,
			ParentID:  b.ParentID,
			Type:      b.Type,
			Content:   b.Content,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		})
	}
	return rows, nil
}

func (p *BlockPersister) ReplaceRows(ctx context.Context, articleID string, rows []blocks.Row) error {
	return p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article Article
		if err := tx.Select("id").First(&article, "id = ?", articleID).Error; err != nil {
			return fmt.Errorf("article %s: %w", articleID, err)
		}

		if err := tx.Where("article_id = ?", articleID).Delete(&Block{}).Error; err != nil {
			return err
		}

		if len(rows) == 0 {
			return nil
		}

		stored := make([]Block, 0, len(rows))
		for _, r := range rows {
			stored = append(stored, Block{
				ID:        r.ID,
				ArticleID: articleID,
				Position:  r.Position,
				ParentID:  r.ParentID,
				Type:      r.Type,
				Content:   r.Content,
			})
		}
		return tx.Create(&stored).Error
	})
}
