package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"camp-portal/internal/domain"
)

// contentID selects the single camp bundle row.
const contentID = "camp"

// ContentLoader loads the camp content JSONB from Postgres.
type ContentLoader struct {
	pool *pgxpool.Pool
}

func NewContentLoader(pool *pgxpool.Pool) *ContentLoader {
	return &ContentLoader{pool: pool}
}

func (l *ContentLoader) LoadContent(ctx context.Context) (domain.CampContent, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM camp_content WHERE id=$1`, contentID).Scan(&raw)
	if err != nil {
		return domain.CampContent{}, fmt.Errorf("load content: %w", err)
	}
	var content domain.CampContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return domain.CampContent{}, fmt.Errorf("unmarshal content: %w", err)
	}
	return content, nil
}
