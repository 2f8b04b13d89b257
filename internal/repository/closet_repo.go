package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Grendlee/fit-check/internal/domain"
)

// ClosetRepository define el contrato de lectura del closet digitalizado.
// El engine solo lee; las prendas son propiedad del colaborador de closet.
type ClosetRepository interface {
	FindByCategory(ctx context.Context, category string) ([]domain.ClosetItem, error)
}

type PgClosetRepository struct {
	pool *pgxpool.Pool
}

func NewPgClosetRepository(pool *pgxpool.Pool) *PgClosetRepository {
	return &PgClosetRepository{pool: pool}
}

func (r *PgClosetRepository) FindByCategory(ctx context.Context, category string) ([]domain.ClosetItem, error) {
	const query = `
		SELECT id, image_url, source_table, category, og_file_name, attributes
		FROM closet_items
		WHERE category = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ClosetItem
	for rows.Next() {
		var it domain.ClosetItem

		if err := rows.Scan(
			&it.ID,
			&it.ImageURL,
			&it.SourceTable,
			&it.Category,
			&it.OgFileName,
			&it.Attributes,
		); err != nil {
			return nil, err
		}

		items = append(items, it)
	}

	return items, rows.Err()
}
