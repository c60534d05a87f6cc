package collection

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

// Reads annotate each collection with its product count, so the response
// layer never issues a second query per row.
const collectionColumns = `c.id, c.title, COUNT(p.id) AS products_count`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Collection, error) {
	const q = `
SELECT ` + collectionColumns + `
FROM collections c
LEFT JOIN products p ON p.collection_id = c.id
GROUP BY c.id
ORDER BY c.title ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Collection
	for rows.Next() {
		var c domain.Collection
		if err := rows.Scan(&c.ID, &c.Title, &c.ProductsCount); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Collection, error) {
	const q = `
SELECT ` + collectionColumns + `
FROM collections c
LEFT JOIN products p ON p.collection_id = c.id
WHERE c.id = $1
GROUP BY c.id
`
	var c domain.Collection
	if err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Title, &c.ProductsCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Collection) (*domain.Collection, error) {
	const q = `INSERT INTO collections (title) VALUES ($1) RETURNING id`
	if err := r.pool.QueryRow(ctx, q, c.Title).Scan(&c.ID); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Collection) (*domain.Collection, error) {
	const q = `UPDATE collections SET title = $1 WHERE id = $2`
	cmd, err := r.pool.Exec(ctx, q, c.Title, c.ID)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, c.ID)
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) GetByTitle(ctx context.Context, title string) (*domain.Collection, error) {
	const q = `
SELECT ` + collectionColumns + `
FROM collections c
LEFT JOIN products p ON p.collection_id = c.id
WHERE c.title = $1
GROUP BY c.id
LIMIT 1
`
	var c domain.Collection
	if err := r.pool.QueryRow(ctx, q, title).Scan(&c.ID, &c.Title, &c.ProductsCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
