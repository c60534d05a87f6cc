package review

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	const q = `
SELECT id, product_id, name, description, date
FROM reviews
WHERE product_id = $1
ORDER BY date DESC, id DESC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.Name, &rv.Description, &rv.Date); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, productID, id int64) (*domain.Review, error) {
	const q = `
SELECT id, product_id, name, description, date
FROM reviews
WHERE product_id = $1 AND id = $2
`
	var rv domain.Review
	err := r.pool.QueryRow(ctx, q, productID, id).Scan(&rv.ID, &rv.ProductID, &rv.Name, &rv.Description, &rv.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *postgresRepo) Create(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	const q = `
INSERT INTO reviews (product_id, name, description, date)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	if err := r.pool.QueryRow(ctx, q, rv.ProductID, rv.Name, rv.Description, rv.Date).Scan(&rv.ID); err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *postgresRepo) Update(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	const q = `
UPDATE reviews
SET name = $1, description = $2, date = $3
WHERE product_id = $4 AND id = $5
`
	cmd, err := r.pool.Exec(ctx, q, rv.Name, rv.Description, rv.Date, rv.ProductID, rv.ID)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return &rv, nil
}

func (r *postgresRepo) Delete(ctx context.Context, productID, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE product_id = $1 AND id = $2`, productID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
