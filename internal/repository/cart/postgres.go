package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

// Item reads join products so quantities always pair with the live unit
// price, never a stored snapshot.
const itemColumns = `i.id, i.cart_id::text, i.product_id, i.quantity,
       p.id, p.title, p.slug, p.description, p.unit_price, p.inventory, p.last_update, p.collection_id`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context) (*domain.Cart, error) {
	const q = `
INSERT INTO carts (id)
VALUES ($1)
RETURNING id::text, created_at
`
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q, uuid.NewString()).Scan(&cart.ID, &cart.CreatedAt); err != nil {
		return nil, err
	}
	cart.Items = []domain.CartItem{}
	return &cart, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	var cart domain.Cart
	err := r.pool.QueryRow(ctx, `SELECT id::text, created_at FROM carts WHERE id = $1`, id).
		Scan(&cart.ID, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	items, err := r.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	return &cart, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	cmd, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) AddItem(ctx context.Context, cartID string, productID int64, quantity int) (*domain.CartItem, error) {
	// Single upsert: two concurrent adds for the same (cart, product) pair
	// both land on the unique constraint and merge instead of duplicating.
	const q = `
INSERT INTO cart_items (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id) DO UPDATE
SET quantity = cart_items.quantity + EXCLUDED.quantity
RETURNING id
`
	var itemID int64
	if err := r.pool.QueryRow(ctx, q, cartID, productID, quantity).Scan(&itemID); err != nil {
		return nil, err
	}
	return r.GetItem(ctx, cartID, itemID)
}

func (r *postgresRepo) ListItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	const q = `
SELECT ` + itemColumns + `
FROM cart_items i
JOIN products p ON p.id = i.product_id
WHERE i.cart_id = $1
ORDER BY i.id ASC
`
	rows, err := r.pool.Query(ctx, q, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) GetItem(ctx context.Context, cartID string, itemID int64) (*domain.CartItem, error) {
	const q = `
SELECT ` + itemColumns + `
FROM cart_items i
JOIN products p ON p.id = i.product_id
WHERE i.cart_id = $1 AND i.id = $2
`
	item, err := scanItem(r.pool.QueryRow(ctx, q, cartID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) UpdateItemQuantity(ctx context.Context, cartID string, itemID int64, quantity int) (*domain.CartItem, error) {
	const q = `
UPDATE cart_items
SET quantity = $1
WHERE cart_id = $2 AND id = $3
`
	cmd, err := r.pool.Exec(ctx, q, quantity, cartID, itemID)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetItem(ctx, cartID, itemID)
}

func (r *postgresRepo) DeleteItem(ctx context.Context, cartID string, itemID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1 AND id = $2`, cartID, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (domain.CartItem, error) {
	var item domain.CartItem
	err := row.Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.Product.ID,
		&item.Product.Title,
		&item.Product.Slug,
		&item.Product.Description,
		&item.Product.UnitPrice,
		&item.Product.Inventory,
		&item.Product.LastUpdate,
		&item.Product.CollectionID,
	)
	return item, err
}
