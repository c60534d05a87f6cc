package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Title       string
	Slug        string
	Description string
	UnitPrice   string
	Inventory   int
	Collection  string
}

type customerSeed struct {
	FirstName  string
	LastName   string
	Email      string
	Membership string
}

// Apply loads a small demo catalog. Safe to run repeatedly: collections and
// customers are matched by natural key, products upsert by slug.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Title:       "Runner Sneaker",
			Slug:        "runner-sneaker",
			Description: "Lightweight mesh running shoe",
			UnitPrice:   "49.99",
			Inventory:   25,
			Collection:  "Shoes",
		},
		{
			Title:       "Trail Boot",
			Slug:        "trail-boot",
			Description: "Waterproof hiking boot",
			UnitPrice:   "89.50",
			Inventory:   12,
			Collection:  "Shoes",
		},
		{
			Title:       "Classic Shirt",
			Slug:        "classic-shirt",
			Description: "Plain cotton shirt",
			UnitPrice:   "19.99",
			Inventory:   80,
			Collection:  "Apparel",
		},
		{
			Title:       "Ceramic Mug",
			Slug:        "ceramic-mug",
			Description: "Stoneware mug, 350ml",
			UnitPrice:   "12.99",
			Inventory:   40,
			Collection:  "Kitchen",
		},
	}

	for _, p := range products {
		collectionID, err := ensureCollection(ctx, pool, p.Collection)
		if err != nil {
			return fmt.Errorf("ensure collection %s: %w", p.Collection, err)
		}
		if err := upsertProduct(ctx, pool, collectionID, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}

	customers := []customerSeed{
		{FirstName: "Ada", LastName: "Larsen", Email: "ada@example.com", Membership: "G"},
		{FirstName: "Ben", LastName: "Okafor", Email: "ben@example.com", Membership: "B"},
	}
	for _, c := range customers {
		if err := ensureCustomer(ctx, pool, c); err != nil {
			return fmt.Errorf("ensure customer %s: %w", c.Email, err)
		}
	}

	return nil
}

func ensureCollection(ctx context.Context, pool *pgxpool.Pool, title string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, `SELECT id FROM collections WHERE title = $1`, title).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err := pool.QueryRow(ctx, `INSERT INTO collections (title) VALUES ($1) RETURNING id`, title).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, collectionID int64, p productSeed) error {
	const q = `
INSERT INTO products (title, slug, description, unit_price, inventory, collection_id)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (slug) DO UPDATE
SET title = EXCLUDED.title,
    description = EXCLUDED.description,
    unit_price = EXCLUDED.unit_price,
    inventory = EXCLUDED.inventory,
    collection_id = EXCLUDED.collection_id,
    last_update = now()
`
	_, err := pool.Exec(ctx, q, p.Title, p.Slug, p.Description, p.UnitPrice, p.Inventory, collectionID)
	return err
}

func ensureCustomer(ctx context.Context, pool *pgxpool.Pool, c customerSeed) error {
	const q = `
INSERT INTO customers (first_name, last_name, email, membership)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO NOTHING
`
	_, err := pool.Exec(ctx, q, c.FirstName, c.LastName, c.Email, c.Membership)
	return err
}
