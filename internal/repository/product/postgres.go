package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

const productColumns = `p.id, p.title, p.slug, p.description, p.unit_price, p.inventory, p.last_update, p.collection_id`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Product, error) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CollectionID != nil {
		conds = append(conds, "p.collection_id = "+arg(*filter.CollectionID))
	}
	if filter.UnitPriceGT != nil {
		conds = append(conds, "p.unit_price > "+arg(*filter.UnitPriceGT))
	}
	if filter.UnitPriceLT != nil {
		conds = append(conds, "p.unit_price < "+arg(*filter.UnitPriceLT))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := arg("%" + escapeLike(s) + "%")
		conds = append(conds, fmt.Sprintf("(p.title ILIKE %[1]s OR p.description ILIKE %[1]s OR c.title ILIKE %[1]s)", pattern))
	}

	q := "SELECT " + productColumns + `
FROM products p
JOIN collections c ON c.id = p.collection_id
`
	if len(conds) > 0 {
		q += "WHERE " + strings.Join(conds, " AND ") + "\n"
	}
	q += "ORDER BY " + orderClause(filter.Ordering)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so a search term only ever
// matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// orderClause maps a client ordering key onto a whitelisted column. The
// column name never comes from the request directly.
func orderClause(ordering string) string {
	desc := strings.HasPrefix(ordering, "-")
	key := strings.TrimPrefix(ordering, "-")
	col, ok := map[string]string{
		"unit_price":  "p.unit_price",
		"last_update": "p.last_update",
	}[key]
	if !ok {
		return "p.id ASC"
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	q := "SELECT " + productColumns + `
FROM products p
WHERE p.id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (title, slug, description, unit_price, inventory, collection_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, last_update
`
	err := r.pool.QueryRow(ctx, q, p.Title, p.Slug, p.Description, p.UnitPrice, p.Inventory, p.CollectionID).
		Scan(&p.ID, &p.LastUpdate)
	if err != nil {
		r.logger.Printf("product repo: create title=%q error=%v", p.Title, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%d title=%q", p.ID, p.Title)
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET title = $1, slug = $2, description = $3, unit_price = $4, inventory = $5, collection_id = $6, last_update = now()
WHERE id = $7
RETURNING last_update
`
	err := r.pool.QueryRow(ctx, q, p.Title, p.Slug, p.Description, p.UnitPrice, p.Inventory, p.CollectionID, p.ID).
		Scan(&p.LastUpdate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%d error=%v", p.ID, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%d error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%d", id)
	return nil
}

func (r *postgresRepo) CountByCollection(ctx context.Context, collectionID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE collection_id = $1`, collectionID).Scan(&count)
	if err != nil {
		r.logger.Printf("product repo: count collection_id=%d error=%v", collectionID, err)
		return 0, err
	}
	return count, nil
}

func (r *postgresRepo) UpsertBySlug(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (title, slug, description, unit_price, inventory, collection_id)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (slug) DO UPDATE SET
    title = EXCLUDED.title,
    description = EXCLUDED.description,
    unit_price = EXCLUDED.unit_price,
    inventory = EXCLUDED.inventory,
    collection_id = EXCLUDED.collection_id,
    last_update = now()
RETURNING id, last_update
`
	err := r.pool.QueryRow(ctx, q, p.Title, p.Slug, p.Description, p.UnitPrice, p.Inventory, p.CollectionID).
		Scan(&p.ID, &p.LastUpdate)
	if err != nil {
		r.logger.Printf("product repo: upsert slug=%q error=%v", p.Slug, err)
		return nil, err
	}
	return &p, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.UnitPrice, &p.Inventory, &p.LastUpdate, &p.CollectionID)
	return p, err
}
