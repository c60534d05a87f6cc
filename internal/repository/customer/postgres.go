package customer

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

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

const customerColumns = `id, first_name, last_name, email, phone, birth_date, membership`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
ORDER BY last_name ASC, first_name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("customer repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customers
WHERE id = $1
`
	c, err := scanCustomer(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (first_name, last_name, email, phone, birth_date, membership)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`
	if err := r.pool.QueryRow(ctx, q, c.FirstName, c.LastName, c.Email, c.Phone, birthDateArg(c.BirthDate), c.Membership).Scan(&c.ID); err != nil {
		r.logger.Printf("customer repo: create email=%q error=%v", c.Email, err)
		return nil, err
	}
	r.logger.Printf("customer repo: created id=%d email=%q", c.ID, c.Email)
	return &c, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
UPDATE customers
SET first_name = $1, last_name = $2, email = $3, phone = $4, birth_date = $5, membership = $6
WHERE id = $7
`
	cmd, err := r.pool.Exec(ctx, q, c.FirstName, c.LastName, c.Email, c.Phone, birthDateArg(c.BirthDate), c.Membership, c.ID)
	if err != nil {
		r.logger.Printf("customer repo: update id=%d error=%v", c.ID, err)
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func birthDateArg(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var (
		c         domain.Customer
		birthDate *time.Time
	)
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &birthDate, &c.Membership); err != nil {
		return c, err
	}
	if birthDate != nil {
		c.BirthDate = birthDate.Format("2006-01-02")
	}
	return c, nil
}
