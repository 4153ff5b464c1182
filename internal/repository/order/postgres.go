package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"eventmarket/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by the orders and order_items
// tables.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Save(ctx context.Context, order domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO orders (id, customer_id, customer_name, customer_email, vendor_id, vendor_name, total, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, order.ID, order.CustomerID, order.CustomerName, order.CustomerEmail,
		order.VendorID, order.VendorName, order.Total.String(), string(order.Status), order.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for pos, li := range order.Items {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, position, product_id, vendor_id, vendor_name, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, order.ID, pos, li.ProductID, li.VendorID, li.VendorName, li.UnitPrice.String(), li.Quantity); err != nil {
			return fmt.Errorf("insert order item %s: %w", li.ProductID, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id, customer_id, customer_name, customer_email, vendor_id, vendor_name, total::text, status, created_at
FROM orders
WHERE id = $1
`
	o, err := r.scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) GetByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	const q = `
SELECT id, customer_id, customer_name, customer_email, vendor_id, vendor_name, total::text, status, created_at
FROM orders
WHERE customer_id = $1
ORDER BY created_at DESC, id
`
	return r.queryOrders(ctx, q, customerID)
}

func (r *postgresRepo) GetByVendor(ctx context.Context, vendorID string) ([]domain.Order, error) {
	const q = `
SELECT id, customer_id, customer_name, customer_email, vendor_id, vendor_name, total::text, status, created_at
FROM orders
WHERE vendor_id = $1
ORDER BY created_at DESC, id
`
	return r.queryOrders(ctx, q, vendorID)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET status = $1
WHERE id = $2
`, string(status), id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) queryOrders(ctx context.Context, q string, arg any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *postgresRepo) scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var total, status string
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.VendorID,
		&o.VendorName,
		&total,
		&status,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	o.Total, err = decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("parse order total: %w", err)
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

func (r *postgresRepo) loadItems(ctx context.Context, o *domain.Order) error {
	const q = `
SELECT product_id, vendor_id, vendor_name, unit_price::text, quantity
FROM order_items
WHERE order_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, q, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var li domain.CartLineItem
		var unitPrice string
		if err := rows.Scan(&li.ProductID, &li.VendorID, &li.VendorName, &unitPrice, &li.Quantity); err != nil {
			return err
		}
		li.UnitPrice, err = decimal.NewFromString(unitPrice)
		if err != nil {
			return fmt.Errorf("parse unit price: %w", err)
		}
		o.Items = append(o.Items, li)
	}
	return rows.Err()
}
