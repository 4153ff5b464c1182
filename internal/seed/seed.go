package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type vendorSeed struct {
	CategoryKey  string
	CategoryName string
	Name         string
	Description  string
	City         string
	Rating       float64
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	vendors := []vendorSeed{
		{
			CategoryKey:  "catering",
			CategoryName: "Catering",
			Name:         "Rustic Table",
			Description:  "Farm-to-table catering for events of all sizes",
			City:         "Portland",
			Rating:       4.8,
		},
		{
			CategoryKey:  "florist",
			CategoryName: "Florists",
			Name:         "Petal & Stem",
			Description:  "Seasonal arrangements and venue styling",
			City:         "Portland",
			Rating:       4.9,
		},
		{
			CategoryKey:  "photography",
			CategoryName: "Photography",
			Name:         "Golden Hour Studio",
			Description:  "Wedding and event photography",
			City:         "Seattle",
			Rating:       4.7,
		},
	}

	for _, v := range vendors {
		categoryID, err := ensureCategory(ctx, pool, v.CategoryKey, v.CategoryName)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", v.CategoryKey, err)
		}
		if err := upsertVendor(ctx, pool, categoryID, v); err != nil {
			return fmt.Errorf("upsert vendor %s: %w", v.Name, err)
		}
	}

	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, key, name string) (string, error) {
	const q = `
INSERT INTO categories (key, name)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, key, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertVendor(ctx context.Context, pool *pgxpool.Pool, categoryID string, v vendorSeed) error {
	const q = `
INSERT INTO vendors (name, category_id, description, city, rating)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name, category_id) DO UPDATE
SET description = EXCLUDED.description,
    city = EXCLUDED.city,
    rating = EXCLUDED.rating
`
	_, err := pool.Exec(ctx, q, v.Name, categoryID, v.Description, v.City, v.Rating)
	return err
}
