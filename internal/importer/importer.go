package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"eventmarket/internal/domain"
)

type VendorWriter interface {
	Upsert(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)
}

type CategoryWriter interface {
	Upsert(ctx context.Context, c domain.Category) (*domain.Category, error)
}

// CSVImporter reads a vendor catalog export and upserts categories and
// vendors. Expected columns: category_key, category_name, vendor_name,
// description, city, rating.
type CSVImporter struct {
	reader     *csv.Reader
	vendors    VendorWriter
	categories CategoryWriter
}

func NewCSVImporter(r io.Reader, vendors VendorWriter, categories CategoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		vendors:    vendors,
		categories: categories,
	}
}

// Run parses CSV rows and upserts one vendor per row, creating the
// vendor's category on first sight. Returns the number of vendors
// imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	categoryIDs := make(map[string]string)
	imported := 0

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		catKey := field(record, index, "category_key")
		vendorName := field(record, index, "vendor_name")
		if catKey == "" || vendorName == "" {
			continue
		}

		categoryID, ok := categoryIDs[catKey]
		if !ok {
			cat, err := i.categories.Upsert(ctx, domain.Category{
				Key:  catKey,
				Name: fieldOr(record, index, "category_name", catKey),
			})
			if err != nil {
				return imported, fmt.Errorf("upsert category %s: %w", catKey, err)
			}
			categoryID = cat.ID
			categoryIDs[catKey] = categoryID
		}

		rating, _ := strconv.ParseFloat(field(record, index, "rating"), 64)
		if _, err := i.vendors.Upsert(ctx, domain.Vendor{
			Name:        vendorName,
			CategoryID:  categoryID,
			Description: field(record, index, "description"),
			City:        field(record, index, "city"),
			Rating:      rating,
		}); err != nil {
			return imported, fmt.Errorf("upsert vendor %s: %w", vendorName, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return index
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func fieldOr(record []string, index map[string]int, name, def string) string {
	if v := field(record, index, name); v != "" {
		return v
	}
	return def
}
