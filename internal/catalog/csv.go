package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gearstore/internal/domain"
)

// CSVLoader reads a product sheet with the columns
// id,name,price,originalPrice,image,description,category,rating,reviews,colors,sizes.
// Colors and sizes are ";"-separated. A row with an empty id continues the
// previous product and appends its colors and sizes.
type CSVLoader struct {
	reader *csv.Reader
}

func NewCSVLoader(r io.Reader) *CSVLoader {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVLoader{reader: csvr}
}

// Load parses every row and returns the resulting catalog.
func (l *CSVLoader) Load() (*Catalog, error) {
	headers, err := l.reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"id", "name", "price"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var (
		products []domain.Product
		current  *domain.Product
		line     = 1
	)
	for {
		record, err := l.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		if pick(record, index, "id") == "" {
			// Continuation rows only extend variant options.
			if current == nil {
				return nil, fmt.Errorf("line %d: continuation row before any product", line)
			}
			current.Colors = append(current.Colors, splitList(pick(record, index, "colors"))...)
			current.Sizes = append(current.Sizes, splitList(pick(record, index, "sizes"))...)
			continue
		}

		p, err := parseProduct(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		products = append(products, p)
		current = &products[len(products)-1]
	}

	if len(products) == 0 {
		return nil, errors.New("no products in sheet")
	}
	return New(products)
}

func parseProduct(record []string, index map[string]int) (domain.Product, error) {
	id, err := strconv.Atoi(pick(record, index, "id"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid id: %w", err)
	}
	price, err := ParseCents(pick(record, index, "price"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid price for product %d: %w", id, err)
	}
	p := domain.Product{
		ID:          id,
		Name:        pick(record, index, "name"),
		PriceCents:  price,
		Image:       pick(record, index, "image"),
		Description: pick(record, index, "description"),
		Category:    pick(record, index, "category"),
		Colors:      splitList(pick(record, index, "colors")),
		Sizes:       splitList(pick(record, index, "sizes")),
	}
	if v := pick(record, index, "originalPrice"); v != "" {
		if p.OriginalPriceCents, err = ParseCents(v); err != nil {
			return domain.Product{}, fmt.Errorf("invalid originalPrice for product %d: %w", id, err)
		}
	}
	if v := pick(record, index, "rating"); v != "" {
		if p.Rating, err = strconv.ParseFloat(v, 64); err != nil {
			return domain.Product{}, fmt.Errorf("invalid rating for product %d: %w", id, err)
		}
	}
	if v := pick(record, index, "reviews"); v != "" {
		if p.Reviews, err = strconv.Atoi(v); err != nil {
			return domain.Product{}, fmt.Errorf("invalid reviews for product %d: %w", id, err)
		}
	}
	return p, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadFile loads a catalog from the CSV file at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return NewCSVLoader(f).Load()
}
