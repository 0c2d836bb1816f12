// Command catalog validates a product CSV before it is handed to the api
// through GEARSTORE_CATALOG_CSV, and prints the parsed products.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"gearstore/internal/catalog"
	"gearstore/internal/logger"
	"gearstore/internal/storefront"
)

func main() {
	var (
		filePath string
		asJSON   bool
	)
	flag.StringVar(&filePath, "file", "", "Path to product catalog CSV")
	flag.BoolVar(&asJSON, "json", false, "Print products as JSON cards")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "catalog", Format: "console", Output: os.Stderr})

	start := time.Now()
	cat, err := catalog.LoadFile(filePath)
	if err != nil {
		logg.Fatal(ctx, "load catalog", err)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(storefront.NewCards(cat.List())); err != nil {
			logg.Fatal(ctx, "encode products", err)
		}
		return
	}

	for _, p := range cat.List() {
		fmt.Printf("%3d  %-32s $%8s  colors=%d sizes=%d\n", p.ID, p.Name, catalog.FormatCents(p.PriceCents), len(p.Colors), len(p.Sizes))
	}
	fmt.Printf("Validated %d products in %s\n", cat.Len(), time.Since(start).Truncate(time.Millisecond))
}
