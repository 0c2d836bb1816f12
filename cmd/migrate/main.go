package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gearstore/internal/config"
	"gearstore/internal/db"
	"gearstore/internal/logger"
	"gearstore/internal/migrate"
)

func main() {
	var (
		direction string
		steps     int
	)
	flag.StringVar(&direction, "direction", "up", "up, down or version")
	flag.IntVar(&steps, "steps", 1, "migrations to revert with -direction=down")
	flag.Parse()

	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "migrate", Format: "console"})

	cfg, err := config.Load()
	if err != nil {
		logg.Fatal(ctx, "load config", err)
	}

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logg.Fatal(ctx, "connect db", err)
	}
	defer pool.Close()

	switch direction {
	case "up":
		if err := migrate.Apply(ctx, pool); err != nil {
			logg.Fatal(ctx, "apply migrations", err)
		}
		logg.Info(ctx, "migrations applied")
	case "down":
		if err := migrate.Rollback(ctx, pool, steps); err != nil {
			logg.Fatal(ctx, "rollback migrations", err)
		}
		logg.Event(ctx).Int("steps", steps).Msg("migrations rolled back")
	case "version":
		version, dirty, ok, err := migrate.Version(ctx, pool)
		if err != nil {
			logg.Fatal(ctx, "read version", err)
		}
		if !ok {
			fmt.Println("no migrations applied")
			return
		}
		fmt.Printf("version %d (dirty=%t)\n", version, dirty)
	default:
		flag.Usage()
		os.Exit(2)
	}
}
