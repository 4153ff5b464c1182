package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"eventmarket/internal/config"
	"eventmarket/internal/db"
	"eventmarket/internal/importer"
	"eventmarket/internal/repository/category"
	"eventmarket/internal/repository/vendor"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to vendor catalog CSV")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, vendor.NewPostgres(pool), category.NewPostgres(pool))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d vendors in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
