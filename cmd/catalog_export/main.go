package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/DjordjeVuckovic/newsdesk/internal/catalog"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage/factory"
	"github.com/DjordjeVuckovic/newsdesk/pkg/config/env"
)

// catalog_export refreshes the embedded category snapshot from the article store.
func main() {
	var (
		output = flag.String("output", "internal/catalog/categories.yaml", "Path of the generated category snapshot")
		check  = flag.Bool("check", false, "Exit with an error when the snapshot is out of date instead of writing it")
	)
	flag.Parse()

	if err := env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/catalog_export/.env"); err != nil {
		log.Printf("Skipping .env: %v", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load storage configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	backend, err := factory.NewBackend(ctx, storageCfg)
	if err != nil {
		log.Fatalf("Failed to create article store: %v", err)
	}
	defer backend.Close()

	categories, err := backend.Store.Categories(ctx)
	if err != nil {
		log.Fatalf("Failed to read categories: %v", err)
	}

	// Validates ids and duplicates before anything is written.
	if _, err := catalog.New(categories); err != nil {
		log.Fatalf("Store returned an invalid catalog: %v", err)
	}

	var buf bytes.Buffer
	if err := catalog.Write(&buf, categories); err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}

	if *check {
		current, err := os.ReadFile(*output)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *output, err)
		}
		if !bytes.Equal(current, buf.Bytes()) {
			log.Fatalf("%s is out of date, run catalog_export", *output)
		}
		fmt.Printf("%s is up to date\n", *output)
		return
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0644); err != nil {
		log.Fatalf("Failed to write catalog: %v", err)
	}

	fmt.Printf("Generated category catalog: %s (%d categories)\n", *output, len(categories))
}
