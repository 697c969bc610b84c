package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"finsync/internal/config"
	"finsync/internal/storage"
)

// mkcategory adds an expense category beyond the seeded set:
//
//	mkcategory -name Travel
func main() {
	_ = godotenv.Load()

	name := flag.String("name", "", "category name to add")
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "mkcategory: -name is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkcategory: open store: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	ctx := context.Background()
	id, err := repo.InsertCategory(ctx, *name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkcategory: insert category: %v\n", err)
		os.Exit(1)
	}

	cat, err := repo.GetCategory(ctx, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkcategory: read back category: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d\t%s\n", cat.CategoryID, cat.CategoryName)
}
