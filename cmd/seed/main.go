// Package main provides a tool to seed the content database outside the server.
//
// The API server seeds on startup, so this exists for preparing a data dir
// ahead of time or forcing a reseed after a catalog bump.
//
// Usage:
//
//	SHLOKA_DATA_DIR=~/.shloka-server go run ./cmd/seed
//	go run ./cmd/seed -data-dir /tmp/shloka -check
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/shloka-app/shloka-server/internal/catalog"
	"github.com/shloka-app/shloka-server/internal/service"
	"github.com/shloka-app/shloka-server/internal/store"
)

var (
	dataDir = flag.String("data-dir", "", "Server data dir (default: $SHLOKA_DATA_DIR or ~/.shloka-server)")
	check   = flag.Bool("check", false, "Run the integrity sweep after seeding")
)

func main() {
	flag.Parse()

	dir := *dataDir
	if dir == "" {
		dir = os.Getenv("SHLOKA_DATA_DIR")
	}
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		dir = filepath.Join(home, ".shloka-server")
	}
	dir, err := homedir.Expand(dir)
	if err != nil {
		log.Fatalf("Failed to expand data dir: %v", err)
	}

	dbPath := filepath.Join(dir, "db")
	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	content := service.NewContentService(s, nil)
	seeded, err := content.SeedCatalog(ctx)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	if seeded {
		fmt.Println("Catalog seeded.")
	} else {
		fmt.Println("Catalog already current, nothing to do.")
	}

	c := catalog.Default()
	fmt.Printf("Emotions:  %d\n", len(c.Emotions))
	fmt.Printf("Moods:     %d\n", len(c.Moods))
	fmt.Printf("Guidance:  %d\n", len(c.Guidance))
	fmt.Printf("Chapters:  %d\n", len(c.Chapters))

	if *check {
		if err := content.CheckIntegrity(ctx); err != nil {
			log.Fatalf("Integrity check failed: %v", err)
		}
		fmt.Println("Integrity check passed.")
	}
}
