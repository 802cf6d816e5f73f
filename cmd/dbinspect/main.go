// Package main dumps a quick summary of a SHLOKA content database.
//
// Opens the badger directory read-only, so it is safe to point at a live
// server's data dir.
//
// Usage:
//
//	SHLOKA_DATA_DIR=~/.shloka-server go run ./cmd/dbinspect
package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mitchellh/go-homedir"

	"github.com/shloka-app/shloka-server/internal/domain"
)

func main() {
	dir := os.Getenv("SHLOKA_DATA_DIR")
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		dir = filepath.Join(home, ".shloka-server")
	}
	dbPath := filepath.Join(dir, "db")

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	counts := map[string]int{}
	var orphanGuidance []string

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())

			switch {
			case strings.HasPrefix(key, "idx:"):
				counts["index entries"]++
			case strings.HasPrefix(key, "meta:"):
				counts["meta records"]++
			case strings.HasPrefix(key, "emotion:"):
				counts["emotions"]++
			case strings.HasPrefix(key, "mood:"):
				counts["moods"]++
			case strings.HasPrefix(key, "chapter:"):
				counts["chapters"]++
			case strings.HasPrefix(key, "guidance:"):
				counts["guidance"]++
				err := item.Value(func(val []byte) error {
					var g domain.Guidance
					if err := json.Unmarshal(val, &g); err != nil {
						return err
					}
					// A guidance record must point back at a mood.
					if g.MoodID == "" {
						orphanGuidance = append(orphanGuidance, g.ID)
						return nil
					}
					if _, err := txn.Get([]byte("mood:" + g.MoodID)); err != nil {
						orphanGuidance = append(orphanGuidance, g.ID)
					}
					return nil
				})
				if err != nil {
					log.Printf("Error reading guidance %s: %v", key, err)
				}
			default:
				counts["unknown keys"]++
				fmt.Printf("Unknown key: %s\n", key)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error iterating database: %v", err)
	}

	printMeta(db, "meta:catalog")
	printMeta(db, "meta:instance")

	fmt.Println("=== Summary ===")
	for _, name := range []string{"emotions", "moods", "guidance", "chapters", "index entries", "meta records", "unknown keys"} {
		if counts[name] > 0 || name != "unknown keys" {
			fmt.Printf("%-14s %d\n", name+":", counts[name])
		}
	}
	if len(orphanGuidance) > 0 {
		fmt.Printf("\nGuidance with missing moods: %s\n", strings.Join(orphanGuidance, ", "))
	}
}

// printMeta pretty-prints one meta record if it exists.
func printMeta(db *badger.DB, key string) {
	_ = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return nil
		}
		return item.Value(func(val []byte) error {
			fmt.Printf("%s: %s\n\n", key, val)
			return nil
		})
	})
}
