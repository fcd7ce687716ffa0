package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"

	"github.com/nichefeed/nichefeed-server/internal/domain"
)

func main() {
	dbPath := os.Getenv("STORE_PATH")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		dbPath = filepath.Join(home, "nichefeed", "db")
	}

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

	nicheCount := inspect(db, "niche:", func(val []byte) string {
		var n domain.Niche
		if err := json.Unmarshal(val, &n); err != nil {
			return fmt.Sprintf("<unreadable: %v>", err)
		}
		return fmt.Sprintf("%s (%s)", n.Name, n.ID)
	})

	userCount := inspect(db, "user:", func(val []byte) string {
		var u domain.User
		if err := json.Unmarshal(val, &u); err != nil {
			return fmt.Sprintf("<unreadable: %v>", err)
		}
		return fmt.Sprintf("%s niches=%v", u.ID, u.SelectedNiches)
	})

	videoCount := inspect(db, "video:", func(val []byte) string {
		var v domain.Video
		if err := json.Unmarshal(val, &v); err != nil {
			return fmt.Sprintf("<unreadable: %v>", err)
		}
		return fmt.Sprintf("%s niche=%s duration=%ds", v.Title, v.NicheID, v.Duration)
	})

	transcriptCount := inspect(db, "transcript:", func(val []byte) string {
		var t domain.Transcript
		if err := json.Unmarshal(val, &t); err != nil {
			return fmt.Sprintf("<unreadable: %v>", err)
		}
		return fmt.Sprintf("%s video=%s len=%d", t.ID, t.VideoID, len(t.Content))
	})

	watchlistCount := inspect(db, "watchlist:", func(val []byte) string {
		var w domain.Watchlist
		if err := json.Unmarshal(val, &w); err != nil {
			return fmt.Sprintf("<unreadable: %v>", err)
		}
		return fmt.Sprintf("%s user=%s videos=%d", w.ID, w.UserID, len(w.VideoIDs))
	})

	fmt.Println("=== Summary ===")
	fmt.Printf("Niches:      %d\n", nicheCount)
	fmt.Printf("Users:       %d\n", userCount)
	fmt.Printf("Videos:      %d\n", videoCount)
	fmt.Printf("Transcripts: %d\n", transcriptCount)
	fmt.Printf("Watchlists:  %d\n", watchlistCount)
}

// inspect walks one key prefix, printing the first few entries, and
// returns the total count.
func inspect(db *badger.DB, prefix string, describe func([]byte) string) int {
	const sampleSize = 5

	count := 0
	fmt.Printf("--- %s ---\n", prefix)

	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			count++
			if count > sampleSize {
				continue
			}

			err := it.Item().Value(func(val []byte) error {
				fmt.Printf("  %s\n", describe(val))
				return nil
			})
			if err != nil {
				log.Printf("Error reading %s: %v", it.Item().Key(), err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error iterating %s: %v", prefix, err)
	}

	if count > sampleSize {
		fmt.Printf("  ... and %d more\n", count-sampleSize)
	}
	fmt.Println()
	return count
}
