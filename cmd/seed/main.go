// Package main seeds the database with sample catalog data.
//
// It writes a fixed set of niches, videos, and transcripts plus a demo
// user, using stable IDs so re-running it is a no-op for documents that
// already exist.
//
// Usage:
//
//	STORE_PATH=~/nichefeed/db go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nichefeed/nichefeed-server/internal/domain"
	"github.com/nichefeed/nichefeed-server/internal/store"
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

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	seedNiches(ctx, s)
	seedVideos(ctx, s)
	seedTranscripts(ctx, s)
	seedDemoUser(ctx, s)

	fmt.Println("\nSample data population complete")
}

func seedNiches(ctx context.Context, s *store.Store) {
	fmt.Println("\nAdding niches...")
	niches := []*domain.Niche{
		{
			ID:          "niche1",
			Name:        "Advanced JavaScript",
			Description: "Deep dives into modern JavaScript patterns and techniques",
			Tags:        []string{"programming", "web development"},
		},
		{
			ID:          "niche2",
			Name:        "Luthier Building Guitar Necks",
			Description: "Craftsmanship and techniques for building guitar necks",
			Tags:        []string{"woodworking", "music"},
		},
		{
			ID:          "niche3",
			Name:        "Quantum Computing Basics",
			Description: "Introduction to quantum computing principles",
			Tags:        []string{"science", "technology"},
		},
	}

	for _, n := range niches {
		switch err := s.CreateNiche(ctx, n); {
		case err == nil:
			fmt.Printf("  added niche: %s\n", n.Name)
		case errors.Is(err, store.ErrAlreadyExists):
			fmt.Printf("  niche exists, skipping: %s\n", n.Name)
		default:
			log.Fatalf("Failed to create niche %s: %v", n.ID, err)
		}
	}
}

func seedVideos(ctx context.Context, s *store.Store) {
	fmt.Println("\nAdding videos...")
	videos := []*domain.Video{
		{
			ID:       "video1",
			Title:    "Understanding Closures in JavaScript",
			Duration: 1200,
			NicheID:  "niche1",
			URL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		},
		{
			ID:       "video2",
			Title:    "Async/Await Patterns and Best Practices",
			Duration: 1500,
			NicheID:  "niche1",
			URL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		},
		{
			ID:       "video3",
			Title:    "Shaping the Perfect Guitar Neck",
			Duration: 1800,
			NicheID:  "niche2",
			URL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
		},
		{
			ID:       "video4",
			Title:    "Fretboard Radius Techniques",
			Duration: 1350,
			NicheID:  "niche2",
			URL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
		},
		{
			ID:       "video5",
			Title:    "Introduction to Qubits",
			Duration: 1650,
			NicheID:  "niche3",
			URL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
		},
	}

	for _, v := range videos {
		switch err := s.CreateVideo(ctx, v); {
		case err == nil:
			fmt.Printf("  added video: %s\n", v.Title)
		case errors.Is(err, store.ErrAlreadyExists):
			fmt.Printf("  video exists, skipping: %s\n", v.Title)
		default:
			log.Fatalf("Failed to create video %s: %v", v.ID, err)
		}
	}
}

func seedTranscripts(ctx context.Context, s *store.Store) {
	fmt.Println("\nAdding transcripts...")
	transcripts := []*domain.Transcript{
		{
			ID:      "transcript1",
			VideoID: "video1",
			Content: "Welcome to this deep dive into JavaScript closures. " +
				"A closure is a function that has access to variables in its outer scope, " +
				"even after the outer function has returned. This creates a private scope that persists. " +
				"Closures are commonly used for data privacy, creating factory functions, " +
				"and implementing the module pattern.",
		},
		{
			ID:      "transcript2",
			VideoID: "video2",
			Content: "In this tutorial, we'll explore async/await patterns in modern JavaScript. " +
				"The async keyword transforms a function to return a Promise automatically. " +
				"The await keyword pauses execution until the Promise resolves, " +
				"but doesn't block the entire program. " +
				"You'll learn when to use Promise.all() for parallel operations and how to handle errors gracefully.",
		},
		{
			ID:      "transcript3",
			VideoID: "video3",
			Content: "Welcome to this comprehensive guide on shaping guitar necks. " +
				"The neck is one of the most critical components of a guitar, " +
				"affecting both playability and tone. " +
				"Maple is traditional for its stability and bright tone, while mahogany offers warmth. " +
				"The carving process requires patience and precision.",
		},
		{
			ID:      "transcript4",
			VideoID: "video4",
			Content: "Today we're focusing on fretboard radius techniques. " +
				"The radius is the curvature across the width of the fretboard, " +
				"and it significantly impacts playability. " +
				"Vintage Fender guitars typically used a 7.25 inch radius; " +
				"modern guitars often use flatter radii like 12 or 16 inches. " +
				"Compound radius fretboards combine both worlds.",
		},
		{
			ID:      "transcript5",
			VideoID: "video5",
			Content: "Welcome to Introduction to Qubits, the fundamental unit of quantum computing. " +
				"Unlike classical bits that are either 0 or 1, qubits can exist in superposition. " +
				"While a classical computer with 3 bits can be in one of 8 states at a time, " +
				"3 qubits can be in all 8 states simultaneously. " +
				"When we measure a qubit, the superposition collapses to either 0 or 1.",
		},
	}

	for _, t := range transcripts {
		switch err := s.CreateTranscript(ctx, t); {
		case err == nil:
			fmt.Printf("  added transcript for video: %s\n", t.VideoID)
		case errors.Is(err, store.ErrAlreadyExists):
			fmt.Printf("  transcript exists, skipping: %s\n", t.ID)
		default:
			log.Fatalf("Failed to create transcript %s: %v", t.ID, err)
		}
	}
}

func seedDemoUser(ctx context.Context, s *store.Store) {
	fmt.Println("\nAdding demo user...")
	user := &domain.User{
		ID:             "demo-user-123",
		Email:          "demo@nichefeed.local",
		SelectedNiches: []string{"niche1", "niche2"},
	}

	switch err := s.CreateUser(ctx, user); {
	case err == nil:
		fmt.Println("  added demo user")
	case errors.Is(err, store.ErrAlreadyExists):
		fmt.Println("  demo user exists, skipping")
	default:
		log.Fatalf("Failed to create demo user: %v", err)
	}
}
