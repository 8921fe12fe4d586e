package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vanshika/degrees/backend/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		people         = flag.Int("people", cfg.NumPeople, "number of people to generate")
		movies         = flag.Int("movies", cfg.NumMovies, "number of movies to generate")
		minCast        = flag.Int("min-cast", cfg.MinCast, "minimum stars per movie")
		maxCast        = flag.Int("max-cast", cfg.MaxCast, "maximum stars per movie")
		sharedChance   = flag.Float64("shared-name-chance", cfg.SharedNameChance, "probability of reusing an existing display name")
		danglingChance = flag.Float64("dangling-star-chance", cfg.DanglingStarChance, "probability of emitting a star row with an unknown person id")
		seed           = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		outputDir      = flag.String("output-dir", "data", "directory to write people.csv, movies.csv and stars.csv")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumPeople:          *people,
		NumMovies:          *movies,
		MinCast:            *minCast,
		MaxCast:            *maxCast,
		SharedNameChance:   clampProbability(*sharedChance),
		DanglingStarChance: clampProbability(*danglingChance),
		Seed:               *seed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(genCfg)
	ds, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if err := generator.WriteDataset(ds, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d people, %d movies, %d star rows to %s\n",
		len(ds.People), len(ds.Movies), len(ds.Stars), *outputDir)
}

func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
