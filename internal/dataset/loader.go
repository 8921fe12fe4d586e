package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LoadStats summarizes a completed CSV load.
type LoadStats struct {
	People       int
	Movies       int
	Stars        int
	SkippedStars int
}

// Load reads people.csv, movies.csv and stars.csv from the given directory
// and materializes them into a Dataset. Star rows referencing unknown person
// or movie IDs are skipped, never fatal.
func Load(dir string, logger *slog.Logger) (*Dataset, LoadStats, error) {
	builder := NewBuilder()
	stats := LoadStats{}

	if err := readCSV(filepath.Join(dir, "people.csv"), []string{"id", "name", "birth"}, func(row map[string]string) {
		builder.AddPerson(row["id"], row["name"], row["birth"])
		stats.People++
	}); err != nil {
		return nil, LoadStats{}, fmt.Errorf("load people: %w", err)
	}

	if err := readCSV(filepath.Join(dir, "movies.csv"), []string{"id", "title", "year"}, func(row map[string]string) {
		builder.AddMovie(row["id"], row["title"], row["year"])
		stats.Movies++
	}); err != nil {
		return nil, LoadStats{}, fmt.Errorf("load movies: %w", err)
	}

	if err := readCSV(filepath.Join(dir, "stars.csv"), []string{"person_id", "movie_id"}, func(row map[string]string) {
		builder.AddStar(row["person_id"], row["movie_id"])
		stats.Stars++
	}); err != nil {
		return nil, LoadStats{}, fmt.Errorf("load stars: %w", err)
	}

	stats.SkippedStars = builder.SkippedStars()
	stats.Stars -= stats.SkippedStars

	if logger != nil {
		logger.Info("dataset loaded",
			"people", stats.People,
			"movies", stats.Movies,
			"stars", stats.Stars,
		)
		if stats.SkippedStars > 0 {
			logger.Debug("skipped dangling star rows", "count", stats.SkippedStars)
		}
	}

	return builder.Build(), stats, nil
}

// readCSV streams a headered CSV file and invokes fn for each row with the
// requested columns. Rows shorter than the header are tolerated via the csv
// reader's defaults; missing required columns fail the load.
func readCSV(path string, columns []string, fn func(row map[string]string)) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range columns {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("%s: missing required column %q", path, col)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		row := make(map[string]string, len(columns))
		for _, col := range columns {
			i := index[col]
			if i < len(record) {
				row[col] = record[i]
			}
		}
		fn(row)
	}
}
