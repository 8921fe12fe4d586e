package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteDataset serializes the dataset into people.csv, movies.csv and
// stars.csv under the provided directory.
func WriteDataset(dataset Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	peopleRows := make([][]string, 0, len(dataset.People))
	for _, p := range dataset.People {
		peopleRows = append(peopleRows, []string{p.ID, p.Name, p.Birth})
	}
	if err := writeCSV(filepath.Join(dir, "people.csv"), []string{"id", "name", "birth"}, peopleRows); err != nil {
		return err
	}

	movieRows := make([][]string, 0, len(dataset.Movies))
	for _, m := range dataset.Movies {
		movieRows = append(movieRows, []string{m.ID, m.Title, m.Year})
	}
	if err := writeCSV(filepath.Join(dir, "movies.csv"), []string{"id", "title", "year"}, movieRows); err != nil {
		return err
	}

	starRows := make([][]string, 0, len(dataset.Stars))
	for _, s := range dataset.Stars {
		starRows = append(starRows, []string{s.PersonID, s.MovieID})
	}
	return writeCSV(filepath.Join(dir, "stars.csv"), []string{"person_id", "movie_id"}, starRows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row of %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
