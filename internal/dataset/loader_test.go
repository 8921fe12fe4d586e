package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixtureCSVs(t *testing.T, dir string, stars string) {
	t.Helper()

	files := map[string]string{
		"people.csv": "id,name,birth\n1,Kevin Bacon,1958\n2,Tom Hanks,1956\n3,Bill Paxton,1955\n",
		"movies.csv": "id,title,year\n10,Apollo 13,1995\n11,Footloose,1984\n",
		"stars.csv":  stars,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFixtureCSVs(t, dir, "person_id,movie_id\n1,10\n2,10\n3,10\n1,11\n")

	ds, stats, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.People != 3 || stats.Movies != 2 || stats.Stars != 4 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.SkippedStars != 0 {
		t.Errorf("expected no skipped stars, got %d", stats.SkippedStars)
	}

	if stars := ds.StarsFor("10"); len(stars) != 3 {
		t.Errorf("expected 3 stars for movie 10, got %v", stars)
	}
}

func TestLoad_SkipsDanglingStarRows(t *testing.T) {
	dir := t.TempDir()
	writeFixtureCSVs(t, dir, "person_id,movie_id\n1,10\n404,10\n1,404\n")

	ds, stats, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("dangling rows must not fail the load: %v", err)
	}

	if stats.Stars != 1 {
		t.Errorf("expected 1 accepted star row, got %d", stats.Stars)
	}
	if stats.SkippedStars != 2 {
		t.Errorf("expected 2 skipped rows, got %d", stats.SkippedStars)
	}
	if stars := ds.StarsFor("10"); len(stars) != 1 {
		t.Errorf("expected only valid stars loaded, got %v", stars)
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"people.csv": "id,fullname,birth\n1,Kevin Bacon,1958\n",
		"movies.csv": "id,title,year\n10,Apollo 13,1995\n",
		"stars.csv":  "person_id,movie_id\n1,10\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if _, _, err := Load(dir, nil); err == nil {
		t.Fatal("expected error for missing required column")
	}
}

func TestLoad_ToleratesExtraColumnsAndShortRows(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"people.csv": "id,name,birth,imdb_rank\n1,Kevin Bacon,1958,7\n2,Tom Hanks\n",
		"movies.csv": "id,title,year\n10,Apollo 13,1995\n",
		"stars.csv":  "person_id,movie_id\n1,10\n2,10\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	ds, _, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	person, ok := ds.Person("2")
	if !ok {
		t.Fatal("expected person 2 despite short row")
	}
	if person.Birth != "" {
		t.Errorf("missing birth column should load as empty, got %q", person.Birth)
	}
}
