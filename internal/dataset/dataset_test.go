package dataset

import (
	"testing"
)

func buildFixture() *Dataset {
	return NewBuilder().
		AddPerson("1", "Kevin Bacon", "1958").
		AddPerson("2", "Tom Hanks", "1956").
		AddPerson("3", "Tom Hanks", "1924").
		AddMovie("10", "Apollo 13", "1995").
		AddMovie("11", "Footloose", "1984").
		AddStar("1", "10").
		AddStar("2", "10").
		AddStar("1", "11").
		Build()
}

func TestDataset_Lookups(t *testing.T) {
	ds := buildFixture()

	person, ok := ds.Person("1")
	if !ok {
		t.Fatal("expected person 1")
	}
	if person.Name != "Kevin Bacon" || person.Birth != "1958" {
		t.Errorf("unexpected person record: %+v", person)
	}

	movie, ok := ds.Movie("10")
	if !ok {
		t.Fatal("expected movie 10")
	}
	if movie.Title != "Apollo 13" || movie.Year != "1995" {
		t.Errorf("unexpected movie record: %+v", movie)
	}

	if _, ok := ds.Person("999"); ok {
		t.Error("expected lookup miss for unknown person")
	}
	if !ds.HasPerson("2") || ds.HasPerson("999") {
		t.Error("HasPerson mismatch")
	}
}

func TestDataset_Relations(t *testing.T) {
	ds := buildFixture()

	movies := ds.MoviesFor("1")
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies for person 1, got %v", movies)
	}

	stars := ds.StarsFor("10")
	if len(stars) != 2 {
		t.Fatalf("expected 2 stars for movie 10, got %v", stars)
	}

	if ds.MoviesFor("999") != nil {
		t.Error("expected nil movies for unknown person")
	}
	if ds.StarsFor("999") != nil {
		t.Error("expected nil stars for unknown movie")
	}
}

func TestDataset_NeighborsIncludeSelf(t *testing.T) {
	ds := buildFixture()

	steps := ds.Neighbors("1")
	// Person 1 stars in two movies with 2 and 1 star rows visible from them.
	if len(steps) != 3 {
		t.Fatalf("expected 3 raw neighbor pairs, got %v", steps)
	}

	foundSelf := false
	for _, step := range steps {
		if step.PersonID == "1" {
			foundSelf = true
		}
	}
	if !foundSelf {
		t.Error("raw neighbors must include the person itself")
	}
}

func TestDataset_IDsForNameCaseInsensitive(t *testing.T) {
	ds := buildFixture()

	for _, query := range []string{"Tom Hanks", "tom hanks", "  TOM HANKS  "} {
		ids := ds.IDsForName(query)
		if len(ids) != 2 {
			t.Errorf("IDsForName(%q): expected 2 ids, got %v", query, ids)
		}
	}

	if ids := ds.IDsForName("Nobody"); len(ids) != 0 {
		t.Errorf("expected no ids for unknown name, got %v", ids)
	}
}

func TestBuilder_SkipsDanglingStars(t *testing.T) {
	builder := NewBuilder().
		AddPerson("1", "Kevin Bacon", "1958").
		AddMovie("10", "Apollo 13", "1995").
		AddStar("1", "10").
		AddStar("404", "10").
		AddStar("1", "404")

	if got := builder.SkippedStars(); got != 2 {
		t.Fatalf("expected 2 skipped stars, got %d", got)
	}

	ds := builder.Build()
	if stars := ds.StarsFor("10"); len(stars) != 1 {
		t.Errorf("dangling rows must not appear in relations, got %v", stars)
	}
}

func TestDataset_Counts(t *testing.T) {
	ds := buildFixture()

	if ds.PeopleCount() != 3 {
		t.Errorf("expected 3 people, got %d", ds.PeopleCount())
	}
	if ds.MoviesCount() != 2 {
		t.Errorf("expected 2 movies, got %d", ds.MoviesCount())
	}
}

func TestDataset_AllSortedByID(t *testing.T) {
	ds := buildFixture()

	people := ds.AllPeople()
	for i := 1; i < len(people); i++ {
		if people[i-1].ID >= people[i].ID {
			t.Fatalf("people not sorted by ID: %v", people)
		}
	}

	movies := ds.AllMovies()
	for i := 1; i < len(movies); i++ {
		if movies[i-1].ID >= movies[i].ID {
			t.Fatalf("movies not sorted by ID: %v", movies)
		}
	}
}
