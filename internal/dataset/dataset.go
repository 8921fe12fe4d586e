package dataset

import (
	"sort"
	"strings"

	"github.com/vanshika/degrees/backend/internal/domain"
)

// Dataset holds the fully materialized people and movie tables along with the
// lower-cased name index. It is built once at startup and never mutated, so a
// single instance may be shared by any number of concurrent searches.
type Dataset struct {
	people map[string]domain.Person
	movies map[string]domain.Movie
	names  map[string][]string
}

// Person returns the person record for the given ID.
func (d *Dataset) Person(id string) (domain.Person, bool) {
	p, ok := d.people[id]
	return p, ok
}

// Movie returns the movie record for the given ID.
func (d *Dataset) Movie(id string) (domain.Movie, bool) {
	m, ok := d.movies[id]
	return m, ok
}

// HasPerson reports whether the given person ID exists in the people table.
func (d *Dataset) HasPerson(id string) bool {
	_, ok := d.people[id]
	return ok
}

// MoviesFor returns the IDs of all movies the person starred in.
func (d *Dataset) MoviesFor(personID string) []string {
	p, ok := d.people[personID]
	if !ok {
		return nil
	}
	return append([]string(nil), p.Movies...)
}

// StarsFor returns the IDs of all people who starred in the movie.
func (d *Dataset) StarsFor(movieID string) []string {
	m, ok := d.movies[movieID]
	if !ok {
		return nil
	}
	return append([]string(nil), m.Stars...)
}

// Neighbors returns every (movieID, personID) pair where personID co-starred
// with the given person. The person itself appears among its own neighbors,
// mirroring the raw star relation; traversal filters it through the explored
// set.
func (d *Dataset) Neighbors(personID string) []domain.PathStep {
	p, ok := d.people[personID]
	if !ok {
		return nil
	}
	var steps []domain.PathStep
	for _, movieID := range p.Movies {
		movie, ok := d.movies[movieID]
		if !ok {
			continue
		}
		for _, starID := range movie.Stars {
			steps = append(steps, domain.PathStep{MovieID: movieID, PersonID: starID})
		}
	}
	return steps
}

// IDsForName returns the person IDs sharing the given display name. Lookup is
// case-insensitive; names are not unique keys.
func (d *Dataset) IDsForName(name string) []string {
	ids := d.names[strings.ToLower(strings.TrimSpace(name))]
	return append([]string(nil), ids...)
}

// PeopleCount returns the number of loaded people.
func (d *Dataset) PeopleCount() int {
	return len(d.people)
}

// MoviesCount returns the number of loaded movies.
func (d *Dataset) MoviesCount() int {
	return len(d.movies)
}

// AllPeople returns every person record ordered by ID.
func (d *Dataset) AllPeople() []domain.Person {
	people := make([]domain.Person, 0, len(d.people))
	for _, p := range d.people {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool { return people[i].ID < people[j].ID })
	return people
}

// AllMovies returns every movie record ordered by ID.
func (d *Dataset) AllMovies() []domain.Movie {
	movies := make([]domain.Movie, 0, len(d.movies))
	for _, m := range d.movies {
		movies = append(movies, m)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies
}

// Builder accumulates records before freezing them into a Dataset. Star
// relations referencing unknown people or movies are dropped rather than
// rejected; dirty rows in the source data must never fail a load.
type Builder struct {
	people       map[string]domain.Person
	movies       map[string]domain.Movie
	names        map[string][]string
	skippedStars int
}

// NewBuilder returns an empty dataset builder.
func NewBuilder() *Builder {
	return &Builder{
		people: make(map[string]domain.Person),
		movies: make(map[string]domain.Movie),
		names:  make(map[string][]string),
	}
}

// AddPerson registers a person and indexes their lower-cased name.
func (b *Builder) AddPerson(id, name, birth string) *Builder {
	if id == "" {
		return b
	}
	b.people[id] = domain.Person{ID: id, Name: name, Birth: birth}
	key := strings.ToLower(strings.TrimSpace(name))
	b.names[key] = append(b.names[key], id)
	return b
}

// AddMovie registers a movie.
func (b *Builder) AddMovie(id, title, year string) *Builder {
	if id == "" {
		return b
	}
	b.movies[id] = domain.Movie{ID: id, Title: title, Year: year}
	return b
}

// AddStar records that a person starred in a movie. Relations referencing an
// unknown person or movie are counted and skipped.
func (b *Builder) AddStar(personID, movieID string) *Builder {
	person, personOK := b.people[personID]
	movie, movieOK := b.movies[movieID]
	if !personOK || !movieOK {
		b.skippedStars++
		return b
	}
	person.Movies = append(person.Movies, movieID)
	movie.Stars = append(movie.Stars, personID)
	b.people[personID] = person
	b.movies[movieID] = movie
	return b
}

// SkippedStars returns the number of star relations dropped so far.
func (b *Builder) SkippedStars() int {
	return b.skippedStars
}

// Build freezes the accumulated records into an immutable Dataset.
func (b *Builder) Build() *Dataset {
	return &Dataset{
		people: b.people,
		movies: b.movies,
		names:  b.names,
	}
}
