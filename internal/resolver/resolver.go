package resolver

import (
	"errors"
	"fmt"

	"github.com/vanshika/degrees/backend/internal/dataset"
	"github.com/vanshika/degrees/backend/internal/domain"
)

// ErrNotFound indicates a name with zero matching people.
var ErrNotFound = errors.New("resolver: person not found")

// ErrInvalidChoice indicates a chosen ID outside the candidate set.
var ErrInvalidChoice = errors.New("resolver: chosen id is not a candidate")

// AmbiguityError reports that a name maps to multiple people. Callers
// disambiguate externally and confirm via Choose.
type AmbiguityError struct {
	Name       string
	Candidates []domain.Candidate
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("resolver: %d people share the name %q", len(e.Candidates), e.Name)
}

// Resolver maps human-entered names to person IDs using the dataset's
// case-insensitive name index.
type Resolver struct {
	ds *dataset.Dataset
}

// New constructs a Resolver over the given dataset.
func New(ds *dataset.Dataset) *Resolver {
	return &Resolver{ds: ds}
}

// Resolve returns the unique person ID for the name. Zero matches yield
// ErrNotFound; multiple matches yield an *AmbiguityError carrying the full
// candidate set.
func (r *Resolver) Resolve(name string) (string, error) {
	ids := r.ds.IDsForName(name)
	switch len(ids) {
	case 0:
		return "", ErrNotFound
	case 1:
		return ids[0], nil
	default:
		return "", &AmbiguityError{Name: name, Candidates: r.candidates(ids)}
	}
}

// Candidates returns every person matching the name, with display attributes
// for disambiguation. An empty slice means no match.
func (r *Resolver) Candidates(name string) []domain.Candidate {
	return r.candidates(r.ds.IDsForName(name))
}

// Choose validates that personID is one of the candidates for name and
// returns it. The resolver never prompts; the caller collects the choice.
func (r *Resolver) Choose(name, personID string) (string, error) {
	ids := r.ds.IDsForName(name)
	if len(ids) == 0 {
		return "", ErrNotFound
	}
	for _, id := range ids {
		if id == personID {
			return id, nil
		}
	}
	return "", ErrInvalidChoice
}

func (r *Resolver) candidates(ids []string) []domain.Candidate {
	candidates := make([]domain.Candidate, 0, len(ids))
	for _, id := range ids {
		person, ok := r.ds.Person(id)
		if !ok {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			ID:    person.ID,
			Name:  person.Name,
			Birth: person.Birth,
		})
	}
	return candidates
}
