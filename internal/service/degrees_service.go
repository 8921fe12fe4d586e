package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/vanshika/degrees/backend/internal/dataset"
	"github.com/vanshika/degrees/backend/internal/domain"
	"github.com/vanshika/degrees/backend/internal/resolver"
	"github.com/vanshika/degrees/backend/internal/search"
)

// PathEngine is the search contract required by the degrees service.
type PathEngine interface {
	ShortestPath(ctx context.Context, sourceID, targetID string) ([]domain.PathStep, bool, error)
}

// DegreesService orchestrates name resolution, path search and rendering over
// one immutable dataset.
type DegreesService struct {
	ds       *dataset.Dataset
	resolver *resolver.Resolver
	engine   PathEngine
}

// NewDegreesService constructs a DegreesService. A nil engine gets the
// default FIFO search engine over the dataset.
func NewDegreesService(ds *dataset.Dataset, engine PathEngine) *DegreesService {
	if engine == nil {
		engine = search.New(ds)
	}
	return &DegreesService{
		ds:       ds,
		resolver: resolver.New(ds),
		engine:   engine,
	}
}

// Resolver exposes the underlying name resolver for callers that run their
// own disambiguation flow.
func (s *DegreesService) Resolver() *resolver.Resolver {
	return s.resolver
}

// Connection resolves two display names and returns the shortest co-star
// chain between them. Ambiguous names surface as *resolver.AmbiguityError so
// callers can prompt and retry with ConnectionByID.
func (s *DegreesService) Connection(ctx context.Context, sourceName, targetName string) (domain.Connection, bool, error) {
	sourceID, err := s.resolver.Resolve(sourceName)
	if err != nil {
		return domain.Connection{}, false, fmt.Errorf("resolve source: %w", err)
	}
	targetID, err := s.resolver.Resolve(targetName)
	if err != nil {
		return domain.Connection{}, false, fmt.Errorf("resolve target: %w", err)
	}
	return s.ConnectionByID(ctx, sourceID, targetID)
}

// ConnectionByID returns the shortest co-star chain between two person IDs.
// Equal IDs short-circuit to a zero-degree connection; the engine itself
// treats a self-search like any other and would only succeed via a cycle.
// The second return value is false when the two people are not connected.
func (s *DegreesService) ConnectionByID(ctx context.Context, sourceID, targetID string) (domain.Connection, bool, error) {
	source, ok := s.ds.Person(sourceID)
	if !ok {
		return domain.Connection{}, false, fmt.Errorf("unknown person %q", sourceID)
	}
	target, ok := s.ds.Person(targetID)
	if !ok {
		return domain.Connection{}, false, fmt.Errorf("unknown person %q", targetID)
	}

	conn := domain.Connection{
		SourceID:   source.ID,
		SourceName: source.Name,
		TargetID:   target.ID,
		TargetName: target.Name,
	}

	if sourceID == targetID {
		return conn, true, nil
	}

	steps, found, err := s.engine.ShortestPath(ctx, sourceID, targetID)
	if err != nil {
		return domain.Connection{}, false, err
	}
	if !found {
		return conn, false, nil
	}

	conn.Degrees = len(steps)
	conn.Steps = make([]domain.ConnectionStep, 0, len(steps))
	for _, step := range steps {
		rendered := domain.ConnectionStep{
			MovieID:  step.MovieID,
			PersonID: step.PersonID,
		}
		if movie, ok := s.ds.Movie(step.MovieID); ok {
			rendered.MovieTitle = movie.Title
			rendered.MovieYear = movie.Year
		}
		if person, ok := s.ds.Person(step.PersonID); ok {
			rendered.PersonName = person.Name
		}
		conn.Steps = append(conn.Steps, rendered)
	}

	return conn, true, nil
}

// ListPeople returns paginated people matching the provided filters.
func (s *DegreesService) ListPeople(_ context.Context, params ListPeopleParams) (domain.PersonListResult, PaginationMeta, error) {
	page, pageSize := normalizePagination(params.Page, params.PageSize)
	searchTerm := strings.ToLower(strings.TrimSpace(params.Search))
	birth := strings.TrimSpace(params.Birth)

	var matched []domain.PersonSummary
	for _, person := range s.ds.AllPeople() {
		if searchTerm != "" && !strings.Contains(strings.ToLower(person.Name), searchTerm) {
			continue
		}
		if birth != "" && person.Birth != birth {
			continue
		}
		matched = append(matched, domain.PersonSummary{
			ID:         person.ID,
			Name:       person.Name,
			Birth:      person.Birth,
			MovieCount: len(person.Movies),
		})
	}

	total := int64(len(matched))
	items := paginate(matched, page, pageSize)
	return domain.PersonListResult{Items: items, Total: total}, buildPaginationMeta(page, pageSize, total), nil
}

// ListMovies returns paginated movies matching the provided filters.
func (s *DegreesService) ListMovies(_ context.Context, params ListMoviesParams) (domain.MovieListResult, PaginationMeta, error) {
	page, pageSize := normalizePagination(params.Page, params.PageSize)
	searchTerm := strings.ToLower(strings.TrimSpace(params.Search))
	year := strings.TrimSpace(params.Year)

	var matched []domain.MovieSummary
	for _, movie := range s.ds.AllMovies() {
		if searchTerm != "" && !strings.Contains(strings.ToLower(movie.Title), searchTerm) {
			continue
		}
		if year != "" && movie.Year != year {
			continue
		}
		matched = append(matched, domain.MovieSummary{
			ID:       movie.ID,
			Title:    movie.Title,
			Year:     movie.Year,
			StarIDs:  append([]string(nil), movie.Stars...),
			CastSize: len(movie.Stars),
		})
	}

	total := int64(len(matched))
	items := paginate(matched, page, pageSize)
	return domain.MovieListResult{Items: items, Total: total}, buildPaginationMeta(page, pageSize, total), nil
}

func paginate[T any](items []T, page, pageSize int) []T {
	offset := (page - 1) * pageSize
	if offset >= len(items) {
		return nil
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func normalizePagination(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}
	if pageSize > 200 {
		pageSize = 200
	}
	return page, pageSize
}

func buildPaginationMeta(page, pageSize int, total int64) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
		if total > 0 && totalPages == 0 {
			totalPages = 1
		}
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
