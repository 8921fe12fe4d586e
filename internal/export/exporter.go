package export

import (
	"context"
	"fmt"

	"github.com/vanshika/degrees/backend/internal/dataset"
	"github.com/vanshika/degrees/backend/internal/domain"
	"github.com/vanshika/degrees/backend/internal/graph"
)

// Exporter pushes a loaded film dataset into an external graph database so
// the people-movies graph can be inspected with Cypher tooling.
type Exporter struct {
	client    graph.Client
	batchSize int
}

// New constructs an Exporter backed by the supplied graph client.
func New(client graph.Client, batchSize int) *Exporter {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Exporter{client: client, batchSize: batchSize}
}

// ExportDataset writes every person, movie and star relation to the graph.
// Nodes are merged by ID so re-running the export is idempotent.
func (e *Exporter) ExportDataset(ctx context.Context, ds *dataset.Dataset) error {
	if err := e.exportPeople(ctx, ds.AllPeople()); err != nil {
		return err
	}
	if err := e.exportMovies(ctx, ds.AllMovies()); err != nil {
		return err
	}
	return e.exportStars(ctx, ds.AllMovies())
}

func (e *Exporter) exportPeople(ctx context.Context, people []domain.Person) error {
	for start := 0; start < len(people); start += e.batchSize {
		end := start + e.batchSize
		if end > len(people) {
			end = len(people)
		}

		rows := make([]map[string]any, 0, end-start)
		for _, p := range people[start:end] {
			rows = append(rows, map[string]any{
				"personId": p.ID,
				"name":     p.Name,
				"birth":    p.Birth,
			})
		}

		if _, err := e.client.ExecuteWrite(ctx, mergePeopleCypher, map[string]any{"rows": rows}); err != nil {
			return fmt.Errorf("export people batch at %d: %w", start, err)
		}
	}
	return nil
}

func (e *Exporter) exportMovies(ctx context.Context, movies []domain.Movie) error {
	for start := 0; start < len(movies); start += e.batchSize {
		end := start + e.batchSize
		if end > len(movies) {
			end = len(movies)
		}

		rows := make([]map[string]any, 0, end-start)
		for _, m := range movies[start:end] {
			rows = append(rows, map[string]any{
				"movieId": m.ID,
				"title":   m.Title,
				"year":    m.Year,
			})
		}

		if _, err := e.client.ExecuteWrite(ctx, mergeMoviesCypher, map[string]any{"rows": rows}); err != nil {
			return fmt.Errorf("export movies batch at %d: %w", start, err)
		}
	}
	return nil
}

func (e *Exporter) exportStars(ctx context.Context, movies []domain.Movie) error {
	rows := make([]map[string]any, 0, e.batchSize)

	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		if _, err := e.client.ExecuteWrite(ctx, mergeStarsCypher, map[string]any{"rows": rows}); err != nil {
			return fmt.Errorf("export star relations: %w", err)
		}
		rows = rows[:0]
		return nil
	}

	for _, movie := range movies {
		for _, personID := range movie.Stars {
			rows = append(rows, map[string]any{
				"movieId":  movie.ID,
				"personId": personID,
			})
			if len(rows) >= e.batchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
	}
	return flush()
}

// CountExported returns the number of person and movie nodes present in the
// graph, used as a post-export sanity check.
func (e *Exporter) CountExported(ctx context.Context) (people int64, movies int64, err error) {
	res, err := e.client.ExecuteRead(ctx, countNodesCypher, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("count exported nodes: %w", err)
	}
	if len(res.Records) == 0 {
		return 0, 0, nil
	}
	record := res.Records[0]
	return toInt64(record["people"]), toInt64(record["movies"]), nil
}

func toInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

const mergePeopleCypher = `
UNWIND $rows AS row
MERGE (p:Person {personId: row.personId})
SET p.name = row.name,
    p.birth = row.birth
`

const mergeMoviesCypher = `
UNWIND $rows AS row
MERGE (m:Movie {movieId: row.movieId})
SET m.title = row.title,
    m.year = row.year
`

const mergeStarsCypher = `
UNWIND $rows AS row
MATCH (p:Person {personId: row.personId})
MATCH (m:Movie {movieId: row.movieId})
MERGE (p)-[:STARRED_IN]->(m)
`

const countNodesCypher = `
MATCH (p:Person)
WITH count(p) AS people
MATCH (m:Movie)
RETURN people, count(m) AS movies
`
