package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// PersonRow, MovieRow and StarRow mirror the CSV schema consumed by the
// dataset loader.
type PersonRow struct {
	ID    string
	Name  string
	Birth string
}

type MovieRow struct {
	ID    string
	Title string
	Year  string
}

type StarRow struct {
	PersonID string
	MovieID  string
}

// Dataset contains the generated rows.
type Dataset struct {
	People []PersonRow
	Movies []MovieRow
	Stars  []StarRow
}

// Generator produces synthetic film data aligned with the loader schema.
type Generator struct {
	cfg   Config
	rand  *rand.Rand
	names nameFragments
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.NumPeople <= 0 {
		cfg.NumPeople = def.NumPeople
	}
	if cfg.NumMovies <= 0 {
		cfg.NumMovies = def.NumMovies
	}
	if cfg.MinCast <= 0 {
		cfg.MinCast = def.MinCast
	}
	if cfg.MaxCast < cfg.MinCast {
		cfg.MaxCast = cfg.MinCast
	}
	if cfg.SharedNameChance < 0 {
		cfg.SharedNameChance = 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:   cfg,
		rand:  rand.New(rand.NewSource(cfg.Seed)),
		names: defaultNameFragments(),
	}
}

// Generate synthesises people, movies and star relations. It respects context
// cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	people := make([]PersonRow, 0, g.cfg.NumPeople)
	usedNames := make([]string, 0, g.cfg.NumPeople)

	for i := 0; i < g.cfg.NumPeople; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}

		name := ""
		if len(usedNames) > 0 && g.rand.Float64() < g.cfg.SharedNameChance {
			name = usedNames[g.rand.Intn(len(usedNames))]
		} else {
			name = g.randomName()
			usedNames = append(usedNames, name)
		}

		birth := ""
		if g.rand.Float64() < 0.9 {
			birth = fmt.Sprintf("%d", 1920+g.rand.Intn(90))
		}

		people = append(people, PersonRow{
			ID:    fmt.Sprintf("%d", 100000+i),
			Name:  name,
			Birth: birth,
		})
	}

	movies := make([]MovieRow, 0, g.cfg.NumMovies)
	stars := make([]StarRow, 0, g.cfg.NumMovies*g.cfg.MinCast)

	for i := 0; i < g.cfg.NumMovies; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}

		movieID := fmt.Sprintf("%d", 500000+i)
		movies = append(movies, MovieRow{
			ID:    movieID,
			Title: g.randomTitle(),
			Year:  fmt.Sprintf("%d", 1950+g.rand.Intn(75)),
		})

		castSize := g.cfg.MinCast
		if g.cfg.MaxCast > g.cfg.MinCast {
			castSize += g.rand.Intn(g.cfg.MaxCast - g.cfg.MinCast + 1)
		}

		cast := make(map[int]struct{}, castSize)
		for len(cast) < castSize && len(cast) < len(people) {
			cast[g.rand.Intn(len(people))] = struct{}{}
		}

		for idx := range cast {
			personID := people[idx].ID
			if g.cfg.DanglingStarChance > 0 && g.rand.Float64() < g.cfg.DanglingStarChance {
				personID = fmt.Sprintf("%d", 900000+g.rand.Intn(100000))
			}
			stars = append(stars, StarRow{PersonID: personID, MovieID: movieID})
		}
	}

	return Dataset{People: people, Movies: movies, Stars: stars}, nil
}

func (g *Generator) randomName() string {
	first := g.names.firstNames[g.rand.Intn(len(g.names.firstNames))]
	last := g.names.lastNames[g.rand.Intn(len(g.names.lastNames))]
	return first + " " + last
}

func (g *Generator) randomTitle() string {
	adjective := g.names.adjectives[g.rand.Intn(len(g.names.adjectives))]
	noun := g.names.nouns[g.rand.Intn(len(g.names.nouns))]
	return "The " + adjective + " " + noun
}

type nameFragments struct {
	firstNames []string
	lastNames  []string
	adjectives []string
	nouns      []string
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		firstNames: []string{
			"Ava", "Ben", "Clara", "Dev", "Elena", "Frank", "Grace", "Hugo",
			"Iris", "Jack", "Kira", "Liam", "Mona", "Nina", "Omar", "Priya",
			"Quinn", "Rosa", "Sam", "Tara", "Uma", "Victor", "Wes", "Yara",
		},
		lastNames: []string{
			"Adler", "Brooks", "Chen", "Diaz", "Ellis", "Fischer", "Grant",
			"Hayes", "Ivanov", "Jain", "Kim", "Lopez", "Marsh", "Novak",
			"Okafor", "Park", "Quintero", "Reyes", "Silva", "Tanaka",
		},
		adjectives: []string{
			"Silent", "Crimson", "Last", "Hidden", "Golden", "Broken",
			"Distant", "Electric", "Forgotten", "Midnight",
		},
		nouns: []string{
			"Harbor", "Garden", "Signal", "Voyage", "Letter", "Summit",
			"Orchard", "Divide", "Current", "Meridian",
		},
	}
}
