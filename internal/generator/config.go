package generator

// Config drives the synthetic film dataset generator.
type Config struct {
	NumPeople int
	NumMovies int
	// MinCast and MaxCast bound the number of stars per movie.
	MinCast int
	MaxCast int
	// SharedNameChance is the probability that a generated person reuses an
	// existing display name, producing ambiguous entries for the resolver.
	SharedNameChance float64
	// DanglingStarChance is the probability that a star row references a
	// person ID absent from people.csv, exercising loader tolerance.
	DanglingStarChance float64
	Seed               int64
}

// DefaultConfig returns baseline settings producing a searchable graph with
// name collisions.
func DefaultConfig() Config {
	return Config{
		NumPeople:          1000,
		NumMovies:          400,
		MinCast:            2,
		MaxCast:            6,
		SharedNameChance:   0.05,
		DanglingStarChance: 0,
		Seed:               42,
	}
}
