package domain

// PathStep is one hop of a co-star path: PersonID co-starred, in MovieID,
// with the person of the previous step (or the source for the first step).
type PathStep struct {
	MovieID  string
	PersonID string
}

// ConnectionStep is a PathStep enriched with display attributes.
type ConnectionStep struct {
	MovieID    string
	MovieTitle string
	MovieYear  string
	PersonID   string
	PersonName string
}

// Connection encapsulates a resolved co-star chain between two people.
// Degrees equals the number of steps; a zero-degree connection means source
// and target are the same person.
type Connection struct {
	SourceID   string
	SourceName string
	TargetID   string
	TargetName string
	Degrees    int
	Steps      []ConnectionStep
}
