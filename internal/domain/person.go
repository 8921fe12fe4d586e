package domain

// Person is the canonical record for an actor loaded from the dataset.
// Birth is kept as raw text because the source CSVs carry empty values for
// many historical entries.
type Person struct {
	ID     string
	Name   string
	Birth  string
	Movies []string
}

// Movie is the canonical record for a film and the people who starred in it.
type Movie struct {
	ID    string
	Title string
	Year  string
	Stars []string
}

// Candidate is a person offered for name disambiguation.
type Candidate struct {
	ID    string
	Name  string
	Birth string
}
