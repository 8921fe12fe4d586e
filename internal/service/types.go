package service

// ListPeopleParams defines filters and pagination for people listing.
type ListPeopleParams struct {
	Page     int
	PageSize int
	Search   string
	Birth    string
}

// ListMoviesParams defines filters and pagination for movie listing.
type ListMoviesParams struct {
	Page     int
	PageSize int
	Search   string
	Year     string
}

// PaginationMeta captures pagination metadata returned to API clients.
type PaginationMeta struct {
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
}
