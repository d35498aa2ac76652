package app

import (
	"context"

	"obs-pkgver/internal/core"
	"obs-pkgver/internal/types"
)

type searchURLer interface {
	SearchURL(query types.SearchQuery) string
}

// Query builds the search descriptor for a name without fetching anything.
func (s Service) Query(_ context.Context, req QueryRequest) (QueryResult, error) {
	name := core.SanitizePackageName(req.RawName)
	if name == "" {
		return QueryResult{}, core.EmptyInput()
	}
	query, err := core.BuildSearchQuery(name, s.Filter)
	if err != nil {
		return QueryResult{}, err
	}
	result := QueryResult{Query: query}
	if urler, ok := s.Search.(searchURLer); ok {
		result.URL = urler.SearchURL(query)
	}
	return result, nil
}
