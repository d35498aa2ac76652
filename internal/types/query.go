package types

// QueryFilter restricts a published binary search.
type QueryFilter struct {
	Architectures           []string
	BaseProject             string
	ExcludedProjectPrefixes []string
}

// SearchQuery is the opaque descriptor handed to the search collaborator.
// Match holds the filter predicate in the build service's XPath dialect.
type SearchQuery struct {
	Package string
	Match   string
}
