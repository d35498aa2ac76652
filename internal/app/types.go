package app

import "obs-pkgver/internal/types"

type ServiceConfig struct {
	OBSEndpoint   string
	OBSUsername   string
	OBSPassword   string
	OBSTimeoutSec int
	Format        types.OutputFormat
	TracksFile    string
}

type LookupRequest struct {
	RawName string
}

type LookupResult struct {
	PackageName string
	Records     int
	Summary     types.PkgVersionSummary
}

type QueryRequest struct {
	RawName string
}

type QueryResult struct {
	Query types.SearchQuery
	URL   string
}
