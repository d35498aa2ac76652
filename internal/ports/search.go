package ports

import (
	"context"

	"obs-pkgver/internal/types"
)

// BinarySearchPort fetches the raw published binary search response for a
// query. Credentials and transport are the implementation's concern.
type BinarySearchPort interface {
	Search(ctx context.Context, query types.SearchQuery) (string, error)
}
