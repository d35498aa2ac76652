package core

import (
	"errors"
	"fmt"

	"obs-pkgver/internal/types"
)

// LookupError is a typed failure of one lookup stage. Index and Attribute
// are set for missing-attribute failures only.
type LookupError struct {
	Kind      types.ErrorKind
	Index     int
	Attribute string
	Err       error
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case types.ErrorKindMissingAttribute:
		return fmt.Sprintf("%s: entry %d lacks attribute %q", e.Kind, e.Index, e.Attribute)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Err)
		}
		return string(e.Kind)
	}
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// KindOf classifies err. Errors that are not a LookupError report
// ErrorKindNone.
func KindOf(err error) types.ErrorKind {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Kind
	}
	return types.ErrorKindNone
}

// EmptyInput reports that no package name was left after sanitizing.
func EmptyInput() error {
	return &LookupError{Kind: types.ErrorKindEmptyInput}
}

// FetchFailed wraps a transport failure reported by the search collaborator.
func FetchFailed(cause error) error {
	return &LookupError{Kind: types.ErrorKindFetchFailed, Err: cause}
}

func malformedResponse(cause error) error {
	return &LookupError{Kind: types.ErrorKindMalformedResponse, Err: cause}
}

func missingAttribute(index int, attribute string) error {
	return &LookupError{Kind: types.ErrorKindMissingAttribute, Index: index, Attribute: attribute}
}

func malformedPatchInfo(pkg string, cause error) error {
	return &LookupError{
		Kind: types.ErrorKindMalformedPatchInfo,
		Err:  fmt.Errorf("package %q: %w", pkg, cause),
	}
}
