package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"obs-pkgver/internal/types"
)

// DefaultQueryFilter limits searches to x86_64/noarch binaries built
// against openSUSE base projects, excluding home: and devel: namespaces.
func DefaultQueryFilter() types.QueryFilter {
	return types.QueryFilter{
		Architectures:           []string{"x86_64", "noarch"},
		BaseProject:             "openSUSE:",
		ExcludedProjectPrefixes: []string{"home:", "devel:"},
	}
}

// BuildSearchQuery produces the search descriptor for an exact package name
// match restricted by filter. name must already be sanitized.
func BuildSearchQuery(name string, filter types.QueryFilter) (types.SearchQuery, error) {
	if name == "" {
		return types.SearchQuery{}, EmptyInput()
	}
	if SanitizePackageName(name) != name {
		return types.SearchQuery{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package name %q is not sanitized", name))
	}

	clauses := []string{fmt.Sprintf("@name=%s", quoteLiteral(name))}
	if len(filter.Architectures) > 0 {
		archs := make([]string, 0, len(filter.Architectures))
		for _, arch := range filter.Architectures {
			archs = append(archs, containsIC("@arch", arch))
		}
		clauses = append(clauses, "("+strings.Join(archs, " or ")+")")
	}
	if filter.BaseProject != "" {
		clauses = append(clauses, containsIC("@baseproject", filter.BaseProject))
	}
	for _, prefix := range filter.ExcludedProjectPrefixes {
		clauses = append(clauses, "not("+containsIC("@project", prefix)+")")
	}
	return types.SearchQuery{
		Package: name,
		Match:   strings.Join(clauses, " and "),
	}, nil
}

func containsIC(attr string, value string) string {
	return fmt.Sprintf("contains-ic(%s, %s)", attr, quoteLiteral(value))
}

// quoteLiteral wraps value in double quotes. Filter values come from
// constants or the sanitizer and never contain quotes themselves.
func quoteLiteral(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, "") + `"`
}
