package core

import (
	"encoding/xml"
	"errors"
	"strings"

	"obs-pkgver/internal/types"
)

const (
	attrProject    = "project"
	attrRepository = "repository"
	attrPackage    = "package"
	attrVersion    = "version"
	attrRelease    = "release"
)

const emptyNamespaceDecl = ` xmlns=""`

type binaryCollection struct {
	XMLName xml.Name
	Entries []binaryEntry `xml:",any"`
}

type binaryEntry struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
}

// NormalizeResponse declares an empty default namespace on the root element
// of a search response. The declaration goes at the end of the root's
// opening line, before its closing '>' or '/>'. XML declaration and comment
// lines are skipped. Roots that already declare xmlns are left untouched.
func NormalizeResponse(raw string) (string, error) {
	if !strings.Contains(raw, "\n") {
		return "", malformedResponse(errors.New("response has no line break"))
	}
	offset := 0
	for offset < len(raw) {
		end := strings.IndexByte(raw[offset:], '\n')
		if end < 0 {
			end = len(raw)
		} else {
			end += offset
		}
		line := strings.TrimSpace(raw[offset:end])
		switch {
		case line == "", strings.HasPrefix(line, "<?"), strings.HasPrefix(line, "<!"):
			offset = end + 1
			continue
		case !strings.HasPrefix(line, "<"):
			return "", malformedResponse(errors.New("response does not start with an element"))
		}
		if hasNamespaceDecl(line) {
			return raw, nil
		}
		at := insertionPoint(raw[offset:end]) + offset
		return raw[:at] + emptyNamespaceDecl + raw[at:], nil
	}
	return "", malformedResponse(errors.New("response has no root element"))
}

func hasNamespaceDecl(line string) bool {
	idx := strings.IndexAny(line, " \t>/")
	if idx < 0 {
		return false
	}
	attrs := line[idx:]
	if closing := strings.IndexByte(attrs, '>'); closing >= 0 {
		attrs = attrs[:closing]
	}
	return strings.Contains(attrs, " xmlns=") || strings.Contains(attrs, "\txmlns=")
}

// insertionPoint returns the index in line just before the opening tag's
// terminator, or the trimmed end of line when the tag continues.
func insertionPoint(line string) int {
	trimmed := strings.TrimRight(line, " \t\r")
	tagEnd := strings.IndexByte(trimmed, '>')
	if tagEnd < 0 {
		return len(trimmed)
	}
	if tagEnd > 0 && trimmed[tagEnd-1] == '/' {
		return tagEnd - 1
	}
	return tagEnd
}

// ParseBinaryCollection turns a search response into publication records in
// document order. Each entry must carry the attributes required by every
// rule branch it matches.
func ParseBinaryCollection(raw string, rules []types.TrackRule) ([]types.PublicationRecord, error) {
	normalized, err := NormalizeResponse(raw)
	if err != nil {
		return nil, err
	}
	var collection binaryCollection
	if err := xml.Unmarshal([]byte(normalized), &collection); err != nil {
		return nil, malformedResponse(err)
	}

	records := make([]types.PublicationRecord, 0, len(collection.Entries))
	for i, entry := range collection.Entries {
		attrs := make(map[string]string, len(entry.Attrs))
		for _, attr := range entry.Attrs {
			attrs[attr.Name.Local] = attr.Value
		}
		record := types.PublicationRecord{
			Project:    attrs[attrProject],
			Repository: attrs[attrRepository],
			Package:    attrs[attrPackage],
			Version:    attrs[attrVersion],
			Release:    attrs[attrRelease],
		}
		for _, rule := range rules {
			for _, name := range classify(rule, record).requiredAttributes() {
				if _, ok := attrs[name]; !ok {
					return nil, missingAttribute(i, name)
				}
			}
		}
		records = append(records, record)
	}
	return records, nil
}
