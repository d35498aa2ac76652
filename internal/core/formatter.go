package core

import (
	"strings"

	"obs-pkgver/internal/ports"
	"obs-pkgver/internal/types"
)

const (
	MessageEmptyName   = "No package name provided."
	MessageFetchFailed = "An error occurred during requesting."
	MessageParseFailed = "An error occurred during parsing."
	MessageNotFound    = "No official version found."
)

const (
	officialLabel = "official"
	packageLabel  = "Package"
	headerRule    = "-------------------------"
)

type Formatter struct {
	Markup ports.MarkupPort
}

func NewFormatter(markup ports.MarkupPort) Formatter {
	return Formatter{Markup: markup}
}

// Render produces the user-facing text for a lookup outcome. A non-nil err
// always yields one of the fixed failure messages.
func (f Formatter) Render(summary types.PkgVersionSummary, err error) string {
	if err != nil {
		return f.Failure(KindOf(err))
	}
	return f.Summary(summary)
}

// Summary renders a resolved summary. Tracks without data are omitted and
// an all-empty summary renders the fixed not-found message.
func (f Formatter) Summary(summary types.PkgVersionSummary) string {
	if summary.Empty() {
		return f.Markup.Escape(MessageNotFound)
	}
	lines := []string{
		f.Markup.Bold(packageLabel) + f.Markup.Escape(": "+summary.PackageName),
		f.Markup.Escape(headerRule),
	}
	for _, track := range summary.Tracks {
		if track.Empty() {
			continue
		}
		lines = append(lines, f.Markup.Bold(track.Label)+f.Markup.Escape(":"))
		if track.Official != nil {
			lines = append(lines, f.entryLine(officialLabel, *track.Official))
		}
		for _, entry := range track.Experimental {
			lines = append(lines, f.entryLine(entry.Source, entry.Version))
		}
	}
	return strings.Join(lines, "\n")
}

// Failure renders the fixed message for an error kind. Raw error text is
// never included.
func (f Formatter) Failure(kind types.ErrorKind) string {
	switch kind {
	case types.ErrorKindEmptyInput:
		return f.Markup.Escape(MessageEmptyName)
	case types.ErrorKindMalformedResponse, types.ErrorKindMissingAttribute, types.ErrorKindMalformedPatchInfo:
		return f.Markup.Escape(MessageParseFailed)
	default:
		return f.Markup.Escape(MessageFetchFailed)
	}
}

func (f Formatter) entryLine(label string, version types.VersionInfo) string {
	return f.Markup.Escape(" - " + label + ": " + version.String())
}
