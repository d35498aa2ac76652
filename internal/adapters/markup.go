package adapters

import (
	"fmt"
	"html"
	"strings"
	"unicode"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"obs-pkgver/internal/ports"
	"obs-pkgver/internal/types"
)

// NewMarkupAdapter returns the escaping rules of an output channel.
func NewMarkupAdapter(format types.OutputFormat) (ports.MarkupPort, error) {
	switch types.OutputFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case types.OutputFormatPlain, "":
		return PlainMarkupAdapter{}, nil
	case types.OutputFormatHTML:
		return HTMLMarkupAdapter{}, nil
	case types.OutputFormatMarkdown:
		return MarkdownMarkupAdapter{}, nil
	case types.OutputFormatTerminal:
		return NewTerminalMarkupAdapter(), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format %q", format))
	}
}

type PlainMarkupAdapter struct{}

func (PlainMarkupAdapter) Escape(text string) string { return text }

func (PlainMarkupAdapter) Bold(text string) string { return text }

// HTMLMarkupAdapter targets chat clients rendering a small HTML subset.
type HTMLMarkupAdapter struct{}

func (HTMLMarkupAdapter) Escape(text string) string {
	return html.EscapeString(text)
}

func (a HTMLMarkupAdapter) Bold(text string) string {
	return "<b>" + a.Escape(text) + "</b>"
}

// MarkdownMarkupAdapter targets Telegram MarkdownV2, where every reserved
// character outside an entity must be backslash-escaped.
type MarkdownMarkupAdapter struct{}

const markdownReserved = "_*[]()~`>#+-=|{}.!\\"

func (MarkdownMarkupAdapter) Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownReserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (a MarkdownMarkupAdapter) Bold(text string) string {
	return "*" + a.Escape(text) + "*"
}

// TerminalMarkupAdapter writes to a terminal. Escape sequences and control
// characters in data are removed so a field cannot restyle the output.
type TerminalMarkupAdapter struct {
	bold lipgloss.Style
}

func NewTerminalMarkupAdapter() TerminalMarkupAdapter {
	return TerminalMarkupAdapter{bold: lipgloss.NewStyle().Bold(true)}
}

func (TerminalMarkupAdapter) Escape(text string) string {
	stripped := ansi.Strip(text)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, stripped)
}

func (a TerminalMarkupAdapter) Bold(text string) string {
	return a.bold.Render(a.Escape(text))
}

var (
	_ ports.MarkupPort = PlainMarkupAdapter{}
	_ ports.MarkupPort = HTMLMarkupAdapter{}
	_ ports.MarkupPort = MarkdownMarkupAdapter{}
	_ ports.MarkupPort = TerminalMarkupAdapter{}
)
