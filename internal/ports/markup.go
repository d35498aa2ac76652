package ports

// MarkupPort escapes text for one output channel so that no data-derived
// value can break the message markup.
type MarkupPort interface {
	// Escape makes text safe to embed verbatim.
	Escape(text string) string
	// Bold escapes text and marks it as emphasized.
	Bold(text string) string
}
