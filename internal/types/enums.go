package types

type ErrorKind string

const (
	ErrorKindNone               ErrorKind = ""
	ErrorKindEmptyInput         ErrorKind = "empty-input"
	ErrorKindFetchFailed        ErrorKind = "fetch-failed"
	ErrorKindMalformedResponse  ErrorKind = "malformed-response"
	ErrorKindMissingAttribute   ErrorKind = "missing-attribute"
	ErrorKindMalformedPatchInfo ErrorKind = "malformed-patch-info"
)

type OutputFormat string

const (
	OutputFormatPlain    OutputFormat = "plain"
	OutputFormatHTML     OutputFormat = "html"
	OutputFormatMarkdown OutputFormat = "markdown"
	OutputFormatTerminal OutputFormat = "terminal"
)
