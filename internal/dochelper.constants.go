package internal

// Delimiter constants
const (
	StrOpenDelim  = "<<"
	StrCloseDelim = ">>"
)

// Token separator characters inside a placeholder
const (
	CharComma     = ','
	CharSemicolon = ';'
	CharSpace     = ' '
	CharTab       = '\t'
	CharNewline   = '\n'
	CharReturn    = '\r'
	CharLess      = '<'
	CharGreater   = '>'
	CharPipe      = '|'
)

// Whitespace handling
const (
	TabWidth       = 8
	StringEmpty    = ""
	StringNewline  = "\n"
	StringSpace    = " "
	DefaultIndent  = 4
	DefaultSep     = "\n"
	MinIndentWidth = 0
)

// SegmentKind names for debugging
const (
	SegmentKindNameLiteral     = "LITERAL"
	SegmentKindNamePlaceholder = "PLACEHOLDER"
)

// Log message constants
const (
	LogMsgScannerCreated = "scanner created"
	LogMsgScanStart      = "starting scan"
	LogMsgScanEnd        = "scan complete"
	LogMsgUnmatchedOpen  = "unmatched open marker - treating remainder as literal"
)

// Log field names
const (
	LogFieldSource   = "source_length"
	LogFieldSegments = "segment_count"
	LogFieldOffset   = "offset"
)
