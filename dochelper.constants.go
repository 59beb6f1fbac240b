package dochelper

import "github.com/itsatony/go-dochelper/internal"

// Delimiter constants - the << >> syntax marks placeholders in templates
const (
	DefaultOpenDelim  = internal.StrOpenDelim
	DefaultCloseDelim = internal.StrCloseDelim
)

// Rendering defaults
const (
	DefaultIndent      = internal.DefaultIndent
	DefaultIndentAtTop = false
	DefaultSeparator   = internal.DefaultSep
)

// DeferredMarker is the canonical empty placeholder. Composition.Text keeps
// an unresolved slot exactly as the template wrote it, e.g. "<<>>".
const DeferredMarker = DefaultOpenDelim + " " + DefaultCloseDelim

// Entry rendering formats
const (
	FmtEntryPlain = "%s: %s"
	FmtEntryTyped = "%s (%s): %s"
)

// Registry file keys
const (
	YAMLKeyType        = "type"
	YAMLKeyDescription = "description"
	YAMLKeyDocstring   = "docstring"
)

// Registry file extensions
const (
	FileExtYAML = ".yaml"
	FileExtYML  = ".yml"
	FileExtJSON = ".json"
	FileExtHCL  = ".hcl"
)

// Go source handling
const (
	CommentLinePrefix = "//"
	CommentSpace      = " "
	MethodSeparator   = "."
	ParamBlank        = "_"
)

// String helpers
const (
	StringEmpty   = ""
	StringNewline = "\n"
	StringSpace   = " "
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyName     = "name"
	MetaKeyType     = "type"
	MetaKeyPath     = "path"
	MetaKeyLine     = "line"
	MetaKeyFuncName = "func_name"
	MetaKeyExpected = "expected"
	MetaKeyActual   = "actual"
	MetaKeyFormat   = "format"
)

// Log message constants
const (
	LogMsgRegistryCreated   = "registry created"
	LogMsgEntryAdded        = "entry added"
	LogMsgEntryUpdated      = "entry updated"
	LogMsgLookupMissing     = "name not registered - using empty entry"
	LogMsgComposeStart      = "starting composition"
	LogMsgComposeEnd        = "composition complete"
	LogMsgIndentOverride    = "indent override"
	LogMsgDeferredResolved  = "deferred placeholder resolved"
	LogMsgDocApplied        = "documentation applied"
	LogMsgRegistryLoaded    = "registry loaded"
	LogMsgFunctionAnnotated = "function annotated"
	LogMsgCommentSkipped    = "comment holds an unknown placeholder name - left unchanged"
)

// Log field names
const (
	LogFieldName     = "name"
	LogFieldCount    = "count"
	LogFieldIndent   = "indent"
	LogFieldSegments = "segment_count"
	LogFieldDeferred = "deferred_count"
	LogFieldPath     = "path"
	LogFieldFormat   = "format"
	LogFieldFunc     = "func"
	LogFieldLine     = "line"
)
