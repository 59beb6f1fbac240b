package main

// Command names
const (
	CmdNameGet      = "get"
	CmdNameCompose  = "compose"
	CmdNameAnnotate = "annotate"
	CmdNameList     = "list"
	CmdNameVersion  = "version"
)

// Flag names - long form
const (
	FlagRegistry    = "registry"
	FlagVerbose     = "verbose"
	FlagIndent      = "indent"
	FlagIndentAtTop = "indent-at-top"
	FlagSeparator   = "sep"
	FlagScoped      = "scoped"
	FlagTemplate    = "template"
	FlagParams      = "params"
	FlagSource      = "source"
	FlagFunc        = "func"
	FlagWrite       = "write"
	FlagFormat      = "format"
)

// Flag names - short form
const (
	FlagRegistryShort = "r"
	FlagVerboseShort  = "v"
	FlagTemplateShort = "t"
	FlagWriteShort    = "w"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultTemplate   = "-" // stdin
	FlagDefaultSeparator  = `\n`
	FlagDefaultFormatList = OutputFormatYAML
	FlagDefaultFormat     = OutputFormatText
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingRegistry   = "registry file required"
	ErrMsgMissingNames      = "at least one name required"
	ErrMsgMissingFiles      = "at least one Go file required"
	ErrMsgFuncNeedsSource   = "--func and --source must be used together"
	ErrMsgParamsAndFunc     = "--params cannot be combined with --func"
	ErrMsgLoadRegistry      = "failed to load registry"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgReadStdinFailed   = "failed to read from stdin"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgAnnotateFailed    = "annotation failed"
	ErrMsgSignatureFailed   = "failed to read function signature"
	ErrMsgInvalidFormat     = "invalid output format"
)

// CLI metadata
const (
	CLIName        = "dochelper"
	CLIDescription = "Compose documentation from a shared parameter registry"
)

// Help text
const (
	HelpRootLong = `dochelper keeps parameter documentation in one registry file (YAML or HCL)
and splices it into docs wherever a <<name, ...>> placeholder appears.

Placeholders:
    <<a, b>>      render entries a and b, one per line
    <<a, b, 8>>   an integer token sets the continuation indent
    << >>         filled with the target function's parameters`

	HelpGetExample = `  dochelper get -r docs.yaml arg1 arg3
  dochelper get -r docs.hcl --indent 2 --indent-at-top arg1 arg2`

	HelpComposeExample = `  dochelper compose -r docs.yaml -t template.txt
  cat template.txt | dochelper compose -r docs.yaml --params arg1,arg2
  dochelper compose -r docs.yaml -t template.txt --source store.go --func Store.Get`

	HelpAnnotateExample = `  dochelper annotate -r docs.yaml store.go
  dochelper annotate -r docs.yaml -w ./pkg/*.go`
)

// Version output format templates
const (
	VersionTextTemplate = "go-dochelper version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// Annotate report
const (
	AnnotateReportFormat = "%s: %d function(s) annotated\n"
	AnnotateLineFormat   = "  %s (line %d)\n"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	FmtQuoted          = "\"%s\""
)

// Log message constants
const (
	LogMsgRegistryReady = "registry ready"
	LogMsgFileAnnotated = "file annotated"
	LogMsgFileWritten   = "file written"
)

// Log field names
const (
	LogFieldEntries     = "entries"
	LogFieldFiles       = "files"
	LogFieldPath        = "path"
	LogFieldAnnotations = "annotations"
)
