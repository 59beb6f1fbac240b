package dochelper

import (
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Argument errors
	ErrMsgEmptyName       = "entry name cannot be empty"
	ErrMsgInvalidDocValue = "doc value must be a string or a (type, docstring) pair"
	ErrMsgInvalidNames    = "names must be a string, a list of strings, or a function signature"
	ErrMsgNotAFunction    = "value is not a function"
	ErrMsgArityMismatch   = "parameter names do not match function arity"
	ErrMsgNilFunc         = "function cannot be nil"
	ErrMsgNilTarget       = "documentation target cannot be nil"
	ErrMsgEmptyFuncName   = "function name cannot be empty"
	ErrMsgEmptyReceiver   = "method receiver cannot be empty"
	ErrMsgNilRegistry     = "registry cannot be nil"

	// Load errors
	ErrMsgLoadFailed        = "registry load failed"
	ErrMsgUnsupportedFormat = "unsupported registry file format"
	ErrMsgYAMLNotMapping    = "registry document must be a mapping"
	ErrMsgYAMLBadValue      = "registry value must be a string, a two-item list, or a mapping"
	ErrMsgHCLParseFailed    = "HCL registry parse failed"
	ErrMsgWriteFailed       = "registry write failed"

	// Source errors
	ErrMsgSourceParseFailed  = "Go source parse failed"
	ErrMsgSourceFormatFailed = "Go source format failed"
	ErrMsgFuncNotFound       = "function not found in source"
)

// Error code constants for categorization
const (
	ErrCodeValidation = "DOCHELPER_VALIDATION"
	ErrCodeLoad       = "DOCHELPER_LOAD"
	ErrCodeSource     = "DOCHELPER_SOURCE"
)

// NewInvalidArgumentError creates an invalid-argument error for misuse of the API
func NewInvalidArgumentError(msg string, value interface{}) error {
	return cuserr.NewValidationError(ErrCodeValidation, msg).
		WithMetadata(MetaKeyType, fmt.Sprintf("%T", value))
}

// NewEmptyNameError creates an error for an entry without a name
func NewEmptyNameError() error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgEmptyName)
}

// NewInvalidDocValueError creates an error for an AddMap value of the wrong shape
func NewInvalidDocValueError(name string, value interface{}) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgInvalidDocValue).
		WithMetadata(MetaKeyName, name).
		WithMetadata(MetaKeyType, fmt.Sprintf("%T", value))
}

// NewArityMismatchError creates an error when parameter names and a function disagree
func NewArityMismatchError(funcName string, expected, actual int) error {
	return cuserr.NewValidationError(ErrCodeValidation, ErrMsgArityMismatch).
		WithMetadata(MetaKeyFuncName, funcName).
		WithMetadata(MetaKeyExpected, strconv.Itoa(expected)).
		WithMetadata(MetaKeyActual, strconv.Itoa(actual))
}

// NewLoadError creates a registry load error, wrapping the cause when present
func NewLoadError(msg string, path string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeLoad, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeLoad, msg)
	}
	return err.WithMetadata(MetaKeyPath, path)
}

// NewYAMLValueError creates an error for a registry value of the wrong shape
func NewYAMLValueError(name string, line int) error {
	return cuserr.NewValidationError(ErrCodeLoad, ErrMsgYAMLBadValue).
		WithMetadata(MetaKeyName, name).
		WithMetadata(MetaKeyLine, strconv.Itoa(line))
}

// NewUnsupportedFormatError creates an error for an unknown registry file extension
func NewUnsupportedFormatError(path, format string) error {
	return cuserr.NewValidationError(ErrCodeLoad, ErrMsgUnsupportedFormat).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyFormat, format)
}

// NewSourceError creates a Go source handling error
func NewSourceError(msg string, path string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeSource, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeSource, msg)
	}
	return err.WithMetadata(MetaKeyPath, path)
}

// NewFuncNotFoundError creates an error for a function missing from Go source
func NewFuncNotFoundError(funcName string) error {
	return cuserr.NewValidationError(ErrCodeSource, ErrMsgFuncNotFound).
		WithMetadata(MetaKeyFuncName, funcName)
}
