package dochelper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asCustomError(t *testing.T, err error) *cuserr.CustomError {
	t.Helper()
	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr
}

// TestNewInvalidArgumentError tests argument error creation with type context
func TestNewInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError(ErrMsgNotAFunction, 42)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgNotAFunction)

	typ, ok := asCustomError(t, err).GetMetadata(MetaKeyType)
	assert.True(t, ok)
	assert.Equal(t, "int", typ)
}

func TestNewEmptyNameError(t *testing.T) {
	err := NewEmptyNameError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgEmptyName)
}

func TestNewInvalidDocValueError(t *testing.T) {
	err := NewInvalidDocValueError("x", []int{1})
	customErr := asCustomError(t, err)

	name, ok := customErr.GetMetadata(MetaKeyName)
	assert.True(t, ok)
	assert.Equal(t, "x", name)

	typ, ok := customErr.GetMetadata(MetaKeyType)
	assert.True(t, ok)
	assert.Equal(t, "[]int", typ)
}

func TestNewArityMismatchError(t *testing.T) {
	err := NewArityMismatchError("f", 2, 3)
	assert.Contains(t, err.Error(), ErrMsgArityMismatch)
	customErr := asCustomError(t, err)

	funcName, ok := customErr.GetMetadata(MetaKeyFuncName)
	assert.True(t, ok)
	assert.Equal(t, "f", funcName)

	expected, ok := customErr.GetMetadata(MetaKeyExpected)
	assert.True(t, ok)
	assert.Equal(t, strconv.Itoa(2), expected)

	actual, ok := customErr.GetMetadata(MetaKeyActual)
	assert.True(t, ok)
	assert.Equal(t, strconv.Itoa(3), actual)
}

func TestNewLoadError(t *testing.T) {
	t.Run("with cause error", func(t *testing.T) {
		causeErr := errors.New("disk on fire")
		err := NewLoadError(ErrMsgLoadFailed, "docs.yaml", causeErr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgLoadFailed)

		path, ok := asCustomError(t, err).GetMetadata(MetaKeyPath)
		assert.True(t, ok)
		assert.Equal(t, "docs.yaml", path)

		// Verify error wrapping
		assert.True(t, errors.Is(err, causeErr))
	})

	t.Run("without cause error", func(t *testing.T) {
		err := NewLoadError(ErrMsgYAMLNotMapping, "docs.yaml", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgYAMLNotMapping)
	})
}

func TestNewYAMLValueError(t *testing.T) {
	err := NewYAMLValueError("arg1", 7)
	customErr := asCustomError(t, err)

	line, ok := customErr.GetMetadata(MetaKeyLine)
	assert.True(t, ok)
	assert.Equal(t, "7", line)

	name, ok := customErr.GetMetadata(MetaKeyName)
	assert.True(t, ok)
	assert.Equal(t, "arg1", name)
}

func TestNewUnsupportedFormatError(t *testing.T) {
	err := NewUnsupportedFormatError("docs.toml", ".toml")
	assert.Contains(t, err.Error(), ErrMsgUnsupportedFormat)

	format, ok := asCustomError(t, err).GetMetadata(MetaKeyFormat)
	assert.True(t, ok)
	assert.Equal(t, ".toml", format)
}

func TestNewSourceError(t *testing.T) {
	causeErr := errors.New("expected declaration")
	err := NewSourceError(ErrMsgSourceParseFailed, "main.go", causeErr)

	assert.Contains(t, err.Error(), ErrMsgSourceParseFailed)
	assert.True(t, errors.Is(err, causeErr))

	path, ok := asCustomError(t, err).GetMetadata(MetaKeyPath)
	assert.True(t, ok)
	assert.Equal(t, "main.go", path)
}

func TestNewFuncNotFoundError(t *testing.T) {
	err := NewFuncNotFoundError("Store.Get")
	assert.Contains(t, err.Error(), ErrMsgFuncNotFound)

	funcName, ok := asCustomError(t, err).GetMetadata(MetaKeyFuncName)
	assert.True(t, ok)
	assert.Equal(t, "Store.Get", funcName)
}
