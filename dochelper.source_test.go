package dochelper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGoSource = `package demo

// Sum adds numbers.
//
// Args:
// << >>
func Sum(arg1 int, arg2 int) int { return arg1 + arg2 }

// Plain has no placeholders.
func Plain() {}

type Store struct{}

// Get reads a key.
// <<arg3>>
//
//go:noinline
func (s *Store) Get(arg1 string) string { return arg1 }

/* Block << >> comments are left alone. */
func Block(arg1 int) {}

type List[T any] struct{}

func (l *List[T]) Push(v T, _ int) {}

func Raw(int, string) {}
`

const testCodeBlockSource = "package demo\n\n" +
	"// Do does things.\n" +
	"//\n" +
	"// Args:\n" +
	"//\n" +
	"//\t<< >>\n" +
	"func Do(arg1 int, _ string, arg3 T) {}\n\n" +
	"// Shift returns x << n, see also y >> m.\n" +
	"func Shift(x, n int) int { return x << n }\n\n" +
	"// Misc <<arg1, nope>> names an unknown entry.\n" +
	"func Misc() {}\n"

// linePrefix returns the text before needle on the first line of text
// containing it.
func linePrefix(t *testing.T, text, needle string) string {
	t.Helper()
	for _, line := range strings.Split(text, "\n") {
		if i := strings.Index(line, needle); i >= 0 {
			return line[:i]
		}
	}
	t.Fatalf("no line contains %q", needle)
	return ""
}

func TestAnnotateSource(t *testing.T) {
	reg := newTestRegistry()

	t.Run("rewrites placeholder comments", func(t *testing.T) {
		out, annotations, err := AnnotateSource("demo.go", []byte(testGoSource), reg, WithIndent(0))
		require.NoError(t, err)

		require.Len(t, annotations, 2)
		assert.Equal(t, Annotation{
			Func: "Sum",
			Line: 7,
			Doc:  "Sum adds numbers.\n\nArgs:\narg1: Docstring for arg1\narg2: Docstring for arg2",
		}, annotations[0])
		assert.Equal(t, Annotation{
			Func: "Store.Get",
			Line: 18,
			Doc:  "Get reads a key.\narg3 (type for arg3): Docstring for arg3",
		}, annotations[1])

		text := string(out)
		assert.Contains(t, text, "// Args:\n// arg1: Docstring for arg1\n// arg2: Docstring for arg2\nfunc Sum(")
		assert.Contains(t, text, "// Get reads a key.\n// arg3 (type for arg3): Docstring for arg3\n")
		assert.Contains(t, text, "//go:noinline\nfunc (s *Store) Get(")
		assert.Contains(t, text, "// Plain has no placeholders.\nfunc Plain() {}")
		assert.Contains(t, text, "/* Block << >> comments are left alone. */")
		assert.NotContains(t, text, "<<arg3>>")
	})

	t.Run("output can be annotated again without changes", func(t *testing.T) {
		out, _, err := AnnotateSource("demo.go", []byte(testGoSource), reg, WithIndent(0))
		require.NoError(t, err)

		again, annotations, err := AnnotateSource("demo.go", out, reg, WithIndent(0))
		require.NoError(t, err)
		assert.Empty(t, annotations)
		assert.Equal(t, out, again)
	})

	t.Run("tab indented block stays aligned", func(t *testing.T) {
		out, annotations, err := AnnotateSource("block.go", []byte(testCodeBlockSource), reg)
		require.NoError(t, err)

		require.Len(t, annotations, 1)
		assert.Equal(t, Annotation{
			Func: "Do",
			Line: 8,
			Doc: "Do does things.\n\nArgs:\n\n" +
				"        arg1: Docstring for arg1\n" +
				"        arg3 (type for arg3): Docstring for arg3",
		}, annotations[0])

		text := string(out)
		first := linePrefix(t, text, "arg1: Docstring for arg1")
		second := linePrefix(t, text, "arg3 (type for arg3): Docstring for arg3")
		assert.Equal(t, first, second)
		assert.True(t, strings.HasPrefix(first, "//"))
	})

	t.Run("prose with shift operators is left alone", func(t *testing.T) {
		out, _, err := AnnotateSource("block.go", []byte(testCodeBlockSource), reg)
		require.NoError(t, err)

		text := string(out)
		assert.Contains(t, text, "// Shift returns x << n, see also y >> m.\nfunc Shift(")
		assert.Contains(t, text, "// Misc <<arg1, nope>> names an unknown entry.\nfunc Misc()")
	})

	t.Run("no placeholders returns input", func(t *testing.T) {
		src := []byte("package demo\n\n// Plain is plain.\nfunc Plain() {}\n")
		out, annotations, err := AnnotateSource("plain.go", src, reg)
		require.NoError(t, err)
		assert.Nil(t, annotations)
		assert.Equal(t, src, out)
	})

	t.Run("parse error", func(t *testing.T) {
		_, _, err := AnnotateSource("broken.go", []byte("package"), reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgSourceParseFailed)

		path, ok := asCustomError(t, err).GetMetadata(MetaKeyPath)
		assert.True(t, ok)
		assert.Equal(t, "broken.go", path)
	})

	t.Run("nil registry", func(t *testing.T) {
		_, _, err := AnnotateSource("demo.go", []byte(testGoSource), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilRegistry)
	})
}

func TestSignatureFromSource(t *testing.T) {
	src := []byte(testGoSource)

	tests := []struct {
		name     string
		expected Signature
	}{
		{"Sum", Signature{Name: "Sum", Params: []string{"arg1", "arg2"}}},
		{"Store.Get", Signature{Name: "Get", Receiver: "Store", Params: []string{"arg1"}}},
		{"List.Push", Signature{Name: "Push", Receiver: "List", Params: []string{"v", "_"}}},
		{"Raw", Signature{Name: "Raw", Params: []string{"", ""}}},
		{"Plain", Signature{Name: "Plain"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := SignatureFromSource(src, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sig)
		})
	}

	t.Run("not found", func(t *testing.T) {
		_, err := SignatureFromSource(src, "Get")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFuncNotFound)
	})

	t.Run("parse error", func(t *testing.T) {
		_, err := SignatureFromSource([]byte("func"), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgSourceParseFailed)
	})
}
