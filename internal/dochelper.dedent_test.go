package internal

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCleanDoc(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "single line",
			input:    "   hello   ",
			expected: "hello   ",
		},
		{
			name: "common indent removed from later lines",
			input: "Here is an example\n" +
				"        <<arg1, arg2>>\n" +
				"    Args:\n" +
				"            <<arg2, arg3, 8>>\n" +
				"    ",
			expected: "Here is an example\n" +
				"    <<arg1, arg2>>\n" +
				"Args:\n" +
				"        <<arg2, arg3, 8>>",
		},
		{
			name:     "leading and trailing blank lines dropped",
			input:    "\n\n    first\n    second\n\n",
			expected: "first\nsecond",
		},
		{
			name:     "blank lines do not shrink the margin",
			input:    "Title\n    a\n\n    b\n",
			expected: "Title\na\n\nb",
		},
		{
			name:     "whitespace-only line shorter than margin",
			input:    "Title\n        a\n  \n        b",
			expected: "Title\na\n\nb",
		},
		{
			name:     "tabs expanded",
			input:    "Title\n\ta\n\t\tb",
			expected: "Title\na\n        b",
		},
		{
			name:     "ideographic space indentation",
			input:    "T\n\u3000x\n  y",
			expected: "T\nx\n y",
		},
		{
			name:     "no-break space indentation",
			input:    "T\n\u00a0x\n   y",
			expected: "T\nx\n  y",
		},
		{
			name:     "multi-byte margin on every line",
			input:    "T\n\u3000\u3000a\n\u3000\u3000\u3000b",
			expected: "T\na\n\u3000b",
		},
		{
			name:     "no placeholders",
			input:    "Simple docstring\n    Args:\n        args1\n    ",
			expected: "Simple docstring\nArgs:\n    args1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanDoc(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "no tabs", ExpandTabs("no tabs", TabWidth))
	assert.Equal(t, "        x", ExpandTabs("\tx", TabWidth))
	assert.Equal(t, "ab      x", ExpandTabs("ab\tx", TabWidth))
	assert.Equal(t, "a   b", ExpandTabs("a\tb", 4))
}
