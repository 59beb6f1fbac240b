package internal

import (
	"strconv"
	"strings"
)

// Indentation returns width spaces. Negative widths yield the empty string.
func Indentation(width int) string {
	if width <= MinIndentWidth {
		return StringEmpty
	}
	return strings.Repeat(StringSpace, width)
}

// JoinLines joins rendered lines with sep followed by the indentation.
// The indentation also precedes the first line when atTop is set.
// No lines render to the empty string.
func JoinLines(lines []string, indent int, atTop bool, sep string) string {
	if len(lines) == 0 {
		return StringEmpty
	}
	pad := Indentation(indent)
	joined := strings.Join(lines, sep+pad)
	if atTop {
		return pad + joined
	}
	return joined
}

// SplitIndentTokens separates integer tokens from name tokens. The last
// integer token wins; ok is false when there was none.
func SplitIndentTokens(tokens []string) (names []string, indent int, ok bool) {
	names = make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n, err := strconv.Atoi(tok); err == nil {
			indent = n
			ok = true
			continue
		}
		names = append(names, tok)
	}
	return names, indent, ok
}
