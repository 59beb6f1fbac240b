package internal

import (
	"math"
	"strings"
	"unicode"
)

// CleanDoc normalizes the indentation of a docstring-style block of text.
//
// Tabs are expanded to 8-column stops. The first line loses its leading
// whitespace; the remaining lines lose the smallest indentation shared by
// their non-blank members, counted in runes. Blank lines at the start and
// end are dropped.
func CleanDoc(doc string) string {
	lines := strings.Split(doc, StringNewline)
	for i, line := range lines {
		lines[i] = ExpandTabs(line, TabWidth)
	}

	margin := math.MaxInt
	for _, line := range lines[1:] {
		if width, blank := leadingSpace(line); !blank {
			margin = min(margin, width)
		}
	}

	lines[0] = strings.TrimLeftFunc(lines[0], unicode.IsSpace)
	if margin < math.MaxInt {
		for i := 1; i < len(lines); i++ {
			lines[i] = dropRunes(lines[i], margin)
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == StringEmpty {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && lines[0] == StringEmpty {
		lines = lines[1:]
	}
	return strings.Join(lines, StringNewline)
}

// leadingSpace counts the leading whitespace runes of line. blank is true
// when the line holds nothing else.
func leadingSpace(line string) (width int, blank bool) {
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return width, false
		}
		width++
	}
	return width, true
}

// dropRunes removes the first n runes of line.
func dropRunes(line string, n int) string {
	for i := range line {
		if n == 0 {
			return line[i:]
		}
		n--
	}
	return StringEmpty
}

// ExpandTabs replaces each tab in a single line with spaces up to the next
// multiple of width.
func ExpandTabs(line string, width int) string {
	if !strings.ContainsRune(line, CharTab) {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == CharTab {
			pad := width - col%width
			b.WriteString(strings.Repeat(StringSpace, pad))
			col += pad
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
