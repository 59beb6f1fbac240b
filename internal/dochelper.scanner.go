package internal

import (
	"strings"

	"go.uber.org/zap"
)

// SegmentKind identifies what a Segment holds
type SegmentKind int

// Segment kind constants
const (
	SegmentLiteral SegmentKind = iota
	SegmentPlaceholder
)

// String returns the string representation of the segment kind
func (k SegmentKind) String() string {
	if k == SegmentPlaceholder {
		return SegmentKindNamePlaceholder
	}
	return SegmentKindNameLiteral
}

// Segment is one piece of a scanned template: either literal text or a
// placeholder with its tokens.
type Segment struct {
	Kind   SegmentKind
	Text   string   // Literal text (empty for placeholders)
	Tokens []string // Placeholder tokens in source order (nil for literals)
	Raw    string   // Exact source text, markers included
}

// IsPlaceholder reports whether the segment is a placeholder
func (s Segment) IsPlaceholder() bool {
	return s.Kind == SegmentPlaceholder
}

// IsDeferred reports whether the segment is an empty placeholder
func (s Segment) IsDeferred() bool {
	return s.Kind == SegmentPlaceholder && len(s.Tokens) == 0
}

// ScannerConfig holds scanner configuration
type ScannerConfig struct {
	OpenDelim  string // Opening marker (default: "<<")
	CloseDelim string // Closing marker (default: ">>")
}

// DefaultScannerConfig returns the default scanner configuration
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		OpenDelim:  StrOpenDelim,
		CloseDelim: StrCloseDelim,
	}
}

// Scanner splits template source into literal and placeholder segments
type Scanner struct {
	config ScannerConfig
	logger *zap.Logger
}

// NewScanner creates a scanner with default configuration
func NewScanner(logger *zap.Logger) *Scanner {
	return NewScannerWithConfig(DefaultScannerConfig(), logger)
}

// NewScannerWithConfig creates a scanner with custom configuration.
// Empty delimiters fall back to the defaults.
func NewScannerWithConfig(config ScannerConfig, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.OpenDelim == StringEmpty {
		config.OpenDelim = StrOpenDelim
	}
	if config.CloseDelim == StringEmpty {
		config.CloseDelim = StrCloseDelim
	}
	logger.Debug(LogMsgScannerCreated)
	return &Scanner{
		config: config,
		logger: logger,
	}
}

// Config returns the scanner configuration
func (s *Scanner) Config() ScannerConfig {
	return s.config
}

// Scan walks the source once, left to right. Text before each open marker
// becomes a literal segment (empty literals are omitted), the marked interior
// becomes a placeholder segment. An open marker without a matching close
// marker turns the rest of the source into a trailing literal.
func (s *Scanner) Scan(source string) []Segment {
	s.logger.Debug(LogMsgScanStart, zap.Int(LogFieldSource, len(source)))

	openDelim, closeDelim := s.config.OpenDelim, s.config.CloseDelim
	var segments []Segment
	rest := source
	consumed := 0

	for {
		start := strings.Index(rest, openDelim)
		if start < 0 {
			break
		}
		end := strings.Index(rest[start+len(openDelim):], closeDelim)
		if end < 0 {
			s.logger.Debug(LogMsgUnmatchedOpen, zap.Int(LogFieldOffset, consumed+start))
			break
		}
		end += start + len(openDelim)

		if start > 0 {
			segments = append(segments, literalSegment(rest[:start]))
		}
		segments = append(segments, Segment{
			Kind:   SegmentPlaceholder,
			Tokens: Tokenize(rest[start+len(openDelim) : end]),
			Raw:    rest[start : end+len(closeDelim)],
		})

		consumed += end + len(closeDelim)
		rest = rest[end+len(closeDelim):]
	}

	if rest != StringEmpty {
		segments = append(segments, literalSegment(rest))
	}

	s.logger.Debug(LogMsgScanEnd, zap.Int(LogFieldSegments, len(segments)))
	return segments
}

func literalSegment(text string) Segment {
	return Segment{Kind: SegmentLiteral, Text: text, Raw: text}
}

// Tokenize splits a placeholder interior on runs of whitespace and the
// characters ,;|<>. Empty tokens are dropped, so stray angle brackets next to
// the markers never become part of a name.
func Tokenize(interior string) []string {
	fields := strings.FieldsFunc(interior, isSeparator)
	if len(fields) == 0 {
		return []string{}
	}
	return fields
}

func isSeparator(r rune) bool {
	switch r {
	case CharComma, CharSemicolon, CharPipe, CharLess, CharGreater,
		CharSpace, CharTab, CharNewline, CharReturn:
		return true
	}
	return false
}

// Reassemble concatenates the raw source text of the segments
func Reassemble(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Raw)
	}
	return b.String()
}
