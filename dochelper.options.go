package dochelper

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Registry.
type Option func(*registryConfig)

// registryConfig holds the internal configuration for a Registry.
type registryConfig struct {
	openDelim  string
	closeDelim string
	defaults   []RenderOption
	logger     *zap.Logger
}

// defaultRegistryConfig returns the default registry configuration.
func defaultRegistryConfig() *registryConfig {
	return &registryConfig{
		openDelim:  DefaultOpenDelim,
		closeDelim: DefaultCloseDelim,
		logger:     nil,
	}
}

// WithDelimiters sets custom placeholder markers for Compose.
// Default: "<<" and ">>"
func WithDelimiters(open, close string) Option {
	return func(c *registryConfig) {
		if open != "" {
			c.openDelim = open
		}
		if close != "" {
			c.closeDelim = close
		}
	}
}

// WithDefaults sets render options applied before the per-call options of
// Get, GetFor and Compose.
func WithDefaults(opts ...RenderOption) Option {
	return func(c *registryConfig) {
		c.defaults = append(c.defaults, opts...)
	}
}

// WithLogger sets the logger for the registry.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *registryConfig) {
		c.logger = logger
	}
}

// RenderOption is a functional option for a single render or composition.
type RenderOption func(*renderConfig)

// renderConfig holds the settings of one render call.
type renderConfig struct {
	indent       int
	indentAtTop  bool
	separator    string
	scopedIndent bool
	alignColumn  bool
}

// newRenderConfig applies opts over the defaults.
func newRenderConfig(opts ...[]RenderOption) *renderConfig {
	cfg := &renderConfig{
		indent:      DefaultIndent,
		indentAtTop: DefaultIndentAtTop,
		separator:   DefaultSeparator,
	}
	for _, set := range opts {
		for _, opt := range set {
			opt(cfg)
		}
	}
	return cfg
}

// WithIndent sets the indentation width of continuation lines.
// Default: 4
func WithIndent(width int) RenderOption {
	return func(c *renderConfig) {
		c.indent = width
	}
}

// WithIndentAtTop also indents the first line of each rendered placeholder.
// A placeholder that renders no entries stays empty, with no indentation.
// Default: false
func WithIndentAtTop(atTop bool) RenderOption {
	return func(c *renderConfig) {
		c.indentAtTop = atTop
	}
}

// WithSeparator sets the text placed between rendered entries, before the
// indentation.
// Default: "\n"
func WithSeparator(sep string) RenderOption {
	return func(c *renderConfig) {
		c.separator = sep
	}
}

// WithScopedIndent confines an integer indent token to the placeholder that
// carries it. By default the override holds for the rest of the composition.
func WithScopedIndent() RenderOption {
	return func(c *renderConfig) {
		c.scopedIndent = true
	}
}

// WithColumnAlign indents the continuation lines of a placeholder that opens
// its line to the placeholder's own column. Placeholders preceded by text on
// their line, and placeholders with an integer token, are unaffected.
func WithColumnAlign() RenderOption {
	return func(c *renderConfig) {
		c.alignColumn = true
	}
}
