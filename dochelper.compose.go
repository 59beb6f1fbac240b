package dochelper

import (
	"strings"
	"unicode/utf8"

	"github.com/itsatony/go-dochelper/internal"
	"go.uber.org/zap"
)

// Composition is a composed template. Placeholders naming registry entries
// are already rendered; empty placeholders stay as deferred slots until a
// target function supplies its parameter names.
type Composition struct {
	registry *Registry
	cfg      *renderConfig
	parts    []composedPart
}

// composedPart is rendered text or a deferred slot.
type composedPart struct {
	text     string
	deferred bool
	indent   int // indent in effect at the deferred slot
}

// Compose dedents template, then replaces each placeholder with the rendered
// entries it names. Integer tokens change the indent of later rendering.
//
//	doc := docs.Compose(`Here is an example
//	    <<arg1, arg2>>
//	Args:
//	    <<arg2, arg3, 8>>
//	`).Text()
func (r *Registry) Compose(template string, opts ...RenderOption) *Composition {
	cfg := r.newRenderConfig(opts)
	segments := r.scanner.Scan(internal.CleanDoc(template))
	r.logger.Debug(LogMsgComposeStart, zap.Int(LogFieldSegments, len(segments)))

	c := &Composition{
		registry: r,
		cfg:      cfg,
		parts:    make([]composedPart, 0, len(segments)),
	}

	indent := cfg.indent
	var tail string // composed text since the last newline
	for _, seg := range segments {
		base := indent
		if col, ok := placeholderColumn(tail, cfg); ok {
			base = col
		}

		var part composedPart
		switch {
		case !seg.IsPlaceholder():
			part = composedPart{text: seg.Text}
		case seg.IsDeferred():
			part = composedPart{text: seg.Raw, deferred: true, indent: base}
		default:
			text, next, overridden := r.render(seg.Tokens, base, cfg)
			if overridden && !cfg.scopedIndent {
				indent = next
			}
			part = composedPart{text: text}
		}
		c.parts = append(c.parts, part)

		if i := strings.LastIndex(part.text, internal.StringNewline); i >= 0 {
			tail = part.text[i+1:]
		} else {
			tail += part.text
		}
	}

	r.logger.Debug(LogMsgComposeEnd, zap.Int(LogFieldDeferred, c.deferredCount()))
	return c
}

// placeholderColumn is the width of the line prefix before a placeholder
// when column alignment is on and the prefix is blank.
func placeholderColumn(tail string, cfg *renderConfig) (int, bool) {
	if !cfg.alignColumn || strings.TrimLeft(tail, StringSpace) != StringEmpty {
		return 0, false
	}
	return utf8.RuneCountInString(tail), true
}

// HasDeferred reports whether the template held an empty placeholder.
func (c *Composition) HasDeferred() bool {
	return c.deferredCount() > 0
}

func (c *Composition) deferredCount() int {
	n := 0
	for _, p := range c.parts {
		if p.deferred {
			n++
		}
	}
	return n
}

// Text returns the composed text. Deferred slots keep their marker text.
func (c *Composition) Text() string {
	var b strings.Builder
	for _, p := range c.parts {
		b.WriteString(p.text)
	}
	return b.String()
}

// String implements fmt.Stringer.
func (c *Composition) String() string {
	return c.Text()
}

// Resolve returns the composed text with deferred slots rendered from names.
func (c *Composition) Resolve(names []string) string {
	if !c.HasDeferred() {
		return c.Text()
	}

	var b strings.Builder
	for _, p := range c.parts {
		if !p.deferred {
			b.WriteString(p.text)
			continue
		}
		text, _, _ := c.registry.render(names, p.indent, c.cfg)
		b.WriteString(text)
		c.registry.logger.Debug(LogMsgDeferredResolved, zap.Int(LogFieldCount, len(names)))
	}
	return b.String()
}

// For returns the composed text with deferred slots rendered from the
// parameter names of target. A nil target leaves the slots as they are.
func (c *Composition) For(target ParamNamer) string {
	if target == nil || isNilPointer(target) {
		return c.Text()
	}
	return c.Resolve(target.ParamNames())
}

// Apply sets fn.Doc to the composed text and returns fn, otherwise unchanged.
//
//	add := docs.Compose(`Adds two numbers.
//	    Args:
//	        << >>
//	`).Apply(dochelper.MustFunc("Add", Add, "a", "b"))
func (c *Composition) Apply(fn *Func) *Func {
	if fn == nil {
		return nil
	}
	fn.Doc = c.For(fn)
	c.registry.logger.Debug(LogMsgDocApplied, zap.String(LogFieldFunc, fn.QualifiedName()))
	return fn
}

// ApplyTo composes the text for target and hands it to target.SetDoc.
func (c *Composition) ApplyTo(target Documentable) error {
	if target == nil || isNilPointer(target) {
		return NewInvalidArgumentError(ErrMsgNilTarget, target)
	}
	target.SetDoc(c.For(target))
	c.registry.logger.Debug(LogMsgDocApplied)
	return nil
}
