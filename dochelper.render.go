package dochelper

import (
	"github.com/itsatony/go-dochelper/internal"
	"go.uber.org/zap"
)

// ParamNamer is implemented by values that can list a function's formal
// parameter names, receiver excluded.
type ParamNamer interface {
	ParamNames() []string
}

// Get renders the entries for names, joined by the separator and the
// indentation. A name that parses as an integer sets the indentation instead
// of being looked up.
//
//	docs.Get([]string{"arg1", "arg3"})
//	// "arg1: Docstring for arg1\n    arg3 (type for arg3): Docstring for arg3"
func (r *Registry) Get(names []string, opts ...RenderOption) string {
	cfg := r.newRenderConfig(opts)
	out, _, _ := r.render(names, cfg.indent, cfg)
	return out
}

// GetFor renders the entries named by target, which is a single name
// (string), a list of names ([]string), or a function description
// (Signature, *Signature, *Func or any ParamNamer).
func (r *Registry) GetFor(target any, opts ...RenderOption) (string, error) {
	names, err := NamesOf(target)
	if err != nil {
		return StringEmpty, err
	}
	return r.Get(names, opts...), nil
}

// NamesOf turns a name source into a list of names. See GetFor.
func NamesOf(target any) ([]string, error) {
	switch v := target.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case *Func:
		if v == nil {
			return nil, NewInvalidArgumentError(ErrMsgNilFunc, target)
		}
		return v.ParamNames(), nil
	case *Signature:
		if v == nil {
			return nil, NewInvalidArgumentError(ErrMsgInvalidNames, target)
		}
		return v.ParamNames(), nil
	case ParamNamer:
		return v.ParamNames(), nil
	}
	return nil, NewInvalidArgumentError(ErrMsgInvalidNames, target)
}

func (r *Registry) newRenderConfig(opts []RenderOption) *renderConfig {
	return newRenderConfig(r.config.defaults, opts)
}

// render resolves one token list. It returns the text and the indent in
// effect after the tokens were read.
func (r *Registry) render(tokens []string, indent int, cfg *renderConfig) (text string, next int, overridden bool) {
	names, override, ok := internal.SplitIndentTokens(tokens)
	if ok {
		r.logger.Debug(LogMsgIndentOverride, zap.Int(LogFieldIndent, override))
		indent = override
	}

	entries := r.Lookup(names...)
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = RenderEntry(entry)
	}
	return internal.JoinLines(lines, indent, cfg.indentAtTop, cfg.separator), indent, ok
}
