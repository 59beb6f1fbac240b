package dochelper

import (
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"sort"
	"strings"

	"github.com/itsatony/go-dochelper/internal"
	"go.uber.org/zap"
)

// Annotation records one rewritten function doc comment.
type Annotation struct {
	Func string // Qualified function name, e.g. "Store.Get"
	Line int    // Line of the function declaration in the input
	Doc  string // Composed documentation text
}

// sourceEdit replaces src[start:end] with text.
type sourceEdit struct {
	start int
	end   int
	text  string
}

// AnnotateSource rewrites the doc comments of Go functions whose comment
// holds a placeholder. Each comment is composed as a template with the
// function's parameters (receiver excluded) filling empty placeholders.
// Every placeholder in a comment must be empty or name only registered
// entries and integers; otherwise the comment is prose such as "x << n" and
// stays untouched. Placeholders that open their line are column aligned.
// Directive lines such as //go:generate are kept as they are. The result is
// gofmt-formatted.
func AnnotateSource(filename string, src []byte, reg *Registry, opts ...RenderOption) ([]byte, []Annotation, error) {
	if reg == nil {
		return nil, nil, NewInvalidArgumentError(ErrMsgNilRegistry, reg)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, nil, NewSourceError(ErrMsgSourceParseFailed, filename, err)
	}

	opts = append([]RenderOption{WithColumnAlign()}, opts...)

	var edits []sourceEdit
	var annotations []Annotation
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}

		template, directives, ok := lineCommentText(fd.Doc)
		if !ok || !strings.Contains(template, reg.config.openDelim) {
			continue
		}

		sig := signatureOf(fd)
		if !placeholdersKnown(reg, template) {
			reg.logger.Debug(LogMsgCommentSkipped, zap.String(LogFieldFunc, sig.QualifiedName()))
			continue
		}
		doc := reg.Compose(template, opts...).For(sig)

		edits = append(edits, sourceEdit{
			start: fset.Position(fd.Doc.Pos()).Offset,
			end:   fset.Position(fd.Doc.End()).Offset,
			text:  commentLines(doc, directives),
		})
		line := fset.Position(fd.Pos()).Line
		annotations = append(annotations, Annotation{Func: sig.QualifiedName(), Line: line, Doc: doc})
		reg.logger.Debug(LogMsgFunctionAnnotated,
			zap.String(LogFieldFunc, sig.QualifiedName()),
			zap.Int(LogFieldLine, line),
		)
	}

	if len(edits) == 0 {
		return src, nil, nil
	}

	out := applyEdits(src, edits)
	formatted, err := format.Source(out)
	if err != nil {
		return nil, nil, NewSourceError(ErrMsgSourceFormatFailed, filename, err)
	}
	return formatted, annotations, nil
}

// SignatureFromSource returns the signature of the function called name in
// src. Methods are named "Type.Method".
func SignatureFromSource(src []byte, name string) (Signature, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, StringEmpty, src, parser.SkipObjectResolution)
	if err != nil {
		return Signature{}, NewSourceError(ErrMsgSourceParseFailed, StringEmpty, err)
	}

	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if sig := signatureOf(fd); sig.QualifiedName() == name {
			return sig, nil
		}
	}
	return Signature{}, NewFuncNotFoundError(name)
}

// placeholdersKnown reports whether template holds at least one placeholder
// and every placeholder token is a registered name or an integer.
func placeholdersKnown(reg *Registry, template string) bool {
	found := false
	for _, seg := range reg.SplitString(template) {
		if !seg.IsPlaceholder() {
			continue
		}
		found = true
		names, _, _ := internal.SplitIndentTokens(seg.Tokens)
		for _, name := range names {
			if !reg.Has(name) {
				return false
			}
		}
	}
	return found
}

func signatureOf(fd *ast.FuncDecl) Signature {
	sig := Signature{Name: fd.Name.Name}
	if fd.Recv != nil && len(fd.Recv.List) > 0 {
		sig.Receiver = receiverTypeName(fd.Recv.List[0].Type)
	}
	if fd.Type.Params == nil {
		return sig
	}
	for _, field := range fd.Type.Params.List {
		if len(field.Names) == 0 {
			sig.Params = append(sig.Params, StringEmpty)
			continue
		}
		for _, ident := range field.Names {
			sig.Params = append(sig.Params, ident.Name)
		}
	}
	return sig
}

func receiverTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.ParenExpr:
		return receiverTypeName(t.X)
	case *ast.IndexExpr:
		return receiverTypeName(t.X)
	case *ast.IndexListExpr:
		return receiverTypeName(t.X)
	}
	return StringEmpty
}

// lineCommentText returns the text of a // comment group with the comment
// markers removed, and its directive lines separately. ok is false for
// groups containing /* */ comments.
func lineCommentText(group *ast.CommentGroup) (text string, directives []string, ok bool) {
	lines := make([]string, 0, len(group.List))
	for _, c := range group.List {
		if !strings.HasPrefix(c.Text, CommentLinePrefix) {
			return StringEmpty, nil, false
		}
		if isDirective(c.Text) {
			directives = append(directives, c.Text)
			continue
		}
		line := strings.TrimPrefix(c.Text, CommentLinePrefix)
		lines = append(lines, strings.TrimPrefix(line, CommentSpace))
	}
	return strings.Join(lines, StringNewline), directives, true
}

// isDirective matches //go:generate, //nolint:errcheck and similar.
func isDirective(comment string) bool {
	body := strings.TrimPrefix(comment, CommentLinePrefix)
	if body == StringEmpty || body[0] < 'a' || body[0] > 'z' {
		return false
	}
	word, _, _ := strings.Cut(body, CommentSpace)
	return strings.Contains(word, ":")
}

// commentLines turns doc back into a // comment group.
func commentLines(doc string, directives []string) string {
	lines := strings.Split(doc, StringNewline)
	out := make([]string, 0, len(lines)+len(directives))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == StringEmpty {
			out = append(out, CommentLinePrefix)
			continue
		}
		out = append(out, CommentLinePrefix+CommentSpace+line)
	}
	out = append(out, directives...)
	return strings.Join(out, StringNewline)
}

func applyEdits(src []byte, edits []sourceEdit) []byte {
	sort.Slice(edits, func(i, j int) bool { return edits[i].start > edits[j].start })
	out := append([]byte(nil), src...)
	for _, e := range edits {
		tail := append([]byte(e.text), out[e.end:]...)
		out = append(out[:e.start], tail...)
	}
	return out
}
