package dochelper

import (
	"reflect"
)

// Signature describes a function by name, optional receiver type and formal
// parameter names. Go keeps no parameter names at runtime, so they are
// supplied by the caller or read from source with SignatureFromSource.
type Signature struct {
	Name     string
	Receiver string
	Params   []string
}

// ParamNames returns the parameter names, receiver excluded. Blank and
// unnamed parameters are skipped.
func (s Signature) ParamNames() []string {
	names := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		if p == StringEmpty || p == ParamBlank {
			continue
		}
		names = append(names, p)
	}
	return names
}

// QualifiedName returns "Receiver.Name" for methods and Name otherwise.
func (s Signature) QualifiedName() string {
	if s.Receiver == StringEmpty {
		return s.Name
	}
	return s.Receiver + MethodSeparator + s.Name
}

// Documentable is a target that composed documentation can be attached to.
type Documentable interface {
	ParamNamer
	SetDoc(doc string)
}

// Func pairs a Go function value with its signature and a documentation
// string. Apply a Composition to fill Doc.
type Func struct {
	Signature
	Fn  any
	Doc string
}

// SetDoc sets the documentation string.
func (f *Func) SetDoc(doc string) {
	f.Doc = doc
}

// NewFunc describes fn with the given parameter names. fn may be nil; when
// it is set it must be a function taking exactly len(params) arguments.
func NewFunc(name string, fn any, params ...string) (*Func, error) {
	if name == StringEmpty {
		return nil, NewInvalidArgumentError(ErrMsgEmptyFuncName, name)
	}
	if err := checkArity(name, fn, len(params)); err != nil {
		return nil, err
	}
	return &Func{
		Signature: Signature{Name: name, Params: params},
		Fn:        fn,
	}, nil
}

// NewMethod describes a method expression such as (*T).M. The receiver is
// the first argument of fn and is not named in params.
func NewMethod(receiver, name string, fn any, params ...string) (*Func, error) {
	if receiver == StringEmpty {
		return nil, NewInvalidArgumentError(ErrMsgEmptyReceiver, receiver)
	}
	if name == StringEmpty {
		return nil, NewInvalidArgumentError(ErrMsgEmptyFuncName, name)
	}
	if err := checkArity(receiver+MethodSeparator+name, fn, len(params)+1); err != nil {
		return nil, err
	}
	return &Func{
		Signature: Signature{Name: name, Receiver: receiver, Params: params},
		Fn:        fn,
	}, nil
}

// MustFunc is like NewFunc but panics on error.
func MustFunc(name string, fn any, params ...string) *Func {
	f, err := NewFunc(name, fn, params...)
	if err != nil {
		panic(err)
	}
	return f
}

// MustMethod is like NewMethod but panics on error.
func MustMethod(receiver, name string, fn any, params ...string) *Func {
	f, err := NewMethod(receiver, name, fn, params...)
	if err != nil {
		panic(err)
	}
	return f
}

func checkArity(name string, fn any, want int) error {
	if fn == nil {
		return nil
	}
	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return NewInvalidArgumentError(ErrMsgNotAFunction, fn)
	}
	if t.NumIn() != want {
		return NewArityMismatchError(name, want, t.NumIn())
	}
	return nil
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
