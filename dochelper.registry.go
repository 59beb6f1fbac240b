package dochelper

import (
	"fmt"
	"sort"
	"sync"

	"github.com/itsatony/go-dochelper/internal"
	"go.uber.org/zap"
)

// Entry documents one variable: its name, an optional type label and a
// description. An empty DType means the entry has no type label.
type Entry struct {
	Name      string
	DType     string
	Docstring string
}

// String renders the entry the way it appears in composed docs.
func (e Entry) String() string {
	return RenderEntry(e)
}

// RenderEntry formats an entry as "name: doc" or, when it has a type label,
// "name (type): doc".
func RenderEntry(e Entry) string {
	if e.DType == StringEmpty {
		return fmt.Sprintf(FmtEntryPlain, e.Name, e.Docstring)
	}
	return fmt.Sprintf(FmtEntryTyped, e.Name, e.DType, e.Docstring)
}

// Doc is an upsert request for a registry entry. Build one with Describe or
// Typed.
type Doc struct {
	name      string
	dtype     string
	docstring string
	typed     bool
}

// Describe sets the docstring of name. An existing type label is kept.
func Describe(name, docstring string) Doc {
	return Doc{name: name, docstring: docstring}
}

// Typed sets both the type label and the docstring of name.
func Typed(name, dtype, docstring string) Doc {
	return Doc{name: name, dtype: dtype, docstring: docstring, typed: true}
}

// Name returns the entry name the doc applies to.
func (d Doc) Name() string {
	return d.name
}

// Registry is an ordered store of documented variables, keyed by name.
// Entries are upserted and never removed; iteration follows first insertion.
//
// Registry is safe for concurrent use, though the intended pattern is to
// populate it once and compose from it many times.
type Registry struct {
	entries map[string]*Entry
	order   []string
	mu      sync.RWMutex
	config  *registryConfig
	scanner *internal.Scanner
	logger  *zap.Logger
}

// NewRegistry creates an empty registry with the given options.
func NewRegistry(opts ...Option) *Registry {
	config := defaultRegistryConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	scannerConfig := internal.ScannerConfig{
		OpenDelim:  config.openDelim,
		CloseDelim: config.closeDelim,
	}

	logger.Debug(LogMsgRegistryCreated)
	return &Registry{
		entries: make(map[string]*Entry),
		config:  config,
		scanner: internal.NewScannerWithConfig(scannerConfig, logger),
		logger:  logger,
	}
}

// NewRegistryWith creates a registry pre-populated with docs.
//
//	docs, err := dochelper.NewRegistryWith([]dochelper.Doc{
//	    dochelper.Describe("x", "the first integer"),
//	    dochelper.Typed("y", "int", "the second value"),
//	})
func NewRegistryWith(docs []Doc, opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)
	if err := r.Add(docs...); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNewRegistryWith is like NewRegistryWith but panics on error.
func MustNewRegistryWith(docs []Doc, opts ...Option) *Registry {
	r, err := NewRegistryWith(docs, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Add upserts docs in order; the last write for a name wins. If any doc has
// an empty name nothing is applied.
func (r *Registry) Add(docs ...Doc) error {
	for _, d := range docs {
		if d.name == StringEmpty {
			return NewEmptyNameError()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range docs {
		r.upsertLocked(d)
	}
	return nil
}

// MustAdd is like Add but panics on error.
func (r *Registry) MustAdd(docs ...Doc) {
	if err := r.Add(docs...); err != nil {
		panic(err)
	}
}

func (r *Registry) upsertLocked(d Doc) {
	entry, exists := r.entries[d.name]
	if !exists {
		entry = &Entry{Name: d.name}
		r.entries[d.name] = entry
		r.order = append(r.order, d.name)
		r.logger.Debug(LogMsgEntryAdded, zap.String(LogFieldName, d.name))
	} else {
		r.logger.Debug(LogMsgEntryUpdated, zap.String(LogFieldName, d.name))
	}

	if d.typed {
		entry.DType = d.dtype
	}
	entry.Docstring = d.docstring
}

// AddMap upserts entries from a name→value map. A string value sets the
// docstring; a two-element []string, [2]string or []any of strings sets the
// type label and the docstring. Keys are applied in sorted order. Any other
// value is rejected and nothing is applied.
func (r *Registry) AddMap(values map[string]any) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	docs := make([]Doc, 0, len(names))
	for _, name := range names {
		d, err := docFromValue(name, values[name])
		if err != nil {
			return err
		}
		docs = append(docs, d)
	}
	return r.Add(docs...)
}

func docFromValue(name string, value any) (Doc, error) {
	switch v := value.(type) {
	case string:
		return Describe(name, v), nil
	case [2]string:
		return Typed(name, v[0], v[1]), nil
	case []string:
		if len(v) == 2 {
			return Typed(name, v[0], v[1]), nil
		}
	case []any:
		if len(v) == 2 {
			dtype, ok1 := v[0].(string)
			docstring, ok2 := v[1].(string)
			if ok1 && ok2 {
				return Typed(name, dtype, docstring), nil
			}
		}
	}
	return Doc{}, NewInvalidDocValueError(name, value)
}

// Lookup returns one entry per name, in order. Names that were never
// registered yield an entry with only the name set.
func (r *Registry) Lookup(names ...string) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(names))
	for i, name := range names {
		entry, ok := r.entries[name]
		if !ok {
			r.logger.Debug(LogMsgLookupMissing, zap.String(LogFieldName, name))
			entries[i] = Entry{Name: name}
			continue
		}
		entries[i] = *entry
	}
	return entries
}

// Entry returns the stored entry for name.
func (r *Registry) Entry(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// Has checks if name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names in first-insertion order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Entries returns copies of all entries in first-insertion order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.order))
	for i, name := range r.order {
		entries[i] = *r.entries[name]
	}
	return entries
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
