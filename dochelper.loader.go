package dochelper

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Registry file formats
const (
	FormatYAML = "yaml"
	FormatHCL  = "hcl"
)

// YAML node tags
const (
	yamlTagNull = "!!null"
	yamlTagStr  = "!!str"
)

// LoadFile creates a registry from a YAML (.yaml, .yml, .json) or HCL (.hcl)
// file.
func LoadFile(path string, opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)
	if err := r.LoadFile(path); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadFile merges the entries of a YAML or HCL file into the registry.
func (r *Registry) LoadFile(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return NewLoadError(ErrMsgLoadFailed, path, err)
	}

	before := r.Len()
	switch format {
	case FormatHCL:
		err = r.LoadHCL(data, path)
	default:
		err = r.LoadYAML(data)
	}
	if err != nil {
		return err
	}

	r.logger.Debug(LogMsgRegistryLoaded,
		zap.String(LogFieldPath, path),
		zap.String(LogFieldFormat, format),
		zap.Int(LogFieldCount, r.Len()-before),
	)
	return nil
}

// FormatOf picks the registry file format from the path's extension.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case FileExtYAML, FileExtYML, FileExtJSON:
		return FormatYAML, nil
	case FileExtHCL:
		return FormatHCL, nil
	}
	return StringEmpty, NewUnsupportedFormatError(path, ext)
}

// LoadYAML merges entries from a YAML (or JSON) mapping. Document order is
// kept. Each value is a docstring, a [type, docstring] pair, or a mapping
// with "type" and "description" (or "docstring") keys:
//
//	arg1: Docstring for arg1
//	arg3: [type for arg3, Docstring for arg3]
//	arg4:
//	  type: int
//	  description: Docstring for arg4
func (r *Registry) LoadYAML(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return NewLoadError(ErrMsgLoadFailed, StringEmpty, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return nil
	}
	if root.Kind != yaml.MappingNode {
		return NewLoadError(ErrMsgYAMLNotMapping, StringEmpty, nil)
	}

	docs := make([]Doc, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		d, err := docFromYAML(root.Content[i].Value, root.Content[i+1])
		if err != nil {
			return err
		}
		docs = append(docs, d)
	}
	return r.Add(docs...)
}

func docFromYAML(name string, node *yaml.Node) (Doc, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == yamlTagNull {
			return Describe(name, StringEmpty), nil
		}
		return Describe(name, node.Value), nil

	case yaml.SequenceNode:
		if len(node.Content) == 2 &&
			node.Content[0].Kind == yaml.ScalarNode &&
			node.Content[1].Kind == yaml.ScalarNode {
			return Typed(name, node.Content[0].Value, node.Content[1].Value), nil
		}

	case yaml.MappingNode:
		var dtype, docstring string
		typed := false
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if val.Kind != yaml.ScalarNode {
				return Doc{}, NewYAMLValueError(name, val.Line)
			}
			switch key.Value {
			case YAMLKeyType:
				dtype = val.Value
				typed = true
			case YAMLKeyDescription, YAMLKeyDocstring:
				docstring = val.Value
			}
		}
		if typed {
			return Typed(name, dtype, docstring), nil
		}
		return Describe(name, docstring), nil
	}
	return Doc{}, NewYAMLValueError(name, node.Line)
}

// WriteYAML writes the registry as a YAML mapping in insertion order, in the
// form LoadYAML reads.
func (r *Registry) WriteYAML(w io.Writer) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range r.Entries() {
		key := yamlString(entry.Name)
		var val *yaml.Node
		if entry.DType == StringEmpty {
			val = yamlString(entry.Docstring)
		} else {
			val = &yaml.Node{
				Kind:    yaml.SequenceNode,
				Style:   yaml.FlowStyle,
				Content: []*yaml.Node{yamlString(entry.DType), yamlString(entry.Docstring)},
			}
		}
		root.Content = append(root.Content, key, val)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return NewLoadError(ErrMsgWriteFailed, StringEmpty, err)
	}
	if err := enc.Close(); err != nil {
		return NewLoadError(ErrMsgWriteFailed, StringEmpty, err)
	}
	return nil
}

// yamlString builds a string scalar; the tag makes the encoder quote values
// such as "null" or "" that would otherwise load as something else.
func yamlString(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlTagStr, Value: value}
}

// hclRegistryFile is the top-level structure of an HCL registry file.
type hclRegistryFile struct {
	Variables []*hclVariable `hcl:"variable,block"`
	Remain    hcl.Body       `hcl:",remain"`
}

// hclVariable is one documented variable.
type hclVariable struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type,optional"`
	Description *string        `hcl:"description,optional"`
	Remain      hcl.Body       `hcl:",remain"`
}

// LoadHCL merges entries from HCL variable blocks. The type may be a quoted
// string or a type expression, which is kept as written:
//
//	variable "arg1" {
//	  description = "Docstring for arg1"
//	}
//
//	variable "arg3" {
//	  type        = list(string)
//	  description = "Docstring for arg3"
//	}
func (r *Registry) LoadHCL(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return NewLoadError(ErrMsgHCLParseFailed, filename, diags)
	}

	var parsed hclRegistryFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return NewLoadError(ErrMsgHCLParseFailed, filename, diags)
	}

	docs := make([]Doc, 0, len(parsed.Variables))
	for _, v := range parsed.Variables {
		docstring := StringEmpty
		if v.Description != nil {
			docstring = *v.Description
		}

		dtype, ok := hclTypeLabel(v.Type, src)
		if ok {
			docs = append(docs, Typed(v.Name, dtype, docstring))
		} else {
			docs = append(docs, Describe(v.Name, docstring))
		}
	}
	return r.Add(docs...)
}

// hclTypeLabel reads the type attribute. Keywords and non-string
// expressions are returned as their source text; ok is false when the
// attribute is absent.
func hclTypeLabel(expr hcl.Expression, src []byte) (string, bool) {
	if expr == nil {
		return StringEmpty, false
	}
	if keyword := hcl.ExprAsKeyword(expr); keyword != StringEmpty {
		return keyword, true
	}

	val, diags := expr.Value(nil)
	if !diags.HasErrors() {
		if val.IsNull() {
			return StringEmpty, false
		}
		if val.IsKnown() && val.Type().Equals(cty.String) {
			return val.AsString(), true
		}
	}
	return strings.TrimSpace(string(expr.Range().SliceBytes(src))), true
}
