// Package schema loads algebraic type definitions from YAML documents
// into a registry, so type vocabularies can be declared in data rather
// than code:
//
//	types:
//	  - name: List
//	    variants:
//	      - name: NIL
//	      - name: CONS
//	        fields:
//	          - name: car
//	          - name: cdr
//	            constraint: tagged:List
package schema

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/matchbox/internal/diagnostics"
	"github.com/funvibe/matchbox/internal/registry"
)

// Document is the top-level schema file.
type Document struct {
	Types []TypeDef `yaml:"types"`
}

// TypeDef declares one algebraic type as an ordered set of variants.
type TypeDef struct {
	Name     string       `yaml:"name"`
	Variants []VariantDef `yaml:"variants"`
}

// VariantDef declares one variant and its ordered field list.
type VariantDef struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields,omitempty"`
}

// FieldDef declares one field position. Constraint is a built-in
// constraint name ("any", "numeric", "text", "boolean", "tagged",
// "tagged:<Type>"); empty means unconstrained.
type FieldDef struct {
	Name       string `yaml:"name"`
	Constraint string `yaml:"constraint,omitempty"`
}

// Parse decodes a schema document and validates its shape.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, diagnostics.NewError(diagnostics.ErrS001, "malformed schema document: %v", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document against the rules Define would enforce,
// plus schema-only rules (names present, constraints known), so a bad
// file fails before touching the registry.
func (d *Document) Validate() error {
	if len(d.Types) == 0 {
		return diagnostics.NewError(diagnostics.ErrS001, "schema document declares no types")
	}
	for _, t := range d.Types {
		if t.Name == "" {
			return diagnostics.NewError(diagnostics.ErrS001, "type with empty name")
		}
		if len(t.Variants) == 0 {
			return diagnostics.NewError(diagnostics.ErrS001, "type %s declares no variants", t.Name)
		}
		for _, v := range t.Variants {
			if v.Name == "" {
				return diagnostics.NewError(diagnostics.ErrS001, "type %s has a variant with empty name", t.Name)
			}
			for _, f := range v.Fields {
				if f.Name == "" {
					return diagnostics.NewError(diagnostics.ErrS001,
						"variant %s of type %s has a field with empty name", v.Name, t.Name)
				}
				if _, ok := registry.ConstraintByName(f.Constraint); !ok {
					return diagnostics.NewError(diagnostics.ErrS001,
						"field %s of variant %s: unknown constraint %q", f.Name, v.Name, f.Constraint)
				}
			}
		}
	}
	return nil
}

// Apply registers every type in the document. Registration order follows
// document order; a duplicate variant inside one type aborts with nothing
// further registered.
func (d *Document) Apply(reg *registry.Registry) error {
	for _, t := range d.Types {
		variants := make([]registry.VariantSpec, len(t.Variants))
		for i, v := range t.Variants {
			fields := make([]registry.FieldSpec, len(v.Fields))
			for j, f := range v.Fields {
				constraint, _ := registry.ConstraintByName(f.Constraint)
				fields[j] = registry.FieldSpec{Name: f.Name, Constraint: constraint}
			}
			variants[i] = registry.VariantSpec{Name: v.Name, Fields: fields}
		}
		if err := reg.Define(t.Name, variants); err != nil {
			return err
		}
	}
	return nil
}

// Load parses data and applies it to reg.
func Load(data []byte, reg *registry.Registry) error {
	doc, err := Parse(data)
	if err != nil {
		return err
	}
	return doc.Apply(reg)
}

// LoadFile loads a schema document from disk.
func LoadFile(path string, reg *registry.Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Load(data, reg)
}
