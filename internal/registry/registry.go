// Package registry implements the process-wide type registry: named ADTs
// as ordered sets of variant definitions, plus the constructors generated
// from them.
//
// Registration is serialized behind a write lock; lookups and matching take
// the read path and may proceed fully in parallel once registration has
// quiesced. Variant names live in a single global namespace because
// pattern matching dispatches on the variant tag alone.
package registry

import (
	"sync"

	"github.com/funvibe/matchbox/internal/diagnostics"
	"github.com/funvibe/matchbox/internal/object"
)

// FieldSpec declares one field position of a variant.
type FieldSpec struct {
	Name       string
	Constraint FieldConstraint
}

// VariantSpec is the caller-facing shape of one variant in a Define call.
type VariantSpec struct {
	Name   string
	Fields []FieldSpec
}

// VariantDef is the registered, immutable definition of one variant.
// Identity is (TypeName, Name).
type VariantDef struct {
	TypeName string
	Name     string
	Fields   []FieldSpec
}

func (d *VariantDef) Arity() int      { return len(d.Fields) }
func (d *VariantDef) IsNullary() bool { return len(d.Fields) == 0 }

type Registry struct {
	mu       sync.RWMutex
	types    map[string][]*VariantDef
	variants map[string]*VariantDef
	ctors    map[string]*Constructor
}

func New() *Registry {
	return &Registry{
		types:    make(map[string][]*VariantDef),
		variants: make(map[string]*VariantDef),
		ctors:    make(map[string]*Constructor),
	}
}

// Define registers an ordered set of variants for typeName and regenerates
// their constructors. Re-registering a type name replaces the prior
// definition wholesale; a variant name colliding across types also follows
// last-registration-wins, since the variant namespace is global.
//
// Fails with DuplicateVariantError when two variants in the same call share
// a name; nothing is registered in that case.
func (r *Registry) Define(typeName string, variants []VariantSpec) error {
	seen := make(map[string]bool, len(variants))
	defs := make([]*VariantDef, 0, len(variants))
	for _, spec := range variants {
		if seen[spec.Name] {
			return &diagnostics.DuplicateVariantError{TypeName: typeName, Variant: spec.Name}
		}
		seen[spec.Name] = true
		fields := make([]FieldSpec, len(spec.Fields))
		for i, f := range spec.Fields {
			if f.Constraint == nil {
				f.Constraint = Any
			}
			fields[i] = f
		}
		defs = append(defs, &VariantDef{TypeName: typeName, Name: spec.Name, Fields: fields})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Drop the previous registration of this type from the global variant
	// table before installing the replacement.
	for _, old := range r.types[typeName] {
		if r.variants[old.Name] == old {
			delete(r.variants, old.Name)
			delete(r.ctors, old.Name)
		}
	}
	r.types[typeName] = defs
	for _, def := range defs {
		r.variants[def.Name] = def
		r.ctors[def.Name] = &Constructor{def: def}
	}
	return nil
}

// LookupVariant resolves a variant name independently of its owning type.
func (r *Registry) LookupVariant(name string) (*VariantDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.variants[name]
	return def, ok
}

// LookupType returns the ordered variant definitions registered for a
// type name.
func (r *Registry) LookupType(typeName string) ([]*VariantDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs, ok := r.types[typeName]
	return defs, ok
}

// TypeNames returns the registered type names, unordered.
func (r *Registry) TypeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	return names
}

// IsNullary reports whether name is a registered zero-field variant. The
// pattern compiler uses this to disambiguate a bare identifier pattern
// from a binder.
func (r *Registry) IsNullary(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.variants[name]
	return ok && def.IsNullary()
}

// Constructor returns the generated constructor for a variant name.
func (r *Registry) Constructor(name string) (*Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.ctors[name]
	return c, ok
}

// Construct builds a tagged value for the named variant, lifting host
// primitives into the object model first. Fails with UnknownVariantError,
// ArityMismatchError, or FieldTypeError.
func (r *Registry) Construct(variant string, args ...interface{}) (*object.Tagged, error) {
	c, ok := r.Constructor(variant)
	if !ok {
		return nil, &diagnostics.UnknownVariantError{Variant: variant}
	}
	fields := make([]object.Object, len(args))
	for i, a := range args {
		fields[i] = object.FromGo(a)
	}
	return c.New(fields...)
}
