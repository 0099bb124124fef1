package registry

import (
	"github.com/funvibe/matchbox/internal/diagnostics"
	"github.com/funvibe/matchbox/internal/object"
)

// Constructor builds tagged values for one variant. Constructors are
// generated by Define and shared; they hold no mutable state.
type Constructor struct {
	def *VariantDef
}

func (c *Constructor) Name() string     { return c.def.Name }
func (c *Constructor) TypeName() string { return c.def.TypeName }
func (c *Constructor) Arity() int       { return c.def.Arity() }

// New validates arity, then each field constraint left to right,
// short-circuiting on the first violation, and returns an immutable
// tagged value. Construction is atomic: either a fully valid value is
// returned or no value is produced.
func (c *Constructor) New(fields ...object.Object) (*object.Tagged, error) {
	if len(fields) != c.def.Arity() {
		return nil, &diagnostics.ArityMismatchError{
			Variant: c.def.Name,
			Want:    c.def.Arity(),
			Got:     len(fields),
		}
	}
	for i, f := range c.def.Fields {
		if !f.Constraint.Admits(fields[i]) {
			return nil, &diagnostics.FieldTypeError{
				Variant:    c.def.Name,
				FieldIndex: i,
				Constraint: f.Constraint.Describe(),
				Value:      fields[i].Inspect(),
			}
		}
	}
	return object.NewTagged(c.def.TypeName, c.def.Name, fields), nil
}
