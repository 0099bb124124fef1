package registry

import (
	"strings"

	"github.com/funvibe/matchbox/internal/config"
	"github.com/funvibe/matchbox/internal/object"
)

// FieldConstraint validates one field position at construction time.
// Describe is the stable name used in schema documents and in
// FieldTypeError diagnostics.
type FieldConstraint interface {
	Describe() string
	Admits(v object.Object) bool
}

type anyConstraint struct{}

func (anyConstraint) Describe() string          { return config.AnyConstraintName }
func (anyConstraint) Admits(object.Object) bool { return true }

type numericConstraint struct{}

func (numericConstraint) Describe() string { return config.NumericConstraintName }
func (numericConstraint) Admits(v object.Object) bool {
	k := v.Type()
	return k == object.INTEGER_OBJ || k == object.FLOAT_OBJ
}

type textConstraint struct{}

func (textConstraint) Describe() string { return config.TextConstraintName }
func (textConstraint) Admits(v object.Object) bool {
	return v.Type() == object.STRING_OBJ
}

type booleanConstraint struct{}

func (booleanConstraint) Describe() string { return config.BooleanConstraintName }
func (booleanConstraint) Admits(v object.Object) bool {
	return v.Type() == object.BOOLEAN_OBJ
}

// taggedConstraint admits tagged values, optionally of one specific type.
type taggedConstraint struct {
	typeName string
}

func (c taggedConstraint) Describe() string {
	if c.typeName == "" {
		return config.TaggedConstraintName
	}
	return config.TaggedConstraintName + config.TaggedConstraintSep + c.typeName
}

func (c taggedConstraint) Admits(v object.Object) bool {
	tv, ok := v.(*object.Tagged)
	if !ok {
		return false
	}
	return c.typeName == "" || tv.TypeName == c.typeName
}

// predicateConstraint wraps a caller-supplied Go predicate.
type predicateConstraint struct {
	name string
	fn   func(object.Object) bool
}

func (c predicateConstraint) Describe() string            { return c.name }
func (c predicateConstraint) Admits(v object.Object) bool { return c.fn(v) }

var (
	Any     FieldConstraint = anyConstraint{}
	Numeric FieldConstraint = numericConstraint{}
	Text    FieldConstraint = textConstraint{}
	Boolean FieldConstraint = booleanConstraint{}
	Tagged  FieldConstraint = taggedConstraint{}
)

// TaggedOf constrains a field to tagged values of one declared type.
func TaggedOf(typeName string) FieldConstraint {
	return taggedConstraint{typeName: typeName}
}

// Predicate builds a constraint from an arbitrary Go predicate. The name
// is only used for diagnostics and schema round-trips.
func Predicate(name string, fn func(object.Object) bool) FieldConstraint {
	return predicateConstraint{name: name, fn: fn}
}

// ConstraintByName resolves a schema constraint name to a built-in
// constraint. An empty name means unconstrained.
func ConstraintByName(name string) (FieldConstraint, bool) {
	switch name {
	case "", config.AnyConstraintName:
		return Any, true
	case config.NumericConstraintName:
		return Numeric, true
	case config.TextConstraintName:
		return Text, true
	case config.BooleanConstraintName:
		return Boolean, true
	case config.TaggedConstraintName:
		return Tagged, true
	}
	if rest, ok := strings.CutPrefix(name, config.TaggedConstraintName+config.TaggedConstraintSep); ok && rest != "" {
		return TaggedOf(rest), true
	}
	return nil, false
}
