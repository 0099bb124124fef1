// Package matchbox is the public surface of the engine: declare algebraic
// data types as named variants, construct tagged values, and deconstruct
// them with ordered pattern-matching clauses.
//
//	u := matchbox.New()
//	u.Define("Nat",
//		matchbox.Variant("ZERO"),
//		matchbox.Variant("ONE", matchbox.Field("x", registry.Numeric)),
//	)
//	one, _ := u.Construct("ONE", 5)
//	n, _ := matchbox.Dispatch(u, one,
//		match.When("ZERO", ...),
//		match.When("ONE(x)", ...),
//	)
package matchbox

import (
	"github.com/funvibe/matchbox/internal/match"
	"github.com/funvibe/matchbox/internal/object"
	"github.com/funvibe/matchbox/internal/pattern"
	"github.com/funvibe/matchbox/internal/registry"
	"github.com/funvibe/matchbox/internal/schema"
)

// Universe bundles one type registry with one pattern compiler. Define
// all types first, then compile and match freely from any goroutine;
// writes are serialized, reads are not.
type Universe struct {
	reg      *registry.Registry
	compiler *pattern.Compiler
}

func New() *Universe {
	reg := registry.New()
	return &Universe{reg: reg, compiler: pattern.NewCompiler(reg)}
}

func (u *Universe) Registry() *registry.Registry { return u.reg }
func (u *Universe) Compiler() *pattern.Compiler  { return u.compiler }

// Define registers an ordered set of variants for typeName,
// last-registration-wins.
func (u *Universe) Define(typeName string, variants ...registry.VariantSpec) error {
	return u.reg.Define(typeName, variants)
}

// Construct builds a tagged value for the named variant, lifting host
// primitives into the value model.
func (u *Universe) Construct(variant string, args ...interface{}) (*object.Tagged, error) {
	return u.reg.Construct(variant, args...)
}

// MustConstruct is Construct for known-good values, e.g. in tests and
// initialization code.
func (u *Universe) MustConstruct(variant string, args ...interface{}) *object.Tagged {
	v, err := u.reg.Construct(variant, args...)
	if err != nil {
		panic(err)
	}
	return v
}

// LoadSchema registers every type declared in a YAML schema document.
func (u *Universe) LoadSchema(data []byte) error {
	return schema.Load(data, u.reg)
}

// LoadSchemaFile registers every type declared in a YAML schema file.
func (u *Universe) LoadSchemaFile(path string) error {
	return schema.LoadFile(path, u.reg)
}

// Variant declares one variant for Define.
func Variant(name string, fields ...registry.FieldSpec) registry.VariantSpec {
	return registry.VariantSpec{Name: name, Fields: fields}
}

// Field declares one constrained field position. A nil constraint means
// unconstrained.
func Field(name string, constraint registry.FieldConstraint) registry.FieldSpec {
	return registry.FieldSpec{Name: name, Constraint: constraint}
}

// Zip wraps N values for one joint match against a tuple pattern.
func Zip(subjects ...object.Object) *object.TupleSubject {
	return match.Zip(subjects...)
}

// CompileClauses compiles a clause list once for repeated dispatch.
func CompileClauses[T any](u *Universe, clauses ...match.Clause[T]) (*match.ClauseSet[T], error) {
	return match.Compile(u.compiler, clauses)
}

// Dispatch matches subject against the clauses in order and returns the
// winning handler's result. The result type is declared by the caller via
// T; a clause list without a catch-all fails with NoMatchError when
// nothing matches.
func Dispatch[T any](u *Universe, subject object.Object, clauses ...match.Clause[T]) (T, error) {
	return match.Dispatch(u.compiler, subject, clauses...)
}
