// Package pattern implements the pattern surface: a small expression
// grammar (text or programmatically built), and the compiler that turns
// expressions into the trees the matcher walks.
package pattern

import (
	"strings"

	"github.com/funvibe/matchbox/internal/config"
	"github.com/funvibe/matchbox/internal/object"
)

// Expr is an uncompiled pattern expression. Bare names are not resolved
// until compile time, when the registry decides binder vs. nullary variant.
type Expr interface {
	exprNode()
	String() string
}

// NameExpr is a bare identifier: a binder, or a nullary variant reference.
type NameExpr struct {
	Value  string
	Line   int
	Column int
}

func (e *NameExpr) exprNode()      {}
func (e *NameExpr) String() string { return e.Value }

// CallExpr is a constructor application N(p1, ..., pk).
type CallExpr struct {
	Name   string
	Args   []Expr
	Line   int
	Column int
}

func (e *CallExpr) exprNode() {}
func (e *CallExpr) String() string {
	return e.Name + "(" + joinExprs(e.Args) + ")"
}

// LiteralExpr matches a leaf value by equality.
type LiteralExpr struct {
	Value object.Object
}

func (e *LiteralExpr) exprNode()      {}
func (e *LiteralExpr) String() string { return e.Value.Inspect() }

// WildcardExpr matches anything and binds nothing.
type WildcardExpr struct{}

func (e *WildcardExpr) exprNode()      {}
func (e *WildcardExpr) String() string { return config.WildcardToken }

// CatchallExpr matches any subject unconditionally; terminal by convention.
type CatchallExpr struct{}

func (e *CatchallExpr) exprNode()      {}
func (e *CatchallExpr) String() string { return config.CatchallToken }

// TupleExpr is the tuple-combinator pattern ..(p1, ..., pn) for joint
// matching over N independently-supplied subjects.
type TupleExpr struct {
	Elems []Expr
}

func (e *TupleExpr) exprNode() {}
func (e *TupleExpr) String() string {
	return config.TupleToken + "(" + joinExprs(e.Elems) + ")"
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// --- Programmatic constructors ---------------------------------------------

func Name(value string) *NameExpr { return &NameExpr{Value: value} }

func Call(name string, args ...Expr) *CallExpr {
	return &CallExpr{Name: name, Args: args}
}

// Lit lifts a host primitive into a literal pattern.
func Lit(v interface{}) *LiteralExpr {
	return &LiteralExpr{Value: object.FromGo(v)}
}

func Wildcard() *WildcardExpr { return &WildcardExpr{} }

func Catchall() *CatchallExpr { return &CatchallExpr{} }

func TupleOf(elems ...Expr) *TupleExpr { return &TupleExpr{Elems: elems} }
