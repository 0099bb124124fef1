// Package match implements first-match clause selection over compiled
// pattern trees: ordered clauses, recursive structural comparison with
// binding capture, and handler dispatch.
package match

import (
	"github.com/google/uuid"

	"github.com/funvibe/matchbox/internal/diagnostics"
	"github.com/funvibe/matchbox/internal/pattern"
)

// Handler receives the bindings captured by the winning pattern.
type Handler[T any] func(Bindings) (T, error)

// Clause pairs one pattern with one handler. The pattern is given either
// as source text or as a pre-built expression; Expr wins when both are set.
type Clause[T any] struct {
	Source  string
	Expr    pattern.Expr
	Handler Handler[T]
}

// When builds a clause from pattern source text.
func When[T any](source string, handler Handler[T]) Clause[T] {
	return Clause[T]{Source: source, Handler: handler}
}

// WhenExpr builds a clause from a programmatic pattern expression.
func WhenExpr[T any](expr pattern.Expr, handler Handler[T]) Clause[T] {
	return Clause[T]{Expr: expr, Handler: handler}
}

// Otherwise builds the conventional terminal catch-all clause.
func Otherwise[T any](handler Handler[T]) Clause[T] {
	return Clause[T]{Expr: pattern.Catchall(), Handler: handler}
}

// ClauseSet is a compiled, reusable clause list. Compilation happens once;
// the set can then be matched against any number of subjects, from any
// number of goroutines. ID identifies this compiled set for caching and
// diagnostics.
type ClauseSet[T any] struct {
	ID       uuid.UUID
	trees    []pattern.Tree
	handlers []Handler[T]
	warnings []*diagnostics.UnreachableClauseWarning
}

// Compile resolves every clause pattern against the compiler's registry.
// Clauses after a catch-all are reported as unreachable and excluded from
// matching; the warning is non-fatal and the set still compiles.
func Compile[T any](c *pattern.Compiler, clauses []Clause[T]) (*ClauseSet[T], error) {
	set := &ClauseSet[T]{ID: uuid.New()}
	sealed := false
	for i, cl := range clauses {
		if sealed {
			set.warnings = append(set.warnings, &diagnostics.UnreachableClauseWarning{ClauseIndex: i})
			continue
		}
		expr := cl.Expr
		if expr == nil {
			parsed, err := pattern.Parse(cl.Source)
			if err != nil {
				return nil, err
			}
			expr = parsed
		}
		tree, err := c.Compile(expr)
		if err != nil {
			return nil, err
		}
		set.trees = append(set.trees, tree)
		set.handlers = append(set.handlers, cl.Handler)
		if _, ok := tree.(*pattern.CatchallNode); ok {
			sealed = true
		}
	}
	return set, nil
}

// Warnings returns the unreachable-clause warnings recorded at compile
// time, in clause order.
func (s *ClauseSet[T]) Warnings() []*diagnostics.UnreachableClauseWarning {
	return s.warnings
}

// Len returns the number of reachable clauses in the set.
func (s *ClauseSet[T]) Len() int { return len(s.trees) }
