package match

import (
	"github.com/funvibe/matchbox/internal/diagnostics"
	"github.com/funvibe/matchbox/internal/object"
	"github.com/funvibe/matchbox/internal/pattern"
)

// Zip wraps N values positionally for one joint match call against a
// tuple pattern of the same arity. No copies are taken.
func Zip(subjects ...object.Object) *object.TupleSubject {
	return &object.TupleSubject{Elements: subjects}
}

// MatchOne walks the reachable clauses strictly in declaration order and
// returns the bindings and index of the first clause whose pattern
// matches the subject. A clause either wholly matches or is entirely
// rejected; there is no backtracking across subpattern failures.
//
// Fails with NoMatchError when every clause rejects the subject, and with
// ArityMismatchError when a constructor pattern's tag matches the subject
// but its subpattern count disagrees with the subject's field count.
func (s *ClauseSet[T]) MatchOne(subject object.Object) (Bindings, int, error) {
	for i, tree := range s.trees {
		binds := make(Bindings)
		ok, err := matchTree(tree, subject, binds)
		if err != nil {
			return nil, -1, err
		}
		if ok {
			return binds, i, nil
		}
	}
	return nil, -1, &diagnostics.NoMatchError{Subject: describeSubject(subject)}
}

// Dispatch calls MatchOne and hands control to the winning handler,
// returning the handler's result directly.
func (s *ClauseSet[T]) Dispatch(subject object.Object) (T, error) {
	binds, idx, err := s.MatchOne(subject)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.handlers[idx](binds)
}

// Dispatch compiles the clause list and matches subject against it in one
// step. Callers matching the same clauses repeatedly should Compile once
// and reuse the ClauseSet.
func Dispatch[T any](c *pattern.Compiler, subject object.Object, clauses ...Clause[T]) (T, error) {
	set, err := Compile(c, clauses)
	if err != nil {
		var zero T
		return zero, err
	}
	return set.Dispatch(subject)
}

func matchTree(t pattern.Tree, subject object.Object, binds Bindings) (bool, error) {
	switch node := t.(type) {
	case *pattern.WildcardNode, *pattern.CatchallNode:
		return true, nil

	case *pattern.BindNode:
		binds[node.Name] = subject
		return true, nil

	case *pattern.LiteralNode:
		if !object.IsLeaf(subject) {
			return false, nil
		}
		return object.Equal(node.Value, subject), nil

	case *pattern.ConstructorNode:
		tagged, ok := subject.(*object.Tagged)
		if !ok {
			return false, nil
		}
		if tagged.Variant != node.Variant {
			return false, nil
		}
		if len(node.Subs) != tagged.Arity() {
			return false, &diagnostics.ArityMismatchError{
				Variant: node.Variant,
				Want:    len(node.Subs),
				Got:     tagged.Arity(),
				AtMatch: true,
			}
		}
		for i, sub := range node.Subs {
			ok, err := matchTree(sub, tagged.Field(i), binds)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil

	case *pattern.TupleNode:
		tuple, ok := subject.(*object.TupleSubject)
		if !ok || len(tuple.Elements) != len(node.Subs) {
			return false, nil
		}
		for i, sub := range node.Subs {
			ok, err := matchTree(sub, tuple.Elements[i], binds)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
	return false, nil
}

// describeSubject renders the subject's tag, or its literal value for
// leaves, for NoMatchError diagnostics.
func describeSubject(subject object.Object) string {
	switch s := subject.(type) {
	case *object.Tagged:
		if s.TypeName != "" {
			return s.TypeName + "." + s.Variant
		}
		return s.Variant
	default:
		return subject.Inspect()
	}
}
