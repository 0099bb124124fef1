// Package prettyprinter renders values and compiled patterns for humans.
// It consumes the core's values and contains no matching logic.
package prettyprinter

import (
	"bytes"

	tp "github.com/xlab/treeprint"

	"github.com/funvibe/matchbox/internal/object"
	"github.com/funvibe/matchbox/internal/pattern"
)

// Value renders a value inline, constructor-application style:
// CONS(1, CONS(2, NIL)).
func Value(v object.Object) string {
	var buf bytes.Buffer
	writeValue(&buf, v)
	return buf.String()
}

func writeValue(buf *bytes.Buffer, v object.Object) {
	switch val := v.(type) {
	case *object.Tagged:
		buf.WriteString(val.Variant)
		if val.Arity() == 0 {
			return
		}
		buf.WriteString("(")
		for i := 0; i < val.Arity(); i++ {
			if i > 0 {
				buf.WriteString(", ")
			}
			writeValue(buf, val.Field(i))
		}
		buf.WriteString(")")
	case *object.TupleSubject:
		buf.WriteString("..(")
		for i, el := range val.Elements {
			if i > 0 {
				buf.WriteString(", ")
			}
			writeValue(buf, el)
		}
		buf.WriteString(")")
	default:
		buf.WriteString(v.Inspect())
	}
}

// Tree renders a value as an indented tree, one constructor per branch.
// Useful for deep recursive structures where the inline form gets
// unreadable.
func Tree(v object.Object) string {
	root := tp.New()
	addValueNode(root, v)
	return root.String()
}

func addValueNode(branch tp.Tree, v object.Object) {
	switch val := v.(type) {
	case *object.Tagged:
		if val.Arity() == 0 {
			branch.AddNode(val.Variant)
			return
		}
		sub := branch.AddBranch(val.Variant)
		for i := 0; i < val.Arity(); i++ {
			addValueNode(sub, val.Field(i))
		}
	case *object.TupleSubject:
		sub := branch.AddBranch("..")
		for _, el := range val.Elements {
			addValueNode(sub, el)
		}
	default:
		branch.AddNode(v.Inspect())
	}
}

// Pattern renders a compiled pattern tree inline.
func Pattern(t pattern.Tree) string {
	return t.String()
}

// PatternTree renders a compiled pattern as an indented tree.
func PatternTree(t pattern.Tree) string {
	root := tp.New()
	addPatternNode(root, t)
	return root.String()
}

func addPatternNode(branch tp.Tree, t pattern.Tree) {
	switch node := t.(type) {
	case *pattern.ConstructorNode:
		if len(node.Subs) == 0 {
			branch.AddNode(node.Variant)
			return
		}
		sub := branch.AddBranch(node.Variant)
		for _, s := range node.Subs {
			addPatternNode(sub, s)
		}
	case *pattern.TupleNode:
		sub := branch.AddBranch("..")
		for _, s := range node.Subs {
			addPatternNode(sub, s)
		}
	default:
		branch.AddNode(t.String())
	}
}
