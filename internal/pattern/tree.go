package pattern

import (
	"strings"

	"github.com/funvibe/matchbox/internal/config"
	"github.com/funvibe/matchbox/internal/object"
)

// Tree is a compiled pattern. Trees are derived deterministically from
// expressions, hold no state, and are safe to share and reuse across
// match calls.
type Tree interface {
	treeNode()
	String() string
}

// WildcardNode matches anything, binds nothing.
type WildcardNode struct{}

func (n *WildcardNode) treeNode()      {}
func (n *WildcardNode) String() string { return config.WildcardToken }

// BindNode matches anything and binds Name to the whole matched subtree.
type BindNode struct {
	Name string
}

func (n *BindNode) treeNode()      {}
func (n *BindNode) String() string { return n.Name }

// LiteralNode matches a leaf value by equality.
type LiteralNode struct {
	Value object.Object
}

func (n *LiteralNode) treeNode()      {}
func (n *LiteralNode) String() string { return n.Value.Inspect() }

// ConstructorNode matches a tagged value whose variant tag equals Variant;
// each subpattern matches the corresponding field. TypeName records the
// owning type at compile time, for diagnostics only — the tag alone
// decides the match.
type ConstructorNode struct {
	TypeName string
	Variant  string
	Subs     []Tree
}

func (n *ConstructorNode) treeNode() {}
func (n *ConstructorNode) String() string {
	if len(n.Subs) == 0 {
		return n.Variant
	}
	return n.Variant + "(" + joinTrees(n.Subs) + ")"
}

// TupleNode matches only a tuple subject of equal arity, field-wise.
type TupleNode struct {
	Subs []Tree
}

func (n *TupleNode) treeNode() {}
func (n *TupleNode) String() string {
	return config.TupleToken + "(" + joinTrees(n.Subs) + ")"
}

// CatchallNode matches any subject unconditionally.
type CatchallNode struct{}

func (n *CatchallNode) treeNode()      {}
func (n *CatchallNode) String() string { return config.CatchallToken }

func joinTrees(trees []Tree) string {
	parts := make([]string, len(trees))
	for i, t := range trees {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
