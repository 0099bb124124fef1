package pattern

import (
	"github.com/funvibe/matchbox/internal/diagnostics"
	"github.com/funvibe/matchbox/internal/registry"
)

// Compiler resolves pattern expressions into trees against one registry.
// Resolution rule for a bare name N: if N is a registered nullary variant,
// compile as a zero-field constructor pattern; otherwise compile as a
// binder. Compilation is pure; the compiler holds no per-call state and
// is safe for concurrent use once registration has quiesced.
type Compiler struct {
	reg *registry.Registry
}

func NewCompiler(reg *registry.Registry) *Compiler {
	return &Compiler{reg: reg}
}

func (c *Compiler) Compile(e Expr) (Tree, error) {
	switch expr := e.(type) {
	case *WildcardExpr:
		return &WildcardNode{}, nil

	case *CatchallExpr:
		return &CatchallNode{}, nil

	case *LiteralExpr:
		return &LiteralNode{Value: expr.Value}, nil

	case *NameExpr:
		if def, ok := c.reg.LookupVariant(expr.Value); ok && def.IsNullary() {
			return &ConstructorNode{TypeName: def.TypeName, Variant: def.Name}, nil
		}
		return &BindNode{Name: expr.Value}, nil

	case *CallExpr:
		def, ok := c.reg.LookupVariant(expr.Name)
		if !ok {
			if expr.Line > 0 {
				return nil, diagnostics.NewErrorAt(diagnostics.ErrP002, expr.Line, expr.Column,
					"pattern references unknown variant %s", expr.Name)
			}
			return nil, &diagnostics.UnknownVariantError{Variant: expr.Name}
		}
		subs := make([]Tree, len(expr.Args))
		for i, arg := range expr.Args {
			sub, err := c.Compile(arg)
			if err != nil {
				return nil, err
			}
			subs[i] = sub
		}
		return &ConstructorNode{TypeName: def.TypeName, Variant: def.Name, Subs: subs}, nil

	case *TupleExpr:
		subs := make([]Tree, len(expr.Elems))
		for i, el := range expr.Elems {
			sub, err := c.Compile(el)
			if err != nil {
				return nil, err
			}
			subs[i] = sub
		}
		return &TupleNode{Subs: subs}, nil
	}
	return nil, diagnostics.NewError(diagnostics.ErrP001, "unsupported pattern expression %T", e)
}

// CompileSource parses and compiles pattern text in one step.
func (c *Compiler) CompileSource(src string) (Tree, error) {
	expr, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return c.Compile(expr)
}
