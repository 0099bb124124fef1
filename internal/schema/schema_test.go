package schema

import (
	"errors"
	"testing"

	"github.com/funvibe/matchbox/internal/diagnostics"
	"github.com/funvibe/matchbox/internal/registry"
)

const listSchema = `
types:
  - name: List
    variants:
      - name: NIL
      - name: CONS
        fields:
          - name: car
          - name: cdr
            constraint: tagged:List
  - name: Color
    variants:
      - name: RED
      - name: BLACK
`

func TestLoad(t *testing.T) {
	reg := registry.New()
	if err := Load([]byte(listSchema), reg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	def, ok := reg.LookupVariant("CONS")
	if !ok {
		t.Fatal("CONS not registered")
	}
	if def.TypeName != "List" || def.Arity() != 2 {
		t.Errorf("CONS = (%s, %d), want (List, 2)", def.TypeName, def.Arity())
	}
	if def.Fields[1].Constraint.Describe() != "tagged:List" {
		t.Errorf("cdr constraint = %s, want tagged:List", def.Fields[1].Constraint.Describe())
	}
	if !reg.IsNullary("RED") || !reg.IsNullary("NIL") {
		t.Error("nullary variants not registered as nullary")
	}

	// The loaded constraints are live: cdr must be a List.
	nilV, err := reg.Construct("NIL")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Construct("CONS", 1, nilV); err != nil {
		t.Errorf("CONS(1, NIL) should construct, got %v", err)
	}
	red, _ := reg.Construct("RED")
	if _, err := reg.Construct("CONS", 1, red); err == nil {
		t.Error("CONS(1, RED) should violate tagged:List")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not yaml", ":\n:::"},
		{"no types", "types: []"},
		{"empty type name", "types:\n  - variants:\n      - name: A"},
		{"no variants", "types:\n  - name: T"},
		{"empty variant name", "types:\n  - name: T\n    variants:\n      - fields: []"},
		{"empty field name", "types:\n  - name: T\n    variants:\n      - name: A\n        fields:\n          - constraint: numeric"},
		{"unknown constraint", "types:\n  - name: T\n    variants:\n      - name: A\n        fields:\n          - name: f\n            constraint: imaginary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected parse to fail")
			}
			if code := diagnostics.CodeOf(err); code != diagnostics.ErrS001 {
				t.Errorf("code = %s, want %s", code, diagnostics.ErrS001)
			}
		})
	}
}

func TestApplyDuplicateVariant(t *testing.T) {
	const dup = `
types:
  - name: T
    variants:
      - name: A
      - name: A
`
	reg := registry.New()
	err := Load([]byte(dup), reg)
	var dv *diagnostics.DuplicateVariantError
	if !errors.As(err, &dv) {
		t.Fatalf("expected DuplicateVariantError, got %v", err)
	}
}

func TestApplyOrderIsDocumentOrder(t *testing.T) {
	reg := registry.New()
	if err := Load([]byte(listSchema), reg); err != nil {
		t.Fatal(err)
	}
	defs, ok := reg.LookupType("List")
	if !ok || len(defs) != 2 {
		t.Fatalf("List variants = %d, want 2", len(defs))
	}
	if defs[0].Name != "NIL" || defs[1].Name != "CONS" {
		t.Errorf("variant order = %s, %s; want NIL, CONS", defs[0].Name, defs[1].Name)
	}
}
