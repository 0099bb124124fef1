package object

import (
	"testing"
)

func TestFromGo(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		kind Kind
		want string
	}{
		{"int", 42, INTEGER_OBJ, "42"},
		{"int64", int64(-7), INTEGER_OBJ, "-7"},
		{"float", 3.5, FLOAT_OBJ, "3.5"},
		{"string", "foo", STRING_OBJ, `"foo"`},
		{"bool", true, BOOLEAN_OBJ, "true"},
		{"nil", nil, NIL_OBJ, "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromGo(tt.in)
			if got.Type() != tt.kind {
				t.Errorf("FromGo(%v).Type() = %s, want %s", tt.in, got.Type(), tt.kind)
			}
			if got.Inspect() != tt.want {
				t.Errorf("FromGo(%v).Inspect() = %s, want %s", tt.in, got.Inspect(), tt.want)
			}
		})
	}
}

func TestFromGoPassesObjectsThrough(t *testing.T) {
	v := &Integer{Value: 1}
	if FromGo(v) != v {
		t.Error("expected FromGo to return the same Object unchanged")
	}
}

func TestEqual(t *testing.T) {
	nilList := NewTagged("List", "NIL", nil)
	cons := func(car Object, cdr Object) Object {
		return NewTagged("List", "CONS", []Object{car, cdr})
	}

	tests := []struct {
		name string
		a, b Object
		want bool
	}{
		{"equal ints", &Integer{Value: 5}, &Integer{Value: 5}, true},
		{"unequal ints", &Integer{Value: 5}, &Integer{Value: 6}, false},
		{"int vs float", &Integer{Value: 5}, &Float{Value: 5}, false},
		{"equal strings", &String{Value: "a"}, &String{Value: "a"}, true},
		{"bools", TRUE, &Boolean{Value: true}, true},
		{"nils", NIL, &Nil{}, true},
		{"nullary variants", nilList, NewTagged("List", "NIL", nil), true},
		{"different variants", nilList, NewTagged("List", "CONS", []Object{&Integer{Value: 1}, nilList}), false},
		{
			"equal nested",
			cons(&Integer{Value: 1}, cons(&Integer{Value: 2}, nilList)),
			cons(&Integer{Value: 1}, cons(&Integer{Value: 2}, nilList)),
			true,
		},
		{
			"unequal nested field",
			cons(&Integer{Value: 1}, nilList),
			cons(&Integer{Value: 2}, nilList),
			false,
		},
		{
			"tuple subjects",
			&TupleSubject{Elements: []Object{&Integer{Value: 1}, TRUE}},
			&TupleSubject{Elements: []Object{&Integer{Value: 1}, TRUE}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %t, want %t", tt.a.Inspect(), tt.b.Inspect(), got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(%s, %s) = %t, want %t (symmetry)", tt.b.Inspect(), tt.a.Inspect(), got, tt.want)
			}
		})
	}
}

func TestEqualValuesHashAlike(t *testing.T) {
	nilList := NewTagged("List", "NIL", nil)
	a := NewTagged("List", "CONS", []Object{&Integer{Value: 1}, nilList})
	b := NewTagged("List", "CONS", []Object{&Integer{Value: 1}, nilList})
	if a.Hash() != b.Hash() {
		t.Errorf("equal values hash differently: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestTaggedInspect(t *testing.T) {
	nilList := NewTagged("List", "NIL", nil)
	list := NewTagged("List", "CONS", []Object{
		&Integer{Value: 1},
		NewTagged("List", "CONS", []Object{&Integer{Value: 2}, nilList}),
	})
	want := "CONS(1, CONS(2, NIL))"
	if got := list.Inspect(); got != want {
		t.Errorf("Inspect() = %s, want %s", got, want)
	}
}

func TestTaggedFieldsAreCopied(t *testing.T) {
	fields := []Object{&Integer{Value: 1}}
	v := NewTagged("Box", "BOX", fields)
	fields[0] = &Integer{Value: 99}
	if got := v.Field(0).(*Integer).Value; got != 1 {
		t.Errorf("mutating the input slice changed the value: field = %d, want 1", got)
	}
	out := v.Fields()
	out[0] = &Integer{Value: 98}
	if got := v.Field(0).(*Integer).Value; got != 1 {
		t.Errorf("mutating Fields() output changed the value: field = %d, want 1", got)
	}
}
