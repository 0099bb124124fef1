package object

// Tagged represents a constructed instance of an ADT variant
// (e.g. CONS(1, NIL), ZERO). Fields is never mutated after construction;
// NewTagged copies the slice it is given.
type Tagged struct {
	TypeName string
	Variant  string
	fields   []Object
}

func NewTagged(typeName, variant string, fields []Object) *Tagged {
	var own []Object
	if len(fields) > 0 {
		own = make([]Object, len(fields))
		copy(own, fields)
	}
	return &Tagged{TypeName: typeName, Variant: variant, fields: own}
}

func (t *Tagged) Type() Kind { return TAGGED_OBJ }

func (t *Tagged) Inspect() string {
	if len(t.fields) == 0 {
		return t.Variant
	}
	out := t.Variant + "("
	for i, field := range t.fields {
		if i > 0 {
			out += ", "
		}
		out += field.Inspect()
	}
	out += ")"
	return out
}

func (t *Tagged) Hash() uint32 {
	h := hashString(t.Variant)
	for _, field := range t.fields {
		h = 31*h + field.Hash()
	}
	return h
}

func (t *Tagged) Arity() int { return len(t.fields) }

// Field returns the i-th field value. The index must be in range; the
// arity invariant is enforced once, at construction.
func (t *Tagged) Field(i int) Object { return t.fields[i] }

// Fields returns a copy of the field values.
func (t *Tagged) Fields() []Object {
	out := make([]Object, len(t.fields))
	copy(out, t.fields)
	return out
}

// TupleSubject wraps N independently-supplied subjects for one joint match
// call. It is a positional view, not an owning container, and is only ever
// matched against a tuple pattern of equal arity.
type TupleSubject struct {
	Elements []Object
}

func (t *TupleSubject) Type() Kind { return TUPLE_OBJ }

func (t *TupleSubject) Inspect() string {
	out := "..("
	for i, el := range t.Elements {
		if i > 0 {
			out += ", "
		}
		out += el.Inspect()
	}
	out += ")"
	return out
}

func (t *TupleSubject) Hash() uint32 {
	var h uint32 = 17
	for _, el := range t.Elements {
		h = 31*h + el.Hash()
	}
	return h
}
