package object

// Equal performs a deep structural equality check between two values.
// Leaf values compare under host equality (exact for numbers, no
// tolerance); tagged values compare by variant tag plus field-wise
// recursion. Integers and floats are distinct kinds and never equal.
func Equal(a, b Object) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type() != b.Type() {
		return false
	}

	switch aVal := a.(type) {
	case *Integer:
		if bVal, ok := b.(*Integer); ok {
			return aVal.Value == bVal.Value
		}
	case *Float:
		if bVal, ok := b.(*Float); ok {
			return aVal.Value == bVal.Value
		}
	case *Boolean:
		if bVal, ok := b.(*Boolean); ok {
			return aVal.Value == bVal.Value
		}
	case *String:
		if bVal, ok := b.(*String); ok {
			return aVal.Value == bVal.Value
		}
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Tagged:
		if bVal, ok := b.(*Tagged); ok {
			if aVal.Variant != bVal.Variant || len(aVal.fields) != len(bVal.fields) {
				return false
			}
			for i := range aVal.fields {
				if !Equal(aVal.fields[i], bVal.fields[i]) {
					return false
				}
			}
			return true
		}
	case *TupleSubject:
		if bVal, ok := b.(*TupleSubject); ok {
			if len(aVal.Elements) != len(bVal.Elements) {
				return false
			}
			for i := range aVal.Elements {
				if !Equal(aVal.Elements[i], bVal.Elements[i]) {
					return false
				}
			}
			return true
		}
	}
	return false
}

// IsLeaf reports whether v is an opaque leaf value rather than a tagged
// value or a tuple subject.
func IsLeaf(v Object) bool {
	switch v.Type() {
	case TAGGED_OBJ, TUPLE_OBJ:
		return false
	}
	return true
}
