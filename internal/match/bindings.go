package match

import "github.com/funvibe/matchbox/internal/object"

// Bindings maps binder names to matched values for one matcher
// invocation. A name bound twice in one pattern is overwritten, later
// binding wins; no uniqueness is enforced.
type Bindings map[string]object.Object

func (b Bindings) Lookup(name string) (object.Object, bool) {
	v, ok := b[name]
	return v, ok
}

// Int returns the named binding as an int64. ok is false when the name is
// unbound or bound to a non-integer.
func (b Bindings) Int(name string) (int64, bool) {
	if v, ok := b[name].(*object.Integer); ok {
		return v.Value, true
	}
	return 0, false
}

// Str returns the named binding as a Go string.
func (b Bindings) Str(name string) (string, bool) {
	if v, ok := b[name].(*object.String); ok {
		return v.Value, true
	}
	return "", false
}

// Tagged returns the named binding as a tagged value.
func (b Bindings) Tagged(name string) (*object.Tagged, bool) {
	v, ok := b[name].(*object.Tagged)
	return v, ok
}
