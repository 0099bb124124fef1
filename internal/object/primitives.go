package object

import (
	"fmt"
	"strconv"
)

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Kind      { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) Hash() uint32 {
	if b.Value {
		return 1
	}
	return 0
}

// Integer
type Integer struct {
	Value int64
}

func (i *Integer) Type() Kind      { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) Hash() uint32 {
	return uint32(i.Value ^ (i.Value >> 32))
}

// Float
type Float struct {
	Value float64
}

func (f *Float) Type() Kind      { return FLOAT_OBJ }
func (f *Float) Inspect() string { return fmt.Sprintf("%g", f.Value) }
func (f *Float) Hash() uint32 {
	return hashString(strconv.FormatFloat(f.Value, 'g', -1, 64))
}

// String
type String struct {
	Value string
}

func (s *String) Type() Kind      { return STRING_OBJ }
func (s *String) Inspect() string { return strconv.Quote(s.Value) }
func (s *String) Hash() uint32    { return hashString(s.Value) }

// Nil
type Nil struct{}

func (n *Nil) Type() Kind      { return NIL_OBJ }
func (n *Nil) Inspect() string { return "nil" }
func (n *Nil) Hash() uint32    { return 0 }

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NIL   = &Nil{}
)

// FromGo lifts a host value into the object model. Objects pass through
// unchanged; integer widths collapse to int64. Unsupported host types
// become Nil rather than panicking, matching the permissive construction
// surface.
func FromGo(v interface{}) Object {
	switch x := v.(type) {
	case nil:
		return NIL
	case Object:
		return x
	case bool:
		if x {
			return TRUE
		}
		return FALSE
	case int:
		return &Integer{Value: int64(x)}
	case int32:
		return &Integer{Value: int64(x)}
	case int64:
		return &Integer{Value: x}
	case float32:
		return &Float{Value: float64(x)}
	case float64:
		return &Float{Value: x}
	case string:
		return &String{Value: x}
	default:
		return NIL
	}
}
