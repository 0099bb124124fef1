// Package object defines the runtime value model: opaque leaf values
// (numbers, text, booleans) and tagged values produced by variant
// constructors. Values are immutable after construction and freely
// shareable across goroutines.
package object

import "hash/fnv"

type Kind string

const (
	INTEGER_OBJ Kind = "INTEGER"
	FLOAT_OBJ   Kind = "FLOAT"
	BOOLEAN_OBJ Kind = "BOOLEAN"
	STRING_OBJ  Kind = "STRING"
	NIL_OBJ     Kind = "NIL"
	TAGGED_OBJ  Kind = "TAGGED"
	TUPLE_OBJ   Kind = "TUPLE_SUBJECT"
)

type Object interface {
	Type() Kind
	Inspect() string
	Hash() uint32
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
