package config

// Reserved pattern tokens. These names cannot be used as binders or
// variant names in pattern source.
const (
	WildcardToken = "_"
	CatchallToken = "otherwise"
	TupleToken    = ".."
)

// Built-in field constraint names, as they appear in schema documents
// and in constraint descriptions.
const (
	AnyConstraintName     = "any"
	NumericConstraintName = "numeric"
	TextConstraintName    = "text"
	BooleanConstraintName = "boolean"
	TaggedConstraintName  = "tagged"
)

// TaggedConstraintSep separates the constraint name from the type name in
// a qualified tagged constraint, e.g. "tagged:Tree".
const TaggedConstraintSep = ":"

// SchemaFileExtensions are all recognized schema document extensions.
var SchemaFileExtensions = []string{".yaml", ".yml"}
