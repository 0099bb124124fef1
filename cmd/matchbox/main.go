package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/matchbox/internal/config"
	"github.com/funvibe/matchbox/internal/match"
	"github.com/funvibe/matchbox/internal/prettyprinter"
	"github.com/funvibe/matchbox/internal/registry"
	"github.com/funvibe/matchbox/pkg/matchbox"
)

const usage = `matchbox - runtime algebraic data types with structural pattern matching

Usage:
  matchbox check <schema.yaml>   validate a schema document and list its types
  matchbox demo                  run the built-in linked-list demonstration
`

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func colorize(code, s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func bold(s string) string  { return colorize("1", s) }
func green(s string) string { return colorize("32", s) }
func cyan(s string) string  { return colorize("36", s) }

func isSchemaFile(path string) bool {
	for _, ext := range config.SchemaFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "check":
		if len(os.Args) < 3 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		if err := runCheck(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "matchbox: %v\n", err)
			os.Exit(1)
		}
	case "demo":
		if err := runDemo(); err != nil {
			fmt.Fprintf(os.Stderr, "matchbox: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runCheck(path string) error {
	if !isSchemaFile(path) {
		return fmt.Errorf("%s: not a schema document (want %s)", path, strings.Join(config.SchemaFileExtensions, " or "))
	}
	u := matchbox.New()
	if err := u.LoadSchemaFile(path); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", green("ok"), path)
	for _, typeName := range u.Registry().TypeNames() {
		defs, _ := u.Registry().LookupType(typeName)
		fmt.Printf("\n%s\n", bold("type "+typeName))
		for _, def := range defs {
			fmt.Printf("  %s\n", cyan(describeVariant(def)))
		}
	}
	return nil
}

func describeVariant(def *registry.VariantDef) string {
	if def.IsNullary() {
		return def.Name
	}
	parts := make([]string, len(def.Fields))
	for i, f := range def.Fields {
		parts[i] = f.Name + " " + f.Constraint.Describe()
	}
	return def.Name + "(" + strings.Join(parts, ", ") + ")"
}

// runDemo defines a linked list, builds CONS(1, CONS(2, CONS(3, NIL))),
// and computes its length with a recursive clause list.
func runDemo() error {
	u := matchbox.New()
	err := u.Define("List",
		matchbox.Variant("NIL"),
		matchbox.Variant("CONS",
			matchbox.Field("car", registry.Any),
			matchbox.Field("cdr", registry.TaggedOf("List")),
		),
	)
	if err != nil {
		return err
	}

	nilV := u.MustConstruct("NIL")
	list := u.MustConstruct("CONS", 1,
		u.MustConstruct("CONS", 2,
			u.MustConstruct("CONS", 3, nilV)))

	fmt.Printf("%s\n%s\n", bold("subject"), prettyprinter.Tree(list))

	var lengthOf *match.ClauseSet[int64]
	lengthOf, err = matchbox.CompileClauses(u,
		match.When("NIL", func(match.Bindings) (int64, error) {
			return 0, nil
		}),
		match.When("CONS(_, cdr)", func(b match.Bindings) (int64, error) {
			cdr, _ := b.Tagged("cdr")
			n, err := lengthOf.Dispatch(cdr)
			return n + 1, err
		}),
	)
	if err != nil {
		return err
	}

	n, err := lengthOf.Dispatch(list)
	if err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", bold("length"), green(fmt.Sprintf("%d", n)))
	return nil
}
