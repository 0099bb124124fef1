package matchbox

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/matchbox/internal/match"
	"github.com/funvibe/matchbox/internal/object"
	"github.com/funvibe/matchbox/internal/registry"
)

func natUniverse(t *testing.T) *Universe {
	t.Helper()
	u := New()
	err := u.Define("Nat",
		Variant("ZERO"),
		Variant("ONE", Field("x", registry.Numeric)),
		Variant("TWO", Field("x", registry.Numeric), Field("y", registry.Numeric)),
	)
	require.NoError(t, err)
	err = u.Define("List",
		Variant("NIL"),
		Variant("CONS", Field("car", nil), Field("cdr", registry.TaggedOf("List"))),
	)
	require.NoError(t, err)
	return u
}

func (u *Universe) mustList(t *testing.T, items ...interface{}) *object.Tagged {
	t.Helper()
	out := u.MustConstruct("NIL")
	for i := len(items) - 1; i >= 0; i-- {
		out = u.MustConstruct("CONS", items[i], out)
	}
	return out
}

func TestEndToEndArithmetic(t *testing.T) {
	u := natUniverse(t)

	got, err := Dispatch(u, u.MustConstruct("ONE", 5),
		match.When("ZERO", func(match.Bindings) (int64, error) { return 0, nil }),
		match.When("ONE(x)", func(b match.Bindings) (int64, error) {
			x, _ := b.Int("x")
			return x, nil
		}),
		match.When("TWO(x, y)", func(b match.Bindings) (int64, error) {
			x, _ := b.Int("x")
			y, _ := b.Int("y")
			return x + y, nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
}

func TestEndToEndListLength(t *testing.T) {
	u := natUniverse(t)

	var lengthOf *match.ClauseSet[int]
	lengthOf, err := CompileClauses(u,
		match.When("NIL", func(match.Bindings) (int, error) { return 0, nil }),
		match.When("CONS(_, cdr)", func(b match.Bindings) (int, error) {
			cdr, _ := b.Tagged("cdr")
			n, err := lengthOf.Dispatch(cdr)
			return n + 1, err
		}),
	)
	require.NoError(t, err)

	n, err := lengthOf.Dispatch(u.mustList(t, 1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestEndToEndJointMatch(t *testing.T) {
	u := natUniverse(t)
	as := u.mustList(t, 1)
	bs := u.mustList(t, 2)

	got, err := Dispatch(u, Zip(as, bs),
		match.When("..(CONS(a, as), CONS(b, bs))", func(b match.Bindings) (int64, error) {
			x, _ := b.Int("a")
			y, _ := b.Int("b")
			return x + y, nil
		}),
		match.Otherwise(func(match.Bindings) (int64, error) { return -1, nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

func TestSchemaRoundTrip(t *testing.T) {
	u := New()
	err := u.LoadSchema([]byte(`
types:
  - name: Shape
    variants:
      - name: POINT
      - name: CIRCLE
        fields:
          - name: radius
            constraint: numeric
`))
	require.NoError(t, err)

	circle, err := u.Construct("CIRCLE", 2.5)
	require.NoError(t, err)

	got, err := Dispatch(u, circle,
		match.When("POINT", func(match.Bindings) (string, error) { return "point", nil }),
		match.When("CIRCLE(r)", func(b match.Bindings) (string, error) {
			r, _ := b.Lookup("r")
			return "circle " + r.Inspect(), nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, "circle 2.5", got)

	_, err = u.Construct("CIRCLE", "big")
	assert.Error(t, err, "schema constraints must be enforced at construction")
}

func TestStructuralEqualityAcrossConstructionOrder(t *testing.T) {
	u := natUniverse(t)
	a := u.mustList(t, 1, 2)
	// Same value, different construction order.
	inner := u.MustConstruct("CONS", 2, u.MustConstruct("NIL"))
	b := u.MustConstruct("CONS", 1, inner)
	assert.True(t, object.Equal(a, b))

	set, err := CompileClauses(u,
		match.When("CONS(1, CONS(2, NIL))", func(match.Bindings) (bool, error) { return true, nil }),
	)
	require.NoError(t, err)
	for _, subject := range []*object.Tagged{a, b} {
		ok, err := set.Dispatch(subject)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

// Matching is read-only: once registration has quiesced, any number of
// goroutines may share one compiled clause set.
func TestParallelDispatch(t *testing.T) {
	u := natUniverse(t)

	var lengthOf *match.ClauseSet[int]
	lengthOf, err := CompileClauses(u,
		match.When("NIL", func(match.Bindings) (int, error) { return 0, nil }),
		match.When("CONS(_, cdr)", func(b match.Bindings) (int, error) {
			cdr, _ := b.Tagged("cdr")
			n, err := lengthOf.Dispatch(cdr)
			return n + 1, err
		}),
	)
	require.NoError(t, err)

	subject := u.mustList(t, 1, 2, 3, 4, 5)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				n, err := lengthOf.Dispatch(subject)
				if err != nil || n != 5 {
					t.Errorf("parallel dispatch = %d (%v), want 5", n, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
