package sqlq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var ansi = RenderOpts{Dialect: PostgreSQL}

func TestLiteralEncoding(t *testing.T) {
	for _, tst := range []struct {
		name string
		term Term
		want string
	}{
		{"null", Value{}, "NULL"},
		{"true", Value{V: true}, "true"},
		{"false", Value{V: false}, "false"},
		{"integer", Value{V: 42}, "42"},
		{"negative integer", Value{V: -7}, "-7"},
		{"float", Value{V: 1.5}, "1.5"},
		{"string", Value{V: "a"}, "'a'"},
		{"sequence", Value{V: []interface{}{"a", "b", "c"}}, "['a','b','c']"},
		{"mixed sequence", Value{V: []interface{}{1, "a", nil}}, "[1,'a',NULL]"},
		{"tuple", NewTuple(1, "a", true), "(1,'a',true)"},
		{"star", Star{}, "*"},
	} {
		t.Run(tst.name, func(t *testing.T) {
			require.Equal(t, tst.want, tst.term.ToSQL(ansi))
		})
	}
}

func TestFieldRendering(t *testing.T) {
	abc := NewTable("abc")
	f := abc.Field("foo")

	require.Equal(t, `"foo"`, f.ToSQL(ansi))
	require.Equal(t, `"abc"."foo"`, f.ToSQL(RenderOpts{Dialect: PostgreSQL, Qualify: true}))
	require.Equal(t, "foo", f.ToSQL(RenderOpts{Dialect: PostgreSQL, Bare: true}))
	require.Equal(t, "`foo`", f.ToSQL(RenderOpts{Dialect: MySQL}))

	unowned := Field{Name: "foo"}
	require.Equal(t, `"foo"`, unowned.ToSQL(RenderOpts{Dialect: PostgreSQL, Qualify: true}))
}

func TestStarRendering(t *testing.T) {
	abc := NewTable("abc")

	require.Equal(t, "*", abc.Star().ToSQL(ansi))
	require.Equal(t, `"abc".*`, abc.Star().ToSQL(RenderOpts{Dialect: PostgreSQL, Qualify: true}))
	require.Equal(t, "*", Star{}.ToSQL(RenderOpts{Dialect: PostgreSQL, Qualify: true}))
}

func TestValuesRef(t *testing.T) {
	abc := NewTable("abc")

	require.Equal(t, "VALUES(`bar`)", Values(abc.Field("bar")).ToSQL(RenderOpts{Dialect: MySQL}))
}

func TestFunctions(t *testing.T) {
	abc := NewTable("abc")

	require.Equal(t, `CONCAT("bar",'update')`, Concat(abc.Field("bar"), "update").ToSQL(ansi))
	require.Equal(t, `AVG("views")`, Avg(abc.Field("views")).ToSQL(ansi))
	require.Equal(t, "COUNT(*)", Count("*").ToSQL(ansi))
	require.Equal(t, `LOWER("name")`, Fn("LOWER", abc.Field("name")).ToSQL(ansi))
}

func TestExpressionPrecedence(t *testing.T) {
	a := Field{Name: "a"}
	b := Field{Name: "b"}
	c := Field{Name: "c"}
	bare := RenderOpts{Dialect: PostgreSQL, Bare: true}

	// a higher-precedence child of a lower-precedence operator never
	// needs parentheses
	require.Equal(t, "a*b+c", Add(Mul(a, b), c).ToSQL(bare))

	// a lower-precedence child of a higher-precedence operator does
	require.Equal(t, "(a+b)*c", Mul(Add(a, b), c).ToSQL(bare))
	require.Equal(t, "c/(a-b)", Div(c, Sub(a, b)).ToSQL(bare))

	// comparisons bind loosest, so arithmetic operands stay bare
	require.Equal(t, "a+b=c", Eq(Add(a, b), c).ToSQL(bare))

	// equal precedence does not parenthesize
	require.Equal(t, "a+b-c", Sub(Add(a, b), c).ToSQL(bare))
}

func TestComparisonOperators(t *testing.T) {
	a := Field{Name: "a"}
	bare := RenderOpts{Dialect: PostgreSQL, Bare: true}

	require.Equal(t, "a=1", Eq(a, 1).ToSQL(bare))
	require.Equal(t, "a<>1", Ne(a, 1).ToSQL(bare))
	require.Equal(t, "a>1", Gt(a, 1).ToSQL(bare))
	require.Equal(t, "a>=1", Gte(a, 1).ToSQL(bare))
	require.Equal(t, "a<1", Lt(a, 1).ToSQL(bare))
	require.Equal(t, "a<=1", Lte(a, 1).ToSQL(bare))
}

func TestCompositionDoesNotMutate(t *testing.T) {
	a := Field{Name: "a"}
	b := Field{Name: "b"}

	sum := Add(a, b)
	product := Mul(sum, 2)

	bare := RenderOpts{Dialect: PostgreSQL, Bare: true}
	require.Equal(t, "a+b", sum.ToSQL(bare))
	require.Equal(t, "(a+b)*2", product.ToSQL(bare))
	require.Equal(t, "a+b", sum.ToSQL(bare))
}

func TestIsAggregate(t *testing.T) {
	abc := NewTable("abc")

	require.True(t, isAggregate(Avg(abc.Field("views")), PostgreSQL))
	require.True(t, isAggregate(Add(1, Sum(abc.Field("views"))), PostgreSQL))
	require.True(t, isAggregate(Concat(Count("*"), "x"), PostgreSQL))
	require.False(t, isAggregate(Concat(abc.Field("views"), "x"), PostgreSQL))
	require.False(t, isAggregate(abc.Field("views"), PostgreSQL))
	require.False(t, isAggregate(Value{V: 1}, PostgreSQL))
}
