package sqlq

import "strings"

// Operator precedence ranks. A higher rank binds tighter; a child
// expression is parenthesized only when its rank is lower than the rank
// of the operator it is nested under.
const (
	precComparison = 10
	precAddSub     = 20
	precMulDiv     = 30
	precAtomic     = 100
)

// RenderOpts controls how a Term is rendered into SQL text.
type RenderOpts struct {
	// Dialect supplies identifier quoting and literal formatting.
	Dialect Dialect
	// Qualify prefixes field references with their owning table. This
	// is turned on when a statement selects from more than one table.
	Qualify bool
	// Bare skips identifier quoting. RETURNING clauses render their
	// terms bare.
	Bare bool
}

// Term is a node of the expression tree rendered into SQL text. All
// terms are immutable once constructed; composing two terms yields a
// new term and never mutates the operands.
type Term interface {
	// ToSQL renders the term into SQL text using the provided options.
	ToSQL(opts RenderOpts) string

	// Precedence returns the term's operator precedence rank, used by
	// binary expressions to decide on parenthesization.
	Precedence() int
}

// Criterion is a boolean-valued Term used as a join or filter
// predicate. The comparison constructors (Eq, Ne, Gt, ...) all return
// criteria.
type Criterion = Expr

// Table is an opaque reference to a database table. It only carries a
// display name; no schema introspection ever takes place.
type Table struct {
	Name string
}

// NewTable creates a reference to the named table.
func NewTable(name string) Table {
	return Table{Name: name}
}

// Field returns a reference to the named field owned by this table.
func (t Table) Field(name string) Field {
	return Field{Table: t.Name, Name: name}
}

// Star returns the table-qualified wildcard term (table.*).
func (t Table) Star() Star {
	return Star{Table: t.Name}
}

// ToSQL renders the quoted table name.
func (t Table) ToSQL(opts RenderOpts) string {
	return opts.Dialect.Quote(t.Name)
}

// Field is a reference to a table field. Table may be empty when the
// field is unambiguous without qualification.
type Field struct {
	Table string
	Name  string
}

// ToSQL renders the field name, quoted unless opts.Bare is set, and
// table-qualified when opts.Qualify is set and the field has an owner.
func (f Field) ToSQL(opts RenderOpts) string {
	name := f.Name
	if !opts.Bare {
		name = opts.Dialect.Quote(name)
	}

	if opts.Qualify && f.Table != "" {
		table := f.Table
		if !opts.Bare {
			table = opts.Dialect.Quote(table)
		}
		return table + "." + name
	}

	return name
}

// Precedence implements the Term interface.
func (f Field) Precedence() int { return precAtomic }

// Value is a literal term: nil, a boolean, a number, a string, or an
// ordered sequence of such values. Rendering is delegated to the
// dialect's literal formatting rules.
type Value struct {
	V interface{}
}

// ToSQL renders the literal using the dialect's formatting rules.
func (v Value) ToSQL(opts RenderOpts) string {
	return opts.Dialect.FormatValue(v.V)
}

// Precedence implements the Term interface.
func (v Value) Precedence() int { return precAtomic }

// Tuple is an ordered group of terms rendered as (e1,e2,...).
type Tuple struct {
	Terms []Term
}

// NewTuple creates a tuple from the provided values. Values that are
// not already terms are wrapped as literals.
func NewTuple(vals ...interface{}) Tuple {
	return Tuple{Terms: terms(vals)}
}

// ToSQL renders the parenthesized, comma-joined tuple elements.
func (t Tuple) ToSQL(opts RenderOpts) string {
	return "(" + joinTerms(t.Terms, opts) + ")"
}

// Precedence implements the Term interface.
func (t Tuple) Precedence() int { return precAtomic }

// Star is the wildcard term. It renders as * or, when qualified and
// owned, as table.*.
type Star struct {
	Table string
}

// ToSQL renders the wildcard.
func (s Star) ToSQL(opts RenderOpts) string {
	if opts.Qualify && s.Table != "" {
		if opts.Bare {
			return s.Table + ".*"
		}
		return opts.Dialect.Quote(s.Table) + ".*"
	}
	return "*"
}

// Precedence implements the Term interface.
func (s Star) Precedence() int { return precAtomic }

// Func is a function call term with an ordered argument list. The
// Aggregate flag marks SQL aggregate functions, which are rejected in
// RETURNING clauses.
type Func struct {
	Name      string
	Args      []Term
	Aggregate bool
}

// Fn creates a call to an arbitrary (non-aggregate) function.
// Arguments that are not already terms are wrapped as literals.
func Fn(name string, args ...interface{}) Func {
	return Func{Name: name, Args: terms(args)}
}

// Concat creates a CONCAT function call.
func Concat(args ...interface{}) Func {
	return Fn("CONCAT", args...)
}

// Avg creates an AVG aggregate function call.
func Avg(arg interface{}) Func {
	return Func{Name: "AVG", Args: []Term{term(arg)}, Aggregate: true}
}

// Sum creates a SUM aggregate function call.
func Sum(arg interface{}) Func {
	return Func{Name: "SUM", Args: []Term{term(arg)}, Aggregate: true}
}

// Count creates a COUNT aggregate function call. Pass "*" to count
// rows.
func Count(arg interface{}) Func {
	if s, ok := arg.(string); ok && s == "*" {
		arg = Star{}
	}
	return Func{Name: "COUNT", Args: []Term{term(arg)}, Aggregate: true}
}

// Min creates a MIN aggregate function call.
func Min(arg interface{}) Func {
	return Func{Name: "MIN", Args: []Term{term(arg)}, Aggregate: true}
}

// Max creates a MAX aggregate function call.
func Max(arg interface{}) Func {
	return Func{Name: "MAX", Args: []Term{term(arg)}, Aggregate: true}
}

// ToSQL renders the function call as NAME(arg1,arg2,...).
func (f Func) ToSQL(opts RenderOpts) string {
	return f.Name + "(" + joinTerms(f.Args, opts) + ")"
}

// Precedence implements the Term interface.
func (f Func) Precedence() int { return precAtomic }

// ValuesRef wraps a field reference to mean "the value currently being
// inserted for this field". It renders as VALUES(field) and is only
// meaningful inside an ON DUPLICATE KEY UPDATE assignment.
type ValuesRef struct {
	Field Field
}

// Values creates a value-reference marker for the provided field.
func Values(f Field) ValuesRef {
	return ValuesRef{Field: f}
}

// ToSQL renders the VALUES(field) marker.
func (v ValuesRef) ToSQL(opts RenderOpts) string {
	return "VALUES(" + v.Field.ToSQL(opts) + ")"
}

// Precedence implements the Term interface.
func (v ValuesRef) Precedence() int { return precAtomic }

// Expr is a binary operator applied to two terms. Operands whose
// precedence rank is lower than the operator's are parenthesized.
type Expr struct {
	Op    string
	Left  Term
	Right Term
	Prec  int
}

// Add creates an addition expression ("+" operator).
func Add(left, right interface{}) Expr {
	return Expr{"+", term(left), term(right), precAddSub}
}

// Sub creates a subtraction expression ("-" operator).
func Sub(left, right interface{}) Expr {
	return Expr{"-", term(left), term(right), precAddSub}
}

// Mul creates a multiplication expression ("*" operator).
func Mul(left, right interface{}) Expr {
	return Expr{"*", term(left), term(right), precMulDiv}
}

// Div creates a division expression ("/" operator).
func Div(left, right interface{}) Expr {
	return Expr{"/", term(left), term(right), precMulDiv}
}

// Eq creates an equality criterion ("=" operator). An equality between
// fields of two different tables is the building block for JOIN
// predicates.
func Eq(left, right interface{}) Criterion {
	return Expr{"=", term(left), term(right), precComparison}
}

// Ne creates a non-equality criterion ("<>" operator).
func Ne(left, right interface{}) Criterion {
	return Expr{"<>", term(left), term(right), precComparison}
}

// Gt creates a greater-than criterion (">" operator).
func Gt(left, right interface{}) Criterion {
	return Expr{">", term(left), term(right), precComparison}
}

// Gte creates a greater-than-or-equals criterion (">=" operator).
func Gte(left, right interface{}) Criterion {
	return Expr{">=", term(left), term(right), precComparison}
}

// Lt creates a less-than criterion ("<" operator).
func Lt(left, right interface{}) Criterion {
	return Expr{"<", term(left), term(right), precComparison}
}

// Lte creates a less-than-or-equals criterion ("<=" operator).
func Lte(left, right interface{}) Criterion {
	return Expr{"<=", term(left), term(right), precComparison}
}

// ToSQL renders the expression, parenthesizing operands that bind
// looser than the operator itself.
func (e Expr) ToSQL(opts RenderOpts) string {
	left := e.Left.ToSQL(opts)
	if e.Left.Precedence() < e.Prec {
		left = "(" + left + ")"
	}

	right := e.Right.ToSQL(opts)
	if e.Right.Precedence() < e.Prec {
		right = "(" + right + ")"
	}

	return left + e.Op + right
}

// Precedence implements the Term interface.
func (e Expr) Precedence() int { return e.Prec }

// term coerces a plain value into a Term. Values that already implement
// Term are used as-is; anything else becomes a literal.
func term(v interface{}) Term {
	if t, ok := v.(Term); ok {
		return t
	}
	return Value{V: v}
}

// projectionTerm coerces a SELECT or RETURNING argument into a Term:
// "*" becomes the wildcard, other strings become unowned field
// references, nil becomes the NULL literal.
func projectionTerm(v interface{}) Term {
	if s, ok := v.(string); ok {
		if s == "*" {
			return Star{}
		}
		return Field{Name: s}
	}
	return term(v)
}

func terms(vals []interface{}) []Term {
	ts := make([]Term, len(vals))
	for i, v := range vals {
		ts[i] = term(v)
	}
	return ts
}

func joinTerms(ts []Term, opts RenderOpts) string {
	rendered := make([]string, len(ts))
	for i, t := range ts {
		rendered[i] = t.ToSQL(opts)
	}
	return strings.Join(rendered, ",")
}

// isAggregate reports whether a term is, or contains, an aggregate
// function call. Aggregation propagates through binary expressions and
// function arguments.
func isAggregate(t Term, d Dialect) bool {
	switch t := t.(type) {
	case Func:
		if t.Aggregate || d.IsAggregate(t.Name) {
			return true
		}
		for _, arg := range t.Args {
			if isAggregate(arg, d) {
				return true
			}
		}
	case Expr:
		return isAggregate(t.Left, d) || isAggregate(t.Right, d)
	}
	return false
}
