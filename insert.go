package sqlq

import (
	"fmt"
	"strings"
)

// Row is an explicit value row. Pass multiple Row values to a single
// Insert call to append several rows at once; plain values passed to
// Insert form a single row.
type Row []interface{}

// Assignment is an upsert or SET pair of a target field and its value
// term.
type Assignment struct {
	Field Field
	Value Term
}

// InsertStmt represents an INSERT statement: multi-row VALUES,
// INSERT...SELECT, duplicate handling and a RETURNING clause.
type InsertStmt struct {
	*Statement
	Table       Table
	InsCols     []Field
	Rows        [][]Term
	Source      *SelectStmt
	Assignments []Assignment
	Return      []Term
	IgnoreDups  bool

	returnStar bool
}

// Columns appends to the explicit insert-column list. Repeated calls
// append. If value rows were already added, the new column count must
// match their arity.
func (stmt *InsertStmt) Columns(cols ...Field) *InsertStmt {
	if stmt.err != nil {
		return stmt
	}

	stmt.InsCols = append(stmt.InsCols, cols...)

	if len(stmt.Rows) > 0 && len(stmt.Rows[0]) != len(stmt.InsCols) {
		stmt.fail(ArityMismatchError{Expected: len(stmt.InsCols), Got: len(stmt.Rows[0])})
	}

	return stmt
}

// Insert appends one or more value rows. Plain values form a single
// row; Row values each form their own row. Every appended row must
// match the arity of previously appended rows and of the explicit
// column list, if set. Calling Insert with no arguments appends
// nothing.
func (stmt *InsertStmt) Insert(vals ...interface{}) *InsertStmt {
	if stmt.err != nil || len(vals) == 0 {
		return stmt
	}

	if stmt.Source != nil {
		stmt.fail(ConfigurationError{Msg: "cannot mix value rows with a SELECT source"})
		return stmt
	}

	var rows []Row
	if _, grouped := vals[0].(Row); grouped {
		for _, v := range vals {
			row, ok := v.(Row)
			if !ok {
				stmt.fail(ConfigurationError{Msg: "cannot mix row groups and plain values in one Insert call"})
				return stmt
			}
			rows = append(rows, row)
		}
	} else {
		for _, v := range vals {
			if _, ok := v.(Row); ok {
				stmt.fail(ConfigurationError{Msg: "cannot mix row groups and plain values in one Insert call"})
				return stmt
			}
		}
		rows = []Row{vals}
	}

	for _, row := range rows {
		if expected := stmt.arity(); expected >= 0 && len(row) != expected {
			stmt.fail(ArityMismatchError{Expected: expected, Got: len(row)})
			return stmt
		}
		stmt.Rows = append(stmt.Rows, terms(row))
	}

	return stmt
}

// arity returns the row arity the statement is committed to, or -1 when
// no columns or rows constrain it yet.
func (stmt *InsertStmt) arity() int {
	if len(stmt.InsCols) > 0 {
		return len(stmt.InsCols)
	}
	if len(stmt.Rows) > 0 {
		return len(stmt.Rows[0])
	}
	return -1
}

// FromSelect sets a sub-query as the statement's row source
// (INSERT...SELECT). It cannot be combined with value rows.
func (stmt *InsertStmt) FromSelect(sel *SelectStmt) *InsertStmt {
	if stmt.err != nil {
		return stmt
	}

	if len(stmt.Rows) > 0 {
		stmt.fail(ConfigurationError{Msg: "cannot mix a SELECT source with value rows"})
		return stmt
	}

	stmt.Source = sel

	return stmt
}

// Ignore sets the ignore-duplicates flag, rendered as the dialect's
// INSERT IGNORE keyword. The bound dialect must support it.
func (stmt *InsertStmt) Ignore() *InsertStmt {
	if stmt.err != nil {
		return stmt
	}

	if !stmt.Dialect.Supports(CapIgnore) {
		stmt.fail(UnsupportedOperationError{Dialect: stmt.Dialect.Name, Operation: "INSERT IGNORE"})
		return stmt
	}

	stmt.IgnoreDups = true

	return stmt
}

// OnDuplicateKeyUpdate appends an upsert assignment pair. Repeated
// calls accumulate in call order. Use Values(field) as the value to
// refer to the row value being inserted. The bound dialect must support
// upserts.
func (stmt *InsertStmt) OnDuplicateKeyUpdate(field Field, value interface{}) *InsertStmt {
	if stmt.err != nil {
		return stmt
	}

	if !stmt.Dialect.Supports(CapUpsert) {
		stmt.fail(UnsupportedOperationError{Dialect: stmt.Dialect.Name, Operation: "ON DUPLICATE KEY UPDATE"})
		return stmt
	}

	stmt.Assignments = append(stmt.Assignments, Assignment{Field: field, Value: term(value)})

	return stmt
}

// Returning appends terms to the RETURNING list. Strings are coerced to
// bare field references ("*" to the wildcard), nil to NULL. Aggregate
// terms and fields of tables other than the statement's own target are
// rejected at the call. Once the wildcard is present it subsumes all
// field-level terms. The bound dialect must support RETURNING.
func (stmt *InsertStmt) Returning(vals ...interface{}) *InsertStmt {
	if stmt.err != nil {
		return stmt
	}

	stmt.appendReturning(&stmt.Return, &stmt.returnStar, stmt.Table, vals)

	return stmt
}

// ToSQL renders the INSERT statement. A statement with no value rows
// and no SELECT source renders as the empty string, regardless of any
// other configured clause.
func (stmt *InsertStmt) ToSQL() (asSQL string, err error) {
	if stmt.err != nil {
		return "", stmt.err
	}

	if len(stmt.Rows) == 0 && stmt.Source == nil {
		return "", nil
	}

	d := stmt.Dialect
	opts := RenderOpts{Dialect: d}

	verb := "INSERT INTO"
	if stmt.IgnoreDups {
		verb = "INSERT IGNORE INTO"
	}

	clauses := []string{verb + " " + d.Quote(stmt.Table.Name)}

	if len(stmt.InsCols) > 0 {
		cols := make([]string, len(stmt.InsCols))
		for i, col := range stmt.InsCols {
			cols[i] = d.Quote(col.Name)
		}
		clauses = append(clauses, "("+strings.Join(cols, ",")+")")
	}

	if stmt.Source != nil {
		srcSQL, err := stmt.Source.ToSQL()
		if err != nil {
			return "", err
		}
		clauses = append(clauses, srcSQL)
	} else {
		groups := make([]string, len(stmt.Rows))
		for i, row := range stmt.Rows {
			groups[i] = "(" + joinTerms(row, opts) + ")"
		}
		clauses = append(clauses, "VALUES "+strings.Join(groups, ","))
	}

	if len(stmt.Assignments) > 0 {
		pairs := make([]string, len(stmt.Assignments))
		for i, a := range stmt.Assignments {
			pairs[i] = a.Field.ToSQL(opts) + "=" + a.Value.ToSQL(opts)
		}
		clauses = append(clauses, "ON DUPLICATE KEY UPDATE "+strings.Join(pairs, ","))
	}

	if len(stmt.Return) > 0 {
		clauses = append(clauses, "RETURNING "+joinTerms(stmt.Return, RenderOpts{Dialect: d, Bare: true}))
	}

	asSQL = strings.Join(clauses, " ")
	stmt.rendered("insert", asSQL)

	return asSQL, nil
}

// String renders the statement, returning the empty string if a
// builder call recorded an error.
func (stmt *InsertStmt) String() string {
	asSQL, err := stmt.ToSQL()
	if err != nil {
		return ""
	}
	return asSQL
}

// appendReturning validates and appends RETURNING terms for a target
// table. Shared by the INSERT and UPDATE builders.
func (stmt *Statement) appendReturning(ret *[]Term, star *bool, target Table, vals []interface{}) {
	if !stmt.Dialect.Supports(CapReturning) {
		stmt.fail(UnsupportedOperationError{Dialect: stmt.Dialect.Name, Operation: "RETURNING"})
		return
	}

	for _, v := range vals {
		t := projectionTerm(v)

		if s, ok := t.(Star); ok {
			if !*star {
				kept := make([]Term, 0, len(*ret))
				for _, r := range *ret {
					if _, isField := r.(Field); !isField {
						kept = append(kept, r)
					}
				}
				*ret = append(kept, s)
				*star = true
			}
			continue
		}

		if *star {
			if _, isField := t.(Field); isField {
				continue
			}
		}

		if isAggregate(t, stmt.Dialect) {
			stmt.fail(ValidationError{Msg: "aggregate functions cannot be returned"})
			return
		}

		if f, ok := t.(Field); ok && f.Table != "" && f.Table != target.Name {
			stmt.fail(ValidationError{Msg: fmt.Sprintf("cannot return field %s of foreign table %s", f.Name, f.Table)})
			return
		}

		*ret = append(*ret, t)
	}
}
