package sqlq

import "strings"

// UpdateStmt represents an UPDATE statement.
type UpdateStmt struct {
	*Statement
	Table       Table
	Assignments []Assignment
	Conditions  []Term
	Return      []Term

	returnStar bool
}

// Set appends an assignment of a value to a field. Multiple calls to
// Set can be chained to modify multiple fields; assignments render in
// call order.
func (stmt *UpdateStmt) Set(field Field, value interface{}) *UpdateStmt {
	if stmt.err != nil {
		return stmt
	}

	stmt.Assignments = append(stmt.Assignments, Assignment{Field: field, Value: term(value)})

	return stmt
}

// Where appends one or more WHERE criteria. Multiple criteria are AND
// conditions.
func (stmt *UpdateStmt) Where(conds ...Term) *UpdateStmt {
	stmt.Conditions = append(stmt.Conditions, conds...)
	return stmt
}

// Returning appends terms to the RETURNING list, under the same
// validation and capability rules as InsertStmt.Returning.
func (stmt *UpdateStmt) Returning(vals ...interface{}) *UpdateStmt {
	if stmt.err != nil {
		return stmt
	}

	stmt.appendReturning(&stmt.Return, &stmt.returnStar, stmt.Table, vals)

	return stmt
}

// ToSQL renders the UPDATE statement. A statement with no assignments
// renders as the empty string.
func (stmt *UpdateStmt) ToSQL() (asSQL string, err error) {
	if stmt.err != nil {
		return "", stmt.err
	}

	if len(stmt.Assignments) == 0 {
		return "", nil
	}

	d := stmt.Dialect
	opts := RenderOpts{Dialect: d}

	clauses := []string{"UPDATE " + d.Quote(stmt.Table.Name)}

	pairs := make([]string, len(stmt.Assignments))
	for i, a := range stmt.Assignments {
		pairs[i] = a.Field.ToSQL(opts) + "=" + a.Value.ToSQL(opts)
	}
	clauses = append(clauses, "SET "+strings.Join(pairs, ","))

	if len(stmt.Conditions) > 0 {
		clauses = append(clauses, "WHERE "+joinConditions(stmt.Conditions, opts))
	}

	if len(stmt.Return) > 0 {
		clauses = append(clauses, "RETURNING "+joinTerms(stmt.Return, RenderOpts{Dialect: d, Bare: true}))
	}

	asSQL = strings.Join(clauses, " ")
	stmt.rendered("update", asSQL)

	return asSQL, nil
}

// String renders the statement, returning the empty string if a
// builder call recorded an error.
func (stmt *UpdateStmt) String() string {
	asSQL, err := stmt.ToSQL()
	if err != nil {
		return ""
	}
	return asSQL
}
