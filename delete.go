package sqlq

import "strings"

// DeleteStmt represents a DELETE statement.
type DeleteStmt struct {
	*Statement
	Table      Table
	Conditions []Term
}

// Where appends one or more WHERE criteria. Multiple criteria are AND
// conditions.
func (stmt *DeleteStmt) Where(conds ...Term) *DeleteStmt {
	stmt.Conditions = append(stmt.Conditions, conds...)
	return stmt
}

// ToSQL renders the DELETE statement.
func (stmt *DeleteStmt) ToSQL() (asSQL string, err error) {
	if stmt.err != nil {
		return "", stmt.err
	}

	d := stmt.Dialect
	opts := RenderOpts{Dialect: d}

	clauses := []string{"DELETE FROM " + d.Quote(stmt.Table.Name)}

	if len(stmt.Conditions) > 0 {
		clauses = append(clauses, "WHERE "+joinConditions(stmt.Conditions, opts))
	}

	asSQL = strings.Join(clauses, " ")
	stmt.rendered("delete", asSQL)

	return asSQL, nil
}

// String renders the statement.
func (stmt *DeleteStmt) String() string {
	asSQL, err := stmt.ToSQL()
	if err != nil {
		return ""
	}
	return asSQL
}
