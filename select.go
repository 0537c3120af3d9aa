package sqlq

import "strings"

// JoinType is an enumerated type representing the type of a JOIN clause
// (plain, INNER, LEFT, RIGHT or FULL).
type JoinType int

// String returns the string representation of the join type (e.g.
// "FULL JOIN").
func (j JoinType) String() string {
	return []string{"JOIN", "INNER JOIN", "LEFT JOIN", "RIGHT JOIN", "FULL JOIN"}[int(j)]
}

// PlainJoin represents an unqualified JOIN
// InnerJoin represents an inner join
// LeftJoin represents a left join
// RightJoin represents a right join
// FullJoin represents a full join
const (
	PlainJoin JoinType = iota
	InnerJoin
	LeftJoin
	RightJoin
	FullJoin
)

// JoinClause represents a JOIN clause in a SELECT statement, carrying
// its own predicate criterion.
type JoinClause struct {
	Type  JoinType
	Table Table
	Cond  Term
}

// JoinStep is the intermediate state between Join(table) and
// On(criterion).
type JoinStep struct {
	stmt     *SelectStmt
	joinType JoinType
	table    Table
}

// On sets the join predicate and returns the statement.
func (j *JoinStep) On(cond Term) *SelectStmt {
	j.stmt.Joins = append(j.stmt.Joins, JoinClause{Type: j.joinType, Table: j.table, Cond: cond})
	return j.stmt
}

// SelectStmt represents a SELECT statement, including the SELECT...INTO
// variant and the source sub-query of INSERT...SELECT.
type SelectStmt struct {
	*Statement
	IsDistinct bool
	Columns    []Term
	Table      Table
	IntoTable  Table
	Joins      []JoinClause
	Conditions []Term
}

// Distinct marks the statement as a SELECT DISTINCT statement.
func (stmt *SelectStmt) Distinct() *SelectStmt {
	stmt.IsDistinct = true
	return stmt
}

// Select appends terms to the selected list. Strings are coerced to
// field references ("*" to the wildcard). Repeated calls accumulate,
// supporting "select some now, more after a join" composition.
func (stmt *SelectStmt) Select(vals ...interface{}) *SelectStmt {
	for _, v := range vals {
		stmt.Columns = append(stmt.Columns, projectionTerm(v))
	}
	return stmt
}

// Into sets the target table of a SELECT...INTO statement.
func (stmt *SelectStmt) Into(table Table) *SelectStmt {
	if stmt.err != nil {
		return stmt
	}

	if stmt.IntoTable.Name != "" {
		stmt.fail(ConfigurationError{Msg: "INTO table already set"})
		return stmt
	}

	stmt.IntoTable = table

	return stmt
}

// Join starts a plain JOIN on the provided table; complete it with On.
// Multiple joins accumulate independently, each with its own predicate.
func (stmt *SelectStmt) Join(table Table) *JoinStep {
	return &JoinStep{stmt: stmt, joinType: PlainJoin, table: table}
}

// InnerJoin starts an INNER JOIN on the provided table.
func (stmt *SelectStmt) InnerJoin(table Table) *JoinStep {
	return &JoinStep{stmt: stmt, joinType: InnerJoin, table: table}
}

// LeftJoin starts a LEFT JOIN on the provided table.
func (stmt *SelectStmt) LeftJoin(table Table) *JoinStep {
	return &JoinStep{stmt: stmt, joinType: LeftJoin, table: table}
}

// RightJoin starts a RIGHT JOIN on the provided table.
func (stmt *SelectStmt) RightJoin(table Table) *JoinStep {
	return &JoinStep{stmt: stmt, joinType: RightJoin, table: table}
}

// FullJoin starts a FULL JOIN on the provided table.
func (stmt *SelectStmt) FullJoin(table Table) *JoinStep {
	return &JoinStep{stmt: stmt, joinType: FullJoin, table: table}
}

// Where appends one or more WHERE criteria. Multiple criteria are AND
// conditions.
func (stmt *SelectStmt) Where(conds ...Term) *SelectStmt {
	stmt.Conditions = append(stmt.Conditions, conds...)
	return stmt
}

// ToSQL renders the SELECT statement. Field references are rendered
// table-qualified when the statement has one or more joins.
func (stmt *SelectStmt) ToSQL() (asSQL string, err error) {
	if stmt.err != nil {
		return "", stmt.err
	}

	d := stmt.Dialect
	opts := RenderOpts{Dialect: d, Qualify: len(stmt.Joins) > 0}

	clauses := []string{"SELECT"}

	if stmt.IsDistinct {
		clauses = append(clauses, "DISTINCT")
	}

	if len(stmt.Columns) == 0 {
		clauses = append(clauses, "*")
	} else {
		clauses = append(clauses, joinTerms(stmt.Columns, opts))
	}

	if stmt.IntoTable.Name != "" {
		clauses = append(clauses, "INTO "+d.Quote(stmt.IntoTable.Name))
	}

	clauses = append(clauses, "FROM "+d.Quote(stmt.Table.Name))

	for _, join := range stmt.Joins {
		clauses = append(clauses, join.Type.String()+" "+d.Quote(join.Table.Name)+" ON "+join.Cond.ToSQL(opts))
	}

	if len(stmt.Conditions) > 0 {
		clauses = append(clauses, "WHERE "+joinConditions(stmt.Conditions, opts))
	}

	asSQL = strings.Join(clauses, " ")
	stmt.rendered("select", asSQL)

	return asSQL, nil
}

// String renders the statement, returning the empty string if a
// builder call recorded an error.
func (stmt *SelectStmt) String() string {
	asSQL, err := stmt.ToSQL()
	if err != nil {
		return ""
	}
	return asSQL
}

func joinConditions(conds []Term, opts RenderOpts) string {
	rendered := make([]string, len(conds))
	for i, cond := range conds {
		rendered[i] = cond.ToSQL(opts)
	}
	return strings.Join(rendered, " AND ")
}
