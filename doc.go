// Package sqlq is an un-opinionated SQL statement builder that turns a
// fluent, chainable API into dialect-specific SQL text. It never opens
// a database connection; the rendered string is handed to whatever
// driver or client the caller already uses.
//
// Statements are created through a Query factory bound to a dialect
// profile (PostgreSQL-style or MySQL-style are shipped, custom profiles
// can be defined in YAML via ParseDialectConfig). Each builder call
// validates its input eagerly: arity mismatches, dialect-incapable
// clauses and invalid RETURNING targets are recorded at the offending
// call and surfaced by ToSQL, so a statement that renders successfully
// is guaranteed well-formed.
//
//	import (
//		"fmt"
//		"github.com/sqlq-dev/sqlq"
//	)
//
//	func main() {
//		abc := sqlq.NewTable("abc")
//
//		q := sqlq.New(sqlq.PostgreSQL)
//		sql, err := q.Into(abc).
//			Columns(abc.Field("id"), abc.Field("name")).
//			Insert(1, "My Name").
//			Returning(abc.Star()).
//			ToSQL()
//		if err != nil {
//			panic(err)
//		}
//
//		// INSERT INTO "abc" ("id","name") VALUES (1,'My Name') RETURNING *
//		fmt.Println(sql)
//	}
//
// Builders are owned, mutable values: every chained call returns the
// same statement pointer, so a statement must not be mutated from
// multiple goroutines. Rendering reads only and is idempotent; a
// finished statement may be rendered concurrently and repeatedly.
package sqlq
