package sqlq

import (
	"fmt"
	"strings"
)

// Capability identifies an optional clause a dialect may support.
// Statements refuse to accumulate state for clauses their bound dialect
// cannot render.
type Capability int

const (
	// CapReturning is the RETURNING clause on INSERT/UPDATE statements.
	CapReturning Capability = iota
	// CapUpsert is the ON DUPLICATE KEY UPDATE clause.
	CapUpsert
	// CapIgnore is the INSERT IGNORE duplicate-skipping keyword.
	CapIgnore
)

// String returns the SQL keyword surface of the capability.
func (c Capability) String() string {
	return []string{"RETURNING", "ON DUPLICATE KEY UPDATE", "INSERT IGNORE"}[int(c)]
}

// Dialect is a policy set governing identifier quoting, literal
// formatting and clause capabilities for a target database family. The
// zero value quotes nothing and supports no optional clauses.
type Dialect struct {
	// Name identifies the dialect in logs and error messages.
	Name string
	// QuoteChar wraps identifiers. Empty means no quoting.
	QuoteChar string
	// Returning enables the RETURNING clause.
	Returning bool
	// Upsert enables ON DUPLICATE KEY UPDATE assignments.
	Upsert bool
	// Ignore enables the INSERT IGNORE keyword.
	Ignore bool

	aggregates map[string]struct{}
}

// PostgreSQL is the ANSI-style profile: identifiers quoted with double
// quotes, RETURNING supported, no upsert-by-values syntax.
//
// MySQL is the MySQL-style profile: identifiers quoted with backticks,
// INSERT IGNORE and ON DUPLICATE KEY UPDATE supported, no RETURNING.
var (
	PostgreSQL = Dialect{Name: "postgres", QuoteChar: `"`, Returning: true}
	MySQL      = Dialect{Name: "mysql", QuoteChar: "`", Upsert: true, Ignore: true}
)

// Quote wraps an identifier in the dialect's quote character.
func (d Dialect) Quote(ident string) string {
	return d.QuoteChar + ident + d.QuoteChar
}

// Supports reports whether the dialect can render the clause identified
// by the capability.
func (d Dialect) Supports(c Capability) bool {
	switch c {
	case CapReturning:
		return d.Returning
	case CapUpsert:
		return d.Upsert
	case CapIgnore:
		return d.Ignore
	}
	return false
}

// IsAggregate reports whether the dialect classifies the named function
// as an aggregate, beyond the built-in aggregate constructors. Names
// are matched case-insensitively.
func (d Dialect) IsAggregate(name string) bool {
	if d.aggregates == nil {
		return false
	}
	_, ok := d.aggregates[strings.ToUpper(name)]
	return ok
}

// FormatValue renders a literal value as SQL text: NULL for nil,
// lowercase true/false for booleans, bare digits for numbers,
// single-quoted text for strings and [e1,e2,...] for ordered
// sequences. Terms are rendered through their own entry point.
func (d Dialect) FormatValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return "'" + v + "'"
	case []interface{}:
		elems := make([]string, len(v))
		for i, e := range v {
			elems[i] = d.FormatValue(e)
		}
		return "[" + strings.Join(elems, ",") + "]"
	case Term:
		return v.ToSQL(RenderOpts{Dialect: d})
	default:
		return fmt.Sprintf("%v", v)
	}
}
