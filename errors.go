package sqlq

import "fmt"

// ArityMismatchError is returned when a value row disagrees with the
// arity of previously appended rows or with the explicit column list.
// It is detected at the offending Insert or Columns call, never at
// render time.
type ArityMismatchError struct {
	Expected int
	Got      int
}

func (e ArityMismatchError) Error() string {
	return fmt.Sprintf("row has %d values, expected %d", e.Got, e.Expected)
}

// UnsupportedOperationError is returned when a clause is requested from
// a dialect that cannot render it, e.g. Returning under MySQL or
// OnDuplicateKeyUpdate under PostgreSQL.
type UnsupportedOperationError struct {
	Dialect   string
	Operation string
}

func (e UnsupportedOperationError) Error() string {
	return fmt.Sprintf("dialect %s does not support %s", e.Dialect, e.Operation)
}

// ValidationError is returned when a term fails clause validation, e.g.
// an aggregate function or a foreign table's field appended to a
// RETURNING list.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

// ConfigurationError is returned when a statement is driven into a
// shape it cannot take, e.g. mixing VALUES rows with a SELECT source.
type ConfigurationError struct {
	Msg string
}

func (e ConfigurationError) Error() string {
	return e.Msg
}
