package sqlq

import "log/slog"

// SQLStmt is an interface representing a general SQL statement. All
// specific statement types (e.g. InsertStmt, SelectStmt, etc.)
// implement this interface.
type SQLStmt interface {
	ToSQL() (string, error)
}

// Statement is a base struct embedded by all statement types. It binds
// the statement to its dialect and carries the error handlers,
// recording the first error raised by a builder call.
type Statement struct {
	// Dialect is the policy the statement renders against.
	Dialect Dialect
	// ErrHandlers is a list of error handler functions, executed
	// whenever a builder call records an error.
	ErrHandlers []func(err error)

	logger *slog.Logger
	stats  *BuildStats
	err    error
}

// Err returns the first error recorded by a builder call, or nil if
// the accumulated state is valid.
func (stmt *Statement) Err() error {
	return stmt.err
}

// HandleError receives an error value, and executes all of the
// statement's error handlers with it.
func (stmt *Statement) HandleError(err error) {
	for _, handler := range stmt.ErrHandlers {
		handler(err)
	}
}

// fail records an error at the offending builder call. The first error
// wins; handlers fire for every error.
func (stmt *Statement) fail(err error) {
	if stmt.err == nil {
		stmt.err = err
	}
	stmt.HandleError(err)
}

// rendered reports a completed render to the statement's logger and
// statistics collector.
func (stmt *Statement) rendered(kind, asSQL string) {
	if stmt.stats != nil {
		stmt.stats.Renders.Add(1)
	}
	if stmt.logger != nil {
		stmt.logger.Debug("statement rendered",
			"dialect", stmt.Dialect.Name,
			"kind", kind,
			"sql", asSQL,
		)
	}
}
