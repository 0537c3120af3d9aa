package sqlq

import "log/slog"

// Query is a statement factory bound to a dialect. Every statement it
// creates renders against that dialect and shares the factory's error
// handlers, logger and statistics collector.
type Query struct {
	// Dialect is the policy bound to all statements the factory
	// creates.
	Dialect Dialect
	// ErrHandlers is a list of error handler functions copied onto
	// every created statement.
	ErrHandlers []func(err error)

	logger *slog.Logger
	stats  *BuildStats
}

// Option configures a Query factory.
type Option func(*Query)

// WithLogger makes the factory's statements log every completed render
// at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(q *Query) {
		q.logger = l
	}
}

// WithStats attaches a statistics collector counting created statements
// and completed renders.
func WithStats(s *BuildStats) Option {
	return func(q *Query) {
		q.stats = s
	}
}

// WithErrHandler appends an error handler executed whenever a builder
// call on one of the factory's statements records an error.
func WithErrHandler(h func(err error)) Option {
	return func(q *Query) {
		q.ErrHandlers = append(q.ErrHandlers, h)
	}
}

// New creates a statement factory for the provided dialect.
func New(d Dialect, opts ...Option) *Query {
	q := &Query{Dialect: d}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *Query) statement() *Statement {
	return &Statement{
		Dialect:     q.Dialect,
		ErrHandlers: q.ErrHandlers,
		logger:      q.logger,
		stats:       q.stats,
	}
}

// Into creates a new InsertStmt targeting the provided table.
func (q *Query) Into(table Table) *InsertStmt {
	if q.stats != nil {
		q.stats.Inserts.Add(1)
	}
	return &InsertStmt{
		Statement: q.statement(),
		Table:     table,
	}
}

// From creates a new SelectStmt reading from the provided table.
func (q *Query) From(table Table) *SelectStmt {
	if q.stats != nil {
		q.stats.Selects.Add(1)
	}
	return &SelectStmt{
		Statement: q.statement(),
		Table:     table,
	}
}

// Update creates a new UpdateStmt for the provided table.
func (q *Query) Update(table Table) *UpdateStmt {
	if q.stats != nil {
		q.stats.Updates.Add(1)
	}
	return &UpdateStmt{
		Statement: q.statement(),
		Table:     table,
	}
}

// DeleteFrom creates a new DeleteStmt for the provided table.
func (q *Query) DeleteFrom(table Table) *DeleteStmt {
	if q.stats != nil {
		q.stats.Deletes.Add(1)
	}
	return &DeleteStmt{
		Statement: q.statement(),
		Table:     table,
	}
}
