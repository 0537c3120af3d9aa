package sqlq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	require.Equal(t, `"abc"`, PostgreSQL.Quote("abc"))
	require.Equal(t, "`abc`", MySQL.Quote("abc"))
	require.Equal(t, "abc", Dialect{}.Quote("abc"))
}

func TestSupports(t *testing.T) {
	require.True(t, PostgreSQL.Supports(CapReturning))
	require.False(t, PostgreSQL.Supports(CapUpsert))
	require.False(t, PostgreSQL.Supports(CapIgnore))

	require.False(t, MySQL.Supports(CapReturning))
	require.True(t, MySQL.Supports(CapUpsert))
	require.True(t, MySQL.Supports(CapIgnore))
}

func TestCapabilityStrings(t *testing.T) {
	require.Equal(t, "RETURNING", CapReturning.String())
	require.Equal(t, "ON DUPLICATE KEY UPDATE", CapUpsert.String())
	require.Equal(t, "INSERT IGNORE", CapIgnore.String())
}

func TestParseDialectConfig(t *testing.T) {
	t.Run("full definition", func(t *testing.T) {
		d, err := ParseDialectConfig([]byte(`
name: sqlite
quote_char: '"'
supports_returning: true
aggregates: [group_concat, total]
`))
		require.NoError(t, err)
		require.Equal(t, "sqlite", d.Name)
		require.Equal(t, `"`, d.QuoteChar)
		require.True(t, d.Supports(CapReturning))
		require.False(t, d.Supports(CapUpsert))
		require.True(t, d.IsAggregate("GROUP_CONCAT"))
		require.True(t, d.IsAggregate("total"))
		require.False(t, d.IsAggregate("lower"))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := ParseDialectConfig([]byte(`quote_char: '"'`))

		var config ConfigurationError
		require.ErrorAs(t, err, &config)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := ParseDialectConfig([]byte("\t: not yaml"))
		require.Error(t, err)
	})

	t.Run("configured aggregates are rejected in returning", func(t *testing.T) {
		d, err := ParseDialectConfig([]byte(`
name: custom
quote_char: '"'
supports_returning: true
aggregates: [median]
`))
		require.NoError(t, err)

		abc := NewTable("abc")
		stmt := New(d).Into(abc).Insert(1).Returning(Fn("MEDIAN", abc.Field("views")))

		var invalid ValidationError
		require.ErrorAs(t, stmt.Err(), &invalid)
	})
}
