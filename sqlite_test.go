package sqlq

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// SQLite accepts the double-quoted-identifier profile, including
// RETURNING, so an in-memory database can execute rendered statements
// end to end.
func TestSQLiteExecutesRenderedSQL(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE abc (id INTEGER, name TEXT, active BOOLEAN)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE efg (id INTEGER, name TEXT, active BOOLEAN)`)
	require.NoError(t, err)

	abc := NewTable("abc")
	efg := NewTable("efg")
	q := New(PostgreSQL)

	asSQL, err := q.Into(abc).Insert(Row{1, "a", true}, Row{2, "b", false}).ToSQL()
	require.NoError(t, err)
	_, err = db.Exec(asSQL)
	require.NoError(t, err)

	asSQL, err = q.Into(abc).Insert(3, "c", true).Returning("id").ToSQL()
	require.NoError(t, err)
	var id int
	require.NoError(t, db.QueryRow(asSQL).Scan(&id))
	require.Equal(t, 3, id)

	asSQL, err = q.Into(efg).FromSelect(q.From(abc)).ToSQL()
	require.NoError(t, err)
	_, err = db.Exec(asSQL)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM efg`).Scan(&count))
	require.Equal(t, 3, count)

	asSQL, err = q.Update(abc).Set(abc.Field("name"), "z").Where(Eq(abc.Field("id"), 1)).ToSQL()
	require.NoError(t, err)
	_, err = db.Exec(asSQL)
	require.NoError(t, err)

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM abc WHERE id = 1`).Scan(&name))
	require.Equal(t, "z", name)

	asSQL, err = q.DeleteFrom(abc).Where(Gt(abc.Field("id"), 1)).ToSQL()
	require.NoError(t, err)
	_, err = db.Exec(asSQL)
	require.NoError(t, err)

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM abc`).Scan(&count))
	require.Equal(t, 1, count)
}
