package translate_test

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/translate"
)

type fakeRows struct {
	data [][]string
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		*(d.(*string)) = row[i]
	}
	return nil
}

func (r *fakeRows) Values() ([]any, error) {
	row := r.data[r.pos-1]
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out, nil
}

type fakeQuerier struct {
	sql  string
	args []any
	rows [][]string
	tag  string
	err  error
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	if q.err != nil {
		return pgconn.CommandTag{}, q.err
	}
	return pgconn.NewCommandTag(q.tag), nil
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	if q.err != nil {
		return nil, q.err
	}
	return &fakeRows{data: q.rows}, nil
}

func TestNewPostgresOverrides(t *testing.T) {
	t.Parallel()

	_, err := translate.NewPostgresOverrides(nil)
	assert.ErrorIs(t, err, translate.ErrNilQuerier)
}

func TestPostgresOverrides_Load(t *testing.T) {
	t.Parallel()

	t.Run("all languages", func(t *testing.T) {
		t.Parallel()

		q := &fakeQuerier{rows: [][]string{
			{"en_us", "diamond", "Gem"},
			{"ru_ru", "STONE", "Камушек"},
			{"xx_yy", "DIAMOND", "skipped"},
		}}
		s, err := translate.NewPostgresOverrides(q)
		require.NoError(t, err)

		o, err := s.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "SELECT language, identifier, display_name FROM translation_overrides ORDER BY language, identifier", q.sql)
		assert.Empty(t, q.args)
		assert.Len(t, o, 2)
		assert.Equal(t, "Gem", o[catalog.EnUS]["DIAMOND"])
		assert.Equal(t, "Камушек", o[catalog.RuRU]["STONE"])
	})

	t.Run("filtered by language", func(t *testing.T) {
		t.Parallel()

		q := &fakeQuerier{}
		s, err := translate.NewPostgresOverrides(q)
		require.NoError(t, err)

		_, err = s.Load(context.Background(), catalog.EnUS, catalog.RuRU)
		require.NoError(t, err)

		assert.Contains(t, q.sql, "WHERE language IN ($1,$2)")
		assert.Equal(t, []any{"en_us", "ru_ru"}, q.args)
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("connection closed")
		s, err := translate.NewPostgresOverrides(&fakeQuerier{err: boom})
		require.NoError(t, err)

		_, err = s.Load(context.Background())
		assert.ErrorIs(t, err, translate.ErrOverrideQuery)
		assert.ErrorIs(t, err, boom)
	})
}

func TestPostgresOverrides_Upsert(t *testing.T) {
	t.Parallel()

	q := &fakeQuerier{tag: "INSERT 0 1"}
	s, err := translate.NewPostgresOverrides(q)
	require.NoError(t, err)

	require.NoError(t, s.Upsert(context.Background(), catalog.RuRU, "DIAMOND", "Алмаз"))
	assert.Contains(t, q.sql, "INSERT INTO translation_overrides")
	assert.Contains(t, q.sql, "ON CONFLICT (language, identifier) DO UPDATE")
	assert.Equal(t, []any{"ru_ru", "DIAMOND", "Алмаз"}, q.args)

	assert.ErrorIs(t, s.Upsert(context.Background(), "xx_yy", "DIAMOND", "X"), translate.ErrInvalidOverrides)
	assert.ErrorIs(t, s.Upsert(context.Background(), catalog.RuRU, "", "X"), translate.ErrInvalidOverrides)
}

func TestPostgresOverrides_Delete(t *testing.T) {
	t.Parallel()

	q := &fakeQuerier{tag: "DELETE 1"}
	s, err := translate.NewPostgresOverrides(q)
	require.NoError(t, err)

	removed, err := s.Delete(context.Background(), catalog.RuRU, "DIAMOND")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "DELETE FROM translation_overrides WHERE language = $1 AND identifier = $2", q.sql)
	assert.Equal(t, []any{"ru_ru", "DIAMOND"}, q.args)

	q.tag = "DELETE 0"
	removed, err = s.Delete(context.Background(), catalog.RuRU, "DIAMOND")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMigrations(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(translate.Migrations, translate.MigrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	data, err := fs.ReadFile(translate.Migrations, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "-- +goose Up")
	assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS translation_overrides")
}
