package translate

import (
	"context"
	"embed"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

// Migrations holds the goose migrations for the overrides table.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that holds the files.
const MigrationsDir = "migrations"

const overridesTable = "translation_overrides"

// Querier is the subset of pgx used by PostgresOverrides.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresOverrides stores overrides in the translation_overrides table.
type PostgresOverrides struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewPostgresOverrides creates a PostgresOverrides over db.
func NewPostgresOverrides(db Querier) (*PostgresOverrides, error) {
	if db == nil {
		return nil, ErrNilQuerier
	}
	return &PostgresOverrides{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Load reads overrides for the given languages, or for all languages when
// none are given. Rows with an unknown language code are skipped.
func (s *PostgresOverrides) Load(ctx context.Context, langs ...catalog.Language) (Overrides, error) {
	query := s.sb.
		Select("language", "identifier", "display_name").
		From(overridesTable).
		OrderBy("language", "identifier")
	if len(langs) > 0 {
		codes := make([]string, len(langs))
		for i, l := range langs {
			codes[i] = string(l)
		}
		query = query.Where(squirrel.Eq{"language": codes})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Join(ErrOverrideQuery, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Join(ErrOverrideQuery, err)
	}
	defer rows.Close()

	out := make(Overrides)
	for rows.Next() {
		var code, id, name string
		if err := rows.Scan(&code, &id, &name); err != nil {
			return nil, errors.Join(ErrOverrideQuery, err)
		}
		lang, err := catalog.ParseLanguage(code)
		if err != nil {
			continue
		}
		out.Set(lang, id, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrOverrideQuery, err)
	}
	return out, nil
}

// Upsert stores one override, replacing an existing one.
func (s *PostgresOverrides) Upsert(ctx context.Context, lang catalog.Language, id catalog.Material, name string) error {
	if !lang.Valid() {
		return errors.Join(ErrInvalidOverrides, catalog.ErrUnknownLanguage)
	}
	if id == "" || name == "" {
		return ErrInvalidOverrides
	}

	sql, args, err := s.sb.
		Insert(overridesTable).
		Columns("language", "identifier", "display_name").
		Values(string(lang), string(id), name).
		Suffix("ON CONFLICT (language, identifier) DO UPDATE SET display_name = EXCLUDED.display_name, updated_at = now()").
		ToSql()
	if err != nil {
		return errors.Join(ErrOverrideQuery, err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return errors.Join(ErrOverrideQuery, err)
	}
	return nil
}

// Delete removes one override. It reports whether a row was removed.
func (s *PostgresOverrides) Delete(ctx context.Context, lang catalog.Language, id catalog.Material) (bool, error) {
	sql, args, err := s.sb.
		Delete(overridesTable).
		Where(squirrel.Eq{"language": string(lang)}).
		Where(squirrel.Eq{"identifier": string(id)}).
		ToSql()
	if err != nil {
		return false, errors.Join(ErrOverrideQuery, err)
	}

	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, errors.Join(ErrOverrideQuery, err)
	}
	return tag.RowsAffected() > 0, nil
}
