// Package pg connects to Postgres with pgx and applies goose migrations from
// an fs.FS, typically one embedded by the package that owns the schema.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, translate.Migrations, translate.MigrationsDir, cfg, log); err != nil {
//		return err
//	}
//
// Healthcheck adapts the pool to the readiness probe of the HTTP server.
package pg
