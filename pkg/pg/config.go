package pg

import "time"

// Config describes the Postgres pool that stores translation overrides.
type Config struct {
	ConnectionString  string        `env:"PG_CONN_URL"`                            // Empty disables database-backed overrides.
	MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"5"`       // Pool size upper bound.
	MinConns          int32         `env:"PG_MIN_CONNS" envDefault:"1"`            // Connections kept open while idle.
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`  // Pool health check cadence.
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"` // Idle time before a connection is closed.
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`  // Age at which a connection is replaced.

	RetryAttempts int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`  // Connection attempts before giving up.
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"2s"` // Base pause, multiplied by the attempt number.

	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"polyglot_migrations"` // goose version table.
	AutoMigrate     bool   `env:"PG_AUTO_MIGRATE" envDefault:"true"`                    // Apply embedded migrations on start.
}

// Enabled reports whether a connection string is configured.
func (c Config) Enabled() bool {
	return c.ConnectionString != ""
}
