package redis

import "time"

// Config describes the connection to the Redis server that shares downloaded
// dictionaries between instances.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                                   // redis://:password@localhost:6379/0. Empty disables Redis.
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`         // Connection attempts before giving up.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`        // Pause between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"15s"`      // Upper bound for all attempts together.
	DictionaryTTL  time.Duration `env:"REDIS_DICTIONARY_TTL" envDefault:"24h"`       // Lifetime of a stored raw dictionary.
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"polyglot:dict"` // Namespace of dictionary keys.
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
