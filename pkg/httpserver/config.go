package httpserver

import "time"

// Config holds server settings loaded from HTTP_* environment variables.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`           // Listen address.
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`     // Whole-request read deadline.
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`    // Covers a first-time dictionary download.
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`    // Keep-alive idle limit.
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"` // Grace period for in-flight requests.
}

// Options converts non-zero config values to server options.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 5)
	if c.Addr != "" {
		opts = append(opts, WithAddr(c.Addr))
	}
	if c.ReadTimeout > 0 {
		opts = append(opts, WithReadTimeout(c.ReadTimeout))
	}
	if c.WriteTimeout > 0 {
		opts = append(opts, WithWriteTimeout(c.WriteTimeout))
	}
	if c.IdleTimeout > 0 {
		opts = append(opts, WithIdleTimeout(c.IdleTimeout))
	}
	if c.ShutdownTimeout > 0 {
		opts = append(opts, WithShutdownTimeout(c.ShutdownTimeout))
	}
	return opts
}

// NewFromConfig creates a Server from cfg. Options in opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	return New(append(cfg.Options(), opts...)...)
}
