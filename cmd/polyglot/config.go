package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/dictionary"
	"github.com/dmitrymomot/polyglot/pkg/httpserver"
	"github.com/dmitrymomot/polyglot/pkg/pg"
	"github.com/dmitrymomot/polyglot/pkg/ratelimiter"
	"github.com/dmitrymomot/polyglot/pkg/redis"
)

// Dictionary sources.
const (
	SourceHTTP = "http"
	SourceFS   = "fs"
	SourceS3   = "s3"
)

var (
	errUnknownSource    = errors.New("unknown dictionary source")
	errMissingMirrorDir = errors.New("DICT_MIRROR_DIR is required for the fs source")
)

// AppConfig is the full process configuration.
type AppConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"` // development, staging or production.
	LogLevel string `env:"LOG_LEVEL"`                        // Overrides the environment default when set.

	Languages       []string `env:"POLYGLOT_LANGUAGES" envDefault:"en_us" envSeparator:","` // Languages bound at start.
	DefaultLanguage string   `env:"POLYGLOT_DEFAULT_LANGUAGE" envDefault:"en_us"`           // Fallback for unbound languages.
	Version         string   `env:"POLYGLOT_VERSION" envDefault:"1.20.4"`                   // Game version of the dictionaries.
	DynamicLoading  bool     `env:"POLYGLOT_DYNAMIC_LOADING" envDefault:"false"`            // Bind unknown languages on request.
	OverridesFile   string   `env:"POLYGLOT_OVERRIDES_FILE"`                                // Optional YAML overrides.

	Source       string        `env:"DICT_SOURCE" envDefault:"http"`       // http, fs or s3.
	BaseURL      string        `env:"DICT_BASE_URL"`                       // Asset mirror for the http source.
	FetchTimeout time.Duration `env:"DICT_FETCH_TIMEOUT" envDefault:"30s"` // Per-download timeout for the http source.
	MirrorDir    string        `env:"DICT_MIRROR_DIR"`                     // Asset tree root for the fs source.

	S3Bucket         string `env:"DICT_S3_BUCKET"`
	S3Region         string `env:"DICT_S3_REGION"`
	S3Prefix         string `env:"DICT_S3_PREFIX"`
	S3AccessKeyID    string `env:"DICT_S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"DICT_S3_SECRET_KEY"`
	S3Endpoint       string `env:"DICT_S3_ENDPOINT"`
	S3ForcePathStyle bool   `env:"DICT_S3_FORCE_PATH_STYLE" envDefault:"false"`

	TrustedIPHeaders []string `env:"HTTP_TRUSTED_IP_HEADERS" envSeparator:","` // Forwarding headers set by your proxy.

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
	Redis     redis.Config
	PG        pg.Config
}

func (c AppConfig) languages() ([]catalog.Language, error) {
	out := make([]catalog.Language, 0, len(c.Languages))
	for _, code := range c.Languages {
		lang, err := catalog.ParseLanguage(code)
		if err != nil {
			return nil, err
		}
		out = append(out, lang)
	}
	return out, nil
}

func (c AppConfig) s3Config() dictionary.S3Config {
	return dictionary.S3Config{
		Bucket:         c.S3Bucket,
		Region:         c.S3Region,
		Prefix:         c.S3Prefix,
		AccessKeyID:    c.S3AccessKeyID,
		SecretKey:      c.S3SecretKey,
		Endpoint:       c.S3Endpoint,
		ForcePathStyle: c.S3ForcePathStyle,
	}
}

// upstreamFetcher builds the fetcher for the configured source.
func (c AppConfig) upstreamFetcher(ctx context.Context) (dictionary.Fetcher, error) {
	switch c.Source {
	case SourceHTTP, "":
		return dictionary.NewHTTPFetcher(
			dictionary.WithBaseURL(c.BaseURL),
			dictionary.WithHTTPClient(&http.Client{Timeout: c.FetchTimeout}),
		), nil
	case SourceFS:
		if c.MirrorDir == "" {
			return nil, errMissingMirrorDir
		}
		return dictionary.NewFSFetcher(os.DirFS(c.MirrorDir)), nil
	case SourceS3:
		return dictionary.NewS3Fetcher(ctx, c.s3Config())
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownSource, c.Source)
	}
}
