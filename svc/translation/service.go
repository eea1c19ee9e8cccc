package translation

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/clientip"
	"github.com/dmitrymomot/polyglot/pkg/dictionary"
	"github.com/dmitrymomot/polyglot/pkg/httpserver"
	"github.com/dmitrymomot/polyglot/pkg/locale"
	"github.com/dmitrymomot/polyglot/pkg/logger"
	"github.com/dmitrymomot/polyglot/pkg/ratelimiter"
	"github.com/dmitrymomot/polyglot/pkg/requestid"
	"github.com/dmitrymomot/polyglot/pkg/translate"
)

const maxBatchBodySize = 1 << 20

// Service exposes a translate.Resolver over HTTP.
type Service struct {
	resolver         *translate.Resolver
	universe         catalog.Universe
	cache            *dictionary.Cache
	checks           []httpserver.Check
	clientIPs        *clientip.Extractor
	limiter          *ratelimiter.Limiter
	readinessTimeout time.Duration
	maxBatch         int
	logger           *slog.Logger
}

// New creates a Service. The default universe is catalog.DefaultUniverse.
func New(resolver *translate.Resolver, opts ...Option) (*Service, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}
	s := &Service{
		resolver:         resolver,
		universe:         catalog.DefaultUniverse(),
		readinessTimeout: 5 * time.Second,
		maxBatch:         DefaultMaxBatchSize,
		clientIPs:        clientip.New(),
		logger:           logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Router returns the HTTP handler with all routes mounted.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(s.clientIPs.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.NotFound(handle(s.logger, func(*http.Request) Response {
		return JSONError(ErrNotFound, "")
	}))
	r.MethodNotAllowed(handle(s.logger, func(*http.Request) Response {
		return JSONError(ErrMethodNotAllowed, "")
	}))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", httpserver.LivenessHandler())
		r.Get("/ready", httpserver.ReadinessHandler(s.logger, s.readinessTimeout, s.checks...))
	})

	r.Route("/v1", func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, clientKey, handle(s.logger, func(*http.Request) Response {
				return JSONError(ErrRateLimited, "")
			})))
		}
		r.Use(locale.Middleware(s.negotiator()))
		r.Get("/languages", handle(s.logger, s.languages))
		r.Post("/translations", handle(s.logger, s.translateBatch))
		r.Get("/translations/{identifier}", handle(s.logger, s.translate))
	})

	return r
}

func clientKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

// negotiator matches Accept-Language against every language the resolver
// can serve: all known codes when dynamic loading is on, the bound set otherwise.
func (s *Service) negotiator() *locale.Negotiator {
	if s.resolver.DynamicLoading() {
		return locale.NewNegotiator(catalog.Languages()...)
	}
	return locale.NewNegotiator(s.resolver.Languages()...)
}

// requestLanguage picks the explicit ?lang= code, then the negotiated one.
// An empty result means the resolver default.
func requestLanguage(r *http.Request, explicit string) (catalog.Language, error) {
	if explicit != "" {
		return catalog.ParseLanguage(explicit)
	}
	if lang, ok := locale.FromContext(r.Context()); ok {
		return lang, nil
	}
	return "", nil
}

func (s *Service) translate(r *http.Request) Response {
	lang, err := requestLanguage(r, r.URL.Query().Get("lang"))
	if err != nil {
		return JSONError(errors.Join(ErrUnknownLanguage, err), err.Error())
	}
	raw := chi.URLParam(r, "identifier")
	id, err := catalog.ParseMaterial(s.universe, raw)
	if err != nil {
		return JSONError(errors.Join(ErrUnknownIdentifier, err), err.Error())
	}
	return JSON("translation", s.resolver.Translate(r.Context(), id, lang), nil)
}

type batchRequest struct {
	Identifiers []string `json:"identifiers"`
	Language    string   `json:"lang,omitempty"`
}

// translateBatch translates many identifiers in one language. Unknown
// identifiers are reported in meta instead of failing the whole request.
func (s *Service) translateBatch(r *http.Request) Response {
	var req batchRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBatchBodySize))
	if err := dec.Decode(&req); err != nil {
		return JSONError(ErrBadRequest, "invalid request body")
	}
	if len(req.Identifiers) == 0 {
		return JSONError(ErrBadRequest, "identifiers must not be empty")
	}
	if len(req.Identifiers) > s.maxBatch {
		return JSONError(ErrTooManyItems, "")
	}

	lang, err := requestLanguage(r, req.Language)
	if err != nil {
		return JSONError(errors.Join(ErrUnknownLanguage, err), err.Error())
	}

	results := make([]translate.Result, 0, len(req.Identifiers))
	unknown := make([]string, 0)
	for _, raw := range req.Identifiers {
		id, err := catalog.ParseMaterial(s.universe, raw)
		if err != nil {
			unknown = append(unknown, raw)
			continue
		}
		results = append(results, s.resolver.Translate(r.Context(), id, lang))
	}

	var meta map[string]any
	if len(unknown) > 0 {
		meta = map[string]any{"unknown_identifiers": unknown}
	}
	return JSON("translations", results, meta)
}

type languagesResponse struct {
	Languages       []catalog.Language `json:"languages"`
	DefaultLanguage catalog.Language   `json:"default_language"`
	Version         string             `json:"version"`
	DynamicLoading  bool               `json:"dynamic_loading"`
}

func (s *Service) languages(*http.Request) Response {
	data := languagesResponse{
		Languages:       s.resolver.Languages(),
		DefaultLanguage: s.resolver.DefaultLanguage(),
		Version:         s.resolver.Version().String(),
		DynamicLoading:  s.resolver.DynamicLoading(),
	}
	var meta map[string]any
	if s.cache != nil {
		st := s.cache.Stats()
		meta = map[string]any{
			"cache": map[string]any{
				"populated": st.Populated,
				"fetches":   st.Fetches,
				"failures":  st.Failures,
			},
		}
	}
	return JSON("languages", data, meta)
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.DebugContext(r.Context(), "request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
