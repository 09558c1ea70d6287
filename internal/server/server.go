package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"xrplScope/internal/cache"
	"xrplScope/internal/model"
	"xrplScope/internal/pipeline"
)

// HeadSource reports the latest validated ledger.
type HeadSource interface {
	ValidatedLedger(ctx context.Context) (index uint32, closeTime int64, err error)
}

// EventSource produces the swap events for a ledger range.
type EventSource interface {
	Scan(ctx context.Context, r pipeline.LedgerRange) (pipeline.ScanResult, error)
}

// AssetSource resolves a batch of asset identifiers.
type AssetSource interface {
	ResolveBatch(ctx context.Context, ids []string) (map[string]model.AssetDescriptor, map[string]string)
}

// PairSource resolves one pair identifier.
type PairSource interface {
	Resolve(ctx context.Context, id string) (model.PairDescriptor, error)
}

// Deps are the collaborators the query surface is built from. The cache and
// limiter are process-wide and injected, never owned by handlers.
type Deps struct {
	Head      HeadSource
	Events    EventSource
	Assets    AssetSource
	Pairs     PairSource
	Cache     *cache.TTL
	CacheTTL  time.Duration
	RateRPS   float64
	RateBurst int
	Logger    *zap.Logger
}

// Server is the HTTP query surface of the adapter.
type Server struct {
	deps    Deps
	limiter *visitorLimiter
	mux     *http.ServeMux
	server  *http.Server
}

// NewServer creates an HTTP server with all routes configured.
func NewServer(addr string, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	mux := http.NewServeMux()
	s := &Server{
		deps:    deps,
		limiter: newVisitorLimiter(deps.RateRPS, deps.RateBurst),
		mux:     mux,
	}
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.limiter.middleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/latest-block", s.handleLatestBlock)
	s.mux.HandleFunc("/asset", s.handleAsset)
	s.mux.HandleFunc("/pair", s.handlePair)
	s.mux.HandleFunc("/events", s.handleEvents)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler exposes the routed handler, rate limiting included.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
