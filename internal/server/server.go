package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"ETFSentinel/internal/collector"
	"ETFSentinel/internal/model"
	"ETFSentinel/internal/symbols"
)

// SourceLabel names the upstream data sources in API responses.
const SourceLabel = "ETFdb.com + Yahoo Finance"

// QuoteService is the fetch core the handlers call into.
type QuoteService interface {
	FetchQuote(ctx context.Context, symbol string, maxRetries int) (*model.QuoteRecord, error)
	FetchAll(ctx context.Context, symbols []string) *model.BatchResult
}

// Server exposes the ETF endpoints over HTTP.
type Server struct {
	Addr       string
	Quotes     QuoteService
	Symbols    symbols.Source
	MaxRetries int
	Now        func() time.Time

	srv *http.Server
}

// New creates a Server.
func New(addr string, quotes QuoteService, src symbols.Source, maxRetries int) *Server {
	if maxRetries <= 0 {
		maxRetries = collector.DefaultMaxRetries
	}
	return &Server{
		Addr:       addr,
		Quotes:     quotes,
		Symbols:    src,
		MaxRetries: maxRetries,
		Now:        time.Now,
	}
}

// Handler returns the routed, CORS-enabled handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/etfs", s.handleETFs)
	mux.HandleFunc("GET /api/etf/{symbol}", s.handleETF)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return withCORS(mux)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[ERROR] http shutdown: %v", err)
		}
	}()

	log.Printf("[INFO] http server listening on %s", s.Addr)
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) timestamp() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().Format(time.RFC3339Nano)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func normalizeSymbol(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
