// Package server mounts the HTTP surface: the agent chat endpoints with SSE
// streaming, the data gateway lookups over the loaded dataset, and report
// file downloads.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pharmaxis/pharmintel/agents"
	"github.com/pharmaxis/pharmintel/dataset"
)

const logPrefix = "server:server"

const shutdownTimeout = 10 * time.Second

// Agent is the dispatcher boundary the chat endpoints run against.
type Agent interface {
	Invoke(ctx context.Context, query string) <-chan agents.Fragment
}

// Server is the pharmintel HTTP service.
type Server struct {
	addr       string
	agent      Agent
	store      *dataset.Store
	reportsDir string
	httpServer *http.Server
}

// New assembles the service. store may be nil, which disables the gateway
// endpoints; reportsDir may be empty, which disables downloads.
func New(addr string, agent Agent, store *dataset.Store, reportsDir string) *Server {
	s := &Server{
		addr:       addr,
		agent:      agent,
		store:      store,
		reportsDir: reportsDir,
	}
	s.httpServer = &http.Server{Addr: addr, Handler: s.Handler()}
	return s
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/agent/stream/", s.handleStream)
	mux.HandleFunc("POST /api/agent/chat/", s.handleChat)
	mux.HandleFunc("GET /api/agent/health/", s.handleHealth)
	if s.store != nil {
		mux.HandleFunc("GET /api/iqvia/", s.lookupHandler("area", "/api/iqvia?area=respiratory", s.store.IqviaMarket))
		mux.HandleFunc("GET /api/clinical-trials/", s.lookupHandler("molecule", "/api/trials?molecule=pirfenidone", s.store.ClinicalTrials))
		mux.HandleFunc("GET /api/exim-trade/", s.lookupHandler("molecule", "/api/exim-trade?molecule=metformin", s.store.EximTrade))
		mux.HandleFunc("GET /api/patents/", s.lookupHandler("molecule", "/api/patents?molecule=semaglutide", s.store.PatentLandscape))
		mux.HandleFunc("GET /api/patent-analysis/", s.lookupHandler("molecule", "/api/patent-analysis?molecule=semaglutide", s.store.PatentAnalysis))
		mux.HandleFunc("GET /api/knowledge-base/", s.lookupHandler("doc_id", "/api/knowledge-base?doc_id=STRAT-2024-001", s.store.KnowledgeDocument))
	}
	if s.reportsDir != "" {
		mux.HandleFunc("GET /api/reports/{name}", s.handleReportDownload)
	}
	return mux
}

// Run starts the server and blocks until a shutdown signal.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("%s - listening on %s", logPrefix, s.addr))
		if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("%s - http server: %w", logPrefix, err)
	case sig := <-sigCh:
		slog.Info(fmt.Sprintf("%s - received signal %s, shutting down", logPrefix, sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s - shutdown: %w", logPrefix, err)
	}
	slog.Info(fmt.Sprintf("%s - shutdown complete", logPrefix))
	return nil
}
