package server

import (
	"context"
	"net"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
)

// Server serves the engine's state over HTTP and websockets.
type Server struct {
	engine *monitor.Engine
	router *mux.Router
	hub    *Hub
	opts   *Options
	log    logger.Logger
}

// NewServer builds a server over engine and subscribes its websocket hub to
// the engine's tick hook.
func NewServer(engine *monitor.Engine, opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	s := &Server{
		engine: engine,
		router: mux.NewRouter(),
		hub:    NewHub(o.WriteTimeout, o.Logger),
		opts:   o,
		log:    o.Logger,
	}
	s.registerRoutes()

	engine.OnTick(func(error) {
		s.broadcastView()
	})
	return s
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	s.router.HandleFunc("/api/view", s.view).Methods(http.MethodGet)
	s.router.HandleFunc("/api/history/{kind}", s.history).Methods(http.MethodGet)
	s.router.HandleFunc("/api/processes", s.processes).Methods(http.MethodGet)
	s.router.HandleFunc("/api/processes/{pid}/kill", s.kill).Methods(http.MethodPost)
	s.router.HandleFunc("/api/theme", s.theme).Methods(http.MethodGet)
	s.router.HandleFunc("/api/theme/toggle", s.toggleTheme).Methods(http.MethodPost)
	s.router.HandleFunc("/api/show-all/toggle", s.toggleShowAll).Methods(http.MethodPost)
	s.router.HandleFunc("/metrics", s.metrics).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.websocket).Methods(http.MethodGet)
	s.router.NotFoundHandler = http.HandlerFunc(s.notFound)
}

// Handler returns the router, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Start listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully and closes every websocket client.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Listen)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrServer,
			"Couldn't listen on "+s.opts.Listen,
			"Pick a free address with --listen or server.listen in the config.")
	}
	return s.Serve(ctx, ln)
}

// Serve is Start over an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening on http://%s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		s.hub.Close()
		if err == nil || err == http.ErrServerClosed {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrServer, "HTTP server stopped", "")
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	s.hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.WrapWithCode(err, errors.ErrServer, "HTTP server didn't shut down cleanly", "")
	}
	return nil
}

func (s *Server) broadcastView() {
	if s.hub.Len() == 0 {
		return
	}
	payload, err := json.Marshal(s.engine.View())
	if err != nil {
		s.log.Error("encoding view: %v", err)
		return
	}
	s.hub.Broadcast(payload)
}
