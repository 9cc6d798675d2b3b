// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/cors"
	nuts "github.com/vaudience/go-nuts"

	"github.com/avamo13/lastseen/api"
	"github.com/avamo13/lastseen/api/middleware"
	"github.com/avamo13/lastseen/internal/config"
	"github.com/avamo13/lastseen/internal/monitoring"
	"github.com/avamo13/lastseen/internal/relay"
	"github.com/avamo13/lastseen/internal/store/memory"
	"github.com/avamo13/lastseen/internal/viewer"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	relay      *relay.RelayService
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Initialize services
	s.relay = relay.New(memory.New())
	s.monitoring = monitoring.NewService(monitoring.Config{
		LogLevel: s.config.Logs.Level,
	})

	if s.config.Auth.APIKey == "" {
		nuts.L.Warnf("[Server] No api key configured, all read requests will be rejected")
	}

	// Set up update event handlers
	s.setupUpdateHandlers()

	// Setup routes
	router := api.NewRouter(s.relay, viewer.New(), middleware.GuardConfig{
		APIKey: s.config.Auth.APIKey,
	})
	router.SetHealthCheck(s.handleHealth())

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      corsHandler(router),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// corsHandler leaves the whole surface reachable from arbitrary web
// origins: any origin, any method, any request header, with credentials
// allowed. The origin is echoed back rather than answered with the "*"
// wildcard, because browsers reject the wildcard on credentialed
// requests.
func corsHandler(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})(next)
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// handleHealth returns a simple health check handler
func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
	}
}

func (s *Server) setupUpdateHandlers() {
	// Handle location update events
	s.relay.OnUpdate(relay.EventLocationUpdated, func(label string) {
		nuts.L.Infof("[Relay] Location updated (reported at %s)", label)
		s.monitoring.RecordEvent("location_update", map[string]string{
			"reported_time": label,
		})
	})

	// Handle connection heartbeat events
	s.relay.OnUpdate(relay.EventConnectionUpdated, func(label string) {
		nuts.L.Infof("[Relay] Connection heartbeat (reported at %s)", label)
		s.monitoring.RecordEvent("connection_update", map[string]string{
			"reported_time": label,
		})
	})
}
