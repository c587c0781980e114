// Package api is the JSON HTTP gateway between the chat platform and the
// bot pipeline.
//
// It is thin delivery glue: platform-neutral event JSON in, reply payload
// JSON out. All decisions live in internal/bot.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sharebot0/sharebot/internal/bot"
)

// ServerConfig contains configuration for creating the gateway server.
type ServerConfig struct {
	Logger *slog.Logger
	Bot    *bot.Handler
	Token  string // optional bearer token required on event routes
}

// Server is the JSON gateway HTTP server.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates a gateway server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Bot == nil {
		return nil, errors.New("bot handler is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	eh := &eventHandler{logger: logger, bot: cfg.Bot}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", health)
	mux.Handle("POST /api/v1/messages",
		requireToken(cfg.Token, http.HandlerFunc(eh.message)))
	mux.Handle("POST /api/v1/interactions",
		requireToken(cfg.Token, http.HandlerFunc(eh.interaction)))

	return &Server{mux: mux}, nil
}

// Handler returns the server's routes wrapped in the logging middleware.
func (s *Server) Handler(logger *slog.Logger) http.Handler {
	return withLogging(logger, s.mux)
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
