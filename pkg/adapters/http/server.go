package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/roboadvisor"
	"github.com/aretw0/roboadvisor/pkg/dialog"
	"github.com/aretw0/roboadvisor/pkg/lex"
)

// maxBodySize bounds the request body of POST /dialog.
const maxBodySize = 1 << 20

// Bot defines what the HTTP adapter needs from the code hook.
type Bot interface {
	Handle(ctx context.Context, ev *lex.Event) (*lex.Response, error)
	Intents() []string
}

// Server exposes a Bot as a JSON webhook.
type Server struct {
	Bot          Bot
	Metrics      http.Handler
	MaxValueSize int
	Logger       *slog.Logger

	apiVersion string
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics mounts h at GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithMaxValueSize bounds each slot and attribute value. Zero uses lex.MaxValueSize.
func WithMaxValueSize(n int) Option {
	return func(s *Server) {
		s.MaxValueSize = n
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the bot.
func NewHandler(bot Bot, opts ...Option) http.Handler {
	s := &Server{
		Bot:        bot,
		Logger:     slog.Default(),
		apiVersion: "unknown",
	}
	for _, opt := range opts {
		opt(s)
	}
	if doc, err := LoadSpec(context.Background()); err == nil && doc.Info != nil {
		s.apiVersion = doc.Info.Version
	} else if err != nil {
		s.Logger.Error("Failed to load OpenAPI spec", "error", err)
	}

	r := chi.NewRouter()
	r.Post("/dialog", s.HandleDialog)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>RoboAdvisor API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// HandleDialog handles the POST /dialog request.
func (s *Server) HandleDialog(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		s.Logger.Warn("Dialog: Body rejected", "error", err)
		return
	}

	ev, err := lex.ParseEvent(body, "json")
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Dialog: Invalid request body", "error", err)
		return
	}

	if err := lex.SanitizeEvent(ev, s.MaxValueSize); err != nil {
		http.Error(w, fmt.Sprintf("Invalid input: %v", err), http.StatusBadRequest)
		s.Logger.Warn("Dialog: Input rejected", "error", err)
		return
	}

	resp, err := s.Bot.Handle(r.Context(), ev)
	if err != nil {
		if errors.Is(err, dialog.ErrUnsupportedIntent) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Dialog error: %v", err), http.StatusUnprocessableEntity)
		s.Logger.Error("Dialog failed", "error", err, "intent", ev.IntentName())
		return
	}

	writeJSON(w, s.Logger, resp)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	var intents []string
	if s.Bot != nil {
		intents = s.Bot.Intents()
	}
	writeJSON(w, s.Logger, map[string]any{
		"app":         "roboadvisor-http",
		"version":     roboadvisor.Version,
		"api_version": s.apiVersion,
		"intents":     intents,
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Response encode failed", "error", err)
	}
}
