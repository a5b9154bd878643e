package server

import (
	"fmt"
	"net/http"

	"aps-backend/internal/activity"
	"aps-backend/internal/auth"
	"aps-backend/internal/blob"
	"aps-backend/internal/config"
	"aps-backend/internal/errtrack"
	"aps-backend/internal/state"
	"aps-backend/internal/storage"
)

// Server holds the application state and the sinks every handler shares
type Server struct {
	Config   *config.Config
	App      *state.App
	Storage  storage.Storage
	Blob     blob.Sink
	Activity *activity.Recorder
	Tracker  errtrack.Tracker
	Attempts *auth.AttemptLog
}

// NewServer construct new Server instance. Nil sinks fall back to no-op implementations.
func NewServer(cfg *config.Config, app *state.App, s storage.Storage) *Server {
	return &Server{
		Config:   cfg,
		App:      app,
		Storage:  s,
		Blob:     blob.Discard{},
		Activity: activity.NewRecorder(nil),
		Tracker:  errtrack.Log{},
		Attempts: auth.NewAttemptLog(cfg.Logging.AuthLog, cfg.Logging.AuthDir),
	}
}

// HTTPServer wraps the route table in an http.Server configured from Config
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Config.Server.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  s.Config.Server.IdleTimeout,
		ReadTimeout:  s.Config.Server.ReadTimeout,
		WriteTimeout: s.Config.Server.WriteTimeout,
	}
}
