// Command api serves the recruitment platform over HTTP
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aps-backend/internal/activity"
	"aps-backend/internal/blob"
	"aps-backend/internal/config"
	"aps-backend/internal/datasource"
	"aps-backend/internal/errtrack"
	"aps-backend/internal/mockdata"
	"aps-backend/internal/server"
	"aps-backend/internal/state"
	"aps-backend/internal/storage"
)

// @title						APS Job Platform API
// @version					1.0
// @description				Candidate job board, HR resume console and admin console.
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	tracker, err := errtrack.New(errtrack.Options{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Env,
		Production:  cfg.IsProduction(),
		Enabled:     cfg.Sentry.Enabled,
	})
	if err != nil {
		log.Fatalf("Failed to initialize error tracking: %v", err)
	}
	defer tracker.Flush(2 * time.Second)

	store, storeCloser, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer storeCloser.Close()

	sink, err := blob.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open blob store: %v", err)
	}
	defer sink.Close()

	var publisher activity.Publisher = activity.NopPublisher{}
	if cfg.AMQP.URL != "" {
		p, err := activity.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Printf("Activity publishing disabled: %v", err)
		} else {
			publisher = p
		}
	}
	recorder := activity.NewRecorder(publisher)
	defer recorder.Close()

	gen := mockdata.NewRandom()
	if cfg.Mock.Seed != 0 {
		gen = mockdata.New(cfg.Mock.Seed)
	}
	api := datasource.NewMockAPI(gen, mockDelays(cfg.Mock.Delays))

	app := state.NewApp(ctx, api, store)
	if err := app.Load(ctx); err != nil {
		tracker.CaptureError(err, map[string]any{"stage": "initial load"})
	}

	s := server.NewServer(cfg, app, store)
	s.Blob = sink
	s.Activity = recorder
	s.Tracker = tracker
	httpServer := s.HTTPServer()

	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Server starting on %s", httpServer.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed to start: %v", err)
	}
	<-done
	log.Println("Server shutdown complete")
}

func mockDelays(d config.Delays) datasource.Delays {
	if d.Disabled {
		return datasource.Delays{}
	}
	return datasource.Delays{
		Base:           d.Base,
		Login:          d.Login,
		Apply:          d.Apply,
		Upload:         d.Upload,
		Parse:          d.Parse,
		Report:         d.Report,
		CreateEmployee: d.CreateEmployee,
	}
}
