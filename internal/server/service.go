// Package server exposes the simulator over a small local HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/theirongolddev/growthsim/internal/model"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr       string
	RunsBuffer int
	Logger     *slog.Logger
}

// RunEvent is recorded each time the API simulates a scenario.
type RunEvent struct {
	ID        int64               `json:"id"`
	Type      string              `json:"type"`
	Timestamp time.Time           `json:"timestamp"`
	Label     string              `json:"label"`
	Input     model.ScenarioInput `json:"input"`
	Summary   model.Summary       `json:"summary"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	Addr            string    `json:"addr"`
	RunCount        int64     `json:"run_count"`
	BufferedRuns    int       `json:"buffered_runs"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the HTTP API and the recent-run ring buffer.
type Service struct {
	cfg Config
	log *slog.Logger

	mu        sync.RWMutex
	startedAt time.Time
	nextRunID int64
	runs      []RunEvent

	nextSubID int
	subs      map[int]chan RunEvent
}

// New returns a new service with the provided config.
func New(cfg Config) *Service {
	if cfg.RunsBuffer < 1 {
		cfg.RunsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		cfg:       cfg,
		log:       logger.With("component", "server"),
		startedAt: time.Now(),
		subs:      make(map[int]chan RunEvent),
	}
}

// Handler returns the API routes wrapped in request logging.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /v1/simulate", s.handleSimulate)
	mux.HandleFunc("GET /v1/simulate.csv", s.handleSimulateCSV)
	mux.HandleFunc("GET /v1/report.pdf", s.handleReportPDF)
	mux.HandleFunc("POST /v1/compare", s.handleCompare)
	mux.HandleFunc("GET /v1/runs", s.handleRuns)
	mux.HandleFunc("GET /v1/stream", s.handleStream)
	return s.logRequests(mux)
}

// Run serves the API until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("listening", "addr", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

// record appends a run to the ring buffer and fans it out to stream subscribers.
func (s *Service) record(run model.Run) {
	s.publishEvent(RunEvent{
		Type:    "run",
		Label:   run.Label,
		Input:   run.Input,
		Summary: run.Summary,
	})
}

// publishEvent assigns the next ID and appends ev in one critical section so
// the buffer and the stream always see IDs in increasing order.
func (s *Service) publishEvent(ev RunEvent) {
	s.mu.Lock()
	s.nextRunID++
	ev.ID = s.nextRunID
	ev.Timestamp = time.Now()
	s.runs = append(s.runs, ev)
	if len(s.runs) > s.cfg.RunsBuffer {
		s.runs = s.runs[len(s.runs)-s.cfg.RunsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		Addr:            s.cfg.Addr,
		RunCount:        s.nextRunID,
		BufferedRuns:    len(s.runs),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) recentRuns() []RunEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RunEvent, len(s.runs))
	copy(out, s.runs)
	return out
}

func (s *Service) addSubscriber(ch chan RunEvent) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		level := slog.LevelInfo
		switch {
		case rec.status >= 500:
			level = slog.LevelError
		case rec.status >= 400:
			level = slog.LevelWarn
		}
		s.log.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
