package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rzbill/stamp/internal/runtime"
	"github.com/rzbill/stamp/pkg/id"
	logpkg "github.com/rzbill/stamp/pkg/log"
)

// RequestIDHeader carries the per-request id issued by the middleware.
const RequestIDHeader = "X-Request-Id"

type Server struct {
	rt     *runtime.Runtime
	logger logpkg.Logger
	srv    *http.Server
	lis    net.Listener
}

// New builds the API server around the given runtime.
func New(rt *runtime.Runtime, logger logpkg.Logger) *Server {
	s := &Server{rt: rt, logger: logger.WithComponent("http")}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Get("/v1/healthz", s.handleHealth)
	r.Post("/v1/id/next", s.handleNext)
	r.Get("/v1/id/parse", s.handleParse)

	s.srv = &http.Server{Handler: r}
	return s
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	s.logger.Info("listening", logpkg.Str("addr", l.Addr().String()))
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

// Close releases the listener.
func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

// requestID tags each request with a freshly issued id. Issuance failure is
// logged but never fails the request itself.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, err := s.rt.NextString()
		if err != nil {
			s.logger.Warn("request id issuance failed", logpkg.Err(err))
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set(RequestIDHeader, reqID)
		s.logger.Debug("request", logpkg.Str("request_id", reqID), logpkg.Str("method", r.Method), logpkg.Str("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.rt.CheckHealth(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_serving"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type nextResp struct {
	ID  string   `json:"id,omitempty"`
	IDs []string `json:"ids,omitempty"`
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	count := 1
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, errors.New("count must be a positive integer"))
			return
		}
		count = n
	}
	if max := s.rt.Config().MaxBatch; count > max {
		writeError(w, http.StatusBadRequest, errors.New("count exceeds maxBatch "+strconv.Itoa(max)))
		return
	}

	if count == 1 {
		next, err := s.rt.NextString()
		if err != nil {
			s.failNext(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nextResp{ID: next})
		return
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		next, err := s.rt.NextString()
		if err != nil {
			s.failNext(w, err)
			return
		}
		ids = append(ids, next)
	}
	writeJSON(w, http.StatusOK, nextResp{IDs: ids})
}

// failNext maps issuance errors: clock regression is retryable (503),
// anything else indicates a bug and reads as 500.
func (s *Server) failNext(w http.ResponseWriter, err error) {
	if errors.Is(err, id.ErrClockRegression) {
		s.logger.Warn("issuance refused", logpkg.Err(err))
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	s.logger.Error("issuance failed", logpkg.Err(err))
	writeError(w, http.StatusInternalServerError, err)
}

type parseResp struct {
	ID        string `json:"id"`
	MachineID int64  `json:"machineId"`
	Sequence  int64  `json:"sequence"`
	UTC       string `json:"utc"`
	Local     string `json:"local"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing id parameter"))
		return
	}
	p, err := id.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, parseResp{
		ID:        raw,
		MachineID: p.MachineID,
		Sequence:  p.Sequence,
		UTC:       p.UTC.Format("2006-01-02T15:04:05.000Z07:00"),
		Local:     p.Local.Format("2006-01-02T15:04:05.000Z07:00"),
	})
}
