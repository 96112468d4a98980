package httpapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
	apimw "github.com/martinlinchr/website-response-status-code-monitoring/internal/httpapi/middleware"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/repo"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/scheduler"
)

type Server struct {
	Logger  *zap.Logger
	Targets repo.TargetStore
	Runner  *scheduler.Runner
}

func NewServer(l *zap.Logger, ts repo.TargetStore, runner *scheduler.Runner) *Server {
	if l == nil {
		l = zap.NewNop()
	}
	return &Server{Logger: l, Targets: ts, Runner: runner}
}

// Router wires the routes behind CORS, API keys and per-IP rate limits.
// Reads sit behind any key, writes and explicit checks behind an admin key.
func (s *Server) Router(keys apimw.Keys, allowedOrigins []string, publicRPM, publicBurst, adminRPM, adminBurst int) http.Handler {
	r := chi.NewRouter()

	if len(allowedOrigins) == 0 {
		r.Use(cors.AllowAll().Handler)
	} else {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type", "X-API-Key"},
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(pub chi.Router) {
		pub.Use(apimw.RateLimit(publicRPM, publicBurst))
		pub.Use(apimw.RequireAny(keys))
		pub.Get("/api/targets", s.handleListTargets)
		pub.Get("/api/results", s.handleResults)
	})

	r.Group(func(adm chi.Router) {
		adm.Use(apimw.RateLimit(adminRPM, adminBurst))
		adm.Use(apimw.RequireAdmin(keys))
		adm.Post("/api/targets", s.handleUpsertTarget)
		adm.Delete("/api/targets", s.handleRemoveTarget)
		adm.Post("/api/checks", s.handleRunCycle)
	})

	return r
}

type upsertPayload struct {
	URL                     string  `json:"url"`
	LatencyThresholdSeconds float64 `json:"latency_threshold_seconds"`
}

func (s *Server) handleUpsertTarget(w http.ResponseWriter, r *http.Request) {
	var p upsertPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.URL == "" {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	if !isValidHTTPURL(p.URL) {
		writeError(w, http.StatusBadRequest, "url must be a valid http(s) URL")
		return
	}
	if p.LatencyThresholdSeconds < 0 {
		writeError(w, http.StatusBadRequest, "latency_threshold_seconds must not be negative")
		return
	}

	t := &domain.Target{
		URL:                     normalizeHTTPURL(p.URL),
		LatencyThresholdSeconds: p.LatencyThresholdSeconds,
	}
	if err := s.Targets.Upsert(r.Context(), t); err != nil {
		s.Logger.Warn("upsert_target_error", zap.String("url", t.URL), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not save target")
		return
	}

	// One synchronous evaluation for immediate feedback.
	res := s.Runner.EvaluateOne(r.Context(), *t)

	s.Logger.Info("target_upserted",
		zap.String("url", t.URL),
		zap.Float64("threshold_seconds", t.LatencyThresholdSeconds),
		zap.Bool("healthy", res.Healthy()),
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"target": t, "result": res,
	})
}

// handleRemoveTarget deletes by the url query parameter. Removing a URL that
// was never configured still answers 204.
func (s *Server) handleRemoveTarget(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}
	if !isValidHTTPURL(raw) {
		writeError(w, http.StatusBadRequest, "url must be a valid http(s) URL")
		return
	}
	target := normalizeHTTPURL(raw)

	if err := s.Targets.Remove(r.Context(), target); err != nil {
		s.Logger.Warn("remove_target_error", zap.String("url", target), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not remove target")
		return
	}
	s.Runner.Forget(target)
	s.Logger.Info("target_removed", zap.String("url", target))

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTargets(w http.ResponseWriter, r *http.Request) {
	ts, err := s.Targets.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list error")
		return
	}
	if ts == nil {
		ts = []domain.Target{}
	}
	writeJSON(w, http.StatusOK, ts)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Runner.Latest())
}

// handleRunCycle triggers one full evaluation cycle right now and returns
// the fresh results. The cron trigger keeps running independently.
func (s *Server) handleRunCycle(w http.ResponseWriter, r *http.Request) {
	results := s.Runner.RunCycle(r.Context())
	if results == nil {
		results = []domain.ProbeResult{}
	}
	writeJSON(w, http.StatusOK, results)
}

// ---- helpers ----

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func isValidHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// normalizeHTTPURL lowercases scheme and host, strips default ports and the
// bare root slash so the same site always maps to the same store key.
func normalizeHTTPURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	u.Scheme = strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)
	switch u.Scheme {
	case "http":
		host = strings.TrimSuffix(host, ":80")
	case "https":
		host = strings.TrimSuffix(host, ":443")
	}
	u.Host = host
	if u.Path == "/" {
		u.Path = ""
	}
	return u.String()
}
