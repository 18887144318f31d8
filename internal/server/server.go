// internal/server/server.go
package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"dfm-core/construct"
	"dfm-core/gate"
	"dfm-core/seq"
	"dfm/internal/blueprintapp"
	"dfm/internal/jsonutil"
	"dfm/internal/output"
	"dfm/internal/version"
	"dfm/pkg/api"
)

// Server exposes the scoring engine over HTTP. Scoring is stateless, so
// identical requests are served from an LRU cache of rendered responses.
type Server struct {
	cfg    Config
	log    *slog.Logger
	engine *gate.Engine
	cache  *lru.Cache[string, []byte]
}

// New builds a Server with a default-config engine.
func New(cfg Config, log *slog.Logger) (*Server, error) {
	cache, err := lru.New[string, []byte](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("response cache: %w", err)
	}
	return &Server{
		cfg:    cfg,
		log:    log,
		engine: gate.New(gate.Config{}),
		cache:  cache,
	}, nil
}

// Handler returns the HTTP routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("POST /blueprint", s.handleBlueprint)
	return s.logRequests(mux)
}

// ListenAndServe blocks serving on the configured port.
func (s *Server) ListenAndServe() error {
	addr := ":" + s.cfg.Port
	s.log.Info("listening", "addr", addr, "version", version.Version)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request", "method", r.Method, "path", r.URL.Path,
			"duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, api.HealthV1{Status: "ok", Version: version.Version})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req api.ScoreRequestV1
	if err := jsonutil.DecodeStrict(r.Body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("decode request: %v", err))
		return
	}
	spec, cons, err := s.validateScoreRequest(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key, err := cacheKey(req)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if body, ok := s.cache.Get(key); ok {
		s.log.Debug("cache hit", "key", key)
		s.writeRaw(w, http.StatusOK, body)
		return
	}

	result := s.engine.Score(spec, cons)
	v1 := output.ToAPIResult(output.Scored{Spec: spec, Result: result})

	var buf bytes.Buffer
	if err := jsonutil.EncodePretty(&buf, v1); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.cache.Add(key, buf.Bytes())
	s.writeRaw(w, http.StatusOK, buf.Bytes())
}

func (s *Server) handleBlueprint(w http.ResponseWriter, r *http.Request) {
	var req api.BlueprintRequestV1
	if err := jsonutil.DecodeStrict(r.Body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("decode request: %v", err))
		return
	}
	cs := req.CandidateSpec
	if cs.Modality == "" {
		s.writeError(w, http.StatusBadRequest, "modality is required")
		return
	}
	bp := construct.Generate(cs.ProjectName, gate.Modality(cs.Modality), cs.Sequence,
		gate.ExpressionSystem(cs.ExpressionSystem))
	s.writeJSON(w, http.StatusOK,
		blueprintapp.ToAPIBlueprint(cs.ProjectName, cs.Modality, bp))
}

// validateScoreRequest enforces the request boundary: the engine itself
// never rejects input.
func (s *Server) validateScoreRequest(req api.ScoreRequestV1) (gate.CandidateSpec, gate.Constraints, error) {
	cs := req.CandidateSpec
	spec := gate.CandidateSpec{
		ProjectName:      cs.ProjectName,
		Modality:         gate.Modality(cs.Modality),
		Targets:          cs.Targets,
		ExpressionSystem: gate.ExpressionSystem(cs.ExpressionSystem),
		SequenceType:     gate.SequenceType(cs.SequenceType),
		Sequence:         cs.Sequence,
		Notes:            cs.Notes,
	}
	body := seq.Normalize(spec.Sequence)
	if len(body) == 0 {
		return spec, gate.Constraints{}, fmt.Errorf("sequence is required")
	}
	if len(body) > s.cfg.MaxSeqLen {
		return spec, gate.Constraints{}, fmt.Errorf("sequence length %d exceeds limit %d", len(body), s.cfg.MaxSeqLen)
	}
	if !gate.ValidModality(spec.Modality) {
		return spec, gate.Constraints{}, fmt.Errorf("invalid modality %q", cs.Modality)
	}
	if spec.ExpressionSystem != "" && !gate.ValidExpressionSystem(spec.ExpressionSystem) {
		return spec, gate.Constraints{}, fmt.Errorf("invalid expression system %q", cs.ExpressionSystem)
	}

	cons := gate.DefaultConstraints()
	if mc := req.ManufacturingConstraints; mc != nil {
		cons = gate.Constraints{
			MaxFragmentLength: mc.MaxFragmentLength,
			GCMin:             mc.GCMin,
			GCMax:             mc.GCMax,
			MaxHomopolymer:    mc.MaxHomopolymer,
			ForbiddenMotifs:   mc.ForbiddenMotifs,
			RestrictionSites:  mc.RestrictionSites,
			VendorProfile:     mc.VendorProfile,
		}
		if err := cons.Validate(); err != nil {
			return spec, cons, err
		}
	}
	return spec, cons, nil
}

// cacheKey hashes the canonical JSON form of the request.
func cacheKey(req api.ScoreRequestV1) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := jsonutil.EncodePretty(w, v); err != nil {
		s.log.Error("write response", "err", err)
	}
}

func (s *Server) writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.log.Error("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.log.Warn("request rejected", "status", status, "error", msg)
	s.writeJSON(w, status, map[string]string{"error": msg})
}
