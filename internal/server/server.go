package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ChicagoDave/measure/internal/ctxlog"
	"github.com/ChicagoDave/measure/pkg/unit"
	"github.com/ChicagoDave/measure/pkg/validation"
	"github.com/ChicagoDave/measure/pkg/worksheet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBody caps request bodies.
const maxBody = 1 << 20

// Server exposes conversions and worksheet evaluation over HTTP.
type Server struct {
	port     int
	logger   *slog.Logger
	registry *prometheus.Registry
	ops      *prometheus.CounterVec
}

// New creates a server listening on port.
func New(port int, logger *slog.Logger) *Server {
	s := &Server{
		port:     port,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "measure_operations_total",
			Help: "Measurement operations served, by op, unit family and outcome.",
		}, []string{"op", "family", "outcome"}),
	}
	s.registry.MustRegister(s.ops)
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/units", s.handleUnits)
	mux.HandleFunc("POST /api/convert", s.handleConvert)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("POST /api/eval", s.handleEval)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return mux
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("Measure server starting.", "addr", "http://localhost"+addr)
	return http.ListenAndServe(addr, s.Handler())
}

type unitInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

func (s *Server) handleUnits(w http.ResponseWriter, _ *http.Request) {
	out := map[unit.Family][]unitInfo{}
	for _, u := range unit.LengthUnits() {
		out[unit.FamilyLength] = append(out[unit.FamilyLength], unitInfo{u.Name(), u.Symbol()})
	}
	for _, u := range unit.WeightUnits() {
		out[unit.FamilyWeight] = append(out[unit.FamilyWeight], unitInfo{u.Name(), u.Symbol()})
	}
	writeJSON(w, http.StatusOK, out)
}

type convertRequest struct {
	Magnitude string `json:"magnitude"`
	Unit      string `json:"unit"`
	To        string `json:"to"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !s.decode(w, r, &req) {
		return
	}
	ws := &worksheet.Worksheet{Steps: []worksheet.Step{{
		Name:  "convert",
		Op:    worksheet.OpConvert,
		Value: worksheet.Operand{Magnitude: req.Magnitude, Unit: req.Unit},
		To:    req.To,
	}}}
	outcomes, report, err := s.evaluate(r, ws)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, report)
		return
	}
	writeJSON(w, http.StatusOK, outcomes[0])
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var ws worksheet.Worksheet
	if !s.decode(w, r, &ws) {
		return
	}
	writeJSON(w, http.StatusOK, worksheet.Validate(&ws))
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var ws worksheet.Worksheet
	if !s.decode(w, r, &ws) {
		return
	}
	outcomes, report, err := s.evaluate(r, &ws)
	if err != nil {
		if report.Valid {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, report)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"outcomes": outcomes})
}

// evaluate validates and runs ws. An invalid worksheet counts every step as
// invalid; otherwise each attempted step is counted by its own outcome.
func (s *Server) evaluate(r *http.Request, ws *worksheet.Worksheet) ([]worksheet.Outcome, *validation.Report, error) {
	report := worksheet.Validate(ws)
	if err := report.Err(); err != nil {
		for _, st := range ws.Steps {
			s.count(st, "invalid")
		}
		return nil, report, err
	}

	ctx := ctxlog.WithLogger(r.Context(), s.logger)
	outcomes, err := worksheet.Evaluate(ctx, ws)
	if err != nil {
		s.logger.Warn("Worksheet evaluation failed.", "error", err)
		var stepErr *worksheet.StepError
		if errors.As(err, &stepErr) {
			for _, st := range ws.Steps[:stepErr.Index] {
				s.count(st, "ok")
			}
			s.count(ws.Steps[stepErr.Index], "error")
		}
		return nil, report, err
	}
	for _, st := range ws.Steps {
		s.count(st, "ok")
	}
	return outcomes, report, nil
}

func (s *Server) count(st worksheet.Step, outcome string) {
	family, ok := unit.FamilyOf(st.Value.Unit)
	if !ok {
		family = "unknown"
	}
	op := string(st.Op)
	if !st.Op.Known() {
		op = "unknown"
	}
	s.ops.WithLabelValues(op, string(family), outcome).Inc()
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "decoding request: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
