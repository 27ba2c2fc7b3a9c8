package restserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/subsurfaceio/petrolog/internal/analysis"
	"github.com/subsurfaceio/petrolog/internal/petro"
	"github.com/subsurfaceio/petrolog/internal/stats"
	"github.com/subsurfaceio/petrolog/internal/wellog"
	"github.com/subsurfaceio/petrolog/internal/zones"
)

// Handlers holds the HTTP handlers for the REST endpoints
type Handlers struct {
	ctrl *Controller
}

// NewHandlers creates handlers bound to a controller
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{ctrl: ctrl}
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListWells returns all loaded wells with their availability.
func (h *Handlers) ListWells(w http.ResponseWriter, r *http.Request) {
	type wellInfo struct {
		Well       string `json:"well"`
		Analyzable bool   `json:"analyzable"`
	}

	var out []wellInfo
	for _, name := range h.ctrl.wellNames() {
		ds, _ := h.ctrl.dataset(name)
		entry := h.ctrl.wellAvailability(ds)
		out = append(out, wellInfo{Well: name, Analyzable: entry.Analyzable})
	}
	writeJSON(w, http.StatusOK, out)
}

// WellCurves returns the availability entry for one well.
func (h *Handlers) WellCurves(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.lookupWell(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.ctrl.wellAvailability(ds))
}

// Evaluation runs a formation evaluation. Supports format=msgpack for the
// compact snapshot encoding.
func (h *Handlers) Evaluation(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.lookupWell(w, r)
	if !ok {
		return
	}
	ds, params, ok := h.applyQuery(w, r, ds)
	if !ok {
		return
	}

	analyzer, err := analysis.New(ds, params, h.ctrl.logger)
	if err != nil {
		h.writeError(w, err)
		return
	}
	ev, err := analyzer.FormationEvaluation()
	if err != nil {
		h.writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "msgpack" {
		b, err := analysis.EncodeSnapshot(ev)
		if err != nil {
			h.writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/x-msgpack")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// Intervals runs a segmentation pass. Query: kind=reservoir|cleansand|
// highporosity (default reservoir), cutoff, start, end, plus parameter
// overrides.
func (h *Handlers) Intervals(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.lookupWell(w, r)
	if !ok {
		return
	}
	ds, params, ok := h.applyQuery(w, r, ds)
	if !ok {
		return
	}

	// A well with no analyzable curve yields zero intervals and a
	// low-confidence summary rather than an error.
	if entry := h.ctrl.wellAvailability(ds); !entry.Analyzable {
		writeJSON(w, http.StatusOK, &analysis.IntervalSet{
			Well:      ds.Well,
			Kind:      r.URL.Query().Get("kind"),
			Intervals: []zones.Interval{},
			Summary:   stats.Summary{LowConfidence: true},
		})
		return
	}

	analyzer, err := analysis.New(ds, params, h.ctrl.logger)
	if err != nil {
		h.writeError(w, err)
		return
	}

	cutoff, ok := h.floatQuery(w, r, "cutoff", 0)
	if !ok {
		return
	}

	var set *analysis.IntervalSet
	switch r.URL.Query().Get("kind") {
	case "", "reservoir":
		set, err = analyzer.ReservoirIntervals(cutoff)
	case "cleansand":
		set, err = analyzer.CleanSandIntervals(cutoff)
	case "highporosity":
		set, err = analyzer.HighPorosityZones(cutoff)
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown interval kind"})
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// Statistics summarizes one curve, resolved through aliases.
func (h *Handlers) Statistics(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.lookupWell(w, r)
	if !ok {
		return
	}
	ds, params, ok := h.applyQuery(w, r, ds)
	if !ok {
		return
	}

	curve := r.URL.Query().Get("curve")
	if curve == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "curve query parameter is required"})
		return
	}

	analyzer, err := analysis.New(ds, params, h.ctrl.logger)
	if err != nil {
		h.writeError(w, err)
		return
	}
	cs, err := analyzer.CurveStatistics(curve)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

// InvalidateAvailability drops the cached availability entry for a well.
func (h *Handlers) InvalidateAvailability(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.lookupWell(w, r)
	if !ok {
		return
	}
	h.ctrl.avail.Invalidate(ds.Well)
	w.WriteHeader(http.StatusNoContent)
}

// lookupWell resolves the {well} path variable, writing a 404 on miss.
func (h *Handlers) lookupWell(w http.ResponseWriter, r *http.Request) (*wellog.Dataset, bool) {
	name := mux.Vars(r)["well"]
	ds, ok := h.ctrl.dataset(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown well: " + name})
		return nil, false
	}
	return ds, true
}

// applyQuery applies the depth-range filter and parameter overrides from
// query parameters, writing a 400 on malformed values.
func (h *Handlers) applyQuery(w http.ResponseWriter, r *http.Request, ds *wellog.Dataset) (*wellog.Dataset, petro.Parameters, bool) {
	params := h.ctrl.cfg.Analysis.Parameters

	q := r.URL.Query()
	overrides := []struct {
		key string
		dst *float64
	}{
		{"matrix_density", &params.MatrixDensity},
		{"fluid_density", &params.FluidDensity},
		{"gr_clean", &params.GRClean},
		{"gr_shale", &params.GRShale},
	}
	for _, o := range overrides {
		if v := q.Get(o.key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad " + o.key + " value"})
				return nil, params, false
			}
			*o.dst = f
		}
	}
	if v := q.Get("lithology"); v != "" {
		params.Lithology = petro.Lithology(v)
	}
	if v := q.Get("blend"); v != "" {
		params.Blend = petro.BlendMethod(v)
	}
	if v := q.Get("vsh_method"); v != "" {
		params.VshMethod = petro.VshMethod(v)
	}

	start, ok := h.floatQuery(w, r, "start", ds.Axis[0])
	if !ok {
		return nil, params, false
	}
	end, ok := h.floatQuery(w, r, "end", ds.Axis[len(ds.Axis)-1])
	if !ok {
		return nil, params, false
	}
	if start != ds.Axis[0] || end != ds.Axis[len(ds.Axis)-1] {
		ds = ds.FilterByDepthRange(start, end)
	}

	return ds, params, true
}

func (h *Handlers) floatQuery(w http.ResponseWriter, r *http.Request, key string, def float64) (float64, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad " + key + " value"})
		return 0, false
	}
	return f, true
}

// writeError maps the core error taxonomy to HTTP status codes.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, wellog.ErrCurveNotFound):
		status = http.StatusNotFound
	case errors.Is(err, wellog.ErrInsufficientData):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, wellog.ErrInvalidParameter), errors.Is(err, wellog.ErrMalformedInput):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		h.ctrl.logger.Errorf("request failed: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
