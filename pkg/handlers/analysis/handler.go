package analysis

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/de-tools/war-atlas/pkg/adapters"
	"github.com/de-tools/war-atlas/pkg/models/api"
	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/services/analysis"
	"github.com/de-tools/war-atlas/pkg/services/frontline"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	reader analysis.Reader
}

func NewHandler(reader analysis.Reader) *Handler {
	return &Handler{reader: reader}
}

func (h *Handler) ListFronts(w http.ResponseWriter, r *http.Request) {
	profiles := h.reader.Profiles()
	response := make([]api.FrontProfile, 0, len(profiles))
	for _, p := range profiles {
		response = append(response, adapters.MapFrontProfileDomainToApi(p))
	}
	writeJSON(w, r, response, "failed to encode fronts")
}

func (h *Handler) GetDaily(w http.ResponseWriter, r *http.Request) {
	front, err := domain.ParseFront(chi.URLParam(r, "front"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	series, ok := h.reader.Daily(front)
	if !ok {
		http.Error(w, "no series for front "+string(front), http.StatusNotFound)
		return
	}
	writeJSON(w, r, adapters.MapFrontSeriesDomainToApi(series), "failed to encode daily series")
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	front, err := domain.ParseFront(chi.URLParam(r, "front"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	series, ok := h.reader.Daily(front)
	if !ok {
		http.Error(w, "no series for front "+string(front), http.StatusNotFound)
		return
	}
	writeJSON(w, r, adapters.MapFrontSummaryDomainToApi(frontline.Summarize(series)), "failed to encode summary")
}

func (h *Handler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	months := h.reader.Monthly()
	response := make([]api.MonthlyMagnitude, 0, len(months))
	for _, m := range months {
		response = append(response, adapters.MapMonthlyMagnitudeDomainToApi(m))
	}
	writeJSON(w, r, response, "failed to encode monthly magnitudes")
}

func (h *Handler) GetLosses(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseLossKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	table, ok := h.reader.Losses(kind)
	if !ok {
		http.Error(w, "losses not loaded: "+string(kind), http.StatusNotFound)
		return
	}
	writeJSON(w, r, adapters.MapLossTableDomainToApi(table), "failed to encode losses")
}

func (h *Handler) ListExplosions(w http.ResponseWriter, r *http.Request) {
	var month time.Time
	if m := r.URL.Query().Get("month"); m != "" {
		var err error
		month, err = time.Parse(adapters.MonthLayout, m)
		if err != nil {
			http.Error(w, "month must be YYYY-MM", http.StatusBadRequest)
			return
		}
	}

	response := adapters.MapExplosionsDomainToApi(month, h.reader.Explosions(month), h.reader.ExplosionsByMonth())
	writeJSON(w, r, response, "failed to encode explosions")
}

func (h *Handler) GetBoundary(w http.ResponseWriter, r *http.Request) {
	fc := h.reader.Boundary()
	if fc == nil {
		http.Error(w, "boundary not loaded", http.StatusNotFound)
		return
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode boundary")
		http.Error(w, "failed to encode boundary", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}, msg string) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg(msg)
	}
}
