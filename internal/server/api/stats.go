package api

import (
	"net/http"
	"strings"

	"github.com/ayusman/hastamudra/internal/mudra"
	"github.com/ayusman/hastamudra/internal/store"
)

// StatsHandler serves session statistics and supports resetting them.
type StatsHandler struct {
	session *mudra.Session
	store   *store.Store
}

// NewStatsHandler creates a new StatsHandler. The store may be nil, in which
// case the all-time detection count is omitted.
func NewStatsHandler(session *mudra.Session, s *store.Store) *StatsHandler {
	return &StatsHandler{session: session, store: s}
}

type statsResponse struct {
	Current        string               `json:"current"`
	TotalSession   int64                `json:"total_session"`
	DistinctMudras int                  `json:"distinct_mudras"`
	History        []mudra.HistoryEntry `json:"history"`
	TotalAllTime   *int64               `json:"total_all_time,omitempty"`
}

// ServeHTTP routes stats requests.
// Expected paths: /api/stats and /api/stats/reset
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/stats")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.get(w, r)
	case "reset":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.reset(w, r)
	default:
		writeError(w, http.StatusNotFound, "Not found")
	}
}

// get handles GET /api/stats and returns the current session statistics.
func (h *StatsHandler) get(w http.ResponseWriter, r *http.Request) {
	response := statsResponse{
		TotalSession:   h.session.Total(),
		DistinctMudras: h.session.Distinct(),
		History:        h.session.History(),
	}
	response.Current, _ = h.session.Current()

	if h.store != nil {
		if count, err := h.store.Detections().Count(); err == nil {
			response.TotalAllTime = &count
		}
	}

	if response.History == nil {
		response.History = []mudra.HistoryEntry{}
	}

	writeJSON(w, http.StatusOK, response)
}

// reset handles POST /api/stats/reset and clears the session counters and
// history. Persisted detection events are untouched.
func (h *StatsHandler) reset(w http.ResponseWriter, r *http.Request) {
	h.session.Reset()
	w.WriteHeader(http.StatusNoContent)
}
