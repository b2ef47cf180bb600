package api

import (
	"net/http"
	"strconv"

	"github.com/ayusman/hastamudra/internal/store"
)

// DefaultDetectionsLimit bounds GET /api/detections when no limit is given.
const DefaultDetectionsLimit = 50

// DetectionsHandler serves the persisted detection event log.
type DetectionsHandler struct {
	store *store.Store
}

// NewDetectionsHandler creates a new DetectionsHandler with the given store.
func NewDetectionsHandler(s *store.Store) *DetectionsHandler {
	return &DetectionsHandler{store: s}
}

type detectionResponse struct {
	ID           string `json:"id"`
	Mudra        string `json:"mudra"`
	StableFrames int    `json:"stable_frames"`
	DetectedAt   string `json:"detected_at"`
}

type listDetectionsResponse struct {
	Detections []detectionResponse `json:"detections"`
	Counts     map[string]int64    `json:"counts"`
}

// ServeHTTP routes detection log requests.
func (h *DetectionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodDelete:
		h.deleteAll(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// list handles GET /api/detections?limit=N and returns recent detection
// events, newest first, along with per-mudra totals.
func (h *DetectionsHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := DefaultDetectionsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	detections, err := h.store.Detections().ListRecent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list detections")
		return
	}

	counts, err := h.store.Detections().CountByMudra()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count detections")
		return
	}

	response := listDetectionsResponse{
		Detections: make([]detectionResponse, 0, len(detections)),
		Counts:     counts,
	}

	for _, d := range detections {
		response.Detections = append(response.Detections, detectionResponse{
			ID:           d.ID,
			Mudra:        d.Mudra,
			StableFrames: d.StableFrames,
			DetectedAt:   d.DetectedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// deleteAll handles DELETE /api/detections and clears the event log.
func (h *DetectionsHandler) deleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Detections().DeleteAll(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete detections")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
