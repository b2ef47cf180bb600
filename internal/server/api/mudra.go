// Package api provides HTTP API handlers for the mudra recognition system.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ayusman/hastamudra/internal/catalog"
	"github.com/ayusman/hastamudra/internal/mudra"
)

// MudraHandler serves the polling endpoints the dashboard depends on: the
// currently detected mudra, the list of detectable mudras, and per-mudra
// reference information.
type MudraHandler struct {
	session    *mudra.Session
	classifier *mudra.Classifier
}

// NewMudraHandler creates a new MudraHandler.
func NewMudraHandler(session *mudra.Session, classifier *mudra.Classifier) *MudraHandler {
	return &MudraHandler{session: session, classifier: classifier}
}

// Response types

type currentMudraResponse struct {
	Mudra     string  `json:"mudra"`
	Timestamp float64 `json:"timestamp"`
}

type mudraListResponse struct {
	Mudras []string `json:"mudras"`
	Count  int      `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// HandleCurrent handles GET /current_mudra and returns the currently
// published mudra with a Unix timestamp in fractional seconds.
func (h *MudraHandler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	name, at := h.session.Current()

	writeJSON(w, http.StatusOK, currentMudraResponse{
		Mudra:     name,
		Timestamp: float64(at.UnixNano()) / float64(time.Second),
	})
}

// HandleList handles GET /mudra_list and returns the names of all
// detectable mudras in classification priority order.
func (h *MudraHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	names := h.classifier.Names()

	writeJSON(w, http.StatusOK, mudraListResponse{
		Mudras: names,
		Count:  len(names),
	})
}

// HandleInfo handles GET /mudra_info/{name} and returns reference
// information for the named mudra. Unknown names get a generic entry rather
// than an error so the dashboard can always render something.
func (h *MudraHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/mudra_info/")
	name = strings.TrimSuffix(name, "/")
	if name == "" {
		writeError(w, http.StatusBadRequest, "Mudra name is required")
		return
	}

	writeJSON(w, http.StatusOK, catalog.Lookup(name))
}
