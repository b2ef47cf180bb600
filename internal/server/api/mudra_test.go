package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ayusman/hastamudra/internal/mudra"
	"github.com/ayusman/hastamudra/internal/store"
)

// newTestStore creates a new Store with a temporary database for testing.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestMudraHandler_HandleCurrent(t *testing.T) {
	session := mudra.NewSession(10)
	handler := NewMudraHandler(session, mudra.NewClassifier())

	t.Run("returns no detection initially", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/current_mudra", nil)
		rec := httptest.NewRecorder()

		handler.HandleCurrent(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var response currentMudraResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if response.Mudra != mudra.NoDetection {
			t.Errorf("mudra = %q, want %q", response.Mudra, mudra.NoDetection)
		}
	})

	t.Run("returns the published mudra with a fresh timestamp", func(t *testing.T) {
		before := float64(time.Now().UnixNano()) / float64(time.Second)
		session.SetCurrent("Pataka Mudra")

		req := httptest.NewRequest(http.MethodGet, "/current_mudra", nil)
		rec := httptest.NewRecorder()

		handler.HandleCurrent(rec, req)

		var response currentMudraResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if response.Mudra != "Pataka Mudra" {
			t.Errorf("mudra = %q, want %q", response.Mudra, "Pataka Mudra")
		}

		// The timestamp is Unix seconds with a fractional part, so it must
		// land between the wall clock readings around the request.
		after := float64(time.Now().UnixNano()) / float64(time.Second)
		if response.Timestamp < before || response.Timestamp > after {
			t.Errorf("timestamp %v outside [%v, %v]", response.Timestamp, before, after)
		}
	})

	t.Run("rejects non-GET methods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/current_mudra", nil)
		rec := httptest.NewRecorder()

		handler.HandleCurrent(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
		}
	})
}

func TestMudraHandler_HandleList(t *testing.T) {
	classifier := mudra.NewClassifier()
	handler := NewMudraHandler(mudra.NewSession(10), classifier)

	req := httptest.NewRequest(http.MethodGet, "/mudra_list", nil)
	rec := httptest.NewRecorder()

	handler.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response mudraListResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Count != len(response.Mudras) {
		t.Errorf("count = %d, want %d", response.Count, len(response.Mudras))
	}
	if len(response.Mudras) != len(classifier.Names()) {
		t.Errorf("got %d mudras, want %d", len(response.Mudras), len(classifier.Names()))
	}
	if response.Mudras[0] != "Ardha Chandra Mudra" {
		t.Errorf("first mudra = %q, want priority order preserved", response.Mudras[0])
	}
}

func TestMudraHandler_HandleInfo(t *testing.T) {
	handler := NewMudraHandler(mudra.NewSession(10), mudra.NewClassifier())

	t.Run("known mudra", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mudra_info/Pataka%20Mudra", nil)
		rec := httptest.NewRecorder()

		handler.HandleInfo(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var response map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if response["meaning"] != "Flag" {
			t.Errorf("meaning = %q, want %q", response["meaning"], "Flag")
		}
		if response["description"] == "" {
			t.Error("description is empty")
		}
		if response["image"] == "" {
			t.Error("image is empty for a known mudra")
		}
	})

	t.Run("unknown mudra gets fallback info", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mudra_info/Unknown%20Thing", nil)
		rec := httptest.NewRecorder()

		handler.HandleInfo(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var response map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if response["description"] == "" {
			t.Error("fallback description is empty")
		}
		if _, exists := response["image"]; exists {
			t.Error("fallback response should omit the image field")
		}
	})

	t.Run("missing name is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mudra_info/", nil)
		rec := httptest.NewRecorder()

		handler.HandleInfo(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}
