package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayusman/hastamudra/internal/store"
)

func seedDetections(t *testing.T, s *store.Store, n int) {
	t.Helper()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		err := s.Detections().Create(&store.Detection{
			ID:           "det-" + string(rune('a'+i)),
			Mudra:        "Pataka Mudra",
			StableFrames: 3,
			DetectedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("failed to seed detection: %v", err)
		}
	}
}

func TestDetectionsHandler_List(t *testing.T) {
	s := newTestStore(t)
	seedDetections(t, s, 3)

	handler := NewDetectionsHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/detections", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response listDetectionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(response.Detections) != 3 {
		t.Fatalf("got %d detections, want 3", len(response.Detections))
	}

	// Newest first
	if response.Detections[0].ID != "det-c" {
		t.Errorf("first ID = %q, want %q", response.Detections[0].ID, "det-c")
	}

	if response.Counts["Pataka Mudra"] != 3 {
		t.Errorf("counts[Pataka Mudra] = %d, want 3", response.Counts["Pataka Mudra"])
	}
}

func TestDetectionsHandler_List_Limit(t *testing.T) {
	s := newTestStore(t)
	seedDetections(t, s, 5)

	handler := NewDetectionsHandler(s)

	t.Run("limit applies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/detections?limit=2", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		var response listDetectionsResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if len(response.Detections) != 2 {
			t.Errorf("got %d detections, want 2", len(response.Detections))
		}
	})

	t.Run("invalid limit is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/detections?limit=abc", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("negative limit is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/detections?limit=-1", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

func TestDetectionsHandler_DeleteAll(t *testing.T) {
	s := newTestStore(t)
	seedDetections(t, s, 2)

	handler := NewDetectionsHandler(s)

	req := httptest.NewRequest(http.MethodDelete, "/api/detections", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	count, err := s.Detections().Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count after delete = %d, want 0", count)
	}
}

func TestDetectionsHandler_MethodNotAllowed(t *testing.T) {
	s := newTestStore(t)
	handler := NewDetectionsHandler(s)

	req := httptest.NewRequest(http.MethodPost, "/api/detections", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}
