package detector

import (
	"errors"
	"testing"
)

func TestMockDetector(t *testing.T) {
	t.Run("returns configured hands", func(t *testing.T) {
		m := NewMockDetector()

		hand := HandLandmarks{Handedness: "Right", Score: 0.9}
		m.SetHands([]HandLandmarks{hand})

		hands, err := m.Detect(nil)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if len(hands) != 1 {
			t.Fatalf("got %d hands, want 1", len(hands))
		}
		if hands[0].Handedness != "Right" {
			t.Errorf("handedness = %q, want %q", hands[0].Handedness, "Right")
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		m := NewMockDetector()

		wantErr := errors.New("detector offline")
		m.SetError(wantErr)

		if _, err := m.Detect(nil); !errors.Is(err, wantErr) {
			t.Errorf("Detect() error = %v, want %v", err, wantErr)
		}
	})

	t.Run("no hands by default", func(t *testing.T) {
		m := NewMockDetector()

		hands, err := m.Detect(nil)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if len(hands) != 0 {
			t.Errorf("got %d hands, want 0", len(hands))
		}
	})
}

func TestJSONHand_ToHandLandmarks(t *testing.T) {
	h := jsonHand{
		Handedness: "Left",
		Score:      0.87,
		Points: []jsonPoint{
			{X: 0.1, Y: 0.2, Z: 0.3},
			{X: 0.4, Y: 0.5, Z: 0.6},
		},
	}

	lm := h.toHandLandmarks()

	if lm.Handedness != "Left" {
		t.Errorf("handedness = %q, want %q", lm.Handedness, "Left")
	}
	if lm.Score != 0.87 {
		t.Errorf("score = %v, want 0.87", lm.Score)
	}
	if lm.Points[0].X != 0.1 || lm.Points[1].Z != 0.6 {
		t.Errorf("points not converted: %+v", lm.Points[:2])
	}

	// Missing points stay zero rather than panicking
	if lm.Points[2] != (Point3D{}) {
		t.Errorf("point 2 = %+v, want zero value", lm.Points[2])
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxHands != 1 {
		t.Errorf("MaxHands = %d, want 1", cfg.MaxHands)
	}
	if cfg.MinConfidence != 0.7 {
		t.Errorf("MinConfidence = %v, want 0.7", cfg.MinConfidence)
	}
	if cfg.MinTrackingConf != 0.7 {
		t.Errorf("MinTrackingConf = %v, want 0.7", cfg.MinTrackingConf)
	}
}
