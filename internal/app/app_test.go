package app

import (
	"path/filepath"
	"testing"

	"github.com/ayusman/hastamudra/internal/detector"
	"github.com/ayusman/hastamudra/internal/mudra"
	"github.com/ayusman/hastamudra/internal/store"
	"github.com/ayusman/hastamudra/internal/testutil"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})

	a := New(Config{
		Store:           s,
		StabilityFrames: 3,
		HistorySize:     10,
	})
	a.SetDetector(detector.NewMockDetector())

	return a
}

func TestApp_ProcessHands_CommitsStableDetection(t *testing.T) {
	a := newTestApp(t)

	pose := testutil.PatakaPose()
	hands := []detector.HandLandmarks{pose}

	// Two frames are not enough to commit
	a.ProcessHands(hands)
	a.ProcessHands(hands)

	if name, _ := a.Session().Current(); name != mudra.NoDetection {
		t.Errorf("current after 2 frames = %q, want %q", name, mudra.NoDetection)
	}

	// Third consecutive frame commits
	a.ProcessHands(hands)

	if name, _ := a.Session().Current(); name != "Pataka Mudra" {
		t.Errorf("current after 3 frames = %q, want %q", name, "Pataka Mudra")
	}
	if got := a.Session().Total(); got != 1 {
		t.Errorf("session total = %d, want 1", got)
	}

	history := a.Session().History()
	if len(history) != 1 || history[0].Mudra != "Pataka Mudra" {
		t.Errorf("history = %v, want one Pataka Mudra entry", history)
	}
}

func TestApp_ProcessHands_PersistsDetection(t *testing.T) {
	a := newTestApp(t)

	hands := []detector.HandLandmarks{testutil.SuchiPose()}
	for i := 0; i < 3; i++ {
		a.ProcessHands(hands)
	}

	detections, err := a.config.Store.Detections().ListRecent(0)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(detections) != 1 {
		t.Fatalf("got %d persisted detections, want 1", len(detections))
	}
	if detections[0].Mudra != "Suchi Mudra" {
		t.Errorf("persisted mudra = %q, want %q", detections[0].Mudra, "Suchi Mudra")
	}
	if detections[0].ID == "" {
		t.Error("persisted detection has no ID")
	}
	if detections[0].StableFrames < 3 {
		t.Errorf("stable_frames = %d, want >= 3", detections[0].StableFrames)
	}
}

func TestApp_ProcessHands_FlickerDoesNotCommit(t *testing.T) {
	a := newTestApp(t)

	pataka := []detector.HandLandmarks{testutil.PatakaPose()}
	suchi := []detector.HandLandmarks{testutil.SuchiPose()}

	a.ProcessHands(pataka)
	a.ProcessHands(pataka)
	a.ProcessHands(suchi) // flicker
	a.ProcessHands(pataka)
	a.ProcessHands(pataka)

	if name, _ := a.Session().Current(); name != mudra.NoDetection {
		t.Errorf("current = %q, want %q after flicker", name, mudra.NoDetection)
	}
	if got := a.Session().Total(); got != 0 {
		t.Errorf("session total = %d, want 0", got)
	}
}

func TestApp_ProcessHands_EmptyHandsClearsDetection(t *testing.T) {
	a := newTestApp(t)

	hands := []detector.HandLandmarks{testutil.MusthiPose()}
	for i := 0; i < 3; i++ {
		a.ProcessHands(hands)
	}
	if name, _ := a.Session().Current(); name != "Musthi Mudra" {
		t.Fatalf("current = %q, want %q", name, "Musthi Mudra")
	}

	// No hands in view for three frames clears the published result
	for i := 0; i < 3; i++ {
		a.ProcessHands(nil)
	}

	if name, _ := a.Session().Current(); name != mudra.NoDetection {
		t.Errorf("current = %q, want %q", name, mudra.NoDetection)
	}

	// The clearing itself is not a detection event
	if got := a.Session().Total(); got != 1 {
		t.Errorf("session total = %d, want 1", got)
	}
}

func TestApp_SetEnabled(t *testing.T) {
	a := newTestApp(t)

	if !a.IsEnabled() {
		t.Error("detection should be enabled by default")
	}

	a.SetEnabled(false)
	if a.IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}

	a.SetEnabled(true)
	if !a.IsEnabled() {
		t.Error("IsEnabled() = false after SetEnabled(true)")
	}
}

func TestApp_SetEnabled_SurvivesRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	cfg := Config{
		Store:           s,
		StabilityFrames: 3,
		HistorySize:     10,
	}

	a := New(cfg)
	if !a.IsEnabled() {
		t.Fatal("detection should be enabled by default")
	}

	a.SetEnabled(false)

	// A new App over the same store picks up the persisted toggle
	b := New(cfg)
	if b.IsEnabled() {
		t.Error("disabled toggle did not survive restart")
	}

	b.SetEnabled(true)

	c := New(cfg)
	if !c.IsEnabled() {
		t.Error("enabled toggle did not survive restart")
	}
}
