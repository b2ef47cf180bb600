package mudra

import "testing"

func TestStabilizer_CommitsAfterRequiredFrames(t *testing.T) {
	s := NewStabilizer(3)

	// First two observations stay on the previous committed result
	if got, changed := s.Observe("Pataka Mudra"); got != NoDetection || changed {
		t.Errorf("frame 1: Observe() = (%q, %v), want (%q, false)", got, changed, NoDetection)
	}
	if got, changed := s.Observe("Pataka Mudra"); got != NoDetection || changed {
		t.Errorf("frame 2: Observe() = (%q, %v), want (%q, false)", got, changed, NoDetection)
	}

	// Third consecutive observation commits
	got, changed := s.Observe("Pataka Mudra")
	if got != "Pataka Mudra" {
		t.Errorf("frame 3: Observe() = %q, want %q", got, "Pataka Mudra")
	}
	if !changed {
		t.Error("frame 3: changed = false, want true")
	}
}

func TestStabilizer_FlickerResetsRun(t *testing.T) {
	s := NewStabilizer(3)

	s.Observe("Pataka Mudra")
	s.Observe("Pataka Mudra")
	s.Observe("Tripataka Mudra") // flicker resets the run
	s.Observe("Pataka Mudra")

	if got, changed := s.Observe("Pataka Mudra"); got != NoDetection || changed {
		t.Errorf("after flicker: Observe() = (%q, %v), want (%q, false)", got, changed, NoDetection)
	}

	if got, _ := s.Observe("Pataka Mudra"); got != "Pataka Mudra" {
		t.Errorf("Observe() = %q, want committed %q", got, "Pataka Mudra")
	}
}

func TestStabilizer_NoDetectionIsNotReportedAsChange(t *testing.T) {
	s := NewStabilizer(2)

	s.Observe("Suchi Mudra")
	s.Observe("Suchi Mudra")

	s.Observe(NoDetection)
	got, changed := s.Observe(NoDetection)
	if got != NoDetection {
		t.Errorf("Observe() = %q, want %q", got, NoDetection)
	}
	if changed {
		t.Error("transition to no detection reported as a change")
	}
}

func TestStabilizer_RecommitAfterClearing(t *testing.T) {
	s := NewStabilizer(2)

	s.Observe("Suchi Mudra")
	if _, changed := s.Observe("Suchi Mudra"); !changed {
		t.Fatal("first commit not reported as change")
	}

	// Same mudra again without clearing is not a new change
	if _, changed := s.Observe("Suchi Mudra"); changed {
		t.Error("steady state reported as change")
	}

	s.Observe(NoDetection)
	s.Observe(NoDetection)

	s.Observe("Suchi Mudra")
	if _, changed := s.Observe("Suchi Mudra"); !changed {
		t.Error("recommit after clearing not reported as change")
	}
}

func TestStabilizer_Reset(t *testing.T) {
	s := NewStabilizer(2)
	s.Observe("Pataka Mudra")
	s.Observe("Pataka Mudra")

	s.Reset()

	if got := s.Current(); got != NoDetection {
		t.Errorf("Current() after Reset = %q, want %q", got, NoDetection)
	}
	if got := s.RunLength(); got != 0 {
		t.Errorf("RunLength() after Reset = %d, want 0", got)
	}
}

func TestNewStabilizer_InvalidFrames(t *testing.T) {
	s := NewStabilizer(0)

	// Falls back to the default of 3 frames
	s.Observe("Pataka Mudra")
	s.Observe("Pataka Mudra")
	if got := s.Current(); got != NoDetection {
		t.Errorf("committed after 2 frames with default requirement, got %q", got)
	}
	s.Observe("Pataka Mudra")
	if got := s.Current(); got != "Pataka Mudra" {
		t.Errorf("Current() = %q, want %q", got, "Pataka Mudra")
	}
}
