package mudra

// DefaultStabilityFrames is the number of consecutive identical raw
// classifications required before a result is committed.
const DefaultStabilityFrames = 3

// Stabilizer debounces frame-by-frame classification results. A raw result
// must be observed for N consecutive frames before it becomes the committed
// result, which filters out single-frame flicker between neighboring poses.
type Stabilizer struct {
	required  int
	candidate string
	run       int
	committed string
}

// NewStabilizer creates a Stabilizer requiring the given number of
// consecutive frames. Values below 1 fall back to DefaultStabilityFrames.
func NewStabilizer(frames int) *Stabilizer {
	if frames < 1 {
		frames = DefaultStabilityFrames
	}
	return &Stabilizer{
		required:  frames,
		committed: NoDetection,
	}
}

// Observe feeds one raw classification result into the stabilizer.
// It returns the committed result and whether this observation caused a
// transition to a newly committed mudra (transitions to NoDetection are not
// reported as changes).
func (s *Stabilizer) Observe(raw string) (committed string, changed bool) {
	if raw == s.candidate {
		s.run++
	} else {
		s.candidate = raw
		s.run = 1
	}

	if s.run >= s.required && s.candidate != s.committed {
		s.committed = s.candidate
		if s.committed != NoDetection {
			return s.committed, true
		}
	}

	return s.committed, false
}

// Current returns the committed result without observing a new frame.
func (s *Stabilizer) Current() string {
	return s.committed
}

// RunLength returns how many consecutive frames the current candidate has
// been observed.
func (s *Stabilizer) RunLength() int {
	return s.run
}

// Reset clears the stabilizer back to its initial state.
func (s *Stabilizer) Reset() {
	s.candidate = ""
	s.run = 0
	s.committed = NoDetection
}
