package mudra

import (
	"sync"
	"time"
)

// DefaultHistorySize is the maximum number of entries kept in the session
// detection history.
const DefaultHistorySize = 10

// HistoryEntry records one committed detection in the session history.
type HistoryEntry struct {
	Mudra      string    `json:"mudra"`
	DetectedAt time.Time `json:"detected_at"`
}

// Session tracks the live detection state served to the dashboard: the
// current mudra, a monotonic detection counter, the set of distinct mudras
// seen, and a bounded history of recent detections (newest first).
//
// All methods are safe for concurrent use; the pipeline writes while HTTP
// handlers read.
type Session struct {
	mu          sync.RWMutex
	current     string
	currentAt   time.Time
	total       int64
	distinct    map[string]struct{}
	history     []HistoryEntry
	historySize int
}

// NewSession creates a Session with the given history cap. Values below 1
// fall back to DefaultHistorySize.
func NewSession(historySize int) *Session {
	if historySize < 1 {
		historySize = DefaultHistorySize
	}
	return &Session{
		current:     NoDetection,
		currentAt:   time.Now(),
		distinct:    make(map[string]struct{}),
		historySize: historySize,
	}
}

// SetCurrent updates the currently published mudra and its timestamp.
func (s *Session) SetCurrent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = name
	s.currentAt = time.Now()
}

// Current returns the currently published mudra and when it was set.
func (s *Session) Current() (string, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.currentAt
}

// Record registers a committed detection: it increments the counter, adds
// the mudra to the distinct set, and prepends it to the bounded history.
func (s *Session) Record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.distinct[name] = struct{}{}

	entry := HistoryEntry{Mudra: name, DetectedAt: time.Now()}
	s.history = append([]HistoryEntry{entry}, s.history...)
	if len(s.history) > s.historySize {
		s.history = s.history[:s.historySize]
	}
}

// Total returns the monotonic detection counter.
func (s *Session) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// Distinct returns the number of distinct mudras detected this session.
func (s *Session) Distinct() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.distinct)
}

// History returns a copy of the detection history, newest first.
func (s *Session) History() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Reset clears the counters and history. The current mudra is reset to
// NoDetection.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = NoDetection
	s.currentAt = time.Now()
	s.total = 0
	s.distinct = make(map[string]struct{})
	s.history = nil
}
