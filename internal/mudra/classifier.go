package mudra

import (
	"github.com/ayusman/hastamudra/internal/detector"
)

// NoDetection is the published result when no mudra is recognized.
// It doubles as the label shown by the dashboard, matching the wire format
// the polling client expects.
const NoDetection = "No Mudra Detected"

// Classifier evaluates hand landmarks against the ordered rule registry.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a Classifier using the default rule registry.
func NewClassifier() *Classifier {
	return &Classifier{rules: Rules}
}

// Classify evaluates the rules in priority order against the given hand and
// returns the name of the first matching mudra. The second return value is
// false when no rule matches or the hand is nil.
func (c *Classifier) Classify(hand *detector.HandLandmarks) (string, bool) {
	if hand == nil {
		return NoDetection, false
	}

	table := NewTable(hand)

	for _, rule := range c.rules {
		if rule.Check(hand, table) {
			return rule.Name, true
		}
	}

	return NoDetection, false
}

// Names returns the detectable mudra names in rule priority order.
func (c *Classifier) Names() []string {
	names := make([]string, len(c.rules))
	for i, rule := range c.rules {
		names[i] = rule.Name
	}
	return names
}
