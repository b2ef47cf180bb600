// Package mudra provides rule-based classification of classical Indian dance
// hand gestures (mudras) from MediaPipe hand landmarks.
package mudra

import (
	"math"

	"github.com/ayusman/hastamudra/internal/detector"
)

// Table holds pairwise landmark distances for a single hand, precomputed once
// per frame. Distances are 2D (x, y only) and are normalized by the palm
// width, the distance from the wrist to the middle finger MCP. All mudra
// rules evaluate against the same table.
type Table struct {
	dist  [detector.NumLandmarks][detector.NumLandmarks]float64
	scale float64
}

// NewTable computes the distance table for the given hand landmarks.
func NewTable(h *detector.HandLandmarks) *Table {
	t := &Table{}

	// Palm width as the scale reference; the epsilon guards against a
	// degenerate hand where wrist and middle MCP coincide.
	t.scale = dist2D(h.Points[detector.Wrist], h.Points[detector.MiddleMCP]) + 1e-6

	for i := 0; i < detector.NumLandmarks; i++ {
		for j := i + 1; j < detector.NumLandmarks; j++ {
			d := dist2D(h.Points[i], h.Points[j])
			t.dist[i][j] = d
			t.dist[j][i] = d
		}
	}

	return t
}

// Dist returns the raw 2D distance between two landmarks.
func (t *Table) Dist(i, j int) float64 {
	return t.dist[i][j]
}

// NormDist returns the distance between two landmarks normalized by palm width.
func (t *Table) NormDist(i, j int) float64 {
	return t.dist[i][j] / t.scale
}

// PalmWidth returns the scale reference (wrist to middle MCP distance).
func (t *Table) PalmWidth() float64 {
	return t.scale
}

// dist2D calculates the Euclidean distance between two points, ignoring depth.
func dist2D(a, b detector.Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// angleBetween returns the angle in degrees between two 2D vectors.
// The second return value is false if either vector has zero magnitude.
func angleBetween(v1x, v1y, v2x, v2y float64) (float64, bool) {
	mag1 := math.Sqrt(v1x*v1x + v1y*v1y)
	mag2 := math.Sqrt(v2x*v2x + v2y*v2y)
	if mag1 == 0 || mag2 == 0 {
		return 0, false
	}

	cos := (v1x*v2x + v1y*v2y) / (mag1 * mag2)

	// Clamp numerically before acos
	cos = math.Max(-1.0, math.Min(1.0, cos))

	return math.Acos(cos) * 180 / math.Pi, true
}

// finger identifies a finger by its MCP, PIP and TIP landmark indices.
// The thumb uses MCP/IP/TIP, which fits the same triple.
type finger struct {
	mcp, pip, tip int
}

var (
	thumb  = finger{detector.ThumbMCP, detector.ThumbIP, detector.ThumbTip}
	index  = finger{detector.IndexMCP, detector.IndexPIP, detector.IndexTip}
	middle = finger{detector.MiddleMCP, detector.MiddlePIP, detector.MiddleTip}
	ring   = finger{detector.RingMCP, detector.RingPIP, detector.RingTip}
	pinky  = finger{detector.PinkyMCP, detector.PinkyPIP, detector.PinkyTip}
)

// defaultStraightness is the straightness ratio threshold used when a rule
// does not specify its own.
const defaultStraightness = 0.9

// straight reports whether a finger is extended. The straightness ratio is
// (MCP→TIP) / (MCP→PIP + PIP→TIP) over normalized distances; a perfectly
// straight finger approaches 1.0.
func straight(t *Table, f finger, threshold float64) bool {
	mcpPIP := t.NormDist(f.mcp, f.pip)
	pipTIP := t.NormDist(f.pip, f.tip)
	mcpTIP := t.NormDist(f.mcp, f.tip)

	total := mcpPIP + pipTIP
	if total == 0 {
		return false
	}

	return mcpTIP/total > threshold
}

// bent reports whether a finger is clearly not straight at the given threshold.
func bent(t *Table, f finger, threshold float64) bool {
	return !straight(t, f, threshold)
}
