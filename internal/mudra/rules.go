package mudra

import (
	"math"

	"github.com/ayusman/hastamudra/internal/detector"
)

// RuleFunc evaluates a single mudra against a hand and its distance table.
type RuleFunc func(h *detector.HandLandmarks, t *Table) bool

// Rule pairs a mudra name with its detection rule.
type Rule struct {
	Name  string
	Check RuleFunc
}

// Rules is the ordered rule registry. Order is significant: rules are
// evaluated top to bottom and the first match wins, so more specific poses
// must come before the poses they would otherwise shadow.
var Rules = []Rule{
	{"Ardha Chandra Mudra", isArdhaChandra},
	{"Suchi Mudra", isSuchi},
	{"Ardhapataka Mudra", isArdhapataka},
	{"Mayura Mudra", isMayura},
	{"Trishula Mudra", isTrishula},
	{"Tripataka Mudra", isTripataka},
	{"Sarpashirsha Mudra", isSarpashirsha},
	{"Pataka Mudra", isPataka},
	{"Arala Mudra", isArala},
	{"Kartari Mukham Mudra", isKartariMukham},
	{"Shuka Tundam Mudra", isShukaTundam},
	{"Shikharam Mudra", isShikharam},
	{"Musthi Mudra", isMusthi},
	{"Chandrakala Mudra", isChandrakala},
	{"Kapitha Mudra", isKapitha},
	{"Katakamukha Mudra", isKatakamukha},
	{"Mrigasheersha Mudra", isMrigasheersha},
	{"Simhamukha Mudra", isSimhamukha},
	{"Padmakosha Mudra", isPadmakosha},
	{"Chatura Mudra", isChatura},
	{"Bhramara Mudra", isBhramara},
	{"Hamsasya Mudra", isHamsasya},
	{"Hamsapaksha Mudra", isHamsapaksha},
	{"Mukula Mudra", isMukula},
}

// isPataka detects the flag pose: all four fingers straight and held
// together with the thumb tucked against the index MCP.
func isPataka(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, index, 0.97) || !straight(t, middle, 0.97) ||
		!straight(t, ring, 0.97) || !straight(t, pinky, 0.97) {
		return false
	}

	mcpND := t.NormDist(detector.IndexMCP, detector.MiddleMCP)
	return t.NormDist(detector.ThumbTip, detector.IndexMCP) < mcpND*1.5
}

// isTripataka detects the three-part flag: index, middle and pinky straight,
// ring bent, thumb tucked.
func isTripataka(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, index, defaultStraightness) ||
		!straight(t, middle, defaultStraightness) ||
		!straight(t, pinky, defaultStraightness) {
		return false
	}
	if !bent(t, ring, 0.8) {
		return false
	}

	mcpND := t.NormDist(detector.IndexMCP, detector.MiddleMCP)
	return t.NormDist(detector.ThumbTip, detector.IndexMCP) < mcpND*1.5
}

// isMayura detects the peacock: like Tripataka but with the thumb tip
// touching the bent ring finger.
func isMayura(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, index, defaultStraightness) ||
		!straight(t, middle, defaultStraightness) ||
		!straight(t, pinky, defaultStraightness) {
		return false
	}
	if !bent(t, ring, 0.8) {
		return false
	}

	mcpND := t.NormDist(detector.IndexMCP, detector.MiddleMCP)
	return t.NormDist(detector.ThumbTip, detector.RingTip) < mcpND*1.0
}

// isArdhaChandra detects the half moon: all five fingers straight with the
// thumb near perpendicular to the index (L shape) and the four fingers held
// together.
func isArdhaChandra(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, thumb, 0.85) ||
		!straight(t, index, defaultStraightness) ||
		!straight(t, middle, defaultStraightness) ||
		!straight(t, ring, defaultStraightness) ||
		!straight(t, pinky, defaultStraightness) {
		return false
	}

	thumbMCP := h.Points[detector.ThumbMCP]
	thumbTip := h.Points[detector.ThumbTip]
	indexMCP := h.Points[detector.IndexMCP]
	indexTip := h.Points[detector.IndexTip]

	ang, ok := angleBetween(
		thumbTip.X-thumbMCP.X, thumbTip.Y-thumbMCP.Y,
		indexTip.X-indexMCP.X, indexTip.Y-indexMCP.Y,
	)
	if !ok {
		return false
	}

	// Wide tolerance around 90 degrees
	if ang < 60 || ang > 120 {
		return false
	}

	// Fingers together: adjacent tip distances within 1.5 palm MCP widths
	limit := t.NormDist(detector.IndexMCP, detector.MiddleMCP) * 1.5
	return t.NormDist(detector.IndexTip, detector.MiddleTip) < limit &&
		t.NormDist(detector.MiddleTip, detector.RingTip) < limit &&
		t.NormDist(detector.RingTip, detector.PinkyTip) < limit
}

// isTrishula detects the trident: index, middle and ring straight with the
// thumb tip holding down the bent pinky.
func isTrishula(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, index, defaultStraightness) ||
		!straight(t, middle, defaultStraightness) ||
		!straight(t, ring, defaultStraightness) {
		return false
	}
	if !bent(t, pinky, 0.8) {
		return false
	}

	mcpND := t.NormDist(detector.IndexMCP, detector.MiddleMCP)
	return t.NormDist(detector.ThumbTip, detector.PinkyTip) < mcpND*1.0
}

// isArala detects the bent pose: index bent toward the thumb while the
// remaining fingers stay extended, thumb crossing the palm.
func isArala(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, middle, 0.88) || !straight(t, ring, 0.88) ||
		!straight(t, pinky, 0.88) || !bent(t, index, 0.92) {
		return false
	}

	mcpND := t.NormDist(detector.IndexMCP, detector.MiddleMCP)
	if t.NormDist(detector.ThumbTip, detector.IndexTip) >= mcpND*1.2 {
		return false
	}

	// Thumb must be angled across the palm rather than alongside the index
	return math.Abs(h.Points[detector.ThumbIP].X-h.Points[detector.IndexPIP].X) > 0.05
}

// isKartariMukham detects the scissors: index and middle extended away from
// the wrist, ring and pinky bent with the thumb pressing on the ring.
func isKartariMukham(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, index, defaultStraightness) || !straight(t, middle, defaultStraightness) {
		return false
	}

	// Extended away from the wrist: tips farther than their MCPs
	if t.NormDist(detector.IndexTip, detector.Wrist) <= t.NormDist(detector.IndexMCP, detector.Wrist) ||
		t.NormDist(detector.MiddleTip, detector.Wrist) <= t.NormDist(detector.MiddleMCP, detector.Wrist) {
		return false
	}

	if !bent(t, ring, 0.8) || !bent(t, pinky, 0.8) {
		return false
	}

	limit := t.NormDist(detector.IndexMCP, detector.MiddleMCP) * 2.0
	return t.NormDist(detector.ThumbTip, detector.RingPIP) < limit ||
		t.NormDist(detector.ThumbTip, detector.RingTip) < limit
}

// isShukaTundam detects the parrot's beak: middle and pinky straight,
// index and ring tightly curled, thumb tucked.
func isShukaTundam(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, middle, defaultStraightness) ||
		!straight(t, pinky, defaultStraightness) ||
		!bent(t, index, 0.7) || !bent(t, ring, 0.7) {
		return false
	}

	mcpND := t.NormDist(detector.IndexMCP, detector.MiddleMCP)
	return t.NormDist(detector.ThumbTip, detector.IndexMCP) < mcpND*1.5
}

// isMusthi detects the fist: all four fingers curled with the thumb pressing
// against the index or middle PIP.
func isMusthi(h *detector.HandLandmarks, t *Table) bool {
	if !bent(t, index, 0.8) || !bent(t, middle, 0.8) ||
		!bent(t, ring, 0.8) || !bent(t, pinky, 0.8) {
		return false
	}

	limit := t.NormDist(detector.IndexMCP, detector.MiddleMCP) * 1.5
	return t.NormDist(detector.ThumbTip, detector.IndexPIP) < limit ||
		t.NormDist(detector.ThumbTip, detector.MiddlePIP) < limit
}

// isShikharam detects the peak: a fist with the thumb extended upward,
// clear of the curled fingers.
func isShikharam(h *detector.HandLandmarks, t *Table) bool {
	if !bent(t, index, 0.8) || !bent(t, middle, 0.8) ||
		!bent(t, ring, 0.8) || !bent(t, pinky, 0.8) {
		return false
	}
	if !straight(t, thumb, 0.85) {
		return false
	}

	// Thumb must not be tucked against the curled fingers
	limit := t.NormDist(detector.IndexMCP, detector.MiddleMCP) * 1.5
	tucked := t.NormDist(detector.ThumbTip, detector.IndexPIP) < limit ||
		t.NormDist(detector.ThumbTip, detector.MiddlePIP) < limit
	return !tucked
}

// isChandrakala detects the moon's digit: index and thumb extended and
// spread wide while the remaining fingers are folded.
func isChandrakala(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, index, defaultStraightness) || !straight(t, thumb, 0.85) ||
		!bent(t, middle, 0.8) || !bent(t, ring, 0.8) || !bent(t, pinky, 0.8) {
		return false
	}

	ang, ok := angleBetween(
		h.Points[detector.ThumbTip].X-h.Points[detector.ThumbMCP].X,
		h.Points[detector.ThumbTip].Y-h.Points[detector.ThumbMCP].Y,
		h.Points[detector.IndexTip].X-h.Points[detector.IndexMCP].X,
		h.Points[detector.IndexTip].Y-h.Points[detector.IndexMCP].Y,
	)
	if !ok {
		return false
	}

	return ang > 45
}

// isSuchi detects the needle: only the index extended, pointing away from
// the wrist, thumb resting on the middle finger.
func isSuchi(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, index, 0.95) {
		return false
	}
	if t.NormDist(detector.IndexTip, detector.Wrist) <= t.NormDist(detector.IndexMCP, detector.Wrist) {
		return false
	}
	if !bent(t, middle, 0.8) || !bent(t, ring, 0.8) || !bent(t, pinky, 0.8) {
		return false
	}

	mcpND := t.NormDist(detector.IndexMCP, detector.MiddleMCP)
	return t.NormDist(detector.ThumbTip, detector.MiddlePIP) < mcpND*0.9
}

// isArdhapataka detects the half flag: index and middle straight, ring and
// pinky bent, thumb tucked.
func isArdhapataka(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, index, defaultStraightness) || !straight(t, middle, defaultStraightness) {
		return false
	}
	if !bent(t, ring, 0.8) || !bent(t, pinky, 0.8) {
		return false
	}

	mcpND := t.NormDist(detector.IndexMCP, detector.MiddleMCP)
	return t.NormDist(detector.ThumbTip, detector.IndexMCP) < mcpND*1.5
}

// isKapitha detects the wood apple: every finger including the thumb bent,
// thumb tip near the index or middle tip.
func isKapitha(h *detector.HandLandmarks, t *Table) bool {
	if !bent(t, index, 0.92) || !bent(t, middle, 0.92) ||
		!bent(t, ring, 0.92) || !bent(t, pinky, 0.92) {
		return false
	}
	if !bent(t, thumb, 0.92) {
		return false
	}

	limit := t.NormDist(detector.IndexMCP, detector.MiddleMCP) * 1.5
	return t.NormDist(detector.ThumbTip, detector.IndexTip) < limit ||
		t.NormDist(detector.ThumbTip, detector.MiddleTip) < limit
}

// isKatakamukha detects the bracelet opening: ring and pinky straight while
// the thumb tip touches both the index and middle tips. The touch threshold
// is tight to keep it from shadowing Hamsasya.
func isKatakamukha(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, ring, 0.83) || !straight(t, pinky, 0.83) {
		return false
	}

	limit := t.NormDist(detector.IndexMCP, detector.MiddleMCP) * 0.55
	return t.NormDist(detector.ThumbTip, detector.IndexTip) < limit &&
		t.NormDist(detector.ThumbTip, detector.MiddleTip) < limit
}

// isPadmakosha detects the lotus bud: all fingers and thumb gently curved
// with adjacent tips held close.
func isPadmakosha(h *detector.HandLandmarks, t *Table) bool {
	if !bent(t, index, 0.90) || !bent(t, middle, 0.90) ||
		!bent(t, ring, 0.90) || !bent(t, pinky, 0.90) {
		return false
	}

	limit := t.NormDist(detector.IndexMCP, detector.MiddleMCP) * 1.0
	if t.NormDist(detector.IndexTip, detector.MiddleTip) >= limit ||
		t.NormDist(detector.MiddleTip, detector.RingTip) >= limit ||
		t.NormDist(detector.RingTip, detector.PinkyTip) >= limit {
		return false
	}

	return bent(t, thumb, 0.90)
}

// isSarpashirsha detects the serpent's head: all fingers loosely extended
// and cupped together, thumb tucked.
func isSarpashirsha(h *detector.HandLandmarks, t *Table) bool {
	const loose = 0.80
	if !straight(t, index, loose) || !straight(t, middle, loose) ||
		!straight(t, ring, loose) || !straight(t, pinky, loose) {
		return false
	}

	// Cupped: index and pinky tips closer together than their MCPs
	if t.NormDist(detector.IndexTip, detector.PinkyTip) >= t.NormDist(detector.IndexMCP, detector.PinkyMCP) {
		return false
	}

	mcpND := t.NormDist(detector.IndexMCP, detector.MiddleMCP)
	return t.NormDist(detector.ThumbTip, detector.IndexMCP) < mcpND*1.5
}

// isMrigasheersha detects the deer's head: pinky and thumb extended with the
// thumb spread wide from the hand axis, other fingers folded.
func isMrigasheersha(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, pinky, 0.85) || !straight(t, thumb, 0.80) ||
		!bent(t, index, 0.85) || !bent(t, middle, 0.85) || !bent(t, ring, 0.85) {
		return false
	}

	ang, ok := angleBetween(
		h.Points[detector.ThumbTip].X-h.Points[detector.ThumbMCP].X,
		h.Points[detector.ThumbTip].Y-h.Points[detector.ThumbMCP].Y,
		h.Points[detector.MiddleMCP].X-h.Points[detector.Wrist].X,
		h.Points[detector.MiddleMCP].Y-h.Points[detector.Wrist].Y,
	)
	if !ok {
		return false
	}

	return ang > 45
}

// isSimhamukha detects the lion's face: index and pinky extended, middle and
// ring half-bent, pinky pointing upward to separate it from Hamsapaksha.
func isSimhamukha(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, index, 0.82) || !straight(t, pinky, 0.80) {
		return false
	}
	if !bent(t, middle, 0.92) || !bent(t, ring, 0.92) {
		return false
	}

	// Pinky vertical: tip well above its MCP (smaller y is higher)
	scale := t.PalmWidth()
	if h.Points[detector.PinkyTip].Y >= h.Points[detector.PinkyMCP].Y-scale*0.20 {
		return false
	}

	return t.NormDist(detector.ThumbTip, detector.MiddlePIP) < scale*3.5
}

// isChatura detects the square: four fingers straight with index, middle and
// ring held close, thumb tucked inside the palm.
func isChatura(h *detector.HandLandmarks, t *Table) bool {
	if !straight(t, index, 0.85) || !straight(t, middle, 0.85) ||
		!straight(t, ring, 0.85) || !straight(t, pinky, 0.85) {
		return false
	}

	scale := t.PalmWidth()
	if t.Dist(detector.IndexTip, detector.MiddleTip) > scale*0.30 ||
		t.Dist(detector.MiddleTip, detector.RingTip) > scale*0.30 {
		return false
	}

	wrist := h.Points[detector.Wrist]
	middleMCP := h.Points[detector.MiddleMCP]
	thumbTip := h.Points[detector.ThumbTip]

	palmCenter := detector.Point3D{
		X: (wrist.X + middleMCP.X) / 2,
		Y: (wrist.Y + middleMCP.Y) / 2,
	}

	// Thumb deep enough: at or below the middle MCP line with a small
	// tolerance for a slightly higher tuck
	if thumbTip.Y <= middleMCP.Y-scale*0.01 {
		return false
	}

	// Thumb horizontally inside the palm span
	indexX := h.Points[detector.IndexMCP].X
	pinkyX := h.Points[detector.PinkyMCP].X
	if thumbTip.X <= math.Min(indexX, pinkyX) || thumbTip.X >= math.Max(indexX, pinkyX) {
		return false
	}

	// Thumb closer to the palm center than to any fingertip
	dPalm := dist2D(thumbTip, palmCenter)
	return dPalm < t.Dist(detector.ThumbTip, detector.IndexTip) &&
		dPalm < t.Dist(detector.ThumbTip, detector.MiddleTip) &&
		dPalm < t.Dist(detector.ThumbTip, detector.RingTip) &&
		dPalm < t.Dist(detector.ThumbTip, detector.PinkyTip)
}

// isBhramara detects the bee: thumb tip on the middle tip, index rolled back
// to its own MCP, ring and pinky straight.
func isBhramara(h *detector.HandLandmarks, t *Table) bool {
	scale := t.PalmWidth()

	if t.Dist(detector.ThumbTip, detector.MiddleTip) > scale*0.22 {
		return false
	}
	if !straight(t, ring, 0.85) || !straight(t, pinky, 0.85) {
		return false
	}

	return t.Dist(detector.IndexTip, detector.IndexMCP) <= scale*0.22
}

// isHamsasya detects the swan's beak: thumb and index forming a circle with
// the remaining fingers extended.
func isHamsasya(h *detector.HandLandmarks, t *Table) bool {
	// Tolerant of rotation and perspective: either the index tip or its PIP
	// counts as touching
	if t.NormDist(detector.ThumbTip, detector.IndexTip) >= 0.40 &&
		t.NormDist(detector.ThumbTip, detector.IndexPIP) >= 0.40 {
		return false
	}

	// A straight index would be Pataka territory, not Hamsasya
	if straight(t, index, 0.88) {
		return false
	}

	return straight(t, middle, 0.80) && straight(t, ring, 0.80) && straight(t, pinky, 0.78)
}

// isHamsapaksha detects the swan's wing: pinky raised above the other three
// fingertips which sit in a level row, thumb held away from them.
func isHamsapaksha(h *detector.HandLandmarks, t *Table) bool {
	scale := t.PalmWidth()

	yIndex := h.Points[detector.IndexTip].Y
	yMiddle := h.Points[detector.MiddleTip].Y
	yRing := h.Points[detector.RingTip].Y
	yPinky := h.Points[detector.PinkyTip].Y

	// Pinky clearly highest (smaller y is higher on screen)
	minGap := scale * 0.06
	if yPinky+minGap >= math.Min(yRing, math.Min(yMiddle, yIndex)) {
		return false
	}

	// Index, middle and ring tips roughly in a row
	rowTol := scale * 0.16
	if math.Abs(yIndex-yMiddle) >= rowTol ||
		math.Abs(yMiddle-yRing) >= rowTol ||
		math.Abs(yIndex-yRing) >= rowTol {
		return false
	}

	// Thumb must not touch index or middle
	return t.NormDist(detector.ThumbTip, detector.IndexTip) >= scale*0.25 &&
		t.NormDist(detector.ThumbTip, detector.MiddleTip) >= scale*0.25
}

// isMukula detects the bud: all five fingertips clustered together with
// every finger bent.
func isMukula(h *detector.HandLandmarks, t *Table) bool {
	scale := t.PalmWidth()

	tips := [5]int{
		detector.ThumbTip, detector.IndexTip, detector.MiddleTip,
		detector.RingTip, detector.PinkyTip,
	}

	// Fingertip cluster center
	var cx, cy float64
	for _, tip := range tips {
		cx += h.Points[tip].X
		cy += h.Points[tip].Y
	}
	cx /= 5
	cy /= 5

	center := detector.Point3D{X: cx, Y: cy}
	for _, tip := range tips {
		if dist2D(h.Points[tip], center) > scale*2.2 {
			return false
		}
	}

	if !bent(t, thumb, 0.93) || !bent(t, index, 0.93) || !bent(t, middle, 0.93) ||
		!bent(t, ring, 0.93) || !bent(t, pinky, 0.93) {
		return false
	}

	// Adjacent tips held close
	pairs := [4][2]int{
		{detector.ThumbTip, detector.IndexTip},
		{detector.IndexTip, detector.MiddleTip},
		{detector.MiddleTip, detector.RingTip},
		{detector.RingTip, detector.PinkyTip},
	}
	for _, p := range pairs {
		if t.NormDist(p[0], p[1]) > scale*1.25 {
			return false
		}
	}

	return true
}
