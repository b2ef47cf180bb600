// Package testutil provides synthetic hand landmark poses for testing the
// mudra classification pipeline without a camera or detector process.
//
// Coordinates follow the MediaPipe convention: normalized image coordinates
// in [0, 1] with y increasing downward. All poses use a right hand with the
// wrist near the bottom center of the frame.
package testutil

import (
	"github.com/ayusman/hastamudra/internal/detector"
)

// pose builds a HandLandmarks from a full set of 21 (x, y) coordinates.
func pose(coords [detector.NumLandmarks][2]float64) detector.HandLandmarks {
	h := detector.HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}
	for i, c := range coords {
		h.Points[i] = detector.Point3D{X: c[0], Y: c[1]}
	}
	return h
}

// PatakaPose returns a flag pose: all four fingers extended and parallel,
// thumb tucked against the index MCP.
func PatakaPose() detector.HandLandmarks {
	return pose([detector.NumLandmarks][2]float64{
		{0.50, 0.90},                                         // wrist
		{0.44, 0.82}, {0.41, 0.76}, {0.40, 0.72}, {0.40, 0.68}, // thumb
		{0.42, 0.62}, {0.42, 0.50}, {0.42, 0.42}, {0.42, 0.34}, // index
		{0.50, 0.60}, {0.50, 0.47}, {0.50, 0.38}, {0.50, 0.30}, // middle
		{0.58, 0.62}, {0.58, 0.50}, {0.58, 0.42}, {0.58, 0.34}, // ring
		{0.66, 0.66}, {0.66, 0.57}, {0.66, 0.51}, {0.66, 0.45}, // pinky
	})
}

// ArdhaChandraPose returns a half-moon pose: all fingers straight and held
// together with the thumb extended perpendicular to them.
func ArdhaChandraPose() detector.HandLandmarks {
	return pose([detector.NumLandmarks][2]float64{
		{0.50, 0.90},
		{0.45, 0.80}, {0.40, 0.72}, {0.34, 0.72}, {0.28, 0.72}, // thumb, horizontal
		{0.46, 0.62}, {0.46, 0.50}, {0.46, 0.42}, {0.46, 0.34},
		{0.50, 0.60}, {0.50, 0.47}, {0.50, 0.38}, {0.50, 0.30},
		{0.54, 0.62}, {0.54, 0.50}, {0.54, 0.42}, {0.54, 0.34},
		{0.58, 0.64}, {0.58, 0.54}, {0.575, 0.45}, {0.57, 0.37},
	})
}

// SuchiPose returns a needle pose: index extended upward, other fingers
// curled with the thumb resting on the middle PIP.
func SuchiPose() detector.HandLandmarks {
	return pose([detector.NumLandmarks][2]float64{
		{0.50, 0.90},
		{0.44, 0.82}, {0.43, 0.74}, {0.45, 0.64}, {0.48, 0.55}, // thumb on middle PIP
		{0.42, 0.62}, {0.42, 0.50}, {0.42, 0.42}, {0.42, 0.34}, // index up
		{0.50, 0.60}, {0.50, 0.52}, {0.51, 0.56}, {0.51, 0.62}, // middle curled
		{0.58, 0.62}, {0.58, 0.54}, {0.57, 0.58}, {0.57, 0.64}, // ring curled
		{0.66, 0.66}, {0.66, 0.58}, {0.65, 0.62}, {0.65, 0.68}, // pinky curled
	})
}

// MusthiPose returns a fist pose: all fingers curled, thumb pressed against
// the index PIP.
func MusthiPose() detector.HandLandmarks {
	return pose([detector.NumLandmarks][2]float64{
		{0.50, 0.90},
		{0.44, 0.82}, {0.42, 0.74}, {0.42, 0.66}, {0.44, 0.60}, // thumb on index PIP
		{0.42, 0.62}, {0.42, 0.54}, {0.44, 0.58}, {0.44, 0.64},
		{0.50, 0.60}, {0.50, 0.52}, {0.51, 0.56}, {0.51, 0.62},
		{0.58, 0.62}, {0.58, 0.54}, {0.57, 0.58}, {0.57, 0.64},
		{0.66, 0.66}, {0.66, 0.58}, {0.65, 0.62}, {0.65, 0.68},
	})
}

// ArdhapatakaPose returns a half-flag pose: index and middle extended,
// ring and pinky curled, thumb tucked.
func ArdhapatakaPose() detector.HandLandmarks {
	return pose([detector.NumLandmarks][2]float64{
		{0.50, 0.90},
		{0.44, 0.82}, {0.41, 0.76}, {0.40, 0.72}, {0.40, 0.68},
		{0.42, 0.62}, {0.42, 0.50}, {0.42, 0.42}, {0.42, 0.34},
		{0.50, 0.60}, {0.50, 0.47}, {0.50, 0.38}, {0.50, 0.30},
		{0.58, 0.62}, {0.58, 0.54}, {0.57, 0.58}, {0.57, 0.64},
		{0.66, 0.66}, {0.66, 0.58}, {0.65, 0.62}, {0.65, 0.68},
	})
}

// SpreadPose returns a wide-open splayed hand that matches no mudra rule:
// fingers straight but spread apart, thumb held far out to the side.
func SpreadPose() detector.HandLandmarks {
	return pose([detector.NumLandmarks][2]float64{
		{0.50, 0.90},
		{0.42, 0.80}, {0.36, 0.74}, {0.29, 0.69}, {0.22, 0.64},
		{0.40, 0.62}, {0.36, 0.50}, {0.33, 0.42}, {0.30, 0.34},
		{0.50, 0.60}, {0.50, 0.46}, {0.50, 0.36}, {0.50, 0.26},
		{0.60, 0.62}, {0.63, 0.50}, {0.65, 0.42}, {0.67, 0.35},
		{0.68, 0.66}, {0.72, 0.57}, {0.75, 0.50}, {0.78, 0.44},
	})
}
