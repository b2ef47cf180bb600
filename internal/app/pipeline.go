package app

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/hastamudra/internal/detector"
	"github.com/ayusman/hastamudra/internal/mudra"
	"github.com/ayusman/hastamudra/internal/store"
)

// runPipeline is the main detection loop that processes frames from the camera.
// It manages the state transitions between idle and active modes based on motion detection.
//
// Pipeline logic:
// 1. Start in idle mode (idleFPS=5)
// 2. On motion detected, switch to active mode (activeFPS=15)
// 3. Run hand detection
// 4. Classify the hand against the mudra rules
// 5. Feed the raw result through the stabilizer
// 6. Commit stable results to the session and the database
// 7. After 2s no motion, switch back to idle mode
func (a *App) runPipeline(stopCh <-chan struct{}) {
	// Track whether we're in active mode
	activeMode := false

	// Track the last motion detection time
	lastMotionTime := time.Now()

	// Frame interval based on current FPS
	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Skip processing if detection is disabled
			if !a.IsEnabled() {
				continue
			}

			// Read a frame from the camera
			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Step 1: Motion detection
			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				// Switch to active mode if not already
				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				// Check if we should switch back to idle mode
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.Camera().SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			// Skip further processing if not in active mode or no detector
			d := a.Detector()
			if !activeMode || d == nil {
				frame.Close()
				continue
			}

			// Step 2: Hand detection
			hands, err := d.Detect(frame)
			frame.Close() // Done with the frame

			if err != nil {
				// Keep publishing the last committed state on detector errors
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			a.ProcessHands(hands)
		}
	}
}

// ProcessHands classifies the first detected hand, feeds the result through
// the stabilizer and commits stable transitions.
func (a *App) ProcessHands(hands []detector.HandLandmarks) {
	raw := mudra.NoDetection
	if len(hands) > 0 {
		raw, _ = a.classifier.Classify(&hands[0])
	}

	committed, changed := a.observe(raw)
	a.session.SetCurrent(committed)

	if !changed {
		return
	}

	a.session.Record(committed)
	log.Printf("Mudra detected: %s", committed)

	a.mu.RLock()
	callback := a.onDetection
	a.mu.RUnlock()
	if callback != nil {
		callback(committed)
	}

	if a.config.Store == nil {
		return
	}

	det := &store.Detection{
		ID:           uuid.New().String(),
		Mudra:        committed,
		StableFrames: a.stabilizer.RunLength(),
	}
	if err := a.config.Store.Detections().Create(det); err != nil {
		log.Printf("Failed to record detection: %v", err)
	}
}

// observe serializes stabilizer access; the pipeline goroutine and tests both
// feed observations.
func (a *App) observe(raw string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stabilizer.Observe(raw)
}
