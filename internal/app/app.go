// Package app provides the main application logic for the mudra recognition system.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/hastamudra/internal/capture"
	"github.com/ayusman/hastamudra/internal/detector"
	"github.com/ayusman/hastamudra/internal/mudra"
	"github.com/ayusman/hastamudra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
)

// settingDetectionEnabled is the settings key persisting the detection toggle
// across restarts.
const settingDetectionEnabled = "detection_enabled"

// Config holds configuration options for the application.
type Config struct {
	Store           *store.Store
	CameraID        int
	MotionThresh    float64
	StabilityFrames int
	HistorySize     int
}

// App orchestrates the detection pipeline: camera frames flow through motion
// gating, hand landmark detection, rule classification and stabilization, and
// committed results land in the session and the database.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	classifier *mudra.Classifier
	stabilizer *mudra.Stabilizer
	session    *mudra.Session
	enabled    bool
	mu         sync.RWMutex
	stopCh     chan struct{}

	onDetection func(name string)
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		classifier: mudra.NewClassifier(),
		stabilizer: mudra.NewStabilizer(config.StabilityFrames),
		session:    mudra.NewSession(config.HistorySize),
		enabled:    true,
		stopCh:     nil,
	}

	// A persisted toggle from a previous run wins over the default
	if config.Store != nil {
		if v, err := config.Store.Settings().Get(settingDetectionEnabled); err == nil {
			a.enabled = v == "1"
		}
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables mudra detection. The new state is persisted
// so it survives a restart.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	a.enabled = enabled
	a.mu.Unlock()

	if a.config.Store == nil {
		return
	}
	value := "0"
	if enabled {
		value = "1"
	}
	if err := a.config.Store.Settings().Set(settingDetectionEnabled, value); err != nil {
		log.Printf("Failed to persist detection toggle: %v", err)
	}
}

// IsEnabled returns whether mudra detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// OnDetection registers a callback invoked whenever a new mudra is committed.
func (a *App) OnDetection(fn func(name string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onDetection = fn
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
// Must be called before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Start begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(IdleFPS)

	// Create stop channel and start the pipeline
	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Detection pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Signal the pipeline to stop
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	// Close the camera
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	// Close motion detector
	a.motion.Close()

	// Close the hand detector if set
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Detection pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Classifier returns the rule-based mudra classifier.
func (a *App) Classifier() *mudra.Classifier {
	return a.classifier
}

// Session returns the live session state.
func (a *App) Session() *mudra.Session {
	return a.session
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
