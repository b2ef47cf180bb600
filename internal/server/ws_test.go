package server

import (
	"testing"

	"github.com/ayusman/hastamudra/internal/capture"
	"github.com/ayusman/hastamudra/internal/detector"
)

func TestLandmarksHandler_Close(t *testing.T) {
	h := NewLandmarksHandler(detector.NewMockDetector(), capture.NewMockCamera(nil, false), nil)

	// Close waits for the broadcast goroutine to exit; a hang here means
	// the loop ignored the stop signal
	h.Close()

	select {
	case <-h.done:
	default:
		t.Error("broadcast goroutine still running after Close()")
	}

	// Second Close must not panic on the already-closed stop channel
	h.Close()
}

func TestServer_Close(t *testing.T) {
	srv := New(Config{
		Camera:   capture.NewMockCamera(nil, false),
		Detector: detector.NewMockDetector(),
	})

	srv.Close()
	srv.Close()
}

func TestServer_Close_NoLandmarks(t *testing.T) {
	// Without a camera and detector no broadcast loop exists; Close is a no-op
	srv := New(Config{})
	srv.Close()
}
