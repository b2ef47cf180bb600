// Package server provides the HTTP server for the mudra recognition system.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/hastamudra/internal/capture"
	"github.com/ayusman/hastamudra/internal/detector"
	"github.com/ayusman/hastamudra/internal/mudra"
	"github.com/ayusman/hastamudra/internal/server/api"
	"github.com/ayusman/hastamudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir  string
	ImagesDir  string
	Store      *store.Store
	Session    *mudra.Session
	Classifier *mudra.Classifier
	Camera     capture.Camera
	Detector   detector.Detector
}

// Server represents the HTTP server for the mudra recognition application.
type Server struct {
	config    Config
	mux       *http.ServeMux
	start     time.Time
	landmarks *LandmarksHandler
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Dashboard polling endpoints
	if s.config.Session != nil && s.config.Classifier != nil {
		mudraHandler := api.NewMudraHandler(s.config.Session, s.config.Classifier)
		s.mux.HandleFunc("/current_mudra", mudraHandler.HandleCurrent)
		s.mux.HandleFunc("/mudra_list", mudraHandler.HandleList)
		s.mux.HandleFunc("/mudra_info/", mudraHandler.HandleInfo)
	}

	// Session statistics
	if s.config.Session != nil {
		statsHandler := api.NewStatsHandler(s.config.Session, s.config.Store)
		s.mux.Handle("/api/stats", statsHandler)
		s.mux.Handle("/api/stats/", statsHandler)
	}

	// Persisted detection log
	if s.config.Store != nil {
		detectionsHandler := api.NewDetectionsHandler(s.config.Store)
		s.mux.Handle("/api/detections", detectionsHandler)
	}

	// Register camera stream endpoint if Camera is configured
	if s.config.Camera != nil {
		streamHandler := NewStreamHandler(s.config.Camera)
		s.mux.Handle("/video_feed", streamHandler)
	}

	// Register landmarks WebSocket endpoint if Camera and Detector are configured
	if s.config.Camera != nil && s.config.Detector != nil {
		s.landmarks = NewLandmarksHandler(s.config.Detector, s.config.Camera, s.config.Session)
		s.mux.Handle("/api/landmarks", s.landmarks)
	}

	// Serve mudra reference images if ImagesDir is configured
	if s.config.ImagesDir != "" {
		images := http.FileServer(http.Dir(s.config.ImagesDir))
		s.mux.Handle("/images/", http.StripPrefix("/images/", images))
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

// Close releases server resources, stopping the landmarks broadcast loop.
func (s *Server) Close() {
	if s.landmarks != nil {
		s.landmarks.Close()
	}
}
