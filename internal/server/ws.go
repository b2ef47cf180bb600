package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/hastamudra/internal/capture"
	"github.com/ayusman/hastamudra/internal/detector"
	"github.com/ayusman/hastamudra/internal/mudra"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// LandmarksHandler broadcasts real-time hand landmarks and the current mudra
// via WebSocket.
type LandmarksHandler struct {
	detector  detector.Detector
	camera    capture.Camera
	session   *mudra.Session
	clients   map[*websocket.Conn]bool
	mu        sync.RWMutex
	stopCh    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewLandmarksHandler creates a new LandmarksHandler. The session may be nil,
// in which case only landmarks are broadcast.
func NewLandmarksHandler(d detector.Detector, c capture.Camera, session *mudra.Session) *LandmarksHandler {
	h := &LandmarksHandler{
		detector: d,
		camera:   c,
		session:  session,
		clients:  make(map[*websocket.Conn]bool),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	go h.broadcast()
	return h
}

// Close stops the broadcast loop and waits for it to exit.
// Safe to call more than once.
func (h *LandmarksHandler) Close() {
	h.closeOnce.Do(func() {
		close(h.stopCh)
	})
	<-h.done
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *LandmarksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends landmark data to all connected clients until Close is called.
func (h *LandmarksHandler) broadcast() {
	defer close(h.done)

	ticker := time.NewTicker(66 * time.Millisecond) // ~15 FPS
	defer ticker.Stop()

	for {
		select {
		case <-h.stopCh:
			return
		case <-ticker.C:
			h.broadcastFrame()
		}
	}
}

// broadcastFrame reads one frame, runs detection and sends the result to all
// connected clients. No-op when nobody is connected.
func (h *LandmarksHandler) broadcastFrame() {
	h.mu.RLock()
	if len(h.clients) == 0 {
		h.mu.RUnlock()
		return
	}
	h.mu.RUnlock()

	frame, err := h.camera.ReadFrame()
	if err != nil {
		return
	}

	hands, err := h.detector.Detect(frame)
	frame.Close()
	if err != nil {
		return
	}

	payload := map[string]any{
		"hands":     hands,
		"timestamp": time.Now().UnixMilli(),
	}
	if h.session != nil {
		current, _ := h.session.Current()
		payload["mudra"] = current
	}

	msg, _ := json.Marshal(payload)

	h.mu.RLock()
	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
	h.mu.RUnlock()
}
