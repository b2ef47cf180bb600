package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ayusman/hastamudra/internal/app"
	"github.com/ayusman/hastamudra/internal/config"
	"github.com/ayusman/hastamudra/internal/server"
	"github.com/ayusman/hastamudra/internal/store"
	"github.com/ayusman/hastamudra/internal/tray"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath(), "path to the TOML config file")
	flag.Parse()

	fmt.Println("Hastamudra - Mudra Recognition")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the store
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Build the detection pipeline
	a := app.New(app.Config{
		Store:           st,
		CameraID:        cfg.CameraID,
		MotionThresh:    cfg.MotionThreshold,
		StabilityFrames: cfg.StabilityFrames,
		HistorySize:     cfg.HistorySize,
	})

	if err := a.Start(); err != nil {
		log.Printf("Detection pipeline not started: %v", err)
	}
	defer a.Stop()

	// Find web directory
	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findWebDir()
	}
	if staticDir != "" {
		fmt.Printf("Serving static files from: %s\n", staticDir)
	}

	imagesDir := cfg.ImagesDir
	if imagesDir == "" {
		imagesDir = config.DefaultImagesDir()
	}

	// Configure the server
	srv := server.New(server.Config{
		StaticDir:  staticDir,
		ImagesDir:  imagesDir,
		Store:      st,
		Session:    a.Session(),
		Classifier: a.Classifier(),
		Camera:     a.Camera(),
		Detector:   a.Detector(),
	})
	defer srv.Close()

	if cfg.Tray {
		go serve(srv, cfg.Addr)
		runTray(a, cfg.Addr)
		return
	}

	serve(srv, cfg.Addr)
}

func serve(srv *server.Server, addr string) {
	fmt.Printf("Starting server on %s\n", addr)
	if err := srv.ListenAndServe(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// runTray runs the system tray UI. Blocks until quit.
func runTray(a *app.App, addr string) {
	t := tray.New(a.IsEnabled())
	a.OnDetection(t.SetLastMudra)
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
	})
	t.OnDashboard(func() {
		openBrowser(dashboardURL(addr))
	})
	t.OnQuit(func() {
		a.Stop()
	})
	t.Run()
}

// dashboardURL turns a listen address into a browsable URL.
func dashboardURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.hastamudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".hastamudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
