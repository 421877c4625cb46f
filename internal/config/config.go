package config

import "sync"

// RenderSettings holds render configuration
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int
	backend  string // "soft" or "gl"
	overlay  bool
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 30,     // default value
	backend:  "soft", // no GPU required
	overlay:  true,
}

// GetFPSLimit returns the current frame rate cap
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 1 {
		limit = 1
	}
	if limit > 240 {
		limit = 240
	}

	globalRenderSettings.fpsLimit = limit
}

// GetBackend returns the active render backend name
func GetBackend() string {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.backend
}

// SetBackend selects the render backend; unknown names fall back to "soft"
func SetBackend(name string) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if name != "soft" && name != "gl" {
		name = "soft"
	}
	globalRenderSettings.backend = name
}

// GetOverlay returns whether the stats overlay is drawn
func GetOverlay() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.overlay
}

// SetOverlay toggles the stats overlay
func SetOverlay(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.overlay = enabled
}
