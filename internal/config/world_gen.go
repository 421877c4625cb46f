package config

import "sync"

// WorldGenSettings holds world generation configuration
type WorldGenSettings struct {
	mu       sync.RWMutex
	gridSize int // world is gridSize x gridSize chunks
}

var globalWorldGenSettings = &WorldGenSettings{
	gridSize: 2, // default value
}

// GetGridSize returns the side length of the generated chunk grid
func GetGridSize() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.gridSize
}

// SetGridSize sets the side length of the generated chunk grid
func SetGridSize(size int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()

	// Clamp to reasonable values
	if size < 1 {
		size = 1
	}
	if size > 8 {
		size = 8
	}

	globalWorldGenSettings.gridSize = size
}
