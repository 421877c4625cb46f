package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"voxel-tty/internal/camera"
	"voxel-tty/internal/config"
	"voxel-tty/internal/game"
	"voxel-tty/internal/graphics"
	"voxel-tty/internal/meshing"
	"voxel-tty/internal/term"
	"voxel-tty/internal/world"
)

func init() {
	// The GL backend requires its context calls on one OS thread.
	runtime.LockOSThread()
}

func main() {
	fpsLimit := flag.Int("fps", config.GetFPSLimit(), "frame rate cap")
	backend := flag.String("backend", config.GetBackend(), "render backend: soft or gl")
	grid := flag.Int("grid", config.GetGridSize(), "side length of the chunk grid")
	overlay := flag.Bool("overlay", config.GetOverlay(), "draw the stats overlay")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	config.SetFPSLimit(*fpsLimit)
	config.SetBackend(*backend)
	config.SetGridSize(*grid)
	config.SetOverlay(*overlay)

	if err := run(*logPath); err != nil {
		fmt.Fprintln(os.Stderr, "voxel-tty:", err)
		os.Exit(1)
	}
}

func run(logPath string) error {
	log, closeLog, err := setupLogger(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := term.OpenSession()
	if err != nil {
		return err
	}
	defer session.Close()

	cols, rows, err := session.Size()
	if err != nil {
		return err
	}
	// Half-block cells give two pixel rows per text row; the renderer is
	// supersampled 2x in both axes on top of that.
	width, height := 2*cols, 2*rows
	log.Info("session opened", "cols", cols, "rows", rows, "backend", config.GetBackend())

	meshes, blockCount, err := buildScene(config.GetGridSize())
	if err != nil {
		return err
	}

	renderer, err := openRenderer(width, height)
	if err != nil {
		return err
	}
	defer renderer.Close()

	cam := camera.New(float32(width)/float32(height), mgl32.Vec3{4, 6, 4})
	comp := term.NewCompositor(session.Writer(), cols, rows)
	loop := game.NewLoop(session, renderer, comp, cam, meshes, blockCount, log)
	return loop.Run()
}

// buildScene generates a grid x grid block of chunks around the origin and
// meshes each chunk separately so none hits the batch index limit.
func buildScene(grid int) ([]*meshing.Mesh, int, error) {
	gen := world.NewGenerator()
	meshes := make([]*meshing.Mesh, 0, grid*grid)
	blocks := 0
	for cx := 0; cx < grid; cx++ {
		for cz := 0; cz < grid; cz++ {
			chunk := gen.Generate(world.ChunkCoord{X: cx, Z: cz})
			mesh, err := meshing.Build(chunk.WorldBlocks())
			if err != nil {
				return nil, 0, fmt.Errorf("meshing chunk (%d,%d): %w", cx, cz, err)
			}
			meshes = append(meshes, mesh)
			blocks += chunk.BlockCount()
		}
	}
	return meshes, blocks, nil
}

func openRenderer(width, height int) (graphics.Renderer, error) {
	atlas := graphics.GenerateAtlas()
	if config.GetBackend() == "gl" {
		return graphics.NewGLRenderer(width, height, atlas)
	}
	return graphics.NewSoftwareRenderer(width, height, atlas), nil
}

// setupLogger writes structured logs to the given file, or discards them
// when no path is set; stderr is unusable while the tty is in raw mode.
func setupLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}
