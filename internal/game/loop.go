package game

import (
	"fmt"
	"log/slog"
	"time"

	"voxel-tty/internal/camera"
	"voxel-tty/internal/config"
	"voxel-tty/internal/graphics"
	"voxel-tty/internal/meshing"
	"voxel-tty/internal/term"
)

// InputSource yields raw input bytes without blocking.
type InputSource interface {
	Poll() ([]byte, error)
}

// Presenter flushes rendered frames to the terminal.
type Presenter interface {
	Present(*graphics.Frame) error
}

// Loop drives the render/input cycle until the player quits.
type Loop struct {
	input    InputSource
	renderer graphics.Renderer
	comp     Presenter
	camera   *camera.Camera
	meshes   []*meshing.Mesh
	limiter  *FPSLimiter
	log      *slog.Logger

	blockCount int

	// Timing
	frames           int
	fps              float64
	lastFPSCheckTime time.Time
}

// NewLoop creates a game loop over already-built scene meshes.
func NewLoop(in InputSource, r graphics.Renderer, comp Presenter, cam *camera.Camera, meshes []*meshing.Mesh, blockCount int, log *slog.Logger) *Loop {
	return &Loop{
		input:            in,
		renderer:         r,
		comp:             comp,
		camera:           cam,
		meshes:           meshes,
		limiter:          NewFPSLimiter(),
		log:              log,
		blockCount:       blockCount,
		lastFPSCheckTime: time.Now(),
	}
}

// Run blocks until a quit command arrives or a frame fails to render or
// present.
func (l *Loop) Run() error {
	l.log.Info("game loop started", "meshes", len(l.meshes), "blocks", l.blockCount)
	for {
		quit, err := l.handleInput()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if quit {
			l.log.Info("quit requested")
			return nil
		}

		frame, err := l.renderer.Render(l.meshes, l.camera.ViewProjection())
		if err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}
		if config.GetOverlay() {
			graphics.DrawOverlay(frame, l.overlayLines())
		}
		if err := l.comp.Present(frame); err != nil {
			return fmt.Errorf("presenting frame: %w", err)
		}

		l.tickFPS()
		l.limiter.Wait()
	}
}

// handleInput drains pending input and applies camera commands. Returns
// true when a quit command was seen.
func (l *Loop) handleInput() (bool, error) {
	buf, err := l.input.Poll()
	if err != nil {
		return false, err
	}
	for _, cmd := range term.DecodeInput(buf) {
		switch cmd.Kind {
		case term.CmdQuit:
			return true, nil
		case term.CmdMoveForward:
			l.camera.MoveForward(cmd.Amount)
		case term.CmdMoveRight:
			l.camera.MoveRight(cmd.Amount)
		case term.CmdMoveUp:
			l.camera.MoveUp(cmd.Amount)
		case term.CmdRotateYaw:
			l.camera.RotateYaw(cmd.Amount)
		case term.CmdRotatePitch:
			l.camera.RotatePitch(cmd.Amount)
		}
	}
	return false, nil
}

func (l *Loop) overlayLines() []string {
	p := l.camera.Position
	return []string{
		fmt.Sprintf("fps %.1f", l.fps),
		fmt.Sprintf("pos %.1f %.1f %.1f", p.X(), p.Y(), p.Z()),
		fmt.Sprintf("blocks %d", l.blockCount),
	}
}

func (l *Loop) tickFPS() {
	l.frames++
	if elapsed := time.Since(l.lastFPSCheckTime); elapsed >= time.Second {
		l.fps = float64(l.frames) / elapsed.Seconds()
		l.frames = 0
		l.lastFPSCheckTime = time.Now()
	}
}
