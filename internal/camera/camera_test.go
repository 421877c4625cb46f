package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewFacesAlongYawOrigin(t *testing.T) {
	c := New(1.5, mgl32.Vec3{0, 0, 0})
	// Zero yaw, zero pitch faces +X with the forward basis used here.
	if d := c.forward.Sub(mgl32.Vec3{1, 0, 0}).Len(); d > 1e-6 {
		t.Errorf("initial forward = %v, want (1,0,0)", c.forward)
	}
}

func TestMoveForwardFollowsView(t *testing.T) {
	c := New(1, mgl32.Vec3{0, 0, 0})
	c.RotateYaw(90)
	c.MoveForward(2)
	if math.Abs(float64(c.Position.Z()-2)) > 1e-5 || math.Abs(float64(c.Position.X())) > 1e-5 {
		t.Errorf("position after yaw 90 + forward 2 = %v, want ~(0,0,2)", c.Position)
	}
}

func TestPitchClamped(t *testing.T) {
	c := New(1, mgl32.Vec3{})
	c.RotatePitch(300)
	if c.pitch != pitchLimit {
		t.Errorf("pitch = %v, want clamp at %v", c.pitch, float32(pitchLimit))
	}
	c.RotatePitch(-600)
	if c.pitch != -pitchLimit {
		t.Errorf("pitch = %v, want clamp at %v", c.pitch, float32(-pitchLimit))
	}
}

func TestViewProjectionMapsLookedAtPointToCenter(t *testing.T) {
	c := New(1, mgl32.Vec3{0, 0, 0})
	vp := c.ViewProjection()
	// A point straight ahead must land on the NDC center with positive w.
	clip := vp.Mul4x1(mgl32.Vec4{5, 0, 0, 1})
	if clip.W() <= 0 {
		t.Fatalf("w = %v, want > 0", clip.W())
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	if math.Abs(float64(ndcX)) > 1e-5 || math.Abs(float64(ndcY)) > 1e-5 {
		t.Errorf("ndc = (%v,%v), want (0,0)", ndcX, ndcY)
	}
}
