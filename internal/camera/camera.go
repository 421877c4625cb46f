package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fovYDegrees = 70.0
	nearPlane   = 0.1
	farPlane    = 100.0
	pitchLimit  = 89.0
)

// Camera is a free-flying Euler camera. Yaw/pitch are kept in degrees and
// the basis vectors are recomputed whenever either changes.
type Camera struct {
	Position mgl32.Vec3
	aspect   float32

	forward mgl32.Vec3
	right   mgl32.Vec3
	up      mgl32.Vec3

	yaw   float32
	pitch float32
}

// New creates a camera at the given position, level and facing along the
// yaw origin.
func New(aspect float32, position mgl32.Vec3) *Camera {
	c := &Camera{
		Position: position,
		aspect:   aspect,
	}
	c.updateVectors()
	return c
}

// ViewProjection returns the combined perspective * look-at matrix.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(fovYDegrees), c.aspect, nearPlane, farPlane)
	view := mgl32.LookAtV(c.Position, c.Position.Add(c.forward), c.up)
	return proj.Mul4(view)
}

// MoveForward translates along the view direction.
func (c *Camera) MoveForward(distance float32) {
	c.Position = c.Position.Add(c.forward.Mul(distance))
}

// MoveRight strafes along the camera's right vector.
func (c *Camera) MoveRight(distance float32) {
	c.Position = c.Position.Add(c.right.Mul(distance))
}

// MoveUp translates along the camera's up vector.
func (c *Camera) MoveUp(distance float32) {
	c.Position = c.Position.Add(c.up.Mul(distance))
}

// RotateYaw turns the camera around its vertical axis.
func (c *Camera) RotateYaw(degrees float32) {
	c.yaw += degrees
	c.updateVectors()
}

// RotatePitch tilts the camera, clamped so it never flips over.
func (c *Camera) RotatePitch(degrees float32) {
	c.pitch += degrees
	if c.pitch > pitchLimit {
		c.pitch = pitchLimit
	}
	if c.pitch < -pitchLimit {
		c.pitch = -pitchLimit
	}
	c.updateVectors()
}

func (c *Camera) updateVectors() {
	pitchRad := float64(mgl32.DegToRad(c.pitch))
	yawRad := float64(mgl32.DegToRad(c.yaw))

	c.forward = mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}.Normalize()

	c.right = c.forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	c.up = c.right.Cross(c.forward).Normalize()
}
