package graphics

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"voxel-tty/internal/meshing"
)

// SoftwareRenderer rasterizes meshes on the CPU. It is the default backend:
// fully deterministic, headless, and exercised directly by tests. The
// pipeline mirrors the GL backend: depth-tested triangles, nearest-neighbor
// atlas sampling, vertex shade modulation.
type SoftwareRenderer struct {
	width  int
	height int
	atlas  *image.RGBA
	frame  *Frame
	depth  []float32
}

// NewSoftwareRenderer creates a renderer with fixed output dimensions.
func NewSoftwareRenderer(width, height int, atlas *image.RGBA) *SoftwareRenderer {
	return &SoftwareRenderer{
		width:  width,
		height: height,
		atlas:  atlas,
		frame:  NewFrame(width, height),
		depth:  make([]float32, width*height),
	}
}

// Close implements Renderer; the software backend holds no external
// resources.
func (r *SoftwareRenderer) Close() error { return nil }

// clipVertex carries a vertex through near-plane clipping: clip-space
// position plus the interpolated attributes.
type clipVertex struct {
	pos   mgl32.Vec4
	shade float32
	u, v  float32
}

func lerpClip(a, b clipVertex, t float32) clipVertex {
	return clipVertex{
		pos:   a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
		shade: a.shade + (b.shade-a.shade)*t,
		u:     a.u + (b.u-a.u)*t,
		v:     a.v + (b.v-a.v)*t,
	}
}

// clipNear clips a triangle against the GL near plane z + w > 0 and
// returns the surviving polygon (0, 3 or 4 vertices).
func clipNear(tri [3]clipVertex) []clipVertex {
	const eps = 1e-6
	out := make([]clipVertex, 0, 4)
	for i := range 3 {
		cur := tri[i]
		next := tri[(i+1)%3]
		curIn := cur.pos.Z()+cur.pos.W() > eps
		nextIn := next.pos.Z()+next.pos.W() > eps
		if curIn {
			out = append(out, cur)
		}
		if curIn != nextIn {
			dc := cur.pos.Z() + cur.pos.W()
			dn := next.pos.Z() + next.pos.W()
			t := dc / (dc - dn)
			out = append(out, lerpClip(cur, next, t))
		}
	}
	return out
}

// Render draws every mesh into the frame and returns it. The returned
// frame is owned by the renderer and valid until the next Render call.
func (r *SoftwareRenderer) Render(meshes []*meshing.Mesh, viewProj mgl32.Mat4) (*Frame, error) {
	r.clear()
	for _, m := range meshes {
		r.drawMesh(m, viewProj)
	}
	return r.frame, nil
}

func (r *SoftwareRenderer) clear() {
	px := r.frame.Pixels
	for i := 0; i < len(px); i += 4 {
		px[i] = clearColor[0]
		px[i+1] = clearColor[1]
		px[i+2] = clearColor[2]
		px[i+3] = 0xff
	}
	for i := range r.depth {
		r.depth[i] = 1
	}
}

func (r *SoftwareRenderer) drawMesh(m *meshing.Mesh, viewProj mgl32.Mat4) {
	fetch := func(idx uint16) clipVertex {
		off := int(idx) * meshing.VertexStride
		pos := mgl32.Vec4{m.Vertices[off], m.Vertices[off+1], m.Vertices[off+2], 1}
		return clipVertex{
			pos:   viewProj.Mul4x1(pos),
			shade: m.Vertices[off+3], // color channels carry one shade factor
			u:     m.Vertices[off+6],
			v:     m.Vertices[off+7],
		}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		tri := [3]clipVertex{fetch(m.Indices[i]), fetch(m.Indices[i+1]), fetch(m.Indices[i+2])}
		poly := clipNear(tri)
		for j := 2; j < len(poly); j++ {
			r.rasterize(poly[0], poly[j-1], poly[j])
		}
	}
}

// screenVertex is a projected vertex with perspective-correction terms.
type screenVertex struct {
	x, y  float32
	z     float32 // NDC depth
	invW  float32
	shade float32 // pre-divided by w
	u, v  float32 // pre-divided by w
}

func (r *SoftwareRenderer) project(cv clipVertex) screenVertex {
	invW := 1 / cv.pos.W()
	ndcX := cv.pos.X() * invW
	ndcY := cv.pos.Y() * invW
	return screenVertex{
		x:     (ndcX*0.5 + 0.5) * float32(r.width),
		y:     (0.5 - ndcY*0.5) * float32(r.height),
		z:     cv.pos.Z() * invW,
		invW:  invW,
		shade: cv.shade * invW,
		u:     cv.u * invW,
		v:     cv.v * invW,
	}
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func (r *SoftwareRenderer) rasterize(a, b, c clipVertex) {
	v0 := r.project(a)
	v1 := r.project(b)
	v2 := r.project(c)

	area := edge(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}
	// Both windings rasterize; interior faces lose the depth test anyway.
	sign := float32(1)
	if area < 0 {
		sign = -1
		area = -area
	}

	minX := clampInt(int(min3(v0.x, v1.x, v2.x)), 0, r.width-1)
	maxX := clampInt(int(max3(v0.x, v1.x, v2.x))+1, 0, r.width-1)
	minY := clampInt(int(min3(v0.y, v1.y, v2.y)), 0, r.height-1)
	maxY := clampInt(int(max3(v0.y, v1.y, v2.y))+1, 0, r.height-1)

	atlasW := r.atlas.Rect.Dx()
	atlasH := r.atlas.Rect.Dy()

	for py := minY; py <= maxY; py++ {
		fy := float32(py) + 0.5
		for px := minX; px <= maxX; px++ {
			fx := float32(px) + 0.5

			w0 := edge(v1.x, v1.y, v2.x, v2.y, fx, fy) * sign
			w1 := edge(v2.x, v2.y, v0.x, v0.y, fx, fy) * sign
			w2 := edge(v0.x, v0.y, v1.x, v1.y, fx, fy) * sign
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			b0 := w0 / area
			b1 := w1 / area
			b2 := w2 / area

			z := b0*v0.z + b1*v1.z + b2*v2.z
			di := py*r.width + px
			if z >= r.depth[di] {
				continue
			}

			invW := b0*v0.invW + b1*v1.invW + b2*v2.invW
			if invW <= 0 {
				continue
			}
			u := (b0*v0.u + b1*v1.u + b2*v2.u) / invW
			v := (b0*v0.v + b1*v1.v + b2*v2.v) / invW
			shade := (b0*v0.shade + b1*v1.shade + b2*v2.shade) / invW

			tx := clampInt(int(u*float32(atlasW)), 0, atlasW-1)
			ty := clampInt(int(v*float32(atlasH)), 0, atlasH-1)
			ti := r.atlas.PixOffset(tx, ty)
			tr := r.atlas.Pix[ti]
			tg := r.atlas.Pix[ti+1]
			tb := r.atlas.Pix[ti+2]

			r.depth[di] = z
			r.frame.setRGB(px, py,
				byte(float32(tr)*shade),
				byte(float32(tg)*shade),
				byte(float32(tb)*shade))
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
