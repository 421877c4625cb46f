package graphics

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxel-tty/internal/meshing"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;
layout (location = 2) in vec2 aUV;

uniform mat4 uViewProj;

out vec3 vColor;
out vec2 vUV;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
	vColor = aColor;
	vUV = aUV;
}
`

const fragmentShaderSource = `#version 410 core
in vec3 vColor;
in vec2 vUV;

uniform sampler2D uAtlas;

out vec4 FragColor;

void main() {
	FragColor = vec4(texture(uAtlas, vUV).rgb * vColor, 1.0);
}
`

// glMesh tracks the GPU-side buffers of one immutable mesh.
type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// GLRenderer renders offscreen through OpenGL: a hidden GLFW window for the
// context, an FBO with color texture and depth renderbuffer, and a blocking
// ReadPixels per frame. The caller must keep it on a locked OS thread.
type GLRenderer struct {
	window *glfw.Window

	program     uint32
	viewProjLoc int32

	fbo      uint32
	colorTex uint32
	depthRb  uint32

	atlasTex uint32

	width  int
	height int

	meshes map[*meshing.Mesh]glMesh

	frame   *Frame
	readBuf []byte // bottom-up rows straight from ReadPixels
}

// NewGLRenderer creates the hidden context and the offscreen target.
func NewGLRenderer(width, height int, atlas *image.RGBA) (*GLRenderer, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, "voxel-tty offscreen", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create hidden window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	r := &GLRenderer{
		window:  window,
		width:   width,
		height:  height,
		meshes:  make(map[*meshing.Mesh]glMesh),
		frame:   NewFrame(width, height),
		readBuf: make([]byte, width*height*4),
	}

	r.program, err = compileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.viewProjLoc = gl.GetUniformLocation(r.program, gl.Str("uViewProj\x00"))

	if err := r.setupFramebuffer(); err != nil {
		r.Close()
		return nil, err
	}
	r.uploadAtlas(atlas)

	gl.Enable(gl.DEPTH_TEST)
	return r, nil
}

func (r *GLRenderer) setupFramebuffer() error {
	gl.GenFramebuffers(1, &r.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)

	gl.GenTextures(1, &r.colorTex)
	gl.BindTexture(gl.TEXTURE_2D, r.colorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(r.width), int32(r.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, r.colorTex, 0)

	gl.GenRenderbuffers(1, &r.depthRb)
	gl.BindRenderbuffer(gl.RENDERBUFFER, r.depthRb)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(r.width), int32(r.height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, r.depthRb)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return nil
}

func (r *GLRenderer) uploadAtlas(atlas *image.RGBA) {
	gl.GenTextures(1, &r.atlasTex)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(atlas.Rect.Dx()), int32(atlas.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
}

// ensureMesh uploads a mesh's buffers on first use. Meshes are immutable,
// so the upload happens at most once per mesh.
func (r *GLRenderer) ensureMesh(m *meshing.Mesh) glMesh {
	if gm, ok := r.meshes[m]; ok {
		return gm
	}

	var gm glMesh
	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	stride := int32(meshing.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gm.indexCount = int32(len(m.Indices))
	r.meshes[m] = gm
	return gm
}

// Render draws into the FBO and blocks on the pixel readback. Rows are
// flipped so the returned frame has its origin at the top-left.
func (r *GLRenderer) Render(meshes []*meshing.Mesh, viewProj mgl32.Mat4) (*Frame, error) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.ClearColor(0.4, 0.7, 1.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.viewProjLoc, 1, false, &viewProj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)

	for _, m := range meshes {
		gm := r.ensureMesh(m)
		gl.BindVertexArray(gm.vao)
		gl.DrawElements(gl.TRIANGLES, gm.indexCount, gl.UNSIGNED_SHORT, nil)
	}

	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.readBuf))
	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		return nil, fmt.Errorf("gl error after readback: 0x%x", glErr)
	}

	// GL reads bottom-up; the frame contract is top-left origin.
	rowLen := r.width * 4
	for y := 0; y < r.height; y++ {
		src := r.readBuf[(r.height-1-y)*rowLen : (r.height-y)*rowLen]
		copy(r.frame.Pixels[y*rowLen:(y+1)*rowLen], src)
	}
	return r.frame, nil
}

// Close releases the GL objects and the hidden window.
func (r *GLRenderer) Close() error {
	for _, gm := range r.meshes {
		gl.DeleteBuffers(1, &gm.vbo)
		gl.DeleteBuffers(1, &gm.ebo)
		gl.DeleteVertexArrays(1, &gm.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	if r.window != nil {
		r.window.Destroy()
	}
	glfw.Terminate()
	return nil
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}
