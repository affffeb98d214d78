package main

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog/log"
)

// defaultUISize is the pixel size for panel labels and widgets. The clock
// face asks for its own scaled sizes per draw.
const defaultUISize = 15

// Renderer manages OpenGL state and 2D drawing primitives for one window's
// context. Font atlases are shared CPU-side; textures are per-context.
type Renderer struct {
	window *glfw.Window
	width  int
	height int

	// Framebuffer size differs from window size on HiDPI displays
	fbWidth  int
	fbHeight int

	vao        uint32
	vbo        uint32
	ebo        uint32
	shaderProg uint32

	locProjection int32
	locUseTexture int32

	fonts    *FontCache
	textures map[int]uint32 // atlas pixel size -> GL texture
}

// Color represents an RGBA color for rendering
type Color struct {
	R, G, B, A float32
}

// Bounds represents drawn text bounds
type Bounds struct {
	X, Y, Width, Height float32
}

// NewRenderer initializes OpenGL for the window's current context.
func NewRenderer(window *glfw.Window, width, height int, fonts *FontCache) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		window:   window,
		width:    width,
		height:   height,
		fbWidth:  width,
		fbHeight: height,
		fonts:    fonts,
		textures: make(map[int]uint32),
	}

	gl.ClearColor(0, 0, 0, 0)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if err := r.setupShaders(); err != nil {
		return nil, err
	}
	r.setupBuffers()

	// Warm the UI size so first-frame widget drawing has its texture.
	if _, _, err := r.atlasFor(defaultUISize); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) setupShaders() error {
	vertexShader := `
#version 120
uniform mat4 projection;
attribute vec2 position;
attribute vec2 texCoord;
attribute vec4 color;
varying vec2 fragUV;
varying vec4 fragColor;

void main() {
    gl_Position = projection * vec4(position, 0.0, 1.0);
    fragUV = texCoord;
    fragColor = color;
}
`

	fragmentShader := `
#version 120
uniform sampler2D tex;
uniform bool useTexture;
varying vec2 fragUV;
varying vec4 fragColor;

void main() {
    if (useTexture) {
        gl_FragColor = texture2D(tex, fragUV) * fragColor;
    } else {
        gl_FragColor = fragColor;
    }
}
`

	vs, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}

	fs, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("fragment shader: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.BindAttribLocation(prog, 0, gl.Str("position\x00"))
	gl.BindAttribLocation(prog, 1, gl.Str("texCoord\x00"))
	gl.BindAttribLocation(prog, 2, gl.Str("color\x00"))
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		logBytes := make([]byte, logLength)
		gl.GetProgramInfoLog(prog, logLength, &logLength, &logBytes[0])
		return fmt.Errorf("shader link error: %s", string(logBytes))
	}

	r.shaderProg = prog
	r.locProjection = gl.GetUniformLocation(prog, gl.Str("projection\x00"))
	r.locUseTexture = gl.GetUniformLocation(prog, gl.Str("useTexture\x00"))
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	return nil
}

func (r *Renderer) setupBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: position (2), texCoord (2), color (4)
	stride := int32(8 * 4)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, gl.PtrOffset(4*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
}

// atlasFor returns the atlas and its GL texture for a pixel size, uploading
// the texture into this context on first use.
func (r *Renderer) atlasFor(sizePx int) (*FontAtlas, uint32, error) {
	atlas, err := r.fonts.Atlas(sizePx)
	if err != nil {
		return nil, 0, err
	}
	tex, ok := r.textures[atlas.Size]
	if !ok {
		tex = uploadTexture(atlas.Image.Pix, atlas.Image.Bounds().Dx(), atlas.Image.Bounds().Dy())
		r.textures[atlas.Size] = tex
	}
	return atlas, tex, nil
}

// Atlas exposes the measuring side of a font size, rasterizing if needed.
func (r *Renderer) Atlas(sizePx int) (*FontAtlas, error) {
	return r.fonts.Atlas(sizePx)
}

// MeasureText measures text at the default UI size.
func (r *Renderer) MeasureText(text string) (int, int) {
	atlas, err := r.fonts.Atlas(defaultUISize)
	if err != nil {
		return 0, 0
	}
	return atlas.MeasureText(text)
}

// BeginFrame prepares for rendering
func (r *Renderer) BeginFrame() {
	gl.Viewport(0, 0, int32(r.fbWidth), int32(r.fbHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.shaderProg)

	proj := ortho(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.locProjection, 1, false, &proj[0])
}

// EndFrame finishes rendering
func (r *Renderer) EndFrame() {
	gl.UseProgram(0)
}

// DrawRect draws a filled rectangle
func (r *Renderer) DrawRect(x, y, w, h float32, c Color) {
	vertices := []float32{
		x, y, 0, 0, c.R, c.G, c.B, c.A,
		x + w, y, 1, 0, c.R, c.G, c.B, c.A,
		x + w, y + h, 1, 1, c.R, c.G, c.B, c.A,
		x, y + h, 0, 1, c.R, c.G, c.B, c.A,
	}

	gl.Uniform1i(r.locUseTexture, 0)
	r.submitQuad(vertices)
}

// DrawBorder draws a rectangle outline
func (r *Renderer) DrawBorder(x, y, w, h, thickness float32, c Color) {
	r.DrawRect(x, y, w, thickness, c)
	r.DrawRect(x, y+h-thickness, w, thickness, c)
	r.DrawRect(x, y, thickness, h, c)
	r.DrawRect(x+w-thickness, y, thickness, h, c)
}

// DrawText draws text at the default UI size. The y coordinate is the top of
// the text cell.
func (r *Renderer) DrawText(x, y float32, text string, c Color) Bounds {
	return r.DrawTextSized(x, y, text, defaultUISize, c)
}

// DrawTextSized draws text with an atlas of the given pixel size.
func (r *Renderer) DrawTextSized(x, y float32, text string, sizePx int, c Color) Bounds {
	atlas, tex, err := r.atlasFor(sizePx)
	if err != nil {
		log.Warn().Int("size", sizePx).Err(err).Msg("font atlas")
		return Bounds{X: x, Y: y}
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(r.locUseTexture, 1)

	atlasW := float32(atlas.Image.Bounds().Dx())
	atlasH := float32(atlas.Image.Bounds().Dy())

	bounds := Bounds{X: x, Y: y}
	curX := x
	for _, ch := range text {
		glyph, ok := atlas.Glyphs[ch]
		if !ok {
			continue
		}

		texX := float32(glyph.X) / atlasW
		texY := float32(glyph.Y) / atlasH
		texW := float32(glyph.Width) / atlasW
		texH := float32(glyph.Height) / atlasH

		glyphW := float32(glyph.Width)
		glyphH := float32(glyph.Height)

		vertices := []float32{
			curX, y, texX, texY, c.R, c.G, c.B, c.A,
			curX + glyphW, y, texX + texW, texY, c.R, c.G, c.B, c.A,
			curX + glyphW, y + glyphH, texX + texW, texY + texH, c.R, c.G, c.B, c.A,
			curX, y + glyphH, texX, texY + texH, c.R, c.G, c.B, c.A,
		}
		r.submitQuad(vertices)

		curX += float32(glyph.Advance)
		bounds.Width = curX - x
		bounds.Height = glyphH
	}

	return bounds
}

// DrawTextCentered draws text horizontally centered in [x, x+w].
func (r *Renderer) DrawTextCentered(x, w, y float32, text string, sizePx int, c Color) Bounds {
	atlas, err := r.fonts.Atlas(sizePx)
	if err != nil {
		return Bounds{X: x, Y: y}
	}
	tw, _ := atlas.MeasureTextUncached(text)
	return r.DrawTextSized(x+(w-float32(tw))/2, y, text, sizePx, c)
}

// Resize updates the logical drawing size and the framebuffer viewport
func (r *Renderer) Resize(width, height, fbWidth, fbHeight int) {
	r.width = width
	r.height = height
	r.fbWidth = fbWidth
	r.fbHeight = fbHeight
}

// Destroy cleans up OpenGL resources
func (r *Renderer) Destroy() {
	for _, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
	}
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.shaderProg)
}

// ==================== Internal helpers ====================

func (r *Renderer) submitQuad(vertices []float32) {
	indices := []uint32{0, 1, 2, 2, 3, 0}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.DYNAMIC_DRAW)

	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
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
		logBytes := make([]byte, logLength)
		gl.GetShaderInfoLog(shader, logLength, &logLength, &logBytes[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile error: %s", string(logBytes))
	}

	return shader, nil
}

func uploadTexture(pix []byte, w, h int) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	return tex
}

// ortho creates an orthographic projection matrix with (0,0) top-left.
func ortho(left, right, bottom, top, near, far float32) [16]float32 {
	result := [16]float32{}
	result[0] = 2 / (right - left)
	result[5] = 2 / (top - bottom)
	result[10] = -2 / (far - near)
	result[12] = -(right + left) / (right - left)
	result[13] = -(top + bottom) / (top - bottom)
	result[14] = -(far + near) / (far - near)
	result[15] = 1

	return result
}
