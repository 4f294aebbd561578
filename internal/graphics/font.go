package graphics

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII.
const (
	firstGlyph rune = 32
	lastGlyph  rune = 126
)

const (
	atlasWidth   = 512
	glyphPadding = 1
)

var errEmptyAtlas = errors.New("font atlas has no glyphs")

// FontCharacter is one glyph's place in the atlas and its metrics, in pixels.
type FontCharacter struct {
	AtlasX, AtlasY float32
	Width, Height  float32
	BearingX       float32
	BearingY       float32
	Advance        int
}

// FontAtlasInfo is an uploaded atlas texture plus its glyph table.
type FontAtlasInfo struct {
	TextureID  uint32
	AtlasW     int
	AtlasH     int
	Characters map[rune]FontCharacter
}

// bakedAtlas is the CPU side of an atlas before upload.
type bakedAtlas struct {
	img        *image.Alpha
	characters map[rune]FontCharacter
}

// bakeAtlas rasterises the printable ASCII range of ttf at px pixels into a
// single-channel image. Rows are packed left to right; the height is the
// smallest power of two that fits.
func bakeAtlas(ttf []byte, px int) (*bakedAtlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	type glyph struct {
		r       rune
		dr      image.Rectangle
		mask    *image.Alpha
		advance fixed.Int26_6
	}
	glyphs := make([]glyph, 0, lastGlyph-firstGlyph+1)
	for r := firstGlyph; r <= lastGlyph; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		// The face reuses its mask buffer on the next call.
		var own *image.Alpha
		if mask != nil && !dr.Empty() {
			own = image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
			draw.Draw(own, own.Bounds(), mask, maskp, draw.Src)
		}
		glyphs = append(glyphs, glyph{r: r, dr: dr, mask: own, advance: advance})
	}
	if len(glyphs) == 0 {
		return nil, errEmptyAtlas
	}

	// Pack once to find the height, then draw into the final image.
	place := func(fn func(g glyph, x, y int)) int {
		x, y, rowH := 0, 0, 0
		for _, g := range glyphs {
			w, h := g.dr.Dx(), g.dr.Dy()
			if w == 0 || h == 0 {
				fn(g, x, y)
				continue
			}
			if x+w > atlasWidth {
				x = 0
				y += rowH + glyphPadding
				rowH = 0
			}
			fn(g, x, y)
			x += w + glyphPadding
			rowH = max(rowH, h)
		}
		return y + rowH
	}
	used := place(func(glyph, int, int) {})
	atlasH := 1
	for atlasH < used {
		atlasH <<= 1
	}

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH))
	chars := make(map[rune]FontCharacter, len(glyphs))
	place(func(g glyph, x, y int) {
		w, h := g.dr.Dx(), g.dr.Dy()
		fc := FontCharacter{
			AtlasX:   float32(x),
			AtlasY:   float32(y),
			Width:    float32(w),
			Height:   float32(h),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  int(math.Round(float64(g.advance) / 64.0)),
		}
		if g.mask != nil {
			draw.Draw(img, image.Rect(x, y, x+w, y+h), g.mask, image.Point{}, draw.Src)
		}
		chars[g.r] = fc
	})
	return &bakedAtlas{img: img, characters: chars}, nil
}

// BuildFontAtlas bakes the Go Regular face at fontPixels and uploads it as a
// GL_RED texture.
func BuildFontAtlas(fontPixels int) (*FontAtlasInfo, error) {
	baked, err := bakeAtlas(goregular.TTF, fontPixels)
	if err != nil {
		return nil, err
	}
	b := baked.img.Bounds()

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(baked.img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return &FontAtlasInfo{TextureID: texture, AtlasW: b.Dx(), AtlasH: b.Dy(), Characters: baked.characters}, nil
}

// FontRenderer draws text in window pixels, origin top-left.
type FontRenderer struct {
	atlas      *FontAtlasInfo
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer loads the font shader and sets up a dynamic quad buffer.
func NewFontRenderer(atlas *FontAtlasInfo) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, errEmptyAtlas
	}
	shader, err := NewShader(filepath.Join(ShadersDir, FontVertShader), filepath.Join(ShadersDir, FontFragShader))
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{
		atlas:      atlas,
		shader:     shader,
		projection: mgl32.Ortho(0, WinWidth, WinHeight, 0, 0, 1),
	}

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	// 256 characters, 6 vertices each, 4 floats per vertex.
	gl.BufferData(gl.ARRAY_BUFFER, 256*6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return fr, nil
}

// SetViewport keeps text in pixel units after a resize.
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1)
}

// RenderLines draws lines starting at (x, yStart), lineStep pixels apart.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	if len(lines) == 0 {
		return
	}
	var vertices []float32
	y := yStart
	for _, line := range lines {
		vertices = append(vertices, fr.buildVertices(line, x, y, scale)...)
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	fr.shader.SetMatrix4("projection", &fr.projection[0])
	fr.shader.SetInt("text", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// Orphan then fill.
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Render draws a single line.
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	fr.RenderLines([]string{text}, x, y, 0, scale, color)
}

// Measure returns the pixel width and tallest glyph height of text.
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	return measure(fr.atlas.Characters, text, scale)
}

func (fr *FontRenderer) Dispose() {
	gl.DeleteBuffers(1, &fr.vbo)
	gl.DeleteVertexArrays(1, &fr.vao)
	gl.DeleteTextures(1, &fr.atlas.TextureID)
	fr.shader.Delete()
}

func measure(chars map[rune]FontCharacter, text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		fc, ok := chars[r]
		if !ok {
			fc = chars[' ']
		}
		width += float32(fc.Advance) * scale
		maxH = max(maxH, fc.Height*scale)
	}
	return width, maxH
}

func (fr *FontRenderer) buildVertices(text string, x, y, scale float32) []float32 {
	aw, ah := float32(fr.atlas.AtlasW), float32(fr.atlas.AtlasH)
	vertices := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		fc, ok := fr.atlas.Characters[r]
		if !ok {
			x += float32(fr.atlas.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 {
			vertices = append(vertices, glyphQuad(fc, x, y, scale, aw, ah)...)
		}
		x += float32(fc.Advance) * scale
	}
	return vertices
}

// glyphQuad returns two triangles of (x, y, u, v).
func glyphQuad(fc FontCharacter, x, y, scale, aw, ah float32) []float32 {
	x0 := x + fc.BearingX*scale
	y0 := y - fc.BearingY*scale
	x1 := x0 + fc.Width*scale
	y1 := y0 + fc.Height*scale
	u0, v0 := fc.AtlasX/aw, fc.AtlasY/ah
	u1, v1 := (fc.AtlasX+fc.Width)/aw, (fc.AtlasY+fc.Height)/ah
	return []float32{
		x0, y1, u0, v1,
		x0, y0, u0, v0,
		x1, y0, u1, v0,
		x0, y1, u0, v1,
		x1, y0, u1, v0,
		x1, y1, u1, v1,
	}
}
