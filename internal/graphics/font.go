package graphics

import (
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

const ShadersDir = "assets/shaders"

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance int
}

// FontAtlasInfo contains the OpenGL texture and per-glyph metadata
type FontAtlasInfo struct {
	TextureID  uint32
	AtlasW     int
	AtlasH     int
	Characters map[rune]FontCharacter
}

// glyphAtlas is the CPU side of a baked atlas
type glyphAtlas struct {
	img        *image.Alpha
	characters map[rune]FontCharacter
}

// bakeGlyphs rasterises the printable ASCII range of ttf at fontPixels into a
// single-channel image, packing glyphs left to right in rows.
func bakeGlyphs(ttf []byte, fontPixels, atlasW int) (*glyphAtlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	const padding = 1
	type glyph struct {
		r       rune
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}
	var glyphs []glyph
	for r := rune(32); r <= rune(126); r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, glyph{r, dr, mask, maskp, advance})
	}
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("font has no printable ASCII glyphs")
	}

	// First pass: place glyphs to find the atlas height
	type slot struct{ x, y int }
	slots := make([]slot, len(glyphs))
	offsetX, offsetY, rowHeight := 0, 0, 0
	for n, g := range glyphs {
		gw, gh := g.dr.Dx(), g.dr.Dy()
		if offsetX+gw > atlasW {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		slots[n] = slot{offsetX, offsetY}
		if gw > 0 {
			offsetX += gw + padding
		}
		if gh > rowHeight {
			rowHeight = gh
		}
	}
	atlasH := offsetY + rowHeight + padding

	img := image.NewAlpha(image.Rect(0, 0, atlasW, atlasH))
	characters := make(map[rune]FontCharacter, len(glyphs))

	// Second pass: copy glyph alpha into the atlas and record metrics
	for n, g := range glyphs {
		gw, gh := g.dr.Dx(), g.dr.Dy()
		s := slots[n]
		if gw > 0 && gh > 0 && g.mask != nil {
			draw.Draw(img, image.Rect(s.x, s.y, s.x+gw, s.y+gh), g.mask, g.maskp, draw.Src)
		}
		characters[g.r] = FontCharacter{
			AtlasX:   float32(s.x),
			AtlasY:   float32(s.y),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  int(math.Round(float64(g.advance) / 64.0)),
		}
	}
	return &glyphAtlas{img: img, characters: characters}, nil
}

// BuildFontAtlas bakes the Go Regular font into an OpenGL texture atlas.
// fontPixels is the target pixel size for glyphs.
func BuildFontAtlas(fontPixels int) (*FontAtlasInfo, error) {
	baked, err := bakeGlyphs(goregular.TTF, fontPixels, 512)
	if err != nil {
		return nil, err
	}
	w, h := baked.img.Rect.Dx(), baked.img.Rect.Dy()

	// Upload atlas to OpenGL as GL_RED
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	// Ensure tight byte alignment for single-channel upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(baked.img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return &FontAtlasInfo{TextureID: texture, AtlasW: w, AtlasH: h, Characters: baked.characters}, nil
}

// FontRenderer renders ASCII text strings using a prebuilt atlas
type FontRenderer struct {
	atlas      *FontAtlasInfo
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer creates the renderer and loads the font shader from assets
func NewFontRenderer(atlas *FontAtlasInfo, projection mgl32.Mat4) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(filepath.Join(ShadersDir, "hud", "font.vert"), filepath.Join(ShadersDir, "hud", "font.frag"))
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{atlas: atlas, shader: shader, projection: projection}
	fr.initGL()
	return fr, nil
}

func (fr *FontRenderer) initGL() {
	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	// 6 verts per char, 4 floats per vert
	gl.BufferData(gl.ARRAY_BUFFER, 256*6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetProjection replaces the pixel-space projection.
func (fr *FontRenderer) SetProjection(p mgl32.Mat4) {
	fr.projection = p
}

// RenderLines draws multiple lines of text in a single pass to minimize GL state changes.
// Lines start at (x, yStart) and each subsequent line is offset by lineStep pixels.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	vertices := layoutLines(fr.atlas, lines, x, yStart, lineStep, scale)
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	fr.shader.SetMatrix4("projection", &fr.projection[0])
	fr.shader.SetInt("text", 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Dispose releases the GL objects
func (fr *FontRenderer) Dispose() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.atlas != nil && fr.atlas.TextureID != 0 {
		gl.DeleteTextures(1, &fr.atlas.TextureID)
	}
	fr.shader.Delete()
}

func layoutLines(atlas *FontAtlasInfo, lines []string, x, yStart, lineStep, scale float32) []float32 {
	total := 0
	for _, line := range lines {
		total += len(line)
	}
	vertices := make([]float32, 0, total*6*4)
	y := yStart
	for _, line := range lines {
		vertices = appendLine(vertices, atlas, line, x, y, scale)
		y += lineStep
	}
	return vertices
}

func appendLine(vertices []float32, atlas *FontAtlasInfo, text string, x, y, scale float32) []float32 {
	for _, r := range text {
		fc, ok := atlas.Characters[r]
		if !ok {
			x += float32(atlas.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 && fc.Height > 0 {
			vertices = appendQuad(vertices, atlas, fc, x, y, scale)
		}
		x += float32(fc.Advance) * scale
	}
	return vertices
}

func appendQuad(vertices []float32, atlas *FontAtlasInfo, fc FontCharacter, x, y, scale float32) []float32 {
	// Screen position
	xPos := x + fc.BearingX*scale
	yPos := y - fc.BearingY*scale
	w := fc.Width * scale
	h := fc.Height * scale

	// Texture coordinates (normalized)
	u := fc.AtlasX / float32(atlas.AtlasW)
	v := fc.AtlasY / float32(atlas.AtlasH)
	uw := fc.Width / float32(atlas.AtlasW)
	vh := fc.Height / float32(atlas.AtlasH)

	return append(vertices,
		// triangle 1
		xPos, yPos+h, u, v+vh,
		xPos, yPos, u, v,
		xPos+w, yPos, u+uw, v,
		// triangle 2
		xPos, yPos+h, u, v+vh,
		xPos+w, yPos, u+uw, v,
		xPos+w, yPos+h, u+uw, v+vh,
	)
}
