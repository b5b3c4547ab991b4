package hud

import (
	"fmt"

	"terrain-viewer/internal/graphics"
	renderer "terrain-viewer/internal/graphics/renderer"
	"terrain-viewer/internal/profiling"
	"terrain-viewer/internal/terrain"
	"terrain-viewer/internal/viewer"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels = 18
	marginX    = 10
	marginY    = 24
	lineStep   = 20
)

// HUD draws the status text: camera pose, FPS and, while scanning, the
// hazard tally
type HUD struct {
	fontRenderer *graphics.FontRenderer
}

// NewHUD creates a new HUD renderable
func NewHUD() *HUD {
	return &HUD{}
}

// Init bakes the font atlas and sets up the text renderer
func (h *HUD) Init() error {
	atlas, err := graphics.BuildFontAtlas(fontPixels)
	if err != nil {
		return fmt.Errorf("hud font: %w", err)
	}
	h.fontRenderer, err = graphics.NewFontRenderer(atlas, mgl32.Ident4())
	if err != nil {
		return err
	}
	return nil
}

// Render draws the status lines in the top-left corner
func (h *HUD) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.hud")()
	lines := StatusLines(ctx.Frame, ctx.FPS)
	h.fontRenderer.SetProjection(ctx.Camera.GetOrthoMatrix())
	h.fontRenderer.RenderLines(lines, marginX, marginY, lineStep, 1, mgl32.Vec3{1, 1, 1})
}

// Dispose cleans up resources
func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
	}
}

// SetViewport is a no-op; the text projection follows the render camera
func (h *HUD) SetViewport(width, height int) {}

// StatusLines formats the HUD text for a frame.
func StatusLines(f viewer.Frame, fps int) []string {
	c := f.Camera
	lines := []string{
		fmt.Sprintf("FPS: %d", fps),
		fmt.Sprintf("XYZ: %.1f / %.1f / %.1f", c.Position.X(), c.Position.Y(), c.Position.Z()),
		fmt.Sprintf("Yaw: %.2f  Pitch: %.2f", c.Yaw, c.Pitch),
	}
	if !f.Scanning {
		return append(lines, "Scan: off (hold Tab)")
	}
	s := f.Summary
	lines = append(lines,
		"Scan: on",
		fmt.Sprintf("Danger: %d  Caution: %d  Safe: %d",
			s.Counts[terrain.TierDanger], s.Counts[terrain.TierCaution], s.Counts[terrain.TierSafe]),
		fmt.Sprintf("Max slope: %.2f (%s)", s.MaxSlope, f.Thresholds.Classify(s.MaxSlope)),
	)
	if top := profiling.TopN(3); top != "" {
		lines = append(lines, top)
	}
	return lines
}
