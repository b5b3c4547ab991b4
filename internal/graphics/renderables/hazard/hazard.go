package hazard

import (
	"terrain-viewer/internal/graphics"
	"terrain-viewer/internal/graphics/renderables/terrain"
	renderer "terrain-viewer/internal/graphics/renderer"
	"terrain-viewer/internal/meshing"
	"terrain-viewer/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Hazard draws the slope-tier overlay on top of the terrain while scanning
type Hazard struct {
	shader *graphics.Shader
	mesh   *graphics.ColorMesh
	batch  meshing.Batch
	lift   float32
}

// NewHazard creates the overlay renderable; lift raises the overlay above
// the surface to keep it out of the terrain's depth.
func NewHazard(lift float32) *Hazard {
	return &Hazard{lift: lift}
}

// Init shares the terrain shader since both passes draw position+colour vertices
func (h *Hazard) Init() error {
	var err error
	h.shader, err = graphics.NewShader(terrain.VertShader, terrain.FragShader)
	if err != nil {
		return err
	}
	h.mesh = graphics.NewColorMesh()
	return nil
}

// Render rebuilds and draws the overlay when the frame is scanning
func (h *Hazard) Render(ctx renderer.RenderContext) {
	f := ctx.Frame
	if !f.Scanning || f.Heights == nil || f.Slopes == nil {
		return
	}
	func() {
		defer profiling.Track("renderer.hazard.Build")()
		meshing.BuildHazardTriangles(&h.batch, f.Heights, f.Slopes, f.Thresholds, h.lift)
		h.mesh.Upload(&h.batch)
	}()

	defer profiling.Track("renderer.hazard.Draw")()
	h.shader.Use()
	h.shader.SetMatrix4("proj", &ctx.Proj[0])
	h.shader.SetMatrix4("view", &ctx.View[0])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)
	h.mesh.Draw(gl.TRIANGLES)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Dispose cleans up OpenGL resources
func (h *Hazard) Dispose() {
	if h.mesh != nil {
		h.mesh.Delete()
	}
	if h.shader != nil {
		h.shader.Delete()
	}
}

func (h *Hazard) SetViewport(width, height int) {}
