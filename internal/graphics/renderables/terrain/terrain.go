package terrain

import (
	"path/filepath"

	"terrain-viewer/internal/graphics"
	renderer "terrain-viewer/internal/graphics/renderer"
	"terrain-viewer/internal/meshing"
	"terrain-viewer/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	VertShader = filepath.Join(graphics.ShadersDir, "terrain", "terrain.vert")
	FragShader = filepath.Join(graphics.ShadersDir, "terrain", "terrain.frag")
)

// Terrain draws the heightfield as green-shaded triangle strips
type Terrain struct {
	shader *graphics.Shader
	mesh   *graphics.ColorMesh
	batch  meshing.Batch
}

// NewTerrain creates a new terrain renderable
func NewTerrain() *Terrain {
	return &Terrain{}
}

// Init compiles the shader and creates the vertex buffer
func (t *Terrain) Init() error {
	var err error
	t.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}
	t.mesh = graphics.NewColorMesh()
	return nil
}

// Render rebuilds the strips from this frame's heightfield and draws them
func (t *Terrain) Render(ctx renderer.RenderContext) {
	f := ctx.Frame
	if f.Heights == nil {
		return
	}
	func() {
		defer profiling.Track("renderer.terrain.Build")()
		meshing.BuildTerrainStrips(&t.batch, f.Heights, f.HillHeight)
		t.mesh.Upload(&t.batch)
	}()

	defer profiling.Track("renderer.terrain.Draw")()
	t.shader.Use()
	t.shader.SetMatrix4("proj", &ctx.Proj[0])
	t.shader.SetMatrix4("view", &ctx.View[0])
	t.mesh.Draw(gl.TRIANGLE_STRIP)
}

// Dispose cleans up OpenGL resources
func (t *Terrain) Dispose() {
	if t.mesh != nil {
		t.mesh.Delete()
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}

func (t *Terrain) SetViewport(width, height int) {}
