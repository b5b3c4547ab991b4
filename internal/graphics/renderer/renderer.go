package renderer

import (
	"fmt"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/graphics"
	"terrain-viewer/internal/profiling"
	"terrain-viewer/internal/viewer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features, drawn in order
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures GL state and initializes every renderable.
func NewRenderer(s config.Settings, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	// strips and overlay quads are not consistently wound
	gl.Disable(gl.CULL_FACE)

	r := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(s.Window.Width, s.Window.Height, s.Camera),
	}

	for n, rb := range rs {
		if err := rb.Init(); err != nil {
			// release what was already set up
			for i := n - 1; i >= 0; i-- {
				rs[i].Dispose()
			}
			return nil, fmt.Errorf("init renderable %T: %w", rb, err)
		}
		rb.SetViewport(s.Window.Width, s.Window.Height)
	}
	return r, nil
}

// Render clears the frame and draws every renderable.
func (r *Renderer) Render(f viewer.Frame, fps int) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		Frame:  f,
		FPS:    fps,
		View:   f.Camera.GetViewMatrix(),
		Proj:   r.camera.GetProjectionMatrix(),
	}
	for _, rb := range r.renderables {
		rb.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport updates the camera and every renderable after a window size
// change. width and height are in window coordinates, not framebuffer pixels.
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}
