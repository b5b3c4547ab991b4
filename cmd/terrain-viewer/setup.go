package main

import (
	"terrain-viewer/internal/config"
	"terrain-viewer/internal/graphics/renderables/hazard"
	"terrain-viewer/internal/graphics/renderables/hud"
	"terrain-viewer/internal/graphics/renderables/terrain"
	renderer "terrain-viewer/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(ws config.WindowSettings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(ws.Width, ws.Height, ws.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, err
	}

	glfw.SwapInterval(1)
	// Disabled, not hidden: an unfocused window ignores SetCursorPos, and only
	// the disabled mode's virtual cursor then stays at the centre.
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetCursorPos(float64(ws.Width/2), float64(ws.Height/2))

	return window, nil
}

func setupRenderer(s config.Settings) (*renderer.Renderer, error) {
	// Base mesh first so the overlay blends over it
	return renderer.NewRenderer(s,
		terrain.NewTerrain(),
		hazard.NewHazard(s.Hazard.OverlayLift),
		hud.NewHUD(),
	)
}

// setupCallbacks keeps the GL viewport on the framebuffer, which is larger than
// the window on HiDPI displays.
func setupCallbacks(window *glfw.Window, r *renderer.Renderer) {
	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		winW, winH := w.GetSize()
		r.UpdateViewport(winW, winH)
	})
}
