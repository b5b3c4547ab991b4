package main

import (
	"log"
	"time"

	"terrain-viewer/internal/config"
	renderer "terrain-viewer/internal/graphics/renderer"
	"terrain-viewer/internal/input"
	"terrain-viewer/internal/profiling"
	"terrain-viewer/internal/viewer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame gets logged
const slowFrame = 50 * time.Millisecond

func runFrameLoop(window *glfw.Window, r *renderer.Renderer, session *viewer.Session, s config.Settings) {
	im := input.NewInputManager(s.Window.Width, s.Window.Height)
	limiter := viewer.NewFPSLimiter(s.FPSLimit)

	frames := 0
	fps := 0
	lastFPSCheck := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		start := time.Now()

		snapshot := im.Poll(window)
		if snapshot.IsActive(input.ActionQuit) {
			window.SetShouldClose(true)
		}

		session.Update(snapshot)
		r.Render(session.Frame(), fps)

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		frames++
		if time.Since(lastFPSCheck) >= time.Second {
			fps = frames
			frames = 0
			lastFPSCheck = time.Now()
		}

		processing := time.Since(start) - profiling.SumWithPrefix("glfw.")
		if processing > slowFrame {
			log.Printf("Slow frame: %v. Top tasks: %s", processing, profiling.TopN(5))
		}

		limiter.Wait()
	}
}
