package main

import (
	"flag"
	"log"
	"runtime"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/viewer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	settings := config.Default()
	settings.BindFlags(flag.CommandLine)
	flag.Parse()
	settings.PlaceCamera()

	// Bad grids are rejected before any window exists
	session, err := viewer.NewSession(settings)
	if err != nil {
		log.Fatalf("configure terrain: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("init glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(settings.Window)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}

	r, err := setupRenderer(settings)
	if err != nil {
		log.Fatalf("init renderer: %v", err)
	}
	defer r.Dispose()
	setupCallbacks(window, r)

	runFrameLoop(window, r, session, settings)
}
