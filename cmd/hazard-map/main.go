package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/mapview"
	"terrain-viewer/internal/noise"
	"terrain-viewer/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App is a top-down preview of the terrain and its hazard tiers
type App struct {
	settings   config.Settings
	thresholds terrain.Thresholds
	cellPx     int

	heights  *terrain.Heightfield
	slopes   *terrain.SlopeGrid
	summary  terrain.Summary
	painter  mapview.Painter
	tex      *ebiten.Image
	scanning bool
}

func NewApp(s config.Settings, cellPx int) (*App, error) {
	a := &App{
		settings:   s,
		thresholds: terrain.Thresholds{Caution: s.Hazard.Caution, Danger: s.Hazard.Danger},
		cellPx:     cellPx,
	}
	if err := a.regenerate(); err != nil {
		return nil, err
	}
	return a, nil
}

// regenerate rebuilds the heightfield and slopes. Only the seed changes while
// running, so nothing else needs recomputing between seeds.
func (a *App) regenerate() error {
	t := a.settings.Terrain
	field, err := noise.New(t.Noise, t.Seed, t.Octaves)
	if err != nil {
		return err
	}
	gen, err := terrain.NewGenerator(field, terrain.Params{
		Width:      t.Width,
		Depth:      t.Depth,
		CellStep:   t.CellStep,
		Scale:      t.Scale,
		HillHeight: t.HillHeight,
	})
	if err != nil {
		return err
	}
	a.heights = gen.Generate()
	a.slopes = terrain.Analyze(a.heights)
	a.summary = terrain.Summarize(a.slopes, a.thresholds)
	log.Printf("seed %d: max slope %.2f, %d danger cells", t.Seed, a.summary.MaxSlope, a.summary.Counts[terrain.TierDanger])
	return nil
}

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.scanning = ebiten.IsKeyPressed(ebiten.KeyTab)

	step := int64(0)
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		step = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		step = -1
	}
	if step != 0 {
		a.settings.Terrain.Seed += step
		return a.regenerate()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	var slopes *terrain.SlopeGrid
	if a.scanning {
		slopes = a.slopes
	}
	img := a.painter.Paint(a.heights, slopes, a.thresholds, a.settings.Terrain.HillHeight)
	if a.tex == nil {
		a.tex = ebiten.NewImage(a.heights.Width, a.heights.Depth)
	}
	a.tex.WritePixels(img.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(a.cellPx), float64(a.cellPx))
	screen.DrawImage(a.tex, op)

	status := fmt.Sprintf("seed %d (%s)  N/P=seed  hold TAB=hazards  ESC=quit", a.settings.Terrain.Seed, a.settings.Terrain.Noise)
	if a.scanning {
		s := a.summary
		status += fmt.Sprintf("\ndanger %d  caution %d  safe %d  max slope %.2f",
			s.Counts[terrain.TierDanger], s.Counts[terrain.TierCaution], s.Counts[terrain.TierSafe], s.MaxSlope)
	}
	ebitenutil.DebugPrint(screen, status)
}

func (a *App) Layout(outsideW, outsideH int) (int, int) {
	return a.settings.Terrain.Width * a.cellPx, a.settings.Terrain.Depth * a.cellPx
}

func main() {
	settings := config.Default()
	settings.BindFlags(flag.CommandLine)
	cellPx := flag.Int("cell", 6, "screen pixels per terrain cell")
	flag.Parse()

	if err := settings.Validate(); err != nil {
		log.Fatalf("configure terrain: %v", err)
	}
	if *cellPx < 1 {
		log.Fatalf("configure map: cell size must be positive, got %d", *cellPx)
	}

	app, err := NewApp(settings, *cellPx)
	if err != nil {
		log.Fatalf("build terrain: %v", err)
	}

	ebiten.SetWindowTitle("Terrain Hazard Map")
	ebiten.SetWindowSize(settings.Terrain.Width**cellPx, settings.Terrain.Depth**cellPx)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
