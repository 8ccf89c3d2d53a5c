package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	dark "github.com/thiagokokada/dark-mode-go"
	"golang.org/x/time/rate"
)

type Game struct {
	sc  *scene
	pal palette

	// Last rendered target size; a mismatch forces a re-render of the
	// offscreen scene target.
	lastW, lastH int
	rendered     bool
}

var (
	statsLimiter     = rate.NewLimiter(rate.Every(5*time.Second), 1)
	lastSettingsSave = time.Now()
)

func newGame(sc *scene) *Game {
	return &Game{sc: sc, pal: pickPalette(gs.Theme)}
}

// pickPalette resolves the configured theme, asking the OS when none is
// set explicitly.
func pickPalette(theme string) palette {
	switch theme {
	case "dark":
		return darkPalette
	case "light":
		return lightPalette
	}
	darkMode, err := dark.IsDarkMode()
	if err != nil || darkMode {
		return darkPalette
	}
	return lightPalette
}

func (g *Game) Update() error {
	select {
	case <-gameCtx.Done():
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if settingsDirty && time.Since(lastSettingsSave) >= 5*time.Second {
		saveSettings()
		lastSettingsSave = time.Now()
	}

	if statsLimiter.Allow() {
		logDebug("alive: %d frames drawn", framesDrawn.Load())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	ensureSceneRT(w, h)
	if !g.rendered || w != g.lastW || h != g.lastH {
		renderScene(sceneRT, g.sc, g.pal, float32(gs.LineWidth), gs.ShowControlPolygons)
		g.lastW, g.lastH = w, h
		g.rendered = true
	}
	screen.DrawImage(sceneRT, nil)
	framesDrawn.Add(1)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != gs.Width || outsideHeight != gs.Height {
		gs.Width, gs.Height = outsideWidth, outsideHeight
		settingsDirty = true
	}
	return outsideWidth, outsideHeight
}
