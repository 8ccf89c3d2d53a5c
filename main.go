// Command gobezier draws two Bezier curves, one quadratic and one cubic,
// to a window and idles until the window closes or Escape is pressed.
// The curves are approximated by straight line segments computed with
// de Casteljau's algorithm; see the bezier package for the math.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"
)

// Exit statuses, one per failure stage.
const (
	exitRenderer  = 1 // window or renderer could not start, or died
	exitBadConfig = 2 // settings failed validation before any window opened
)

var (
	baseDir string
	gameCtx context.Context
)

func main() {
	width := flag.Int("width", 0, "window width in pixels (overrides settings)")
	height := flag.Int("height", 0, "window height in pixels (overrides settings)")
	steps := flag.Int("steps", 0, "line segments per curve (overrides settings)")
	settingsFile := flag.String("settings", "", "path to settings.json")
	debugLog := flag.Bool("debug", false, "verbose/debug logging")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}
	setupLogging(*debugLog)
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
		}
	}()

	if *settingsFile != "" {
		settingsOverride = *settingsFile
	}
	loadSettings()
	if *width > 0 {
		gs.Width = *width
	}
	if *height > 0 {
		gs.Height = *height
	}
	if *steps != 0 {
		gs.Steps = *steps
	}
	if err := gs.Validate(); err != nil {
		fatalStartup(exitBadConfig, fmt.Sprintf("invalid configuration: %v", err))
	}

	sc, err := buildScene(gs)
	if err != nil {
		fatalStartup(exitBadConfig, fmt.Sprintf("invalid configuration: %v", err))
	}
	logDebug("scene ready: %d curves, %d steps", len(sc.curves), gs.Steps)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	gameCtx = ctx

	ebiten.SetWindowTitle("Bezier Curves")
	ebiten.SetWindowSize(gs.Width, gs.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(gs.Vsync)

	op := &ebiten.RunGameOptions{ScreenTransparent: false}
	if err := ebiten.RunGameWithOptions(newGame(sc), op); err != nil {
		fatalStartup(exitRenderer, fmt.Sprintf("renderer failed: %v", err))
	}

	saveSettings()
	logShutdownStats()
}

// fatalStartup reports an unrecoverable error to the log and, since there
// may be no window to show it in, a native message box, then exits with
// the stage's status code.
func fatalStartup(code int, msg string) {
	logError("%s", msg)
	dialog.Message("%s", msg).Title("Bezier Curves").Error()
	os.Exit(code)
}
