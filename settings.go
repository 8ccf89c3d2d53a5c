package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gobezier/bezier"
)

// NormPoint is a control point in normalized window coordinates. 0,0 is
// the upper-left of the window and 1,1 is the lower-right. Cubic control
// points may sit outside that range; nothing clamps them.
type NormPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p NormPoint) pt() bezier.Point {
	return bezier.Pt(p.X, p.Y)
}

type QuadConfig struct {
	P0 NormPoint `json:"p0"`
	P1 NormPoint `json:"p1"`
	P2 NormPoint `json:"p2"`
}

type CubicConfig struct {
	P0 NormPoint `json:"p0"`
	P1 NormPoint `json:"p1"`
	P2 NormPoint `json:"p2"`
	P3 NormPoint `json:"p3"`
}

type Settings struct {
	Width               int         `json:"width"`
	Height              int         `json:"height"`
	Steps               int         `json:"steps"`
	LineWidth           float64     `json:"lineWidth"`
	Theme               string      `json:"theme"` // "dark", "light" or "" for auto
	ShowControlPolygons bool        `json:"showControlPolygons"`
	Vsync               bool        `json:"vsync"`
	Quad                QuadConfig  `json:"quad"`
	Cubic               CubicConfig `json:"cubic"`
}

var (
	gs            Settings
	settingsDirty bool

	// settingsOverride replaces the default settings.json location when
	// set via the -settings flag.
	settingsOverride string
)

// defaultSettings is the reference configuration: a green quadratic curve
// across the top of a 400x400 window and a red cubic curve underneath,
// each approximated by 20 line segments.
func defaultSettings() Settings {
	return Settings{
		Width:     400,
		Height:    400,
		Steps:     20,
		LineWidth: 1,
		Vsync:     true,
		Quad: QuadConfig{
			P0: NormPoint{X: 0.2, Y: 0.2},
			P1: NormPoint{X: 0.5, Y: 0.9},
			P2: NormPoint{X: 0.9, Y: 0.1},
		},
		Cubic: CubicConfig{
			P0: NormPoint{X: 0.1, Y: 0.9},
			P1: NormPoint{X: 0.3, Y: 0.2},
			P2: NormPoint{X: 0.5, Y: 1.6},
			P3: NormPoint{X: 0.8, Y: 0.4},
		},
	}
}

func settingsPath() string {
	if settingsOverride != "" {
		return settingsOverride
	}
	return filepath.Join(baseDir, "settings.json")
}

func loadSettings() bool {
	gs = defaultSettings()
	data, err := os.ReadFile(settingsPath())
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, &gs); err != nil {
		logError("settings.json unreadable, using defaults: %v", err)
		gs = defaultSettings()
		return false
	}
	return true
}

func saveSettings() {
	data, err := json.MarshalIndent(&gs, "", "  ")
	if err != nil {
		logError("marshal settings: %v", err)
		return
	}
	if err := os.WriteFile(settingsPath(), data, 0644); err != nil {
		logError("save settings: %v", err)
		return
	}
	settingsDirty = false
}

// Validate applies the fail-fast preconditions before any window opens.
func (s *Settings) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("window size %dx%d invalid, both sides must be positive", s.Width, s.Height)
	}
	if s.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", s.Steps)
	}
	if s.LineWidth <= 0 {
		return fmt.Errorf("lineWidth must be positive, got %g", s.LineWidth)
	}
	switch s.Theme {
	case "", "dark", "light":
	default:
		return fmt.Errorf("theme %q unknown, want dark, light or empty for auto", s.Theme)
	}
	return nil
}
