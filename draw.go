package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// sceneRT is the offscreen render target the curves are stroked onto.
// Rendering happens once per size change, not per frame; Draw just
// composites this image.
var sceneRT *ebiten.Image

func ensureSceneRT(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if sceneRT == nil || sceneRT.Bounds().Dx() != w || sceneRT.Bounds().Dy() != h {
		// Unmanaged images skip the restoration bookkeeping; this target
		// is cheap to redraw if the context is lost.
		sceneRT = ebiten.NewImageWithOptions(image.Rect(0, 0, w, h), &ebiten.NewImageOptions{Unmanaged: true})
	}
}

// renderScene clears the target and strokes every curve in the scene,
// optionally with its control polygon underneath.
func renderScene(dst *ebiten.Image, sc *scene, pal palette, lineWidth float32, showPolygons bool) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	dst.Fill(pal.background)

	if showPolygons {
		for _, c := range sc.curves {
			for _, s := range toSegments(c.ctrl, w, h) {
				vector.StrokeLine(dst, s.x0, s.y0, s.x1, s.y1, 1, pal.polygon, false)
			}
		}
	}
	for _, c := range sc.curves {
		clr := pal.curveColor(c.colorK)
		for _, s := range toSegments(c.poly, w, h) {
			vector.StrokeLine(dst, s.x0, s.y0, s.x1, s.y1, lineWidth, clr, false)
		}
	}
}
