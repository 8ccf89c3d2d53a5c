package main

import (
	"image/color"
	"runtime"
	"sync"

	"github.com/remeh/sizedwaitgroup"

	"gobezier/bezier"
)

// curve is one evaluated curve ready for rasterization: the polyline in
// normalized coordinates plus the control points it came from.
type curve struct {
	name   string
	poly   []bezier.Point
	ctrl   []bezier.Point
	colorK paletteKey
}

type scene struct {
	curves []curve
}

type paletteKey int

const (
	colorQuad paletteKey = iota
	colorCubic
)

type palette struct {
	background color.RGBA
	quad       color.RGBA
	cubic      color.RGBA
	polygon    color.RGBA
}

var darkPalette = palette{
	background: color.RGBA{A: 255},
	quad:       color.RGBA{G: 255, A: 255},
	cubic:      color.RGBA{R: 255, A: 255},
	polygon:    color.RGBA{R: 90, G: 90, B: 90, A: 255},
}

var lightPalette = palette{
	background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	quad:       color.RGBA{G: 140, A: 255},
	cubic:      color.RGBA{R: 190, A: 255},
	polygon:    color.RGBA{R: 180, G: 180, B: 180, A: 255},
}

func (p palette) curveColor(k paletteKey) color.RGBA {
	if k == colorQuad {
		return p.quad
	}
	return p.cubic
}

// buildScene evaluates every configured curve into a polyline. The
// evaluations share nothing, so they run through a bounded worker group.
func buildScene(s Settings) (*scene, error) {
	sc := &scene{
		curves: []curve{
			{
				name:   "quadratic",
				ctrl:   []bezier.Point{s.Quad.P0.pt(), s.Quad.P1.pt(), s.Quad.P2.pt()},
				colorK: colorQuad,
			},
			{
				name:   "cubic",
				ctrl:   []bezier.Point{s.Cubic.P0.pt(), s.Cubic.P1.pt(), s.Cubic.P2.pt(), s.Cubic.P3.pt()},
				colorK: colorCubic,
			},
		},
	}

	swg := sizedwaitgroup.New(runtime.NumCPU())
	var mu sync.Mutex
	var firstErr error
	for i := range sc.curves {
		swg.Add()
		go func(c *curve) {
			defer swg.Done()
			poly, err := bezier.Flatten(c.ctrl, s.Steps)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			c.poly = poly
			countCurve(len(poly))
		}(&sc.curves[i])
	}
	swg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return sc, nil
}

type segment struct {
	x0, y0, x1, y1 float32
}

// toSegments maps a normalized polyline onto a w by h pixel surface and
// returns the line segments to stroke, consecutive points pairwise.
func toSegments(poly []bezier.Point, w, h int) []segment {
	if len(poly) < 2 {
		return nil
	}
	segs := make([]segment, 0, len(poly)-1)
	fw, fh := float64(w), float64(h)
	prev := poly[0]
	for _, p := range poly[1:] {
		segs = append(segs, segment{
			x0: float32(fw * prev.X),
			y0: float32(fh * prev.Y),
			x1: float32(fw * p.X),
			y1: float32(fh * p.Y),
		})
		prev = p
	}
	return segs
}
