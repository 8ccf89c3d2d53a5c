package main

import (
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

var (
	startTime       = time.Now()
	curvesEvaluated atomic.Int64
	pointsEvaluated atomic.Int64
	framesDrawn     atomic.Int64
)

// countCurve records one finished curve evaluation. Called from the
// parallel scene workers.
func countCurve(points int) {
	curvesEvaluated.Add(1)
	pointsEvaluated.Add(int64(points))
}

func logShutdownStats() {
	ran := durafmt.Parse(time.Since(startTime).Round(time.Second)).LimitFirstN(2)
	logDebug("session: %s, %s curves evaluated, %s points, %s frames drawn",
		ran,
		humanize.Comma(curvesEvaluated.Load()),
		humanize.Comma(pointsEvaluated.Load()),
		humanize.Comma(framesDrawn.Load()))
}
