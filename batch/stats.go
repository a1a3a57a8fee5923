package batch

import (
	"fmt"
	"io"

	"pairsim/sim"
)

// Stats summarizes one batch of games on a single board size.
type Stats struct {
	Rows   int
	Cols   int
	Pairs  int
	Trials int

	MeanMoves float64
	MinMoves  int
	MaxMoves  int

	MeanPerfectMatches float64
	MeanLuckyMatches   float64
	MeanTurns          float64

	// Incomplete counts games stopped by the defensive turn cap. Always zero
	// unless the decision policy has a defect.
	Incomplete int
}

// RandomMatchProb returns the probability that a blind two-card guess matches
// when pairs pairs remain: 1/(2P-1). Returns 0 for non-positive pairs. Serves
// as the no-memory baseline next to the observed stats.
func RandomMatchProb(pairs int) float64 {
	if pairs <= 0 {
		return 0
	}
	denom := 2*pairs - 1
	if denom <= 0 {
		return 0
	}
	return 1 / float64(denom)
}

// aggregate computes summary statistics over one batch of game results.
func aggregate(rows, cols int, results []sim.Result) Stats {
	stats := Stats{
		Rows:   rows,
		Cols:   cols,
		Pairs:  rows * cols / 2,
		Trials: len(results),
	}
	if len(results) == 0 {
		return stats
	}

	var sumMoves, sumPerfect, sumLucky, sumTurns int
	stats.MinMoves = results[0].Moves
	stats.MaxMoves = results[0].Moves

	for _, r := range results {
		sumMoves += r.Moves
		sumPerfect += r.PerfectMatches
		sumLucky += r.LuckyMatches
		sumTurns += r.Turns
		if r.Moves < stats.MinMoves {
			stats.MinMoves = r.Moves
		}
		if r.Moves > stats.MaxMoves {
			stats.MaxMoves = r.Moves
		}
		if !r.Completed {
			stats.Incomplete++
		}
	}

	n := float64(len(results))
	stats.MeanMoves = float64(sumMoves) / n
	stats.MeanPerfectMatches = float64(sumPerfect) / n
	stats.MeanLuckyMatches = float64(sumLucky) / n
	stats.MeanTurns = float64(sumTurns) / n
	return stats
}

// WriteReport writes the human-readable summary block for one board size.
func (s Stats) WriteReport(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"%dx%d board (%d pairs)\n"+
			"  simulations:          %d\n"+
			"  wrong moves:          mean %.2f, min %d, max %d\n"+
			"  perfect matches:      mean %.2f\n"+
			"  lucky matches:        mean %.2f\n"+
			"  turns per game:       mean %.2f\n"+
			"  blind-guess baseline: %.1f%% match chance on a fresh board\n",
		s.Rows, s.Cols, s.Pairs,
		s.Trials,
		s.MeanMoves, s.MinMoves, s.MaxMoves,
		s.MeanPerfectMatches,
		s.MeanLuckyMatches,
		s.MeanTurns,
		100*RandomMatchProb(s.Pairs),
	)
	return err
}
