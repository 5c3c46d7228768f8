package floorplan

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/go-physdesign/physdesign/internal/config"
	"github.com/go-physdesign/physdesign/internal/logctx"
)

// Anneal runs simulated annealing over t until the floorplan both satisfies
// constraint and the schedule freezes, then snaps t back to the best
// layout found and assigns block coordinates on it.
//
// Grounded on original_source/floorplan/src/annealing.cc: the two-phase
// structure (repair-to-feasible, then anneal) and the accept rule are kept
// verbatim; only the snapshot cadence (accepted moves only, not every
// attempt) and the cooling loop's exit conditions are unchanged from the
// source.
func Anneal(t *Tree, constraint AspectRatio, sched config.Annealing, logger *log.Logger) error {
	logger = logctx.OrDiscard(logger)
	n := len(t.blocks)

	trials := 0
	const maxRepairTrials = 1_000_000
	for {
		w, h := t.Dims()
		if constraint.Contains(w, h) {
			break
		}
		t.Perturb()
		trials++
		if trials > maxRepairTrials {
			return ErrUnreachableAspectRatio
		}
	}
	logger.Debug("reached feasible aspect ratio", "trials", trials)

	temp := sched.InitialTempPerBlock * float64(n)
	movesPerTemp := int(sched.MovesPerTempPerBlock * float64(n))
	if movesPerTemp < 1 {
		movesPerTemp = 1
	}

	minArea := t.Area()
	best := t.Snapshot()
	totalMoves := 0

	for {
		moves, rejected, uphills := 0, 0, 0
		for moves < movesPerTemp && moves-uphills < movesPerTemp/2 {
			t.Perturb()
			w, h := t.Dims()
			area := w * h
			moves++
			totalMoves++

			cost := float64(area - minArea)
			accept := constraint.Contains(w, h) &&
				(cost <= 0 || t.rng.Float64() < math.Exp(-cost/temp))

			if accept {
				if cost > 0 {
					uphills++
				}
				if area <= minArea {
					minArea = area
					best = t.Snapshot()
				}
			} else {
				t.Undo()
				rejected++
			}
		}
		temp *= sched.CoolingFactor
		rejectRatio := float64(rejected) / float64(movesPerTemp)
		logger.Debug("cooling stage complete", "temp", temp, "reject_ratio", rejectRatio, "min_area", minArea)
		if rejectRatio > sched.RejectThreshold || temp < sched.FreezeTemp {
			break
		}
	}

	t.Restore(best)
	logger.Debug("annealing finished", "trials", trials, "moves", totalMoves, "area", t.Area())
	t.AssignCoordinates()
	return nil
}
