package partition

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/go-physdesign/physdesign/internal/logctx"
)

// Partitioner runs the Fiduccia-Mattheyses algorithm to local-minimum cut
// over an Instance, respecting a balance tolerance on block sizes.
//
// Grounded on original_source/partition/src/fm_partitioner.cc: InitPartition,
// CalculateCellGains, ChooseBaseCell and the pass/revert-to-best-prefix outer
// loop are the same four moving parts, reshaped around Go's slice-of-structs
// arena instead of shared_ptr<Cell>/shared_ptr<Net> graphs.
type Partitioner struct {
	inst *Instance
	rng  *rand.Rand
	log  *log.Logger

	sizeA, sizeB int
	loA, hiA     int // allowed range for sizeA under the balance tolerance
}

// New wraps inst in a Partitioner, drawing moves from r. logger may be nil
// (discarded).
func New(inst *Instance, r *rand.Rand, logger *log.Logger) *Partitioner {
	return &Partitioner{inst: inst, rng: r, log: logctx.OrDiscard(logger)}
}

// Run executes InitPartition once and then repeats FM passes until a pass
// fails to improve the cut, returning the best partition found.
func (p *Partitioner) Run() (Result, error) {
	if len(p.inst.Cells) == 0 {
		return Result{}, ErrNoCells
	}
	if p.inst.BalanceFactor <= 0 || p.inst.BalanceFactor >= 1 {
		return Result{}, ErrBadBalanceFactor
	}
	p.computeBalanceRange()
	p.initPartition()

	best := p.inst.CutSize()
	p.log.Debug("initial partition", "cutsize", best)
	for {
		improved, cut := p.runPass()
		p.log.Debug("pass complete", "cutsize", cut, "improved", improved)
		if !improved {
			break
		}
		best = cut
	}
	return Result{
		CutSize: best,
		BlockA:  p.inst.BlockNames(BlockA),
		BlockB:  p.inst.BlockNames(BlockB),
	}, nil
}

// computeBalanceRange derives [loA, hiA], the inclusive range sizeA may
// occupy, from BalanceFactor r via (1-r)*n/2 <= size <= (1+r)*n/2, rounded
// conservatively inward (ceil the lower bound, floor the upper bound) per
// fm_partitioner.cc's IsBalanced_.
func (p *Partitioner) computeBalanceRange() {
	n := float64(len(p.inst.Cells))
	r := p.inst.BalanceFactor
	p.loA = int(math.Ceil((1 - r) * n / 2))
	p.hiA = int(math.Floor((1 + r) * n / 2))
	if p.loA < 0 {
		p.loA = 0
	}
	if p.hiA > len(p.inst.Cells) {
		p.hiA = len(p.inst.Cells)
	}
}

func (p *Partitioner) balanced(sizeA int) bool {
	return sizeA >= p.loA && sizeA <= p.hiA
}

// initPartition assigns every cell a random side, then nudges cells across
// the boundary until sizeA falls inside the balance range, mirroring the
// original's "random coin flip, then repair" construction.
func (p *Partitioner) initPartition() {
	cells := p.inst.Cells
	for i := range cells {
		if p.rng.Intn(2) == 0 {
			cells[i].Tag = BlockA
			p.sizeA++
		} else {
			cells[i].Tag = BlockB
			p.sizeB++
		}
	}
	for p.sizeA < p.loA {
		i := p.firstWithTag(BlockB)
		cells[i].Tag = BlockA
		p.sizeA++
		p.sizeB--
	}
	for p.sizeA > p.hiA {
		i := p.firstWithTag(BlockA)
		cells[i].Tag = BlockB
		p.sizeA--
		p.sizeB++
	}
	p.recomputeNetSides()
}

func (p *Partitioner) firstWithTag(tag BlockTag) int {
	for i := range p.inst.Cells {
		if p.inst.Cells[i].Tag == tag {
			return i
		}
	}
	return -1
}

func (p *Partitioner) recomputeNetSides() {
	for ni := range p.inst.Nets {
		net := &p.inst.Nets[ni]
		net.InA, net.InB = 0, 0
		for _, ci := range net.CellIdx {
			net.addSide(p.inst.Cells[ci].Tag, 1)
		}
	}
}

// maxPins is the highest pin count across all cells: the gain bucket's pmax.
func (p *Partitioner) maxPins() int {
	max := 0
	for i := range p.inst.Cells {
		if n := p.inst.Cells[i].NumPins(); n > max {
			max = n
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}

// moveRecord is one applied move during a pass, kept so the pass can revert
// to the best-seen prefix in O(k) where k is the number of moves to undo.
type moveRecord struct {
	cellIdx int
	fromTag BlockTag
}

// runPass runs a single FM pass: repeatedly pick the free base cell with the
// highest gain that keeps (or restores) balance, move it, update neighbor
// gains, and lock it; stop when no free cell remains or none can move
// legally. Cuts back to the best-seen prefix before returning.
func (p *Partitioner) runPass() (bool, int) {
	pmax := p.maxPins()
	bucketA := newBucket(&p.inst.Cells, pmax)
	bucketB := newBucket(&p.inst.Cells, pmax)

	for i := range p.inst.Cells {
		c := &p.inst.Cells[i]
		c.Locked = false
		c.Gain = p.cellGain(i)
		if c.Tag == BlockA {
			bucketA.insert(i)
		} else {
			bucketB.insert(i)
		}
	}

	startCut := p.inst.CutSize()
	bestCut := startCut
	bestPrefix := 0
	var history []moveRecord

	sizeA, sizeB := p.sizeA, p.sizeB
	curCut := startCut

	for {
		base := p.chooseBaseCell(bucketA, bucketB, sizeA, sizeB)
		if base == noCell {
			break
		}
		c := &p.inst.Cells[base]
		from := c.Tag

		if from == BlockA {
			bucketA.remove(base)
		} else {
			bucketB.remove(base)
		}

		curCut += p.applyMove(base, bucketA, bucketB)
		c.Locked = true
		if from == BlockA {
			sizeA--
			sizeB++
		} else {
			sizeA++
			sizeB--
		}

		history = append(history, moveRecord{cellIdx: base, fromTag: from})

		// Only a balanced prefix is a legal stopping point; among those,
		// keep the one with the smallest cut seen so far.
		if p.balanced(sizeA) && curCut <= bestCut {
			bestCut = curCut
			bestPrefix = len(history)
		}
	}

	p.sizeA, p.sizeB = sizeA, sizeB
	p.revertToPrefix(history, bestPrefix)
	improved := bestCut < startCut
	return improved, bestCut
}

// chooseBaseCell picks the unlocked cell with the largest gain across both
// buckets, preferring whichever move keeps sizeA/sizeB inside the balance
// range; among equal-gain candidates on both sides, the side whose move
// improves balance the most wins, per the original's tie-break.
func (p *Partitioner) chooseBaseCell(bucketA, bucketB *bucket, sizeA, sizeB int) int {
	aTop, bTop := bucketA.top(), bucketB.top()
	aOK := aTop != noCell && p.balanced(sizeA-1)
	bOK := bTop != noCell && p.balanced(sizeA+1)

	switch {
	case aOK && bOK:
		switch {
		case bucketA.topGain() > bucketB.topGain():
			return aTop
		case bucketB.topGain() > bucketA.topGain():
			return bTop
		default:
			// Gain tie: move out of whichever block is currently larger, so
			// the move pulls sizeA/sizeB toward balance instead of away
			// from it.
			if sizeA > sizeB {
				return aTop
			}
			return bTop
		}
	case aOK:
		return aTop
	case bOK:
		return bTop
	default:
		// Neither move keeps perfect balance; take whichever stays closest
		// to the allowed range so a pass starting out of balance can still
		// make progress back into it.
		switch {
		case aTop != noCell && bTop != noCell:
			if p.balanceDistance(sizeA-1) <= p.balanceDistance(sizeA+1) {
				return aTop
			}
			return bTop
		case aTop != noCell:
			return aTop
		case bTop != noCell:
			return bTop
		default:
			return noCell
		}
	}
}

func (p *Partitioner) balanceDistance(sizeA int) int {
	if sizeA < p.loA {
		return p.loA - sizeA
	}
	if sizeA > p.hiA {
		return sizeA - p.hiA
	}
	return 0
}

// cellGain computes the initial gain of cell idx from scratch:
// gain(c) = sum over nets n on c of [F(c,n)==1] - [T(c,n)==0].
func (p *Partitioner) cellGain(idx int) int {
	c := &p.inst.Cells[idx]
	gain := 0
	for _, ni := range c.NetIdx {
		net := &p.inst.Nets[ni]
		if net.side(c.Tag) == 1 {
			gain++
		}
		if net.side(c.Tag.Other()) == 0 {
			gain--
		}
	}
	return gain
}

// applyMove moves the cell at idx to the opposite block, updating every
// incident net's side counters and every unlocked neighbor's gain via the
// standard FM critical-net update rule. It returns the cut-size delta.
func (p *Partitioner) applyMove(idx int, bucketA, bucketB *bucket) int {
	c := &p.inst.Cells[idx]
	from, to := c.Tag, c.Tag.Other()
	cutDelta := 0

	for _, ni := range c.NetIdx {
		net := &p.inst.Nets[ni]
		wasCut := net.IsCut()

		if tn := net.side(to); tn == 0 {
			p.bumpFreeCells(net, idx, +1, bucketA, bucketB)
		} else if tn == 1 {
			if y := p.onlySideCell(net, to, idx); y != noCell && !p.inst.Cells[y].Locked {
				p.bumpGain(y, -1, bucketA, bucketB)
			}
		}

		net.addSide(from, -1)
		net.addSide(to, +1)

		if fn := net.side(from); fn == 0 {
			p.bumpFreeCells(net, idx, -1, bucketA, bucketB)
		} else if fn == 1 {
			if y := p.onlySideCell(net, from, idx); y != noCell && !p.inst.Cells[y].Locked {
				p.bumpGain(y, +1, bucketA, bucketB)
			}
		}

		if nowCut := net.IsCut(); nowCut != wasCut {
			if nowCut {
				cutDelta++
			} else {
				cutDelta--
			}
		}
	}

	c.Tag = to
	return cutDelta
}

// bumpFreeCells adjusts the gain of every unlocked cell on net (other than
// excludeIdx, which is mid-move and already removed from its bucket) by
// delta.
func (p *Partitioner) bumpFreeCells(net *Net, excludeIdx, delta int, bucketA, bucketB *bucket) {
	for _, y := range net.CellIdx {
		if y == excludeIdx || p.inst.Cells[y].Locked {
			continue
		}
		p.bumpGain(y, delta, bucketA, bucketB)
	}
}

func (p *Partitioner) bumpGain(idx, delta int, bucketA, bucketB *bucket) {
	if p.inst.Cells[idx].Tag == BlockA {
		bucketA.move(idx, p.inst.Cells[idx].Gain+delta)
	} else {
		bucketB.move(idx, p.inst.Cells[idx].Gain+delta)
	}
}

// onlySideCell returns the sole cell on side (other than excludeIdx) among
// net's incident cells; callers only invoke it when that side's population
// is known to be exactly one (excluding excludeIdx when excludeIdx is still
// tagged with side).
func (p *Partitioner) onlySideCell(net *Net, side BlockTag, excludeIdx int) int {
	for _, y := range net.CellIdx {
		if y == excludeIdx {
			continue
		}
		if p.inst.Cells[y].Tag == side {
			return y
		}
	}
	return noCell
}

// revertToPrefix undoes moves history[keep:] in reverse order, restoring
// cell tags, lock state and net side counters to their state after the
// best-seen prefix of the pass.
func (p *Partitioner) revertToPrefix(history []moveRecord, keep int) {
	for i := len(history) - 1; i >= keep; i-- {
		rec := history[i]
		c := &p.inst.Cells[rec.cellIdx]
		to := c.Tag
		from := rec.fromTag
		for _, ni := range c.NetIdx {
			net := &p.inst.Nets[ni]
			net.addSide(to, -1)
			net.addSide(from, +1)
		}
		c.Tag = from
		c.Locked = false
		if from == BlockA {
			p.sizeA++
			p.sizeB--
		} else {
			p.sizeA--
			p.sizeB++
		}
	}
	// Locked is pass-scoped: the next pass resets every cell's lock state
	// before it reads gains, so the kept prefix's locks need no attention.
}
