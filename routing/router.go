package routing

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/go-physdesign/physdesign/core"

	"github.com/go-physdesign/physdesign/internal/logctx"
)

// Router holds one instance's constraint graphs once built, so Route can
// be called more than once and always return the same result, per
// router.h's documented contract.
type Router struct {
	inst    Instance
	numNets int
	hcg     []hcgEntry
	vcg, inverted *core.Graph

	log *log.Logger
}

// New validates inst and builds its horizontal/vertical constraint graphs.
func New(inst Instance, logger *log.Logger) (*Router, error) {
	if len(inst.TopNetIDs) != len(inst.BottomNetIDs) {
		return nil, ErrMismatchedColumns
	}
	numNets := 0
	for _, id := range inst.TopNetIDs {
		if id > numNets {
			numNets = id
		}
	}
	for _, id := range inst.BottomNetIDs {
		if id > numNets {
			numNets = id
		}
	}
	if numNets == 0 {
		return nil, ErrNoNets
	}

	vcg, inverted, err := buildVCG(inst, numNets)
	if err != nil {
		return nil, err
	}
	if err := checkAcyclic(vcg); err != nil {
		return nil, err
	}

	return &Router{
		inst:     inst,
		numNets:  numNets,
		hcg:      buildHCG(inst, numNets),
		vcg:      vcg,
		inverted: inverted,
		log:      logctx.OrDiscard(logger),
	}, nil
}

// Route runs Phase T (top-boundary tracks), Phase B (bottom-boundary
// tracks, via the inverted VCG), then Phase C (remaining nets in the
// channel itself). Safe to call more than once; each call starts from a
// fresh "nothing routed yet" state.
func (r *Router) Route() (Result, error) {
	routed := make([]bool, r.numNets+1)

	// A net is ready to drop toward the top boundary (or into the channel
	// immediately below it) once every VCG parent feeding it from above is
	// already placed; querying the inverted graph's out-edges is what
	// surfaces "parents" via core.Graph's outgoing-only Neighbors.
	readyDownward := func(netID int) bool {
		for _, p := range vcgNeighbors(r.inverted, netID) {
			if !routed[p] {
				return false
			}
		}
		return true
	}
	// Symmetric check for nets working outward from the bottom boundary:
	// the roles of parent and child swap, so this queries the un-inverted
	// graph's out-edges instead.
	readyUpward := func(netID int) bool {
		for _, p := range vcgNeighbors(r.vcg, netID) {
			if !routed[p] {
				return false
			}
		}
		return true
	}

	topTracks := leftEdgeAssignBoundary(r.hcg, readyDownward, routed, r.inst.TopBoundary)
	r.log.Debug("phase T complete", "tracks", len(topTracks))

	bottomTracks := leftEdgeAssignBoundary(r.hcg, readyUpward, routed, r.inst.BottomBoundary)
	r.log.Debug("phase B complete", "tracks", len(bottomTracks))

	channelTracks := leftEdgeAssign(r.hcg, readyDownward, routed)
	r.log.Debug("phase C complete", "tracks", len(channelTracks))

	for _, e := range r.hcg {
		if !routed[e.netID] {
			return Result{}, fmt.Errorf("routing: net %d could not be routed (unsatisfiable vertical constraints)", e.netID)
		}
	}

	return Result{
		TopTracks:    topTracks,
		Tracks:       channelTracks,
		BottomTracks: bottomTracks,
	}, nil
}
