package routing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-physdesign/physdesign/routing"
)

// simpleColumns builds a 6-column instance with nets 1, 2 and 3: net 1 and
// 2 never share a column so they can share a track; net 3 overlaps both
// and needs its own track, with a vertical constraint making net 1 its
// parent (top net at the crossing column).
func simpleColumns(t *testing.T) routing.Instance {
	t.Helper()
	input := `
1 0
1 3
0 3
2 3
2 0
0 0
`
	inst, err := routing.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return inst
}

func TestParseReadsColumns(t *testing.T) {
	inst := simpleColumns(t)
	assert.Equal(t, []int{1, 1, 0, 2, 2, 0}, inst.TopNetIDs)
	assert.Equal(t, []int{0, 3, 3, 3, 0, 0}, inst.BottomNetIDs)
}

func TestRouteProducesNoOverlapWithinATrack(t *testing.T) {
	inst := simpleColumns(t)
	r, err := routing.New(inst, nil)
	require.NoError(t, err)

	res, err := r.Route()
	require.NoError(t, err)

	for _, group := range [][][]routing.Segment{res.TopTracks, res.Tracks, res.BottomTracks} {
		for _, track := range group {
			for i := 0; i < len(track); i++ {
				for j := i + 1; j < len(track); j++ {
					a, b := track[i].Span, track[j].Span
					overlap := a.Lo <= b.Hi && b.Lo <= a.Hi
					assert.False(t, overlap, "nets %d and %d overlap on the same track", track[i].NetID, track[j].NetID)
				}
			}
		}
	}
}

func TestRouteDetectsCyclicConstraint(t *testing.T) {
	// Columns where net 1 is net 2's parent, and net 2 is net 1's parent:
	// an unsatisfiable vertical constraint cycle.
	input := `
1 2
2 1
`
	inst, err := routing.Parse(strings.NewReader(input))
	require.NoError(t, err)

	_, err = routing.New(inst, nil)
	assert.ErrorIs(t, err, routing.ErrCyclicConstraint)
}

func TestRouteRejectsMismatchedColumns(t *testing.T) {
	inst := routing.Instance{TopNetIDs: []int{1, 2}, BottomNetIDs: []int{1}}
	_, err := routing.New(inst, nil)
	assert.ErrorIs(t, err, routing.ErrMismatchedColumns)
}

func TestIntervalRelations(t *testing.T) {
	a := routing.Interval{Lo: 0, Hi: 10}
	b := routing.Interval{Lo: 2, Hi: 5}
	assert.True(t, routing.IsContainedBy(b, a))
	assert.False(t, routing.IsContainedBy(a, b))

	c := routing.Interval{Lo: 11, Hi: 15}
	assert.True(t, routing.IsAdjacent(a, c))
	assert.Equal(t, routing.Interval{Lo: 0, Hi: 15}, routing.Union(a, c))
}

func TestRoutePlacesNetContainedInTopBoundary(t *testing.T) {
	// Net 1's HCG span is [0,0]; the top boundary's innermost distance
	// offers [-1,1], which strictly contains it, so Phase T should claim
	// it before Phase C ever runs.
	input := `
1 0
TOP
-1 1
`
	inst, err := routing.Parse(strings.NewReader(input))
	require.NoError(t, err)

	r, err := routing.New(inst, nil)
	require.NoError(t, err)

	res, err := r.Route()
	require.NoError(t, err)

	require.Len(t, res.TopTracks, 1)
	assert.Equal(t, []routing.Segment{{Span: routing.Interval{Lo: 0, Hi: 0}, NetID: 1}}, res.TopTracks[0])
	assert.Empty(t, res.Tracks)
	assert.Empty(t, res.BottomTracks)
}

func TestRouteFallsThroughToChannelWhenBoundaryTooNarrow(t *testing.T) {
	// Net 1's HCG span is [0,1]; the top boundary's only distance offers
	// [0,0], which does not strictly contain it, so Phase T must leave it
	// for Phase C rather than admitting it anyway.
	input := `
1 0
1 0
TOP
0 0
`
	inst, err := routing.Parse(strings.NewReader(input))
	require.NoError(t, err)

	r, err := routing.New(inst, nil)
	require.NoError(t, err)

	res, err := r.Route()
	require.NoError(t, err)

	assert.Empty(t, res.TopTracks)
	require.Len(t, res.Tracks, 1)
	assert.Equal(t, []routing.Segment{{Span: routing.Interval{Lo: 0, Hi: 1}, NetID: 1}}, res.Tracks[0])
}

func TestWriteResultFormat(t *testing.T) {
	res := routing.Result{
		Tracks: [][]routing.Segment{
			{{Span: routing.Interval{Lo: 0, Hi: 3}, NetID: 1}},
		},
	}
	var buf strings.Builder
	require.NoError(t, routing.WriteResult(&buf, res))
	assert.Equal(t, "Channel density: 1\nNet 1\nC1 0 3", buf.String())
}
