package routing

// leftEdgeAssign runs the classical left-edge algorithm over hcg (already
// sorted by span.Lo): nets are offered to tracks in left-to-right order,
// each net going to the first track whose placed segments don't overlap
// it, subject to ready reporting which nets are currently legal to place
// (their VCG dependencies already satisfied). New tracks are opened on
// demand; routed is updated in place as nets are placed.
func leftEdgeAssign(hcg []hcgEntry, ready func(netID int) bool, routed []bool) [][]Segment {
	var tracks [][]Segment
	pending := append([]hcgEntry(nil), hcg...)

	for {
		remaining := pending[:0:0]
		placedAny := false
		var track []Segment
		var trackEnd = -1 << 31

		for _, e := range pending {
			if routed[e.netID] {
				continue
			}
			if e.span.Lo > trackEnd && ready(e.netID) {
				track = append(track, Segment{Span: e.span, NetID: e.netID})
				trackEnd = e.span.Hi
				routed[e.netID] = true
				placedAny = true
				continue
			}
			remaining = append(remaining, e)
		}
		if len(track) > 0 {
			tracks = append(tracks, track)
		}
		pending = remaining
		if !placedAny || len(pending) == 0 {
			break
		}
	}
	return tracks
}

// leftEdgeAssignBoundary implements Phase T/B: one track per boundary
// distance, innermost first. At distance d the running union of boundary
// intervals seen so far (distances 1..d) gates admission alongside the
// usual watermark/VCG-readiness checks — a net is only placed on this
// track if its HCG interval is strictly contained in that merged union.
// Unlike Phase C's leftEdgeAssign, each distance gets exactly one
// left-to-right sweep: a net that doesn't fit at distance d is left for
// distance d+1 (or, if boundaries run out, for Phase C).
func leftEdgeAssignBoundary(hcg []hcgEntry, ready func(netID int) bool, routed []bool, boundary [][]Interval) [][]Segment {
	var tracks [][]Segment
	var merged []Interval

	for _, layer := range boundary {
		for _, iv := range layer {
			merged = mergeInterval(merged, iv)
		}

		var track []Segment
		trackEnd := -1 << 31
		for _, e := range hcg {
			if routed[e.netID] {
				continue
			}
			if e.span.Lo <= trackEnd {
				continue
			}
			if !containedInAny(e.span, merged) {
				continue
			}
			if !ready(e.netID) {
				continue
			}
			track = append(track, Segment{Span: e.span, NetID: e.netID})
			trackEnd = e.span.Hi
			routed[e.netID] = true
		}
		if len(track) > 0 {
			tracks = append(tracks, track)
		}
	}
	return tracks
}
