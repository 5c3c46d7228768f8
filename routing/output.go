package routing

import (
	"fmt"
	"io"
	"sort"
)

// placement is where output_formatter.cc's route_pos_of_nets map lands one
// net: which group of tracks, which track number within it (top and bottom
// tracks are numbered outward from the channel starting at 0, so the
// channel-adjacent one is 0; channel tracks are numbered from 1 at the
// bottom), and the column span it occupies there.
type placement struct {
	kind byte // 'T', 'C' or 'B'
	track int
	span  Interval
}

// WriteResult formats res as:
//
//	Channel density: <n>
//	Net <id>
//	<T|C|B><track> <lo> <hi>
//	...
//
// with no trailing newline after the last net, mirroring
// output_formatter.cc's "no end of file newline" contract.
func WriteResult(w io.Writer, res Result) error {
	if _, err := fmt.Fprintf(w, "Channel density: %d\n", len(res.Tracks)); err != nil {
		return err
	}

	placements := map[int]placement{}
	for i, track := range res.TopTracks {
		for _, seg := range track {
			placements[seg.NetID] = placement{kind: 'T', track: i, span: seg.Span}
		}
	}
	n := len(res.Tracks)
	for i, track := range res.Tracks {
		for _, seg := range track {
			// The innermost channel track is numbered closest to 1 from
			// the bottom of the channel stack, per output_formatter.cc.
			placements[seg.NetID] = placement{kind: 'C', track: n - i, span: seg.Span}
		}
	}
	for i, track := range res.BottomTracks {
		for _, seg := range track {
			placements[seg.NetID] = placement{kind: 'B', track: i, span: seg.Span}
		}
	}

	netIDs := make([]int, 0, len(placements))
	for id := range placements {
		netIDs = append(netIDs, id)
	}
	sort.Ints(netIDs)

	for i, id := range netIDs {
		p := placements[id]
		if _, err := fmt.Fprintf(w, "Net %d\n%c%d %d %d", id, p.kind, p.track, p.span.Lo, p.span.Hi); err != nil {
			return err
		}
		if i != len(netIDs)-1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
