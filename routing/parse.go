package routing

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads the column-pin format: one "<top-net-id> <bottom-net-id>"
// line per channel column, left to right (net id 0 means no pin in that
// column on that boundary), optionally followed by the two boundary
// interval stacks, each introduced by its own keyword line and holding one
// line per distance from the channel (innermost first), each line a
// space-separated run of "<lo> <hi>" pairs for that distance's disjoint
// notches:
//
//	1 0
//	1 3
//	0 3
//	TOP
//	0 2 5 7
//	BOTTOM
//	1 4
//
// Boundary sections are optional; an instance with none has empty
// TopBoundary/BottomBoundary, exactly as if Phase T/B never admit any net.
func Parse(r io.Reader) (Instance, error) {
	scanner := bufio.NewScanner(r)
	var inst Instance
	section := "columns"
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line {
		case "TOP":
			section = "top"
			continue
		case "BOTTOM":
			section = "bottom"
			continue
		}

		switch section {
		case "columns":
			top, bottom, err := parseColumnLine(line, lineNo)
			if err != nil {
				return Instance{}, err
			}
			inst.TopNetIDs = append(inst.TopNetIDs, top)
			inst.BottomNetIDs = append(inst.BottomNetIDs, bottom)
		case "top":
			layer, err := parseIntervalLine(line, lineNo)
			if err != nil {
				return Instance{}, err
			}
			inst.TopBoundary = append(inst.TopBoundary, layer)
		case "bottom":
			layer, err := parseIntervalLine(line, lineNo)
			if err != nil {
				return Instance{}, err
			}
			inst.BottomBoundary = append(inst.BottomBoundary, layer)
		}
	}
	if err := scanner.Err(); err != nil {
		return Instance{}, fmt.Errorf("routing: read input: %w", err)
	}
	return inst, nil
}

func parseColumnLine(line string, lineNo int) (top, bottom int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("routing: line %d: expected \"<top> <bottom>\", got %q", lineNo, line)
	}
	top, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("routing: line %d: parse top net id: %w", lineNo, err)
	}
	bottom, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("routing: line %d: parse bottom net id: %w", lineNo, err)
	}
	return top, bottom, nil
}

func parseIntervalLine(line string, lineNo int) ([]Interval, error) {
	fields := strings.Fields(line)
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("routing: line %d: boundary interval line has an odd number of fields: %q", lineNo, line)
	}
	intervals := make([]Interval, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		lo, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("routing: line %d: parse interval lo: %w", lineNo, err)
		}
		hi, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("routing: line %d: parse interval hi: %w", lineNo, err)
		}
		intervals = append(intervals, Interval{Lo: lo, Hi: hi})
	}
	return intervals, nil
}
