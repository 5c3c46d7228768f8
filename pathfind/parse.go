package pathfind

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a transistor list, one per line:
//
//	<name> <P|N> <drain> <gate> <source> <substrate> <width> <length>
//
// mirroring the field order of a SPICE MOS instance line (no lexer for the
// full SPICE grammar is in scope here, the same boundary spec.md draws
// around the router's netlist input). Net names are interned into a
// shared arena as they're seen.
func Parse(r io.Reader) (*Circuit, error) {
	c := &Circuit{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 8 {
			return nil, fmt.Errorf("pathfind: line %d: expected 8 fields, got %d", lineNo, len(fields))
		}

		var t MosType
		switch strings.ToUpper(fields[1]) {
		case "P":
			t = PMOS
		case "N":
			t = NMOS
		default:
			return nil, fmt.Errorf("pathfind: line %d: transistor type must be P or N, got %q", lineNo, fields[1])
		}

		width, err := strconv.ParseFloat(fields[6], 64)
		if err != nil {
			return nil, fmt.Errorf("pathfind: line %d: parse width: %w", lineNo, err)
		}
		length, err := strconv.ParseFloat(fields[7], 64)
		if err != nil {
			return nil, fmt.Errorf("pathfind: line %d: parse length: %w", lineNo, err)
		}

		c.Mos = append(c.Mos, Mos{
			Name:      fields[0],
			Type:      t,
			Drain:     c.netID(fields[2]),
			Gate:      c.netID(fields[3]),
			Source:    c.netID(fields[4]),
			Substrate: c.netID(fields[5]),
			Width:     width,
			Length:    length,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pathfind: read input: %w", err)
	}
	if len(c.Mos) == 0 {
		return nil, ErrNoMos
	}
	return c, nil
}
