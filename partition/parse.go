package partition

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads the NET-record input format:
//
//	NET <net-name> <cell> <cell> [<cell> ...]
//
// one hyperedge per line, cells named in first-seen order. balanceFactor is
// the tolerance passed straight into the resulting Instance.
func Parse(r io.Reader, balanceFactor float64) (*Instance, error) {
	inst := &Instance{BalanceFactor: balanceFactor}
	cellIndex := make(map[string]int)

	cellOf := func(name string) int {
		if idx, ok := cellIndex[name]; ok {
			return idx
		}
		idx := len(inst.Cells)
		inst.Cells = append(inst.Cells, Cell{Name: name})
		cellIndex[name] = idx
		return idx
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 || !strings.EqualFold(fields[0], "NET") {
			return nil, fmt.Errorf("partition: line %d: expected \"NET <name> <cell>...\", got %q", lineNo, line)
		}
		netName := fields[1]
		netIdx := len(inst.Nets)
		inst.Nets = append(inst.Nets, Net{Name: netName})
		net := &inst.Nets[netIdx]

		seen := make(map[int]bool, len(fields)-2)
		for _, cellName := range fields[2:] {
			ci := cellOf(cellName)
			if seen[ci] {
				continue
			}
			seen[ci] = true
			net.CellIdx = append(net.CellIdx, ci)
			inst.Cells[ci].NetIdx = append(inst.Cells[ci].NetIdx, netIdx)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("partition: read input: %w", err)
	}
	if len(inst.Cells) == 0 {
		return nil, ErrNoCells
	}
	return inst, nil
}
