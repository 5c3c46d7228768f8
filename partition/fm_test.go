package partition_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-physdesign/physdesign/internal/rng"
	"github.com/go-physdesign/physdesign/partition"
)

// twoCliques builds an instance with an obvious min cut of 1: two internally
// dense clusters joined by a single bridging net.
func twoCliques(t *testing.T) *partition.Instance {
	t.Helper()
	input := `
NET n1 a1 a2 a3
NET n2 a2 a3 a4
NET n3 a1 a4
NET n4 b1 b2 b3
NET n5 b2 b3 b4
NET n6 b1 b4
NET bridge a1 b1
`
	inst, err := partition.Parse(strings.NewReader(input), 0.5)
	require.NoError(t, err)
	return inst
}

func TestParseBuildsCrossLinkedInstance(t *testing.T) {
	inst := twoCliques(t)
	assert.Len(t, inst.Cells, 8)
	assert.Len(t, inst.Nets, 7)
	for ni := range inst.Nets {
		for _, ci := range inst.Nets[ni].CellIdx {
			found := false
			for _, n := range inst.Cells[ci].NetIdx {
				if n == ni {
					found = true
				}
			}
			assert.True(t, found, "cell %s missing back-link to net %s", inst.Cells[ci].Name, inst.Nets[ni].Name)
		}
	}
}

func TestRunFindsObviousMinCut(t *testing.T) {
	inst := twoCliques(t)
	p := partition.New(inst, rng.New(1), nil)
	res, err := p.Run()
	require.NoError(t, err)

	assert.Equal(t, 1, res.CutSize)
	assert.Len(t, res.BlockA, 4)
	assert.Len(t, res.BlockB, 4)
}

// TestRunExhaustsSmallOptimum exhaustively checks, by brute force over all
// 2^n/2 splits, that FM's result matches the true minimum cut for a small
// instance - the same sanity check the original test suite ran by hand.
func TestRunExhaustsSmallOptimum(t *testing.T) {
	input := `
NET n1 c1 c2
NET n2 c2 c3
NET n3 c3 c4
NET n4 c4 c1
`
	inst, err := partition.Parse(strings.NewReader(input), 0.5)
	require.NoError(t, err)

	best := bruteForceMinCut(t, inst)

	p := partition.New(inst, rng.New(7), nil)
	res, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, best, res.CutSize)
}

func bruteForceMinCut(t *testing.T, inst *partition.Instance) int {
	t.Helper()
	n := len(inst.Cells)
	best := n + 1
	for mask := 0; mask < (1 << n); mask++ {
		sizeA := 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sizeA++
			}
		}
		if sizeA == 0 || sizeA == n {
			continue // balance factor 0.5 forbids an entirely one-sided split
		}
		cut := 0
		for ni := range inst.Nets {
			a, b := 0, 0
			for _, ci := range inst.Nets[ni].CellIdx {
				if mask&(1<<ci) != 0 {
					a++
				} else {
					b++
				}
			}
			if a > 0 && b > 0 {
				cut++
			}
		}
		if cut < best {
			best = cut
		}
	}
	return best
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := partition.Parse(strings.NewReader("NET onlyonecell\n"), 0.5)
	assert.Error(t, err)
}

func TestRunRejectsEmptyInstance(t *testing.T) {
	inst := &partition.Instance{BalanceFactor: 0.5}
	p := partition.New(inst, rng.New(1), nil)
	_, err := p.Run()
	assert.ErrorIs(t, err, partition.ErrNoCells)
}

func TestWriteResultFormat(t *testing.T) {
	var buf strings.Builder
	err := partition.WriteResult(&buf, partition.Result{
		CutSize: 2,
		BlockA:  []string{"b2", "b1"},
		BlockB:  []string{"c1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Cutsize = 2\nG1: b1 b2\nG2: c1\n", buf.String())
}
