package automaton

import (
	"testing"

	"github.com/dekarrin/rezi"
	"github.com/stretchr/testify/assert"
)

// snapshot is a test-only summary of a Table (start state, final states,
// arc count) with exported fields so rezi can serialize it. The test below
// only checks that a snapshot survives an encode/decode round trip; no
// golden fixture is stored or compared against.
type snapshot struct {
	Start    string
	Final    []string
	NumArcs  int
}

func snapshotOf(tbl *Table) snapshot {
	var final []string
	var numArcs int
	for _, s := range tbl.order {
		if tbl.final[s] {
			final = append(final, s)
		}
		for _, arcs := range tbl.arcs[s].bySymbol {
			numArcs += len(arcs)
		}
	}
	return snapshot{Start: tbl.start, Final: final, NumArcs: numArcs}
}

func TestSnapshot_RoundTripsThroughRezi(t *testing.T) {
	tbl := SymbolDFA("a", "x", []string{"a", "b"})
	want := snapshotOf(tbl)

	encoded := rezi.EncBinary(want)

	var got snapshot
	_, err := rezi.DecBinary(encoded, &got)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
