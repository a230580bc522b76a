// Package distance builds the all-pairs Distance Table of a compressed valve
// network.
//
// A Table is immutable once built: a sorted node list, an ID→index map and a
// dense n×n buffer of int64 costs. Unreachable pairs hold Infinity. The search
// engine reads the dense buffer directly through At.
package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ventflow/core"
)

// Infinity marks a pair with no connecting path.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Build.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("distance: graph is nil")

	// ErrDisconnected indicates an unreachable pair when WithRequireConnected is set.
	ErrDisconnected = errors.New("distance: graph is disconnected")

	// ErrUnknownMethod indicates an unsupported Method value.
	ErrUnknownMethod = errors.New("distance: unknown method")
)

// Table holds the shortest-path cost between every pair of nodes.
type Table struct {
	ids   []core.NodeID
	index map[core.NodeID]int
	d     []int64 // d[i*n+j]
}

// Pair is one canonical table entry.
type Pair struct {
	Key  core.EdgeKey
	Cost int64
}

// newTable allocates a table over ids (sorted) with every off-diagonal entry
// set to Infinity.
func newTable(ids []core.NodeID) *Table {
	n := len(ids)
	t := &Table{
		ids:   ids,
		index: make(map[core.NodeID]int, n),
		d:     make([]int64, n*n),
	}
	for i, id := range ids {
		t.index[id] = i
	}
	for i := range t.d {
		t.d[i] = Infinity
	}
	for i := 0; i < n; i++ {
		t.d[i*n+i] = 0
	}

	return t
}

// Len returns the number of nodes covered by the table.
func (t *Table) Len() int { return len(t.ids) }

// Nodes returns the covered node IDs in ascending order.
func (t *Table) Nodes() []core.NodeID {
	out := make([]core.NodeID, len(t.ids))
	copy(out, t.ids)

	return out
}

// Index returns the dense position of id.
func (t *Table) Index(id core.NodeID) (int, bool) {
	i, ok := t.index[id]

	return i, ok
}

// ID returns the node at dense position i.
func (t *Table) ID(i int) core.NodeID { return t.ids[i] }

// At returns the cost between dense positions i and j (Infinity if unreachable).
func (t *Table) At(i, j int) int64 { return t.d[i*len(t.ids)+j] }

// Distance returns the shortest cost between a and b. ok is false when either
// node is unknown or the pair is unreachable.
func (t *Table) Distance(a, b core.NodeID) (int64, bool) {
	i, okA := t.index[a]
	j, okB := t.index[b]
	if !okA || !okB {
		return Infinity, false
	}
	c := t.At(i, j)

	return c, c != Infinity
}

// Pairs lists every unordered pair of distinct nodes with its cost, sorted by key.
func (t *Table) Pairs() []Pair {
	n := len(t.ids)
	out := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{Key: core.Key(t.ids[i], t.ids[j]), Cost: t.At(i, j)})
		}
	}

	return out
}

// Connected reports whether every pair has a finite cost.
func (t *Table) Connected() bool {
	for _, c := range t.d {
		if c == Infinity {
			return false
		}
	}

	return true
}

// set writes a symmetric entry.
func (t *Table) set(i, j int, c int64) {
	n := len(t.ids)
	t.d[i*n+j] = c
	t.d[j*n+i] = c
}

// firstGap returns the first unreachable pair, for error messages.
func (t *Table) firstGap() (core.NodeID, core.NodeID) {
	n := len(t.ids)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if t.At(i, j) == Infinity {
				return t.ids[i], t.ids[j]
			}
		}
	}

	return 0, 0
}

// String renders the table size, useful in logs.
func (t *Table) String() string {
	return fmt.Sprintf("distance.Table{nodes=%d}", len(t.ids))
}
