// Package scan reads the textual valve network format into a core.Graph.
//
// One valve per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Tunnels are unit-cost and undirected; a tunnel listed from both ends is
// stored once. Blank lines are skipped.
package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ventflow/core"
)

// ErrSyntax indicates a line that does not follow the valve format.
var ErrSyntax = errors.New("scan: syntax error")

// Entry is one parsed line.
type Entry struct {
	ID        core.NodeID
	Rate      int64
	Neighbors []core.NodeID
}

const (
	fieldLabel     = 1
	fieldRate      = 4
	fieldFirstPeer = 9
	minFields      = 10
	ratePrefix     = "rate="
)

// ParseLine parses a single valve line.
func ParseLine(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < minFields || fields[0] != "Valve" {
		return Entry{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}

	id, err := core.ParseLabel(fields[fieldLabel])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	rateField := strings.TrimSuffix(fields[fieldRate], ";")
	if !strings.HasPrefix(rateField, ratePrefix) {
		return Entry{}, fmt.Errorf("%w: missing %q in %q", ErrSyntax, ratePrefix, line)
	}
	rate, err := strconv.ParseInt(strings.TrimPrefix(rateField, ratePrefix), 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: rate in %q: %v", ErrSyntax, line, err)
	}

	peers := fields[fieldFirstPeer:]
	e := Entry{ID: id, Rate: rate, Neighbors: make([]core.NodeID, 0, len(peers))}
	for _, p := range peers {
		nb, err := core.ParseLabel(strings.TrimSuffix(p, ","))
		if err != nil {
			return Entry{}, fmt.Errorf("%w: neighbor in %q: %v", ErrSyntax, line, err)
		}
		e.Neighbors = append(e.Neighbors, nb)
	}

	return e, nil
}

// Parse reads every line from r and builds a unit-cost graph.
// A valve listing itself as a neighbour is skipped; repeated neighbours
// collapse into one edge. Errors carry the 1-based line number.
func Parse(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(core.WithUnitCostOnly())
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err = g.AddNode(e.ID, e.Rate); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		for _, nb := range e.Neighbors {
			if nb == e.ID {
				continue // self-reference carries no tunnel
			}
			if _, err = g.AddEdge(e.ID, nb, 1); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: read: %w", err)
	}

	return g, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) (*core.Graph, error) {
	return Parse(strings.NewReader(s))
}
