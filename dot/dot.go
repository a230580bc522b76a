// Package dot reads and writes valve networks in Graphviz DOT form.
//
// A node's rate travels in its xlabel attribute and an edge's cost in its
// weight attribute, so rendered graphs show the rates next to the nodes and
// dot's layout pulls expensive tunnels straight. Missing attributes default to
// rate 0 and cost 1. Direction is ignored on decode and self-loops are dropped.
package dot

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/ventflow/core"
)

// Attribute names.
const (
	AttrRate = "xlabel"
	AttrCost = "weight"
)

// Sentinel errors.
var (
	// ErrParse wraps DOT syntax and analysis failures.
	ErrParse = errors.New("dot: cannot parse graph")

	// ErrBadName indicates a node name that is not a label or "#<n>".
	ErrBadName = errors.New("dot: bad node name")

	// ErrBadAttr indicates a rate or cost attribute that is not an integer.
	ErrBadAttr = errors.New("dot: bad attribute value")
)

// Options configures Encode.
type Options struct {
	Name      string
	Highlight map[core.NodeID]int64 // node -> minute it was opened
}

// Option is a functional option for Encode.
type Option func(*Options)

// WithName sets the graph name. Default "ventflow".
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithHighlight fills node id and annotates it with the minute it opened.
func WithHighlight(id core.NodeID, minute int64) Option {
	return func(o *Options) { o.Highlight[id] = minute }
}

// Encode renders g as an undirected DOT graph. Nodes and edges are written in
// ascending order, so equal graphs give equal text.
func Encode(g *core.Graph, opts ...Option) (string, error) {
	cfg := Options{Name: "ventflow", Highlight: make(map[core.NodeID]int64)}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := gographviz.NewGraph()
	if err := out.SetName(cfg.Name); err != nil {
		return "", fmt.Errorf("dot: name: %w", err)
	}
	if err := out.SetDir(false); err != nil {
		return "", fmt.Errorf("dot: dir: %w", err)
	}

	for _, id := range g.Nodes() {
		attrs := map[string]string{AttrRate: strconv.FormatInt(g.Rate(id), 10)}
		if minute, ok := cfg.Highlight[id]; ok {
			attrs["style"] = "filled"
			attrs["fillcolor"] = "lightblue"
			attrs["label"] = strconv.Quote(fmt.Sprintf("%s @%d", id, minute))
		}
		if err := out.AddNode(cfg.Name, quoteID(id), attrs); err != nil {
			return "", fmt.Errorf("dot: node %s: %w", id, err)
		}
	}
	for _, e := range g.Edges() {
		c := strconv.FormatInt(e.Cost, 10)
		attrs := map[string]string{AttrCost: c, "label": c}
		if err := out.AddEdge(quoteID(e.A), quoteID(e.B), false, attrs); err != nil {
			return "", fmt.Errorf("dot: edge %s: %w", e.Key(), err)
		}
	}

	return out.String(), nil
}

// Decode reads a DOT graph from r.
func Decode(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dot: read: %w", err)
	}

	return DecodeString(string(data))
}

// DecodeString parses DOT text into a weighted core.Graph.
func DecodeString(text string) (*core.Graph, error) {
	ast, err := gographviz.ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	src := gographviz.NewGraph()
	if err = gographviz.Analyse(ast, src); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	g := core.NewGraph()
	for _, n := range src.Nodes.Nodes {
		id, err := parseID(n.Name)
		if err != nil {
			return nil, err
		}
		rate, err := intAttr(n.Attrs, AttrRate, 0)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", id, err)
		}
		if err = g.AddNode(id, rate); err != nil {
			return nil, fmt.Errorf("dot: node %s: %w", id, err)
		}
	}
	for _, e := range src.Edges.Edges {
		a, err := parseID(e.Src)
		if err != nil {
			return nil, err
		}
		b, err := parseID(e.Dst)
		if err != nil {
			return nil, err
		}
		cost, err := intAttr(e.Attrs, AttrCost, 1)
		if err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", a, b, err)
		}
		if a == b {
			if !g.HasNode(a) {
				if err = g.AddNode(a, 0); err != nil {
					return nil, fmt.Errorf("dot: node %s: %w", a, err)
				}
			}
			continue
		}
		if _, err = g.AddEdge(a, b, cost); err != nil {
			return nil, fmt.Errorf("dot: edge %s-%s: %w", a, b, err)
		}
	}

	return g, nil
}

func quoteID(id core.NodeID) string { return strconv.Quote(id.String()) }

// parseID accepts a two-character label or "#<n>", quoted or bare.
func parseID(name string) (core.NodeID, error) {
	name = unquote(name)
	if rest, ok := strings.CutPrefix(name, "#"); ok {
		v, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadName, name)
		}
		return core.NodeID(v), nil
	}
	id, err := core.ParseLabel(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadName, err)
	}

	return id, nil
}

// intAttr reads an integer attribute, returning def when it is absent.
func intAttr(attrs gographviz.Attrs, key string, def int64) (int64, error) {
	raw, ok := attrs[gographviz.Attr(key)]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseInt(unquote(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrBadAttr, key, raw)
	}

	return v, nil
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
