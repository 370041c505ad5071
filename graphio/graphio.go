// Package graphio reads and writes graphs as plain-text edge lists.
//
// The format is one edge per line, "u v", with non-negative integer keys
// separated by whitespace. A line holding a single key declares an isolated
// vertex. Blank lines and lines starting with '#' or '%' are ignored, as is
// any third column (a weight or timestamp, as found in SNAP and KONECT
// dumps). Repeated lines yield parallel edges.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/vrg/core"
)

// ErrSyntax indicates a malformed edge-list line.
var ErrSyntax = errors.New("graphio: syntax error")

// ReadEdgeList parses an edge list into a new multigraph.
func ReadEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewMultiGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		fields := strings.Fields(text)
		u, err := parseKey(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if len(fields) == 1 {
			if err = g.AddVertex(u); err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			continue
		}
		v, err := parseKey(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if _, err = g.AddEdge(u, v); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading edge list")
	}

	return g, nil
}

func parseKey(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil || k < 0 {
		return 0, fmt.Errorf("%w: bad vertex key %q", ErrSyntax, s)
	}

	return k, nil
}

// WriteEdgeList writes g as an edge list: edges in ID order, then isolated
// vertices as single keys.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.From, e.To); err != nil {
			return errors.Wrap(err, "writing edge list")
		}
	}
	for _, k := range g.Vertices() {
		d, err := g.Degree(k)
		if err != nil {
			return errors.WithStack(err)
		}
		if d > 0 {
			continue
		}
		if _, err = fmt.Fprintf(bw, "%d\n", k); err != nil {
			return errors.Wrap(err, "writing edge list")
		}
	}

	return errors.Wrap(bw.Flush(), "writing edge list")
}
