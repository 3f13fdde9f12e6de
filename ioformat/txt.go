package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/orthograph/graph"
)

// LoadTXT reads the line-oriented graph format:
//
//	nodes:
//	<id>
//	…
//	edges:
//	<u> <v>
//	…
//
// A duplicate node id or a reused edge is an error.
func LoadTXT(r io.Reader) (*graph.UndirectedGraph, error) {
	g := graph.NewUndirectedGraph()

	scanner := bufio.NewScanner(r)
	section := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "nodes:", "edges:":
			section = strings.TrimSuffix(line, ":")
			continue
		}

		switch section {
		case "nodes":
			id, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("LoadTXT: line %d: %w", lineNo, ErrMalformedTXT)
			}
			if err := g.EnsureNode(id); err != nil {
				return nil, fmt.Errorf("LoadTXT: line %d: node %d: %w", lineNo, id, ErrDuplicateNode)
			}
		case "edges":
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, fmt.Errorf("LoadTXT: line %d: %w", lineNo, ErrMalformedTXT)
			}
			u, errU := strconv.Atoi(fields[0])
			v, errV := strconv.Atoi(fields[1])
			if errU != nil || errV != nil {
				return nil, fmt.Errorf("LoadTXT: line %d: %w", lineNo, ErrMalformedTXT)
			}
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("LoadTXT: line %d: edge (%d,%d): %w", lineNo, u, v, ErrDuplicateEdge)
			}
		default:
			return nil, fmt.Errorf("LoadTXT: line %d: %w", lineNo, ErrMalformedTXT)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("LoadTXT: %w", err)
	}

	return g, nil
}

// SaveTXT writes g in the format LoadTXT reads back.
func SaveTXT(w io.Writer, g *graph.UndirectedGraph) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "nodes:"); err != nil {
		return fmt.Errorf("SaveTXT: %w", err)
	}
	for _, id := range g.NodeIDs() {
		if _, err := fmt.Fprintln(bw, id); err != nil {
			return fmt.Errorf("SaveTXT: %w", err)
		}
	}
	if _, err := fmt.Fprintln(bw, "edges:"); err != nil {
		return fmt.Errorf("SaveTXT: %w", err)
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintln(bw, e[0], e[1]); err != nil {
			return fmt.Errorf("SaveTXT: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("SaveTXT: %w", err)
	}

	return nil
}
