package ioformat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/drawing"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/shape"
)

// drawingDocument mirrors the round-trippable orthogonal drawing JSON
// format: nodes and edges of the augmented graph, per-node color and
// position, and the shape direction recorded for each edge.
type drawingDocument struct {
	Nodes         []int            `json:"nodes"`
	Edges         [][2]int         `json:"edges"`
	NodeColors    map[int]string   `json:"node_colors"`
	NodePositions map[int][2]int   `json:"node_positions"`
	Shape         []shapeDocEntry  `json:"shape"`
}

type shapeDocEntry struct {
	U         int    `json:"u"`
	V         int    `json:"v"`
	Direction string `json:"dir"`
}

// SaveDrawingJSON writes d's augmented graph, colors, positions, and shape
// to w in the orthogonal drawing JSON format.
func SaveDrawingJSON(w io.Writer, d *drawing.Drawing) error {
	doc := drawingDocument{
		Nodes:         d.Graph.NodeIDs(),
		NodeColors:    make(map[int]string),
		NodePositions: make(map[int][2]int),
	}

	for _, id := range doc.Nodes {
		doc.NodeColors[id] = colorToString(d.Attributes.GetNodeColor(id))
		doc.NodePositions[id] = [2]int{d.Attributes.GetPositionX(id), d.Attributes.GetPositionY(id)}
	}

	for _, e := range d.Graph.Edges() {
		doc.Edges = append(doc.Edges, e)

		dir, ok := d.Shape.GetDirection(e[0], e[1])
		if !ok {
			return fmt.Errorf("SaveDrawingJSON: edge (%d,%d): %w", e[0], e[1], ErrDirectionNotSet)
		}
		doc.Shape = append(doc.Shape, shapeDocEntry{U: e[0], V: e[1], Direction: directionToString(dir)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("SaveDrawingJSON: %w", err)
	}

	return nil
}

// LoadDrawingJSON reads a drawing previously written by SaveDrawingJSON.
// The returned Drawing's repair counters (NumCycles, NumAddedCycles,
// NumUselessBends) are zero: those describe how the drawing was built, not
// its final state, and the JSON format doesn't carry them.
func LoadDrawingJSON(r io.Reader) (*drawing.Drawing, error) {
	var doc drawingDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("LoadDrawingJSON: %w", err)
	}

	g := graph.NewUndirectedGraph()
	for _, id := range doc.Nodes {
		if err := g.EnsureNode(id); err != nil {
			return nil, fmt.Errorf("LoadDrawingJSON: node %d: %w", id, ErrDuplicateNode)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("LoadDrawingJSON: edge (%d,%d): %w", e[0], e[1], ErrDuplicateEdge)
		}
	}

	attributes := attrs.New()
	for id, colorStr := range doc.NodeColors {
		color, err := stringToColor(colorStr)
		if err != nil {
			return nil, fmt.Errorf("LoadDrawingJSON: node %d: %w", id, err)
		}
		attributes.SetNodeColor(id, color)
	}
	for id, pos := range doc.NodePositions {
		attributes.SetPosition(id, pos[0], pos[1])
	}

	sh := shape.New()
	for _, entry := range doc.Shape {
		dir, err := stringToDirection(entry.Direction)
		if err != nil {
			return nil, fmt.Errorf("LoadDrawingJSON: edge (%d,%d): %w", entry.U, entry.V, err)
		}
		sh.SetDirection(entry.U, entry.V, dir)
		sh.SetDirection(entry.V, entry.U, shape.Opposite(dir))
	}

	return &drawing.Drawing{Graph: g, Attributes: attributes, Shape: sh}, nil
}

// colorToString maps a node color to the lowercase name the JSON and
// GraphML formats use. BLUE_DARK and GREEN_DARK collapse onto their base
// color: the interchange formats only distinguish five colors, and the
// dark variant only matters to the repair pipeline internals, not to a
// downstream renderer.
func colorToString(c attrs.Color) string {
	switch c {
	case attrs.Red:
		return "red"
	case attrs.RedSpecial:
		return "darkred"
	case attrs.Blue, attrs.BlueDark:
		return "blue"
	case attrs.Green, attrs.GreenDark:
		return "green"
	default:
		return "black"
	}
}

func stringToColor(s string) (attrs.Color, error) {
	switch s {
	case "black":
		return attrs.Black, nil
	case "red":
		return attrs.Red, nil
	case "darkred":
		return attrs.RedSpecial, nil
	case "blue":
		return attrs.Blue, nil
	case "green":
		return attrs.Green, nil
	default:
		return attrs.Black, fmt.Errorf("color %q: %w", s, ErrUnknownColor)
	}
}

func directionToString(d shape.Direction) string {
	switch d {
	case shape.Up:
		return "up"
	case shape.Down:
		return "down"
	case shape.Left:
		return "left"
	default:
		return "right"
	}
}

func stringToDirection(s string) (shape.Direction, error) {
	switch s {
	case "up":
		return shape.Up, nil
	case "down":
		return shape.Down, nil
	case "left":
		return shape.Left, nil
	case "right":
		return shape.Right, nil
	default:
		return shape.Left, fmt.Errorf("direction %q: %w", s, ErrUnknownDirection)
	}
}
