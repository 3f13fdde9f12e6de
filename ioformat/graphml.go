package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/orthograph/drawing"
)

// SaveGraphML writes d's augmented graph as GraphML: node keys d0 (color),
// d1 (pos_x), d2 (pos_y); no edge data keys. This is a lossy export for a
// downstream renderer, not round-trippable — load it back with
// LoadDrawingJSON/LoadTXT instead.
func SaveGraphML(w io.Writer, d *drawing.Drawing) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintln(bw, `<graphml xmlns="http://graphml.graphdrawing.org/xmlns">`)
	fmt.Fprintln(bw, ` <key id="d0" for="node" attr.name="color" attr.type="string"/>`)
	fmt.Fprintln(bw, ` <key id="d1" for="node" attr.name="pos_x" attr.type="int"/>`)
	fmt.Fprintln(bw, ` <key id="d2" for="node" attr.name="pos_y" attr.type="int"/>`)
	fmt.Fprintln(bw, ` <graph id="G" edgedefault="undirected">`)

	for _, id := range d.Graph.NodeIDs() {
		fmt.Fprintf(bw, "  <node id=\"n%d\">\n", id)
		fmt.Fprintf(bw, "   <data key=\"d0\">%s</data>\n", colorToString(d.Attributes.GetNodeColor(id)))
		fmt.Fprintf(bw, "   <data key=\"d1\">%d</data>\n", d.Attributes.GetPositionX(id))
		fmt.Fprintf(bw, "   <data key=\"d2\">%d</data>\n", d.Attributes.GetPositionY(id))
		fmt.Fprintln(bw, "  </node>")
	}

	for i, e := range d.Graph.Edges() {
		fmt.Fprintf(bw, "  <edge id=\"e%d\" source=\"n%d\" target=\"n%d\"/>\n", i, e[0], e[1])
	}

	fmt.Fprintln(bw, " </graph>")
	fmt.Fprintln(bw, "</graphml>")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("SaveGraphML: %w", err)
	}

	return nil
}
