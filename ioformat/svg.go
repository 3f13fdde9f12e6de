package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/drawing"
)

// margin pads the SVG viewport around the drawing's bounding box, mirroring
// the 100-unit border make_svg left around its scaled coordinate range.
const margin = 100

// SaveSVG renders d as SVG: a line per edge, a square per BLACK (original)
// node, labeled with its id. Helper and bend nodes (every other color) are
// drawn as the corners and detours they are, not as labeled boxes.
func SaveSVG(w io.Writer, d *drawing.Drawing) error {
	ids := d.Graph.NodeIDs()
	if len(ids) == 0 {
		return nil
	}

	minX, maxX := d.Attributes.GetPositionX(ids[0]), d.Attributes.GetPositionX(ids[0])
	minY, maxY := d.Attributes.GetPositionY(ids[0]), d.Attributes.GetPositionY(ids[0])
	for _, id := range ids[1:] {
		x, y := d.Attributes.GetPositionX(id), d.Attributes.GetPositionY(id)
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	width := maxX - minX + 2*margin
	height := maxY - minY + 2*margin
	offsetX := margin - minX
	offsetY := margin - minY

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)

	for _, e := range d.Graph.Edges() {
		x1, y1 := d.Attributes.GetPositionX(e[0])+offsetX, d.Attributes.GetPositionY(e[0])+offsetY
		x2, y2 := d.Attributes.GetPositionX(e[1])+offsetX, d.Attributes.GetPositionY(e[1])+offsetY
		fmt.Fprintf(bw, " <line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"black\"/>\n", x1, y1, x2, y2)
	}

	for _, id := range ids {
		if d.Attributes.GetNodeColor(id) != attrs.Black {
			continue
		}
		x, y := d.Attributes.GetPositionX(id)+offsetX, d.Attributes.GetPositionY(id)+offsetY
		side := nodeSide(d.Graph.Degree(id))
		fmt.Fprintf(bw, " <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"cornflowerblue\"/>\n",
			x-side/2, y-side/2, side, side)
		fmt.Fprintf(bw, " <text x=\"%d\" y=\"%d\" text-anchor=\"middle\" dominant-baseline=\"middle\">%d</text>\n", x, y, id)
	}

	fmt.Fprintln(bw, "</svg>")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("SaveSVG: %w", err)
	}

	return nil
}

// nodeSide grows a node's drawn square with its degree, the way make_svg
// scaled node boxes for degree>4 nodes instead of clipping their extra
// edges.
func nodeSide(degree int) int {
	if degree <= 4 {
		return 25
	}

	return int(math.Ceil(25 * math.Sqrt(float64(degree-3))))
}
