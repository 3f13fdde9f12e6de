// Package ioformat reads and writes the line-oriented TXT graph format, the
// round-trippable orthogonal drawing JSON format, a lossy GraphML export,
// and a minimal SVG renderer for finished drawings. None of these formats
// are part of the drawing engine itself — they are the external
// collaborators cmd/orthograph wires up around it.
package ioformat
