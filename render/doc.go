// Package render draws partition trees and tour rings as Graphviz graphs.
//
// [TreeDOT] and [RingDOT] emit DOT text with every node pinned at its
// coordinates (pos="x,y!"), so the picture is the point set itself rather
// than a layout of it. [RenderSVG] turns that text into SVG with the neato
// engine, which honours pinned positions.
//
// Nodes can be coloured by a caller-supplied group, typically the partition
// that placed them (see partition.Arena.Owners).
package render
