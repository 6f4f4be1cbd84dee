package render

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/tourtree/ring"
	"github.com/katalvlaran/tourtree/tree"
)

// DefaultScale maps unit-square coordinates onto a 720pt canvas.
const DefaultScale = 720

// palette cycles fill colours over node groups.
var palette = []string{
	"steelblue", "tomato", "seagreen", "goldenrod",
	"orchid", "slategray", "darkorange", "turquoise",
}

// Options configures DOT output.
type Options struct {
	// Scale multiplies coordinates into points. 0 means DefaultScale.
	Scale float64
	// Group returns the colour group of a node. nil draws every node alike.
	Group func(*tree.Node) int
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return DefaultScale
	}
	return o.Scale
}

// TreeDOT converts a partition tree to an undirected DOT graph with one
// edge per parent–child link. Node names follow pre-order ("n0" is the
// root). A nil root yields an empty graph.
func TreeDOT(root *tree.Node, opts Options) string {
	var (
		buf   bytes.Buffer
		nodes = tree.Nodes(root)
		ids   = make(map[*tree.Node]int, len(nodes))
	)
	writeHeader(&buf, "partition")
	for i, n := range nodes {
		ids[n] = i
		writeNode(&buf, i, n, opts)
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		if n.Left != nil {
			fmt.Fprintf(&buf, "  n%d -- n%d;\n", ids[n], ids[n.Left])
		}
		if n.Right != nil {
			fmt.Fprintf(&buf, "  n%d -- n%d;\n", ids[n], ids[n.Right])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RingDOT converts the ring at anchor to an undirected DOT cycle. Node names
// follow ring order ("n0" is the anchor). Ring options bound the walk; a
// ring that cannot be walked returns the ring error.
func RingDOT(anchor *tree.Node, opts Options, ringOpts ...ring.Option) (string, error) {
	order, err := ring.Order(anchor, ringOpts...)
	if err != nil {
		return "", fmt.Errorf("render: ring: %w", err)
	}

	var buf bytes.Buffer
	writeHeader(&buf, "tour")
	for i, n := range order {
		writeNode(&buf, i, n, opts)
	}

	buf.WriteString("\n")
	// A self-loop ring draws no edge.
	if k := len(order); k > 1 {
		for i := 0; i < k; i++ {
			fmt.Fprintf(&buf, "  n%d -- n%d;\n", i, (i+1)%k)
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func writeHeader(buf *bytes.Buffer, name string) {
	fmt.Fprintf(buf, "graph %s {\n", name)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, label=\"\", width=0.06, fixedsize=true, fillcolor=black, color=none];\n")
	buf.WriteString("  edge [penwidth=0.6];\n")
	buf.WriteString("\n")
}

func writeNode(buf *bytes.Buffer, id int, n *tree.Node, opts Options) {
	s := opts.scale()
	if opts.Group == nil {
		fmt.Fprintf(buf, "  n%d [pos=\"%.2f,%.2f!\"];\n", id, n.X*s, n.Y*s)
		return
	}
	fmt.Fprintf(buf, "  n%d [pos=\"%.2f,%.2f!\", fillcolor=%s];\n", id, n.X*s, n.Y*s, groupColor(opts.Group(n)))
}

func groupColor(g int) string {
	if g < 0 {
		g = -g
	}
	return palette[g%len(palette)]
}
