package tree

import (
	"fmt"
	"io"
)

// Print writes one "<x> <y>" line per node of the tree rooted at root,
// in pre-order. Coordinates use %f. A nil root writes nothing.
//
// Print is a pure observer: it does not touch tree or ring links.
func Print(w io.Writer, root *Node) error {
	return Walk(root, func(n *Node) error {
		_, err := fmt.Fprintf(w, "%f %f\n", n.X, n.Y)
		return err
	})
}
