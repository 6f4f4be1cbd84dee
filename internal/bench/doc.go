// Package bench runs the tour benchmark: build a partition tree over random
// points, time tour construction on it, optionally print tree and ring, and
// report the elapsed time.
//
// The plain output contract is the one of the classic benchmark: an optional
// pre-order dump of the tree, an optional ring dump (in jgraph framing when
// requested), then one "Time for TSP = <seconds>" line. Everything else
// (progress, verification, exports) goes to the logger or to files.
package bench
