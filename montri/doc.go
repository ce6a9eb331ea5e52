// Package montri triangulates a single y-monotone polygon by a second
// sweep over its vertices, inserting diagonals between the two chains the
// monotone polygon partitioning left behind (spec.md §4.7). Run once per
// face produced by ymonotone.Partition + faceenum.Enumerate, it turns every
// monotone face into triangles.
package montri
