// SPDX-License-Identifier: MIT
package ymonotone

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polytri/dcel"
	"github.com/katalvlaran/polytri/sweep"
)

// partitionWalker carries the sweep's mutable state: the subdivision being
// diagonalized, the active-edge status table, and each vertex's precomputed
// class.
type partitionWalker struct {
	sub     *dcel.Subdivision
	status  *sweep.Status
	classOf []VertexClass
	opts    Options
}

// Partition inserts the diagonals that split sub's polygon into y-monotone
// pieces, via a single top-to-bottom sweep over its vertices. It mutates
// sub in place; callers run faceenum afterward to read off the resulting
// monotone faces.
func Partition(sub *dcel.Subdivision, opts ...Option) error {
	n := sub.Len()
	if n < 3 {
		return ErrTooFewVertices
	}
	if err := checkDistinctVertices(sub); err != nil {
		return err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &partitionWalker{
		sub:     sub,
		status:  sweep.New(),
		classOf: make([]VertexClass, n),
		opts:    o,
	}

	if o.Epsilon > 0 {
		if err := w.checkDegenerateTies(); err != nil {
			return err
		}
	}

	for v := dcel.VertexID(0); int(v) < n; v++ {
		w.classOf[v] = classify(sub, v)
		if o.OnClassify != nil {
			o.OnClassify(v, w.classOf[v])
		}
	}

	order := w.eventOrder()
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		var err error
		switch w.classOf[v] {
		case Start:
			w.handleStart(v)
		case End:
			err = w.handleEnd(v)
		case Split:
			err = w.handleSplit(v)
		case Merge:
			err = w.handleMerge(v)
		default:
			err = w.handleRegular(v)
		}
		if err != nil {
			return fmt.Errorf("Partition: vertex %d (%s): %w", v, w.classOf[v], err)
		}
	}
	return nil
}

// eventOrder returns vertex indices sorted ascending by (y, -x), so that
// popping from the end yields a top-to-bottom sweep with left-to-right
// tie-breaking at equal height.
func (w *partitionWalker) eventOrder() []dcel.VertexID {
	n := w.sub.Len()
	order := make([]dcel.VertexID, n)
	for i := range order {
		order[i] = dcel.VertexID(i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := w.sub.Point(order[a]), w.sub.Point(order[b])
		if pa.Y() != pb.Y() {
			return pa.Y() < pb.Y()
		}
		return pa.X() > pb.X()
	})
	return order
}

func (w *partitionWalker) edgeKey(v dcel.VertexID) sweep.Key {
	return sweep.QuantizeX(w.sub.Point(v).X())
}

func (w *partitionWalker) edgeMinX(v dcel.VertexID) float32 {
	a, b := w.sub.Point(v).X(), w.sub.Point(w.sub.Next(v)).X()
	if a < b {
		return a
	}
	return b
}

func (w *partitionWalker) insertDiagonal(a, b dcel.VertexID) {
	w.sub.InsertDiagonal(a, b)
	if w.opts.OnDiagonal != nil {
		w.opts.OnDiagonal(a, b)
	}
}

func (w *partitionWalker) isMerge(v dcel.VertexID) bool {
	return w.classOf[v] == Merge
}

func (w *partitionWalker) handleStart(v dcel.VertexID) {
	w.status.Insert(w.edgeKey(v), v, v, w.edgeMinX(v))
}

func (w *partitionWalker) handleEnd(v dcel.VertexID) error {
	prev := w.sub.Prev(v)
	e, err := w.status.Find(w.edgeKey(prev))
	if err != nil {
		return err
	}
	if w.isMerge(e.Helper) {
		w.insertDiagonal(v, e.Helper)
	}
	return w.status.Erase(w.edgeKey(prev))
}

func (w *partitionWalker) handleSplit(v dcel.VertexID) error {
	x := w.sub.Point(v).X()
	left, ok := w.status.Predecessor(x)
	if !ok {
		if w.status.Len() == 0 {
			return sweep.ErrEmptyStatus
		}
		return ErrDegenerateSweep
	}
	w.insertDiagonal(v, left.Helper)
	if err := w.status.UpdateHelper(left.Key, v); err != nil {
		return err
	}
	w.status.Insert(w.edgeKey(v), v, v, w.edgeMinX(v))
	return nil
}

func (w *partitionWalker) handleMerge(v dcel.VertexID) error {
	prev := w.sub.Prev(v)
	e, err := w.status.Find(w.edgeKey(prev))
	if err != nil {
		return err
	}
	if w.isMerge(e.Helper) {
		w.insertDiagonal(v, e.Helper)
	}
	if err := w.status.Erase(w.edgeKey(prev)); err != nil {
		return err
	}

	x := w.sub.Point(v).X()
	left, ok := w.status.Predecessor(x)
	if !ok {
		if w.status.Len() == 0 {
			return sweep.ErrEmptyStatus
		}
		return ErrDegenerateSweep
	}
	if w.isMerge(left.Helper) {
		w.insertDiagonal(v, left.Helper)
	}
	return w.status.UpdateHelper(left.Key, v)
}

func (w *partitionWalker) handleRegular(v dcel.VertexID) error {
	prev := w.sub.Prev(v)
	if interiorToRight(w.sub, v) {
		e, err := w.status.Find(w.edgeKey(prev))
		if err != nil {
			return err
		}
		if w.isMerge(e.Helper) {
			w.insertDiagonal(v, e.Helper)
		}
		if err := w.status.Erase(w.edgeKey(prev)); err != nil {
			return err
		}
		w.status.Insert(w.edgeKey(v), v, v, w.edgeMinX(v))
		return nil
	}

	x := w.sub.Point(v).X()
	left, ok := w.status.Predecessor(x)
	if !ok {
		if w.status.Len() == 0 {
			return sweep.ErrEmptyStatus
		}
		return ErrDegenerateSweep
	}
	if w.isMerge(left.Helper) {
		w.insertDiagonal(v, left.Helper)
	}
	return w.status.UpdateHelper(left.Key, v)
}

// checkDegenerateTies rejects pairs of vertices adjacent in sweep order whose
// coordinates are distinct but within Epsilon in both axes: close enough that the sweep's
// (y, -x) ordering can't reliably place one before the other, which would
// make the Start/End/Split/Merge classification it depends on unreliable
// too.
func (w *partitionWalker) checkDegenerateTies() error {
	eps := w.opts.Epsilon
	order := w.eventOrder()
	for i := 1; i < len(order); i++ {
		pa, pb := w.sub.Point(order[i-1]), w.sub.Point(order[i])
		if absF32(pa.Y()-pb.Y()) <= eps && absF32(pa.X()-pb.X()) <= eps {
			return fmt.Errorf("checkDegenerateTies: vertices %d and %d: %w", order[i-1], order[i], ErrDegenerateSweep)
		}
	}
	return nil
}

func absF32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func checkDistinctVertices(sub *dcel.Subdivision) error {
	n := sub.Len()
	for i := 0; i < n; i++ {
		pi := sub.Point(dcel.VertexID(i))
		for j := i + 1; j < n; j++ {
			pj := sub.Point(dcel.VertexID(j))
			if pi.X() == pj.X() && pi.Y() == pj.Y() {
				return fmt.Errorf("checkDistinctVertices: vertices %d and %d: %w", i, j, ErrDuplicateVertex)
			}
		}
	}
	return nil
}
