// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

import "github.com/pkg/errors"

// ErrInvalidLatchInput is returned by NewLatch when set and reset are both
// asserted or both deasserted.
//
var ErrInvalidLatchInput = errors.New("invalid latch input")

// A Latch is a set/reset latch made of two cross-coupled NAND gates.
//
// Set and Reset re-evaluate both gates in a fixed order: the gate driven by
// the changed input first, using the previous output of the other gate, then
// the other gate, then the first gate once more. This resolves one level of
// feedback the way a single propagation delay would.
//
// The driving sequence must be reachable from a valid initial state. Set and
// Reset do not check that q and nq stay complementary.
//
type Latch struct {
	s, r  bool
	q, nq bool
}

// NewLatch returns a new latch. Exactly one of set and reset must be true.
// The latch starts with q = set.
//
func NewLatch(set, reset bool) (*Latch, error) {
	if set == reset {
		return nil, errors.Wrapf(ErrInvalidLatchInput, "set=%v, reset=%v", set, reset)
	}
	l := newLatch(set, reset)
	return &l, nil
}

func newLatch(set, reset bool) Latch {
	return Latch{s: set, r: reset, q: set, nq: !set}
}

// Set drives the set input.
//
func (l *Latch) Set(s bool) {
	l.s = s
	q := Nand(l.s, l.nq)
	nq := Nand(q, l.r)
	l.q, l.nq = Nand(l.s, nq), nq
}

// Reset drives the reset input.
//
func (l *Latch) Reset(r bool) {
	l.r = r
	nq := Nand(l.q, l.r)
	q := Nand(l.s, nq)
	l.q, l.nq = q, Nand(q, l.r)
}

// Output returns the latch outputs q and nq.
//
func (l *Latch) Output() (q, nq bool) {
	return l.q, l.nq
}
