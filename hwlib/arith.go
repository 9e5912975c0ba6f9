// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/nandsim"
	"github.com/pkg/errors"
)

// ErrWidthMismatch is returned when the operands of a N-bits circuit are empty
// or do not have the same width.
//
var ErrWidthMismatch = errors.New("operand width mismatch")

// HalfAdder returns the outputs of a half adder.
//
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(a, b bool) (s, c bool) {
	return nandsim.Xor(a, b), nandsim.And(a, b)
}

// FullAdder returns the outputs of a full adder made of two half adders.
//
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(a, b, cin bool) (s, cout bool) {
	s0, c0 := HalfAdder(a, b)
	s, c1 := HalfAdder(s0, cin)
	return s, nandsim.Or(c0, c1)
}

// addN chains one full adder per bit, least significant first.
func addN(a, b []bool, cin bool) ([]bool, bool) {
	out := make([]bool, len(a))
	c := cin
	for i := range a {
		out[i], c = FullAdder(a[i], b[i], c)
	}
	return out, c
}

func checkOperands(a, b []bool) error {
	if len(a) == 0 || len(a) != len(b) {
		return errors.Wrapf(ErrWidthMismatch, "len(a)=%d, len(b)=%d", len(a), len(b))
	}
	return nil
}

func clone(v []bool) []bool {
	c := make([]bool, len(v))
	copy(c, v)
	return c
}

// An Adder is a N-bits ripple carry adder.
//
type Adder struct {
	a, b []bool
	cin  bool
}

// NewAdder returns a new adder for a + b + cin. a and b must have the same,
// non-zero, width. The adder keeps its own copy of the operands.
//
func NewAdder(a, b []bool, cin bool) (*Adder, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	return &Adder{a: clone(a), b: clone(b), cin: cin}, nil
}

// Len returns the adder's width in bits.
//
func (a *Adder) Len() int { return len(a.a) }

// Output returns the sum and the carry out.
//
//	Function: out = (a + b + cin) mod 2^bits
//	          c = (a + b + cin) >= 2^bits
//
func (a *Adder) Output() ([]bool, bool) {
	return addN(a.a, a.b, a.cin)
}

// A Subtractor is a N-bits subtractor. It adds the inverted subtrahend with a
// carry in forced to 1 (two's complement).
//
type Subtractor struct {
	a, b []bool
}

// NewSubtractor returns a new subtractor for a - b. a and b must have the
// same, non-zero, width.
//
func NewSubtractor(a, b []bool) (*Subtractor, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	return &Subtractor{a: clone(a), b: clone(b)}, nil
}

// Len returns the subtractor's width in bits.
//
func (s *Subtractor) Len() int { return len(s.a) }

// Output returns the difference and the carry out. The carry out is set when
// a >= b (unsigned), i.e. it is the inverted borrow.
//
//	Function: out = (a - b) mod 2^bits
//
func (s *Subtractor) Output() ([]bool, bool) {
	return addN(s.a, NotN(s.b), true)
}
