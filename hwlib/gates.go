// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides the combinational circuits used by the clocked
// parts of nandsim: multi-bit gates, multiplexers, demultiplexers, decoders
// and adders.
//
// All circuits are built from the gates in package nandsim and are pure
// functions, with the exception of Adder and Subtractor which validate their
// operand widths once at construction.
//
// Buses are boolean slices. Bit 0 is the least significant bit.
//
package hwlib

import (
	"strconv"

	"github.com/db47h/nandsim"
)

func checkLen(name string, a, b []bool) {
	if len(a) != len(b) {
		panic(name + ": bus length mismatch: " + strconv.Itoa(len(a)) + " != " + strconv.Itoa(len(b)))
	}
}

// NotN returns a N-bits NOT gate.
//
//	Function: for i := range out { out[i] = !in[i] }
//
func NotN(in []bool) []bool {
	out := make([]bool, len(in))
	for i, v := range in {
		out[i] = nandsim.Not(v)
	}
	return out
}

// GateN applies the gate f bitwise to a and b. It panics if a and b do not
// have the same length.
//
//	Function: for i := range out { out[i] = f(a[i], b[i]) }
//
func GateN(f nandsim.GateFn, a, b []bool) []bool {
	checkLen("GateN", a, b)
	out := make([]bool, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	return out
}

// OrNWay returns the output of a N-Way OR gate. It returns false for an
// empty input.
//
//	Function: out = in[0] || in[1] || in[2] || ... || in[n-1]
//
func OrNWay(in []bool) bool {
	out := false
	for _, v := range in {
		out = nandsim.Or(out, v)
	}
	return out
}

// AndNWay returns the output of a N-Way AND gate. It returns true for an
// empty input.
//
//	Function: out = in[0] && in[1] && in[2] && ... && in[n-1]
//
func AndNWay(in []bool) bool {
	out := true
	for _, v := range in {
		out = nandsim.And(out, v)
	}
	return out
}
