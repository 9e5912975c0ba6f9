// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/nandsim"
)

// Mux returns the output of a multiplexer.
//
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(a, b, sel bool) bool {
	return nandsim.Or(nandsim.And(a, nandsim.Not(sel)), nandsim.And(b, sel))
}

// Mux4Way returns the output of a 4-way multiplexer made of two cascaded
// stages of Mux.
//
//	Function: out = [a, b, c, d][sel[1]<<1 | sel[0]]
//
func Mux4Way(a, b, c, d bool, sel [2]bool) bool {
	return Mux(Mux(a, b, sel[0]), Mux(c, d, sel[0]), sel[1])
}

// MuxN returns the output of a multiplexer with len(sel) cascaded stages. Each
// stage halves the number of lines, using sel[0] for the first stage. MuxN
// panics if len(in) != 1<<len(sel).
//
//	Function: out = in[int(sel)]
//
func MuxN(in []bool, sel []bool) bool {
	if len(in) != 1<<uint(len(sel)) {
		panic("MuxN: " + strconv.Itoa(len(in)) + " input lines for " + strconv.Itoa(len(sel)) + " selector bits")
	}
	stage := make([]bool, len(in))
	copy(stage, in)
	for _, s := range sel {
		n := len(stage) / 2
		for i := 0; i < n; i++ {
			stage[i] = Mux(stage[2*i], stage[2*i+1], s)
		}
		stage = stage[:n]
	}
	return stage[0]
}

// DMux returns the outputs of a demultiplexer.
//
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(in, sel bool) (a, b bool) {
	return nandsim.And(in, nandsim.Not(sel)), nandsim.And(in, sel)
}

// DMux4Way decodes a 2 bits selector into 4 one-hot lines.
//
//	Function: out[sel[1]<<1 | sel[0]] = 1, all other lines are 0
//
func DMux4Way(sel [2]bool) [4]bool {
	not0, not1 := nandsim.Not(sel[0]), nandsim.Not(sel[1])
	s0, s1 := nandsim.Not(not0), nandsim.Not(not1)
	return [4]bool{
		nandsim.Nor(s1, s0),
		nandsim.Nor(s1, not0),
		nandsim.Nor(not1, s0),
		nandsim.Nor(not1, not0),
	}
}

// Decode decodes the selector sel into 1<<len(sel) one-hot lines. It
// generalizes DMux4Way to any selector width.
//
//	Function: out[int(sel)] = 1, all other lines are 0
//
func Decode(sel []bool) []bool {
	inv := NotN(sel)
	out := make([]bool, 1<<uint(len(sel)))
	terms := make([]bool, len(sel))
	for i := range out {
		for bit := range sel {
			if i&(1<<uint(bit)) != 0 {
				terms[bit] = sel[bit]
			} else {
				terms[bit] = inv[bit]
			}
		}
		out[i] = AndNWay(terms)
	}
	return out
}
