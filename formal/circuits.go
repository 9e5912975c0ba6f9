// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package formal

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// The builders below mirror the gate level constructions of packages nandsim
// and hwlib, one AIG node per NAND gate.

func nand(c *logic.C, a, b z.Lit) z.Lit {
	return c.And(a, b).Not()
}

func not(c *logic.C, in z.Lit) z.Lit {
	return nand(c, in, in)
}

func and(c *logic.C, a, b z.Lit) z.Lit {
	return not(c, nand(c, a, b))
}

func or(c *logic.C, a, b z.Lit) z.Lit {
	return nand(c, not(c, a), not(c, b))
}

func nor(c *logic.C, a, b z.Lit) z.Lit {
	return not(c, or(c, a, b))
}

func xor(c *logic.C, a, b z.Lit) z.Lit {
	nandAB := nand(c, a, b)
	return nand(c, nand(c, a, nandAB), nand(c, nandAB, b))
}

func xnor(c *logic.C, a, b z.Lit) z.Lit {
	return not(c, xor(c, a, b))
}

func mux(c *logic.C, a, b, sel z.Lit) z.Lit {
	return or(c, and(c, a, not(c, sel)), and(c, b, sel))
}

func notN(c *logic.C, in []z.Lit) []z.Lit {
	out := make([]z.Lit, len(in))
	for i, m := range in {
		out[i] = not(c, m)
	}
	return out
}

func andNWay(c *logic.C, in []z.Lit) z.Lit {
	out := c.T
	for _, m := range in {
		out = and(c, out, m)
	}
	return out
}

func halfAdder(c *logic.C, a, b z.Lit) (s, carry z.Lit) {
	return xor(c, a, b), and(c, a, b)
}

func fullAdder(c *logic.C, a, b, cin z.Lit) (s, cout z.Lit) {
	s0, c0 := halfAdder(c, a, b)
	s, c1 := halfAdder(c, s0, cin)
	return s, or(c, c0, c1)
}

func addN(c *logic.C, a, b []z.Lit, cin z.Lit) ([]z.Lit, z.Lit) {
	out := make([]z.Lit, len(a))
	carry := cin
	for i := range a {
		out[i], carry = fullAdder(c, a[i], b[i], carry)
	}
	return out, carry
}

func muxN(c *logic.C, in, sel []z.Lit) z.Lit {
	stage := make([]z.Lit, len(in))
	copy(stage, in)
	for _, s := range sel {
		n := len(stage) / 2
		for i := 0; i < n; i++ {
			stage[i] = mux(c, stage[2*i], stage[2*i+1], s)
		}
		stage = stage[:n]
	}
	return stage[0]
}

func decode(c *logic.C, sel []z.Lit) []z.Lit {
	inv := notN(c, sel)
	out := make([]z.Lit, 1<<uint(len(sel)))
	terms := make([]z.Lit, len(sel))
	for i := range out {
		for bit := range sel {
			if i&(1<<uint(bit)) != 0 {
				terms[bit] = sel[bit]
			} else {
				terms[bit] = inv[bit]
			}
		}
		out[i] = andNWay(c, terms)
	}
	return out
}

func dmux4Way(c *logic.C, sel0, sel1 z.Lit) [4]z.Lit {
	not0, not1 := not(c, sel0), not(c, sel1)
	s0, s1 := not(c, not0), not(c, not1)
	return [4]z.Lit{
		nor(c, s1, s0),
		nor(c, s1, not0),
		nor(c, not1, s0),
		nor(c, not1, not0),
	}
}
