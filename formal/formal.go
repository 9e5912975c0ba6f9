// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package formal proves properties of the nandsim circuits with a SAT solver.
//
// Each check rebuilds a circuit as an and-inverter graph made of the same
// NAND constructions the simulator evaluates, then asks the gini solver for
// an input that violates the property. A check returns nil when no such input
// exists, or an error wrapping ErrNotEquivalent or ErrPropertyViolated that
// describes the counter example.
//
package formal

import (
	"math/bits"

	"github.com/db47h/nandsim/cpu"
	"github.com/db47h/nandsim/hwlib"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

var (
	// ErrNotEquivalent is returned when a circuit and its reference disagree
	// for some input.
	//
	ErrNotEquivalent = errors.New("circuits are not equivalent")
	// ErrPropertyViolated is returned when a circuit property does not hold
	// for some input.
	//
	ErrPropertyViolated = errors.New("property violated")
	// ErrUnreachable is returned by FillDepth when the target state cannot be
	// reached within the requested depth.
	//
	ErrUnreachable = errors.New("state unreachable")
)

// solve returns a solver holding a model where m is true, or nil if m is
// unsatisfiable.
//
func solve(c *logic.C, m z.Lit) *gini.Gini {
	g := gini.New()
	c.ToCnfFrom(g, m)
	// constants are never constrained by ToCnfFrom
	g.Add(c.T)
	g.Add(0)
	g.Add(m)
	g.Add(0)
	if g.Solve() != 1 {
		return nil
	}
	return g
}

// values returns the model values of ms. Variables the solver never saw are
// unconstrained and reported as false.
//
func values(g *gini.Gini, ms ...z.Lit) []bool {
	maxVar := g.MaxVar()
	out := make([]bool, len(ms))
	for i, m := range ms {
		if m.Var() <= maxVar {
			out[i] = g.Value(m)
		}
	}
	return out
}

func inputs(c *logic.C, n int) []z.Lit {
	ms := make([]z.Lit, n)
	for i := range ms {
		ms[i] = c.Lit()
	}
	return ms
}

type gateCase struct {
	name   string
	design func(c *logic.C, a, b z.Lit) z.Lit
	ref    func(c *logic.C, a, b z.Lit) z.Lit
}

var gateCases = []gateCase{
	{"nand", nand, func(c *logic.C, a, b z.Lit) z.Lit { return c.And(a, b).Not() }},
	{"not", func(c *logic.C, a, _ z.Lit) z.Lit { return not(c, a) }, func(c *logic.C, a, _ z.Lit) z.Lit { return a.Not() }},
	{"and", and, (*logic.C).And},
	{"or", or, (*logic.C).Or},
	{"nor", nor, func(c *logic.C, a, b z.Lit) z.Lit { return c.Or(a, b).Not() }},
	{"xor", xor, (*logic.C).Xor},
	{"xnor", xnor, func(c *logic.C, a, b z.Lit) z.Lit { return c.Xor(a, b).Not() }},
}

// CheckGates proves that the NAND constructions of NOT, AND, OR, NOR, XOR
// and XNOR are equivalent to the corresponding boolean operators.
//
func CheckGates() error {
	for _, gc := range gateCases {
		c := logic.NewC()
		a, b := c.Lit(), c.Lit()
		if g := solve(c, c.Xor(gc.design(c, a, b), gc.ref(c, a, b))); g != nil {
			v := values(g, a, b)
			return errors.Wrapf(ErrNotEquivalent, "%s: a=%v, b=%v", gc.name, v[0], v[1])
		}
	}
	return nil
}

// refAdd is a ripple carry adder with a majority carry, built directly from
// AND/OR/XOR nodes.
//
func refAdd(c *logic.C, a, b []z.Lit, cin z.Lit) ([]z.Lit, z.Lit) {
	out := make([]z.Lit, len(a))
	carry := cin
	for i := range a {
		out[i] = c.Xor(c.Xor(a[i], b[i]), carry)
		carry = c.Ors(c.And(a[i], b[i]), c.And(a[i], carry), c.And(b[i], carry))
	}
	return out, carry
}

// CheckAdder proves, for width bits operands, that the ripple carry adder made
// of NAND full adders computes the same sum and carry as a reference adder,
// and that subtracting b from a + b yields a.
//
func CheckAdder(width int) error {
	if width <= 0 {
		return errors.Wrapf(hwlib.ErrWidthMismatch, "width=%d", width)
	}
	c := logic.NewC()
	a, b := inputs(c, width), inputs(c, width)
	cin := c.Lit()

	sum, cout := addN(c, a, b, cin)
	refSum, refCout := refAdd(c, a, b, cin)
	diff := make([]z.Lit, 0, width+1)
	for i := range sum {
		diff = append(diff, c.Xor(sum[i], refSum[i]))
	}
	diff = append(diff, c.Xor(cout, refCout))
	if g := solve(c, c.Ors(diff...)); g != nil {
		return errors.Wrapf(ErrNotEquivalent, "adder: a=%v, b=%v, cin=%v",
			values(g, a...), values(g, b...), values(g, cin)[0])
	}

	s, _ := addN(c, a, b, c.F)
	d, _ := addN(c, s, notN(c, b), c.T)
	diff = diff[:0]
	for i := range d {
		diff = append(diff, c.Xor(d[i], a[i]))
	}
	if g := solve(c, c.Ors(diff...)); g != nil {
		return errors.Wrapf(ErrPropertyViolated, "a+b-b != a: a=%v, b=%v", values(g, a...), values(g, b...))
	}
	return nil
}

// addr returns a literal that is true when sel holds the address i.
//
func addr(c *logic.C, sel []z.Lit, i int) z.Lit {
	out := c.T
	for bit, s := range sel {
		if i&(1<<uint(bit)) == 0 {
			s = s.Not()
		}
		out = c.And(out, s)
	}
	return out
}

// CheckRouting proves, for a selBits wide selector, that the decoder drives
// exactly one line, the line matching the selector, and that the multiplexer
// outputs the input line addressed by the selector. For 2 bits selectors, the
// NOR based 4 way demultiplexer is also checked against the decoder.
//
func CheckRouting(selBits int) error {
	if selBits < 0 {
		return errors.Errorf("invalid selector width %d", selBits)
	}
	c := logic.NewC()
	sel := inputs(c, selBits)
	in := inputs(c, 1<<uint(selBits))
	dec := decode(c, sel)

	bad := []z.Lit{c.Ors(dec...).Not()}
	for i := range dec {
		for j := i + 1; j < len(dec); j++ {
			bad = append(bad, c.And(dec[i], dec[j]))
		}
	}
	if g := solve(c, c.Ors(bad...)); g != nil {
		return errors.Wrapf(ErrPropertyViolated, "decoder not one-hot: sel=%v", values(g, sel...))
	}

	for i := range dec {
		if g := solve(c, c.Xor(dec[i], addr(c, sel, i))); g != nil {
			return errors.Wrapf(ErrNotEquivalent, "decoder line %d: sel=%v", i, values(g, sel...))
		}
	}

	terms := make([]z.Lit, len(in))
	for i := range in {
		terms[i] = c.And(in[i], addr(c, sel, i))
	}
	if g := solve(c, c.Xor(muxN(c, in, sel), c.Ors(terms...))); g != nil {
		return errors.Wrapf(ErrNotEquivalent, "mux: sel=%v, in=%v", values(g, sel...), values(g, in...))
	}

	a, b, s := c.Lit(), c.Lit(), c.Lit()
	if g := solve(c, c.Xor(mux(c, a, b, s), c.Choice(s, b, a))); g != nil {
		v := values(g, a, b, s)
		return errors.Wrapf(ErrNotEquivalent, "mux: a=%v, b=%v, sel=%v", v[0], v[1], v[2])
	}

	if selBits == 2 {
		dm := dmux4Way(c, sel[0], sel[1])
		for i := range dm {
			if g := solve(c, c.Xor(dm[i], dec[i])); g != nil {
				return errors.Wrapf(ErrNotEquivalent, "dmux4way line %d: sel=%v", i, values(g, sel...))
			}
		}
	}
	return nil
}

func checkRegisters(n, depth int) (width int, err error) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, errors.Wrapf(cpu.ErrRegisterCount, "n=%d", n)
	}
	if depth < 0 {
		return 0, errors.Errorf("invalid depth %d", depth)
	}
	return bits.Len(uint(n - 1)), nil
}

// transition returns the data input of every register of a register file,
// given the register outputs and the read and write selectors.
//
func transition(c *logic.C, regs, rsel, wsel []z.Lit) []z.Lit {
	v := muxN(c, regs, rsel)
	load := decode(c, wsel)
	next := make([]z.Lit, len(regs))
	for i := range regs {
		next[i] = mux(c, regs[i], v, load[i])
	}
	return next
}

// registerFile returns a sequential circuit of n registers with the given
// power on values and a fresh pair of selectors on every cycle.
//
func registerFile(n, width int, powerOn func(s *logic.S, i int) z.Lit) (*logic.S, []z.Lit) {
	s := logic.NewS()
	regs := make([]z.Lit, n)
	for i := range regs {
		regs[i] = s.Latch(powerOn(s, i))
	}
	next := transition(&s.C, regs, inputs(&s.C, width), inputs(&s.C, width))
	for i, r := range regs {
		s.SetNext(r, next[i])
	}
	return s, regs
}

// CheckRegisterFile proves properties of the move datapath of a register file
// with n registers:
//
//	- from any state, the register addressed by the write selector loads the
//	  register addressed by the read selector and all others hold their value.
//	  Every register therefore loads a value held by some register before the
//	  clock edge.
//	- from the all false state, registers stay false for depth clock cycles.
//
func CheckRegisterFile(n, depth int) error {
	width, err := checkRegisters(n, depth)
	if err != nil {
		return err
	}

	c := logic.NewC()
	regs := inputs(c, n)
	rsel, wsel := inputs(c, width), inputs(c, width)
	next := transition(c, regs, rsel, wsel)
	terms := make([]z.Lit, n)
	for i := range regs {
		terms[i] = c.And(regs[i], addr(c, rsel, i))
	}
	src := c.Ors(terms...)
	for i := range next {
		load := addr(c, wsel, i)
		bad := c.Or(
			c.And(load, c.Xor(next[i], src)),
			c.And(load.Not(), c.Xor(next[i], regs[i])))
		if g := solve(c, bad); g != nil {
			return errors.Wrapf(ErrPropertyViolated, "register %d: state=%v, read=%v, write=%v",
				i, values(g, regs...), values(g, rsel...), values(g, wsel...))
		}
		same := make([]z.Lit, n)
		for j := range regs {
			same[j] = c.Xor(next[i], regs[j]).Not()
		}
		if g := solve(c, c.Ors(same...).Not()); g != nil {
			return errors.Wrapf(ErrPropertyViolated, "register %d loads a new value: state=%v", i, values(g, regs...))
		}
	}

	s, latches := registerFile(n, width, func(s *logic.S, _ int) z.Lit { return s.F })
	u := logic.NewRoll(s)
	at := make([]z.Lit, n)
	for d := 0; d <= depth; d++ {
		for i, m := range latches {
			at[i] = u.At(m, d)
		}
		if g := solve(u.C, u.C.Ors(at...)); g != nil {
			return errors.Wrapf(ErrPropertyViolated, "all false state changed at depth %d", d)
		}
	}
	return nil
}

// FillDepth returns the smallest number of clock cycles needed to set all
// registers of a powered on register file with n registers, or an error
// wrapping ErrUnreachable if it takes more than maxDepth cycles.
//
// Since a cycle copies a single register, the result is n-1.
//
func FillDepth(n, maxDepth int) (int, error) {
	width, err := checkRegisters(n, maxDepth)
	if err != nil {
		return 0, err
	}
	s, latches := registerFile(n, width, func(s *logic.S, i int) z.Lit {
		if i == 0 {
			return s.T
		}
		return s.F
	})
	u := logic.NewRoll(s)
	for d := 0; d <= maxDepth; d++ {
		all := u.C.T
		for _, m := range latches {
			all = u.C.And(all, u.At(m, d))
		}
		if solve(u.C, all) != nil {
			return d, nil
		}
	}
	return 0, errors.Wrapf(ErrUnreachable, "n=%d, depth=%d", n, maxDepth)
}
