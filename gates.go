// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

// A GateFn is a two input logic gate.
//
type GateFn func(a, b bool) bool

// Nand returns !(a && b). This is the only primitive gate, all others are
// derived from it.
//
func Nand(a, b bool) bool {
	return !(a && b)
}

// Not returns a NOT gate made of a single NAND with both inputs tied.
//
//	Function: out = !in
//
func Not(in bool) bool {
	return Nand(in, in)
}

// And returns the output of an AND gate.
//
//	Function: out = a && b
//
func And(a, b bool) bool {
	return Not(Nand(a, b))
}

// Or returns the output of an OR gate.
//
//	Function: out = a || b
//
func Or(a, b bool) bool {
	return Nand(Not(a), Not(b))
}

// Nor returns the output of a NOR gate.
//
//	Function: out = !(a || b)
//
func Nor(a, b bool) bool {
	return Not(Or(a, b))
}

// Xor returns the output of a XOR gate built from four NAND gates.
//
//	Function: out = (a && !b) || (!a && b)
//
func Xor(a, b bool) bool {
	nandAB := Nand(a, b)
	return Nand(Nand(a, nandAB), Nand(nandAB, b))
}

// Xnor returns the output of a XNOR gate.
//
//	Function: out = a && b || !a && !b
//
func Xnor(a, b bool) bool {
	return Not(Xor(a, b))
}
