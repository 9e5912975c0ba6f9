/*
Package nandsim simulates digital logic built bottom-up from a single NAND
primitive.

The gate library (Not, And, Or, Nor, Xor, Xnor) is derived from Nand and is
made of pure functions. Stateful circuits are built on top of it: a Latch is
a cross-coupled pair of NAND gates whose feedback is resolved by a fixed
evaluation order, and a DFF is an edge-triggered flip-flop made of a master
and a slave Latch.

Routing and arithmetic circuits live in package hwlib, and the clocked
register datapath in package cpu. Package formal proves the gate, adder,
routing and datapath constructions correct with a SAT solver.

None of the types in this package are safe for concurrent use. Package clock
provides a controller that serializes access to a clocked device.

*/
package nandsim
