// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cpu implements clocked datapaths built from nandsim flip flops.
//
// RegisterFile is a bank of one bit registers that can copy the value of
// one register into another on each clock cycle. Toggle is a single flip flop
// fed back through a NOT gate.
//
// Datapaths do no locking. Use package clock to share one between
// goroutines.
//
package cpu

import (
	"strconv"
	"strings"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/hwlib"
	"github.com/pkg/errors"
)

// DefaultRegisters is the register count of the reference datapath.
//
const DefaultRegisters = 4

// ErrRegisterCount is returned by NewRegisterFile for register counts that are
// not a power of two.
//
var ErrRegisterCount = errors.New("register count must be a power of two")

// A RegisterFile is a bank of one bit registers with a read selector and a
// write selector.
//
// On every Tick, the register addressed by the write selector loads the
// output of the register addressed by the read selector. All other registers
// load their own output.
//
type RegisterFile struct {
	regs  []*nandsim.DFF
	rsel  []bool
	wsel  []bool
	snap  []bool // outputs before the data inputs are updated
	next  []bool // data inputs computed from snap
	width int    // selector width in bits
}

// NewRegisterFile returns a new register file with n registers. n must be a
// power of two so that every selector value addresses a register. Both
// selectors address register 0.
//
func NewRegisterFile(n int) (*RegisterFile, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, errors.Wrapf(ErrRegisterCount, "n=%d", n)
	}
	width := 0
	for 1<<uint(width) < n {
		width++
	}
	r := &RegisterFile{
		regs:  make([]*nandsim.DFF, n),
		rsel:  make([]bool, width),
		wsel:  make([]bool, width),
		snap:  make([]bool, n),
		next:  make([]bool, n),
		width: width,
	}
	for i := range r.regs {
		r.regs[i] = nandsim.NewDFF()
	}
	return r, nil
}

// Len returns the register count.
//
func (r *RegisterFile) Len() int { return len(r.regs) }

// SelectorWidth returns the width in bits of the read and write selectors.
//
func (r *RegisterFile) SelectorWidth() int { return r.width }

// PowerOn drives the data input of register 0 high. The value is loaded on
// the next raising edge of the clock.
//
func (r *RegisterFile) PowerOn() {
	r.Preset(0, true)
}

// Preset drives the data input of register i. The value is loaded on the next
// raising edge of the clock unless a Tick overrides it first.
//
func (r *RegisterFile) Preset(i int, v bool) {
	r.reg(i).SetD(v)
}

func (r *RegisterFile) reg(i int) *nandsim.DFF {
	if i < 0 || i >= len(r.regs) {
		panic("register " + strconv.Itoa(i) + " does not exist")
	}
	return r.regs[i]
}

// SetSelectors sets the read and write selectors used by the next Tick. Bit 0
// is the least significant address bit. SetSelectors panics if either
// selector is not SelectorWidth() bits wide.
//
func (r *RegisterFile) SetSelectors(read, write []bool) {
	if len(read) != r.width || len(write) != r.width {
		panic("selector width mismatch: expected " + strconv.Itoa(r.width) + " bits")
	}
	copy(r.rsel, read)
	copy(r.wsel, write)
}

// Selectors returns a copy of the read and write selectors.
//
func (r *RegisterFile) Selectors() (read, write []bool) {
	read = make([]bool, r.width)
	write = make([]bool, r.width)
	copy(read, r.rsel)
	copy(write, r.wsel)
	return read, write
}

// Move sets the selectors to copy register src into register dst.
//
func (r *RegisterFile) Move(src, dst int) {
	r.reg(src)
	r.reg(dst)
	r.SetSelectors(hwlib.Bits(int64(src), r.width), hwlib.Bits(int64(dst), r.width))
}

// Tick drives the clock input of all registers to clk, then updates the data
// input of every register.
//
// The data inputs are computed from a snapshot of all register outputs taken
// before any data input changes.
//
func (r *RegisterFile) Tick(clk bool) {
	for _, f := range r.regs {
		f.SetClk(clk)
	}
	for i, f := range r.regs {
		r.snap[i] = f.Output()
	}
	v := hwlib.MuxN(r.snap, r.rsel)
	load := hwlib.Decode(r.wsel)
	for i := range r.next {
		r.next[i] = hwlib.Mux(r.snap[i], v, load[i])
	}
	for i, f := range r.regs {
		f.SetD(r.next[i])
	}
}

// Output returns the output of register i.
//
func (r *RegisterFile) Output(i int) bool {
	return r.reg(i).Output()
}

// Dump returns the outputs of all registers.
//
func (r *RegisterFile) Dump() []bool {
	out := make([]bool, len(r.regs))
	for i, f := range r.regs {
		out[i] = f.Output()
	}
	return out
}

// String returns the register outputs, one "Qn: value" line per register.
//
func (r *RegisterFile) String() string {
	var b strings.Builder
	for i, f := range r.regs {
		b.WriteString("Q")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(": ")
		b.WriteString(strconv.FormatBool(f.Output()))
		b.WriteRune('\n')
	}
	return b.String()
}
