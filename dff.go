// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandsim

// A DFF is a master/slave data flip flop.
//
// The master latch follows the data input while the clock is low, and the
// slave latch copies the master while the clock is high. As a result, the
// output only changes on the raising edge of the clock, to the value of the
// data input sampled while the clock was low.
//
// The zero value is not usable, use NewDFF.
//
type DFF struct {
	d, clk        bool
	master, slave Latch
}

// NewDFF returns a new data flip flop with both latches reset, clock low and
// data low.
//
func NewDFF() *DFF {
	return &DFF{
		master: newLatch(false, true),
		slave:  newLatch(false, true),
	}
}

// SetD sets the data input.
//
func (f *DFF) SetD(d bool) {
	f.d = d
	f.update()
}

// SetClk sets the clock input.
//
func (f *DFF) SetClk(clk bool) {
	f.clk = clk
	f.update()
}

// D returns the current data input.
//
func (f *DFF) D() bool { return f.d }

// Clk returns the current clock input.
//
func (f *DFF) Clk() bool { return f.clk }

// Output returns the output of the slave latch.
//
func (f *DFF) Output() bool {
	q, _ := f.slave.Output()
	return q
}

func (f *DFF) update() {
	notClk := Not(f.clk)
	clk := Not(notClk)
	notD := Not(f.d)

	// master, open while the clock is low.
	f.master.Set(Nand(f.d, notClk))
	f.master.Reset(Nand(notD, notClk))

	// slave, open while the clock is high.
	q, nq := f.master.Output()
	f.slave.Set(Nand(q, clk))
	f.slave.Reset(Nand(nq, clk))
}
