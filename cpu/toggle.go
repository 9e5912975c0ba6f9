// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cpu

import (
	"strconv"

	"github.com/db47h/nandsim"
)

// Toggle is a one bit datapath: a flip flop whose data input is its own
// inverted output. Once powered on, its output flips on every raising edge of
// the clock.
//
type Toggle struct {
	dff *nandsim.DFF
}

// NewToggle returns a new Toggle with its output low.
//
func NewToggle() *Toggle {
	return &Toggle{dff: nandsim.NewDFF()}
}

// PowerOn drives the data input high.
//
func (t *Toggle) PowerOn() {
	t.dff.SetD(true)
}

// Tick drives the clock input to clk and feeds the inverted output back into
// the data input.
//
func (t *Toggle) Tick(clk bool) {
	t.dff.SetClk(clk)
	t.dff.SetD(nandsim.Not(t.dff.Output()))
}

// Output returns the flip flop output.
//
func (t *Toggle) Output() bool { return t.dff.Output() }

func (t *Toggle) String() string {
	return "Q: " + strconv.FormatBool(t.dff.Output()) + "\n"
}
