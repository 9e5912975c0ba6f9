package cpu_test

import (
	"testing"

	"github.com/db47h/nandsim/cpu"
)

func TestToggle(t *testing.T) {
	c := cpu.NewToggle()
	c.PowerOn()
	if c.Output() {
		t.Fatal("output high before the first tick")
	}
	td := []struct {
		clk, out bool
	}{
		{true, true},
		{false, true},
		{true, false},
		{false, false},
		{true, true},
		{false, true},
	}
	for i, d := range td {
		c.Tick(d.clk)
		if c.Output() != d.out {
			t.Fatalf("tick %d (clk=%v): output %v, expected %v", i, d.clk, c.Output(), d.out)
		}
	}
	if s := c.String(); s != "Q: true\n" {
		t.Fatalf("String() = %q", s)
	}
}
