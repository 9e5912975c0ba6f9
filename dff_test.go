package nandsim_test

import (
	"math/rand"
	"testing"
	"testing/quick"
	"time"

	ns "github.com/db47h/nandsim"
)

func TestDFF(t *testing.T) {
	f := ns.NewDFF()
	steps := []struct {
		name string
		do   func(bool)
		in   bool
		out  bool
	}{
		{"SetD", f.SetD, true, false},
		{"SetClk", f.SetClk, true, true},
		{"SetD", f.SetD, false, true},
		{"SetClk", f.SetClk, false, true},
		{"SetClk", f.SetClk, true, false},
	}
	for i, s := range steps {
		s.do(s.in)
		if out := f.Output(); out != s.out {
			t.Fatalf("step %d: %s(%v) => %v, expected %v", i, s.name, s.in, out, s.out)
		}
	}
	if f.D() || !f.Clk() {
		t.Fatalf("inputs: d=%v, clk=%v, expected d=false, clk=true", f.D(), f.Clk())
	}
}

// dffModel is a behavioral raising edge flip flop.
type dffModel struct {
	d, clk, out bool
}

func (m *dffModel) setClk(clk bool) {
	if clk && !m.clk {
		m.out = m.d
	}
	m.clk = clk
}

func TestDFF_edge(t *testing.T) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	f := func(seq []uint8) bool {
		dff := ns.NewDFF()
		var m dffModel
		for _, op := range seq {
			v := op&1 != 0
			if op&2 != 0 {
				dff.SetClk(v)
				m.setClk(v)
			} else {
				dff.SetD(v)
				m.d = v
			}
			if dff.Output() != m.out {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 1000, Rand: rnd}); err != nil {
		t.Fatal(err)
	}
}

func TestDFF_holdWhileClockConstant(t *testing.T) {
	for _, clk := range []bool{false, true} {
		f := ns.NewDFF()
		f.SetD(true)
		f.SetClk(true)
		f.SetClk(clk)
		out := f.Output()
		for i := 0; i < 8; i++ {
			f.SetD(i&1 == 0)
			if f.Output() != out {
				t.Fatalf("clk=%v: output changed from %v while the clock was constant", clk, out)
			}
		}
	}
}
