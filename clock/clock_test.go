package clock_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/db47h/nandsim/clock"
	"github.com/db47h/nandsim/cpu"
	"github.com/db47h/nandsim/logger"
	"github.com/pkg/errors"
)

type recorder struct {
	levels []bool
}

func (r *recorder) Tick(clk bool) { r.levels = append(r.levels, clk) }

func TestNew(t *testing.T) {
	if _, err := clock.New(&recorder{}, clock.WithPeriod(0)); errors.Cause(err) != clock.ErrPeriod {
		t.Fatalf("WithPeriod(0): expected ErrPeriod, got %v", err)
	}
	c, err := clock.New(&recorder{})
	if err != nil {
		t.Fatal(err)
	}
	if c.Level() || c.Edges() != 0 {
		t.Fatalf("new controller: level=%v, edges=%d", c.Level(), c.Edges())
	}
}

func TestController_edges(t *testing.T) {
	r := &recorder{}
	c, err := clock.New(r)
	if err != nil {
		t.Fatal(err)
	}
	c.Tick() // already low
	c.Tock()
	c.Tock() // already high
	c.TickTock()
	c.Step()

	ex := []bool{false, true, true, false, true, false}
	c.Do(func(r *recorder) {
		if len(r.levels) != len(ex) {
			t.Fatalf("levels = %v, expected %v", r.levels, ex)
		}
		for i := range ex {
			if r.levels[i] != ex[i] {
				t.Fatalf("levels = %v, expected %v", r.levels, ex)
			}
		}
	})
	if c.Edges() != 4 || c.Level() {
		t.Fatalf("edges=%d, level=%v; expected 4, false", c.Edges(), c.Level())
	}
}

func TestController_registerFile(t *testing.T) {
	rf, err := cpu.NewRegisterFile(cpu.DefaultRegisters)
	if err != nil {
		t.Fatal(err)
	}
	c, err := clock.New(rf)
	if err != nil {
		t.Fatal(err)
	}
	c.Do(func(rf *cpu.RegisterFile) { rf.PowerOn() })
	c.Tock()
	for dst := 1; dst < cpu.DefaultRegisters; dst++ {
		d := dst
		c.Do(func(rf *cpu.RegisterFile) { rf.Move(d-1, d) })
		c.TickTock()
	}
	c.Do(func(rf *cpu.RegisterFile) {
		for i, v := range rf.Dump() {
			if !v {
				t.Fatalf("register %d is low: %v", i, rf.Dump())
			}
		}
	})
}

func TestController_Run(t *testing.T) {
	logger.Clear()
	tg := cpu.NewToggle()
	tg.PowerOn()
	c, err := clock.New(tg, clock.WithPeriod(time.Millisecond), clock.WithLogging(logger.Allow))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var runErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = c.Run(ctx)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for c.Edges() < 10 {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("clock did not run")
		}
		c.Do(func(tg *cpu.Toggle) { _ = tg.String() })
		time.Sleep(time.Millisecond)
	}
	cancel()
	wg.Wait()

	if runErr != context.Canceled {
		t.Fatalf("Run returned %v, expected context.Canceled", runErr)
	}

	// the clock starts low, so odd edges are raising edges and the toggle
	// output flips on each of them.
	rising := (c.Edges() + 1) / 2
	c.Do(func(tg *cpu.Toggle) {
		if tg.Output() != (rising%2 == 1) {
			t.Fatalf("%d raising edges, output %v", rising, tg.Output())
		}
	})

	var b strings.Builder
	logger.Write(&b)
	if !strings.Contains(b.String(), "clock: started, period 1ms") || !strings.Contains(b.String(), "clock: stopped after") {
		t.Fatalf("unexpected log:\n%s", b.String())
	}
}
