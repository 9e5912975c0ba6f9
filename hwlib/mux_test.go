package hwlib_test

import (
	"testing"

	hl "github.com/db47h/nandsim/hwlib"
)

func TestMux(t *testing.T) {
	// a, b, sel
	result := []bool{false, false, false, true, true, false, true, true}
	for i, ex := range result {
		a, b, sel := i&4 != 0, i&2 != 0, i&1 != 0
		if out := hl.Mux(a, b, sel); out != ex {
			t.Errorf("Mux(%v, %v, %v) = %v, expected %v", a, b, sel, out, ex)
		}
	}
}

func TestDMux(t *testing.T) {
	result := [][2]bool{{false, false}, {false, false}, {true, false}, {false, true}}
	for i, ex := range result {
		in, sel := i&2 != 0, i&1 != 0
		if a, b := hl.DMux(in, sel); a != ex[0] || b != ex[1] {
			t.Errorf("DMux(%v, %v) = (%v, %v), expected %v", in, sel, a, b, ex)
		}
	}
}

func TestMux4Way(t *testing.T) {
	for line := 0; line < 4; line++ {
		in := make([]bool, 4)
		in[line] = true
		for s := 0; s < 4; s++ {
			sel := [2]bool{s&1 != 0, s&2 != 0}
			if out := hl.Mux4Way(in[0], in[1], in[2], in[3], sel); out != (s == line) {
				t.Errorf("Mux4Way(%v, %v) = %v", in, sel, out)
			}
		}
	}
}

func TestDMux4Way(t *testing.T) {
	td := []struct {
		sel [2]bool
		out [4]bool
	}{
		{[2]bool{false, false}, [4]bool{true, false, false, false}},
		{[2]bool{true, false}, [4]bool{false, true, false, false}},
		{[2]bool{false, true}, [4]bool{false, false, true, false}},
		{[2]bool{true, true}, [4]bool{false, false, false, true}},
	}
	for _, d := range td {
		if out := hl.DMux4Way(d.sel); out != d.out {
			t.Errorf("DMux4Way(%v) = %v, expected %v", d.sel, out, d.out)
		}
	}
}

func TestMuxN(t *testing.T) {
	for bits := 0; bits <= 4; bits++ {
		n := 1 << uint(bits)
		for v := 0; v < 1<<uint(n) && v < 256; v++ {
			in := hl.Bits(int64(v), n)
			for s := 0; s < n; s++ {
				sel := hl.Bits(int64(s), bits)
				if out := hl.MuxN(in, sel); out != in[s] {
					t.Fatalf("MuxN(%v, %v) = %v, expected %v", in, sel, out, in[s])
				}
			}
		}
	}
}

func TestMuxN_panic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MuxN did not panic on 3 input lines")
		}
	}()
	hl.MuxN(make([]bool, 3), make([]bool, 2))
}

func TestDecode(t *testing.T) {
	for bits := 0; bits <= 4; bits++ {
		for s := 0; s < 1<<uint(bits); s++ {
			out := hl.Decode(hl.Bits(int64(s), bits))
			if len(out) != 1<<uint(bits) {
				t.Fatalf("Decode width %d: got %d lines", bits, len(out))
			}
			for i, v := range out {
				if v != (i == s) {
					t.Fatalf("Decode(%d) = %v, not one-hot at %d", s, out, s)
				}
			}
		}
	}
	for s := 0; s < 4; s++ {
		sel := [2]bool{s&1 != 0, s&2 != 0}
		d4 := hl.DMux4Way(sel)
		d := hl.Decode(sel[:])
		for i := range d4 {
			if d4[i] != d[i] {
				t.Fatalf("DMux4Way(%v) = %v != Decode = %v", sel, d4, d)
			}
		}
	}
}
