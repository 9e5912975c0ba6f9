// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/nandsim"
)

// CompareGate compares the outputs of gate and ref over their complete truth
// table.
//
func CompareGate(t *testing.T, name string, gate, ref nandsim.GateFn) {
	t.Helper()
	for i := 0; i < 4; i++ {
		a, b := i&2 != 0, i&1 != 0
		if got, ex := gate(a, b), ref(a, b); got != ex {
			t.Errorf("%s(%v, %v) = %v, expected %v", name, a, b, got, ex)
		}
	}
}

// A BusFn is a N-bits circuit with two input buses, one output bus and a one
// bit flag output (carry, borrow, etc.).
//
type BusFn func(a, b []bool) ([]bool, bool)

func busString(v []bool) string {
	var b strings.Builder
	b.WriteRune('[')
	for i, bit := range v {
		if i > 0 {
			b.WriteRune(' ')
		}
		if bit {
			b.WriteRune('1')
		} else {
			b.WriteRune('0')
		}
	}
	b.WriteRune(']')
	return b.String()
}

// CompareN compares the outputs of f and ref given the same inputs of the
// given width. Inputs are all 0, all 1, then either every possible input pair
// if the total input width is 12 bits or less, or 4096 random pairs.
//
func CompareN(t *testing.T, bits int, f, ref BusFn) {
	t.Helper()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	a, b := make([]bool, bits), make([]bool, bits)

	check := func() {
		t.Helper()
		out1, f1 := f(a, b)
		out2, f2 := ref(a, b)
		if len(out1) != len(out2) {
			t.Fatalf("a=%s, b=%s: output width %d != %d", busString(a), busString(b), len(out1), len(out2))
		}
		for i := range out1 {
			if out1[i] != out2[i] || f1 != f2 {
				t.Fatalf("\nExpected a=%s, b=%s => out=%s, flag=%v\nGot out=%s, flag=%v",
					busString(a), busString(b), busString(out2), f2, busString(out1), f1)
			}
		}
	}

	start := time.Now()

	// try all 0
	check()

	// try all 1
	for i := range a {
		a[i], b[i] = true, true
	}
	check()

	iter := 2 * bits
	exhaustive := iter <= 12
	if !exhaustive {
		iter = 12
	}
	iter = 1 << uint(iter)

	for i := 0; i < iter; i++ {
		for bit := 0; bit < bits; bit++ {
			if exhaustive {
				a[bit] = i&(1<<uint(bit)) != 0
				b[bit] = i&(1<<uint(bit+bits)) != 0
			} else {
				a[bit] = rnd.Int63()&(1<<62) != 0
				b[bit] = rnd.Int63()&(1<<62) != 0
			}
		}
		check()
	}

	elapsed := time.Since(start)
	t.Logf("%d bits. %d evaluations in %v", bits, iter+2, elapsed)
}
