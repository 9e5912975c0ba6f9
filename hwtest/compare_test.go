package hwtest_test

import (
	"testing"

	ns "github.com/db47h/nandsim"
	"github.com/db47h/nandsim/hwlib"
	"github.com/db47h/nandsim/hwtest"
)

func TestCompareGate(t *testing.T) {
	or := func(a, b bool) bool {
		return ns.Nand(ns.Nand(a, a), ns.Nand(b, b))
	}
	hwtest.CompareGate(t, "custom_or", ns.Or, or)
}

func TestCompareN(t *testing.T) {
	bitwiseOr := func(a, b []bool) ([]bool, bool) {
		return hwlib.GateN(ns.Or, a, b), false
	}
	deMorgan := func(a, b []bool) ([]bool, bool) {
		return hwlib.NotN(hwlib.GateN(ns.And, hwlib.NotN(a), hwlib.NotN(b))), false
	}
	hwtest.CompareN(t, 4, bitwiseOr, deMorgan)
	hwtest.CompareN(t, 16, bitwiseOr, deMorgan)
}
