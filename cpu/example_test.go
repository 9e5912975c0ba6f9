package cpu_test

import (
	"fmt"

	"github.com/db47h/nandsim/cpu"
)

func ExampleRegisterFile() {
	r, err := cpu.NewRegisterFile(cpu.DefaultRegisters)
	if err != nil {
		panic(err)
	}
	r.PowerOn()
	r.Tick(true)
	fmt.Println("on:", r.Dump())

	// mov a, b
	r.Move(0, 1)
	r.Tick(false)
	r.Tick(true)
	fmt.Println("mov a, b:", r.Dump())

	// mov b, c
	r.Move(1, 2)
	r.Tick(false)
	r.Tick(true)
	fmt.Print(r)

	// Output:
	// on: [true false false false]
	// mov a, b: [true true false false]
	// Q0: true
	// Q1: true
	// Q2: true
	// Q3: false
}
