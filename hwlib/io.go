// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// Int64 returns the bus value as an int64. Bit 0 is lsb. Bits above 63 are
// ignored.
//
func Int64(bits []bool) int64 {
	var out int64
	for bit, v := range bits {
		if v && bit < 64 {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// Bits returns the n least significant bits of v as a bus.
//
func Bits(v int64, n int) []bool {
	out := make([]bool, n)
	for bit := range out {
		out[bit] = bit < 64 && v&(1<<uint(bit)) != 0
	}
	return out
}
