// Package hash contains the hash functions used to hash list elements.
//
// All functions are variants of DJB hashing; a composite value is hashed by
// folding the hashes of its parts with DJBCombine, starting from DJBInit.
package hash

import "math"

const DJBInit uint32 = 5381

func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

func Bool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func UInt64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

// Float64 hashes the bits of f, treating -0 and +0 as the same value since
// they compare equal.
func Float64(f float64) uint32 {
	if f == 0 {
		f = 0
	}
	return UInt64(math.Float64bits(f))
}

func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
