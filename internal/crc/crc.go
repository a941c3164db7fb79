// Package crc implements the CRC-32 checksum used by the PNG container
// format (ITU-T V.42 / IEEE 802.3, reversed polynomial representation).
//
// The PNG writer must not depend on hash/crc32: producing the checksum from
// first principles is part of the container implementation. The lookup table
// is built once during package initialization and never mutated afterwards.
package crc

// poly is the reversed generator polynomial.
const poly = 0xEDB88320

// table accelerates the bit-by-bit algorithm to one lookup per input byte.
// Immutable after init.
var table = makeTable()

// makeTable computes the 256-entry lookup table. Entry n is the CRC register
// after feeding the single byte n through 8 shift rounds.
func makeTable() [256]uint32 {
	var t [256]uint32
	for n := range t {
		c := uint32(n)
		for i := 0; i < 8; i++ {
			if c&1 != 0 {
				c = (c >> 1) ^ poly
			} else {
				c >>= 1
			}
		}
		t[n] = c
	}
	return t
}

// Update returns the checksum of the bytes of p appended to a stream whose
// checksum so far is crc. Update(0, p) equals Checksum(p), and checksums may
// be chained: Update(Update(0, a), b) == Checksum(a ++ b).
func Update(crc uint32, p []byte) uint32 {
	c := ^crc
	for _, b := range p {
		c = table[byte(c)^b] ^ (c >> 8)
	}
	return ^c
}

// Checksum returns the CRC-32 of p. The empty input yields 0.
func Checksum(p []byte) uint32 {
	return Update(0, p)
}
