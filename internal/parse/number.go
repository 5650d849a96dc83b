package parse

import "io"

// MaxNumberLen is the longest encoding of a 7z NUMBER.
const MaxNumberLen = 9

// ReadNumberFromSlice reads a 7z NUMBER. The count of leading one bits in the
// first byte gives the number of little-endian bytes that follow; the
// remaining low bits of the first byte are the most significant part.
func ReadNumberFromSlice(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}
	first := b[0]
	mask := byte(0x80)
	var val uint64
	for i := 0; i < 8; i++ {
		if first&mask == 0 {
			high := uint64(first & (mask - 1))
			val |= high << (8 * i)
			return val, i + 1, nil
		}
		if i+1 >= len(b) {
			return 0, len(b), io.ErrUnexpectedEOF
		}
		val |= uint64(b[i+1]) << (8 * i)
		mask >>= 1
	}
	return val, MaxNumberLen, nil
}

// AppendNumber appends the shortest 7z NUMBER encoding of v.
func AppendNumber(dst []byte, v uint64) []byte {
	n := NumberLen(v) - 1
	var first byte
	mask := byte(0x80)
	for i := 0; i < n; i++ {
		first |= mask
		mask >>= 1
	}
	if n < 8 {
		first |= byte(v >> (8 * n))
	}
	dst = append(dst, first)
	for i := 0; i < n; i++ {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

// NumberLen returns the encoded size of v in bytes.
func NumberLen(v uint64) int {
	for i := 0; i < 8; i++ {
		if v < uint64(1)<<(7*(i+1)) {
			return i + 1
		}
	}
	return MaxNumberLen
}
