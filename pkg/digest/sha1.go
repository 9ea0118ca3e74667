// Package digest implements the SHA-1 hashing primitive used by the
// k-anonymity password protocol. The remote range provider computes the same
// function independently, so the output must match the standard algorithm
// bit-for-bit; the digest is rendered as 40 uppercase hexadecimal characters.
package digest

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// Size is the length of a rendered digest in hexadecimal characters.
const Size = 40

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// Round constants for the four 20-round groups.
const (
	k0 = 0x5A827999
	k1 = 0x6ED9EBA1
	k2 = 0x8F1BBCDC
	k3 = 0xCA62C1D6
)

// SHA1Hex returns the SHA-1 digest of s as a 40-character uppercase hex
// string. The input is interpreted as its UTF-8 byte encoding (Go strings are
// already UTF-8, so multi-byte code points need no special handling). The
// function is pure and safe for concurrent use; it never fails, including on
// the empty string.
func SHA1Hex(s string) string {
	h0, h1, h2, h3, h4 := uint32(init0), uint32(init1), uint32(init2), uint32(init3), uint32(init4)

	msg := pad([]byte(s))

	var w [80]uint32
	for block := 0; block < len(msg); block += 64 {
		chunk := msg[block : block+64]
		for t := 0; t < 16; t++ {
			w[t] = binary.BigEndian.Uint32(chunk[t*4:])
		}
		// message schedule: each word is a left-rotated xor of earlier words
		for t := 16; t < 80; t++ {
			w[t] = rotl(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
		}

		a, b, c, d, e := h0, h1, h2, h3, h4
		for t := 0; t < 80; t++ {
			var f, k uint32
			switch {
			case t < 20:
				f = (b & c) | (^b & d)
				k = k0
			case t < 40:
				f = b ^ c ^ d
				k = k1
			case t < 60:
				f = (b & c) | (b & d) | (c & d)
				k = k2
			default:
				f = b ^ c ^ d
				k = k3
			}

			// all arithmetic wraps modulo 2^32
			tmp := rotl(a, 5) + f + e + k + w[t]
			e = d
			d = c
			c = rotl(b, 30)
			b = a
			a = tmp
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e
	}

	var out [20]byte
	binary.BigEndian.PutUint32(out[0:], h0)
	binary.BigEndian.PutUint32(out[4:], h1)
	binary.BigEndian.PutUint32(out[8:], h2)
	binary.BigEndian.PutUint32(out[12:], h3)
	binary.BigEndian.PutUint32(out[16:], h4)

	return strings.ToUpper(hex.EncodeToString(out[:]))
}

// pad applies the standard SHA-1 padding: a single 0x80 byte, zero bytes
// until the length in bits is congruent to 448 mod 512, then the original
// bit-length as a 64-bit big-endian integer.
func pad(msg []byte) []byte {
	bitLen := uint64(len(msg)) * 8

	padded := append(msg, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0)
	}

	var length [8]byte
	binary.BigEndian.PutUint64(length[:], bitLen)

	return append(padded, length[:]...)
}

func rotl(v uint32, n uint) uint32 {
	return v<<n | v>>(32-n)
}
