// Package gf256 implements arithmetic over GF(2^8), the finite field with
// 256 elements, reduced by the AES polynomial x^8 + x^4 + x^3 + x + 1.
//
// Multiplication and inversion are lookup tables built once at package
// initialization and checked against fixed reference digests; a mismatch
// panics before any field math can run.
package gf256

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// reductionPoly is the AES field polynomial x^8 + x^4 + x^3 + x + 1.
const reductionPoly = 0x11b

// Reference digests of the two lookup tables.
const (
	mulTableDigest = "14a1e7e77ca8a30b5bb53e6310748ce0498eb9e04ab78a44dbefb6ebfac8a84b"
	invTableDigest = "a0b6126fef317bb998059c2fca3dddb40f2422e049866c3df87f1fde4e70a132"
)

// ErrNoInverse is returned by Inv for the zero element.
var ErrNoInverse = errors.New("gf256: zero has no inverse")

var (
	mulTable [65536]byte // product of a and b at index a<<8|b
	invTable [256]byte   // multiplicative inverse, zero entry unused
)

func init() {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			mulTable[a<<8|b] = mul(byte(a), byte(b))
		}
	}
	for e := 1; e < 256; e++ {
		if invTable[e] != 0 {
			continue
		}
		for i := e; i < 256; i++ {
			if mul(byte(e), byte(i)) == 1 {
				invTable[e] = byte(i)
				invTable[i] = byte(e)
				break
			}
		}
	}
	mustMatch(mulTable[:], mulTableDigest)
	mustMatch(invTable[:], invTableDigest)
}

// mustMatch panics when a freshly built table does not hash to its
// reference digest.
func mustMatch(table []byte, want string) {
	sum := sha256.Sum256(table)
	if got := hex.EncodeToString(sum[:]); got != want {
		panic("gf256: table digest mismatch: " + got)
	}
}

// mul computes the field product bit by bit, doubling a and reducing while
// consuming b. It only runs during table construction; Mul is the lookup.
func mul(a, b byte) byte {
	var r uint16
	x := uint16(a)
	for b > 0 {
		if b&1 == 1 {
			r ^= x
		}
		x <<= 1
		if x&0x100 != 0 {
			x ^= reductionPoly
		}
		b >>= 1
	}
	return byte(r)
}

// Add returns the field sum of a and b. Addition and subtraction coincide
// in GF(2^8); both are XOR.
func Add(a, b byte) byte { return a ^ b }

// Mul returns the field product of a and b.
func Mul(a, b byte) byte { return mulTable[uint(a)<<8|uint(b)] }

// Inv returns the multiplicative inverse of e, or ErrNoInverse for the
// zero element.
func Inv(e byte) (byte, error) {
	if e == 0 {
		return 0, ErrNoInverse
	}
	return invTable[e], nil
}

// EvalPoly evaluates the polynomial with the given coefficients, constant
// term first, at x. An empty coefficient list evaluates to zero.
func EvalPoly(coeffs []byte, x byte) byte {
	var p, r byte = 1, 0
	for _, c := range coeffs {
		r = Add(r, Mul(p, c))
		p = Mul(p, x)
	}
	return r
}
