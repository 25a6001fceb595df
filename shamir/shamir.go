// Package shamir implements Shamir secret sharing over GF(2^8).
//
// A secret is split byte by byte: each byte position gets its own
// polynomial of degree threshold-1 whose constant term is the secret byte,
// and the share with index x carries the evaluations of all polynomials at
// x. Any threshold shares determine the polynomials and with them the
// secret; fewer determine nothing.
//
// Recovery is raw Lagrange interpolation at x = 0. It cannot tell whether
// the supplied shares are sufficient or mutually consistent: too few or
// wrong shares yield a wrong secret, not an error. Callers keep the
// bookkeeping.
package shamir

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/de-centralized-systems/bip39toolkit/gf256"
)

var defaultRandSrc = rand.Reader

var (
	// ErrSecretLength is returned when the secret is empty or longer than
	// the coefficient derivation can cover.
	ErrSecretLength = errors.New("shamir: secret must be 1 to 32 bytes")

	// ErrShareCount is returned when n exceeds the 255 x-coordinates of
	// the field.
	ErrShareCount = errors.New("shamir: number of shares must be 1 to 255")

	// ErrThreshold is returned when the threshold is not between 1 and n.
	ErrThreshold = errors.New("shamir: threshold must be 1 to the number of shares")

	// ErrNoShares is returned by Recover without input.
	ErrNoShares = errors.New("shamir: no shares")

	// ErrShareIndex is returned by Recover for an index outside 1 to 255.
	ErrShareIndex = errors.New("shamir: share index out of the allowed range of 1 to 255")

	// ErrShareLength is returned by Recover when the share values do not
	// all have the same length.
	ErrShareLength = errors.New("shamir: inconsistent share value lengths")
)

// Share is one fragment of a split secret.
type Share struct {
	Index int    // x-coordinate of the share, 1 to 255
	Value []byte // evaluations of the per-byte polynomials at Index
}

// Dealer is a Shamir secret sharing dealer. A zero-value Dealer is ready to
// use with default settings. The default random source is crypto/rand.Reader.
type Dealer struct {
	Rand io.Reader // cryptographically secure random source
}

// Split splits a secret into n shares with indices 1 through n such that
// any threshold of them recover it. The secret must be 1 to 32 bytes, and
// 1 <= threshold <= n <= 255 must hold. Polynomial coefficients are random,
// hardened by a keyed derivation from the secret, so a weak random source
// alone cannot leak the secret. Two Split runs produce incompatible share
// sets.
func (d *Dealer) Split(threshold, n int, secret []byte) ([]Share, error) {
	d.init()
	return split(d.Rand, threshold, n, secret, nil)
}

// SplitDeterministic is Split with the randomness replaced by a session
// label: the same secret, threshold, share count, and session always
// reproduce the same shares. Distinct sessions produce incompatible share
// sets. The empty session is a valid label and still distinct from Split.
func (d *Dealer) SplitDeterministic(threshold, n int, secret []byte, session string) ([]Share, error) {
	d.init()
	return split(d.Rand, threshold, n, secret, &session)
}

// Recover interpolates the secret from the shares at x = 0. The result
// only equals the secret when the shares are enough and untampered;
// Recover cannot check either. Share values must agree in length, indices
// must be in range, and duplicate indices fail during basis inversion.
func Recover(shares []Share) ([]byte, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}
	size := len(shares[0].Value)
	for _, s := range shares {
		if s.Index < 1 || s.Index > 255 {
			return nil, fmt.Errorf("%w: got %d", ErrShareIndex, s.Index)
		}
		if len(s.Value) != size {
			return nil, fmt.Errorf("%w: %d and %d bytes", ErrShareLength, size, len(s.Value))
		}
	}

	secret := make([]byte, size)
	for i, s := range shares {
		basis := byte(1)
		for j, o := range shares {
			if j == i {
				continue
			}
			inv, err := gf256.Inv(gf256.Add(byte(o.Index), byte(s.Index)))
			if err != nil {
				return nil, fmt.Errorf("shamir: shares %d and %d: %w", s.Index, o.Index, err)
			}
			basis = gf256.Mul(basis, gf256.Mul(byte(o.Index), inv))
		}
		for b := range secret {
			secret[b] = gf256.Add(secret[b], gf256.Mul(s.Value[b], basis))
		}
	}
	return secret, nil
}

// Default is a zero-value Dealer ready to use with default settings.
var Default = new(Dealer)

// Split a secret using the default dealer.
func Split(threshold, n int, secret []byte) ([]Share, error) {
	return Default.Split(threshold, n, secret)
}

// SplitDeterministic splits a secret using the default dealer.
func SplitDeterministic(threshold, n int, secret []byte, session string) ([]Share, error) {
	return Default.SplitDeterministic(threshold, n, secret, session)
}

func (d *Dealer) init() {
	if d.Rand == nil {
		d.Rand = defaultRandSrc
	}
}

func split(random io.Reader, threshold, n int, secret []byte, session *string) ([]Share, error) {
	if threshold > n {
		return nil, fmt.Errorf("%w: got %d of %d", ErrThreshold, threshold, n)
	}
	if threshold < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrThreshold, threshold)
	}
	if n > 255 {
		return nil, fmt.Errorf("%w: got %d", ErrShareCount, n)
	}
	if len(secret) < 1 || len(secret) > maxSecretLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrSecretLength, len(secret))
	}

	coeffs, err := coefficients(random, threshold, secret, session)
	if err != nil {
		return nil, err
	}

	shares := make([]Share, n)
	column := make([]byte, threshold)
	for i := range shares {
		x := byte(i + 1)
		value := make([]byte, len(secret))
		for b := range value {
			for k := range coeffs {
				column[k] = coeffs[k][b]
			}
			value[b] = gf256.EvalPoly(column, x)
		}
		shares[i] = Share{Index: i + 1, Value: value}
	}

	return shares, nil
}
