// Package bip39toolkit generates BIP39 mnemonic phrases, splits them into
// mnemonic-encoded Shamir shares, and recovers phrases from such shares.
//
// Phrases are produced by [Toolkit.Generate] from a cryptographic random
// source, optionally hardened with caller supplied entropy
// ([Toolkit.GenerateMixed]) or derived from that entropy alone
// ([Toolkit.GenerateDeterministic]).
//
// [Toolkit.Share] splits a phrase into n shares of which any threshold
// many recover it. Every share is itself a BIP39 phrase prefixed with its
// share index, so shares enjoy the same checksum protection and the same
// paper-friendly encoding as the phrase they protect. Before any share is
// handed to the caller, the fresh share set is verified: subsets are
// recovered and compared against the phrase, and a mismatch aborts the
// whole operation with [ErrSelfTest].
//
// [Recover] is raw Lagrange interpolation. Given fewer shares than the
// original threshold it still succeeds and yields a wrong phrase; given
// enough it yields the right one. Callers decide how many shares to
// collect.
package bip39toolkit

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"github.com/de-centralized-systems/bip39toolkit/mnemonic"
	"github.com/de-centralized-systems/bip39toolkit/shamir"
)

// entropyTag domain-separates the keyed derivation that turns a caller
// supplied string into phrase entropy.
const entropyTag = "BIP39 phrase"

// entropyPoolSize is the number of entropy bytes produced per generation.
// The pool covers the largest phrase size; shorter phrases use a prefix.
const entropyPoolSize = 32

// DefaultSelfTestTimeout bounds the share verification that runs after
// every split. The two largest subset sizes are always tested in full,
// even when that takes longer.
const DefaultSelfTestTimeout = 10 * time.Second

// A Toolkit generates phrases and splits them into shares. The zero value
// is ready to use: randomness comes from crypto/rand and the post-split
// self-test runs with DefaultSelfTestTimeout.
type Toolkit struct {
	// Rand is the entropy source for phrase generation and for the
	// randomized share coefficients. nil means crypto/rand.Reader.
	Rand io.Reader

	// SelfTestTimeout bounds the share verification after each split.
	// Zero or negative means DefaultSelfTestTimeout.
	SelfTestTimeout time.Duration
}

// Default is a zero-value Toolkit ready to use with default settings.
var Default = new(Toolkit)

// Generate creates a phrase of numWords words from the toolkit's random
// source. numWords must be one of 12, 15, 18, 21, or 24.
func (k *Toolkit) Generate(numWords int) (string, error) {
	k.init()

	pool, err := k.randomPool()
	if err != nil {
		return "", err
	}
	return encodePool(pool, numWords)
}

// GenerateMixed creates a random phrase with caller supplied entropy mixed
// in. The random pool is XORed with a keyed derivation of the entropy
// string, so the phrase stays unpredictable as long as either input is.
func (k *Toolkit) GenerateMixed(numWords int, entropy string) (string, error) {
	k.init()

	pool, err := k.randomPool()
	if err != nil {
		return "", err
	}
	derived := deriveEntropy(entropy)
	for i := range pool {
		pool[i] ^= derived[i]
	}
	return encodePool(pool, numWords)
}

// GenerateDeterministic derives a phrase from the entropy string alone.
// Equal inputs produce equal phrases, and the phrase is exactly as
// unpredictable as the string it came from.
func (k *Toolkit) GenerateDeterministic(numWords int, entropy string) (string, error) {
	return encodePool(deriveEntropy(entropy), numWords)
}

// Share splits a phrase into n share strings of which any threshold many
// recover it. The share set is self-tested before it is returned: share
// subsets are recovered and compared against the phrase, and any mismatch
// aborts with ErrSelfTest. The report describes the completed
// verification.
func (k *Toolkit) Share(phrase string, n, threshold int) ([]string, *SelfTestReport, error) {
	k.init()
	return k.share(phrase, n, threshold, nil)
}

// ShareDeterministic is Share with reproducible output: equal phrase,
// parameters, and session string regenerate the identical share set. Use
// distinct session strings for independent share sets of the same phrase.
func (k *Toolkit) ShareDeterministic(phrase string, n, threshold int, session string) ([]string, *SelfTestReport, error) {
	k.init()
	return k.share(phrase, n, threshold, &session)
}

// Recover reassembles a phrase from share strings. Recovery is raw: with
// fewer shares than the original threshold it succeeds and produces a
// wrong phrase. Duplicate shares and shares from different splits are not
// detectable here either; callers vet their inputs.
func Recover(shareStrings []string) (string, error) {
	shares, err := decodeShares(shareStrings)
	if err != nil {
		return "", err
	}
	secret, err := shamir.Recover(shares)
	if err != nil {
		return "", err
	}
	return mnemonic.Encode(secret)
}

// Generate creates a phrase using the default toolkit.
func Generate(numWords int) (string, error) {
	return Default.Generate(numWords)
}

// GenerateMixed creates an entropy-hardened phrase using the default
// toolkit.
func GenerateMixed(numWords int, entropy string) (string, error) {
	return Default.GenerateMixed(numWords, entropy)
}

// GenerateDeterministic derives a phrase using the default toolkit.
func GenerateDeterministic(numWords int, entropy string) (string, error) {
	return Default.GenerateDeterministic(numWords, entropy)
}

// Share splits a phrase using the default toolkit.
func Share(phrase string, n, threshold int) ([]string, *SelfTestReport, error) {
	return Default.Share(phrase, n, threshold)
}

// ShareDeterministic splits a phrase reproducibly using the default
// toolkit.
func ShareDeterministic(phrase string, n, threshold int, session string) ([]string, *SelfTestReport, error) {
	return Default.ShareDeterministic(phrase, n, threshold, session)
}

// init applies the documented defaults to unset fields.
func (k *Toolkit) init() {
	if k.Rand == nil {
		k.Rand = rand.Reader
	}
	if k.SelfTestTimeout <= 0 {
		k.SelfTestTimeout = DefaultSelfTestTimeout
	}
}

func (k *Toolkit) share(phrase string, n, threshold int, session *string) ([]string, *SelfTestReport, error) {
	secret, err := mnemonic.Decode(phrase)
	if err != nil {
		return nil, nil, err
	}

	dealer := shamir.Dealer{Rand: k.Rand}
	var shares []shamir.Share
	if session == nil {
		shares, err = dealer.Split(threshold, n, secret)
	} else {
		shares, err = dealer.SplitDeterministic(threshold, n, secret, *session)
	}
	if err != nil {
		return nil, nil, err
	}

	encoded := make([]string, len(shares))
	for i, share := range shares {
		encoded[i], err = mnemonic.EncodeShare(share.Index, share.Value)
		if err != nil {
			return nil, nil, err
		}
	}

	report, err := k.SelfTest(phrase, encoded, threshold)
	if err != nil {
		return nil, nil, err
	}
	return encoded, report, nil
}

// randomPool reads a full entropy pool from the toolkit's random source.
func (k *Toolkit) randomPool() ([]byte, error) {
	pool := make([]byte, entropyPoolSize)
	if _, err := io.ReadFull(k.Rand, pool); err != nil {
		return nil, fmt.Errorf("bip39toolkit: reading random bytes: %w", err)
	}
	return pool, nil
}

// deriveEntropy stretches a caller supplied string into a full entropy
// pool, keyed by the string itself.
func deriveEntropy(entropy string) []byte {
	mac := hmac.New(sha256.New, []byte(entropy))
	mac.Write([]byte(entropyTag))
	return mac.Sum(nil)
}

// encodePool encodes the prefix of pool that a phrase of numWords needs.
func encodePool(pool []byte, numWords int) (string, error) {
	bits, err := mnemonic.BitLength(numWords)
	if err != nil {
		return "", err
	}
	return mnemonic.Encode(pool[:bits/8])
}

func decodeShares(shareStrings []string) ([]shamir.Share, error) {
	if len(shareStrings) == 0 {
		return nil, shamir.ErrNoShares
	}
	shares := make([]shamir.Share, len(shareStrings))
	for i, s := range shareStrings {
		index, value, err := mnemonic.DecodeShare(s)
		if err != nil {
			return nil, err
		}
		shares[i] = shamir.Share{Index: index, Value: value}
	}
	return shares, nil
}
