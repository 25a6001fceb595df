// Package mnemonic implements the BIP39 mnemonic codec: conversion between
// raw entropy and English phrases carrying an embedded SHA-256 checksum,
// the "{index}: {phrase}" share-string format, and seed derivation.
//
// The wordlist is verified against a fixed digest at initialization; a
// corrupted list panics before any phrase can be produced.
package mnemonic

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"
)

// wordBits is the size of one wordlist index.
const wordBits = 11

// entropyWords maps an entropy size in bytes to the phrase length in
// words; the checksum contributes ENT/32 bits so that
// 11 * words == ENT + ENT/32 holds for every row.
var entropyWords = map[int]int{16: 12, 20: 15, 24: 18, 28: 21, 32: 24}

// bitsForWords is the reverse mapping, phrase length to entropy bits.
var bitsForWords = map[int]int{12: 128, 15: 160, 18: 192, 21: 224, 24: 256}

// BitLength returns the entropy size in bits carried by a phrase of
// numWords words.
func BitLength(numWords int) (int, error) {
	bits, ok := bitsForWords[numWords]
	if !ok {
		return 0, fmt.Errorf("%w: got %d", ErrWordCount, numWords)
	}
	return bits, nil
}

// Encode converts entropy into a mnemonic phrase. The entropy must be 16,
// 20, 24, 28, or 32 bytes. The top ENT/32 bits of its SHA-256 digest are
// appended as a checksum before the bit string is cut into 11-bit word
// indices, most significant group first.
func Encode(entropy []byte) (string, error) {
	numWords, ok := entropyWords[len(entropy)]
	if !ok {
		return "", fmt.Errorf("%w: got %d bytes", ErrEntropyLength, len(entropy))
	}
	checksumBits := len(entropy) / 4
	sum := sha256.Sum256(entropy)
	checksum := sum[0] >> (8 - checksumBits)

	x := new(big.Int).SetBytes(entropy)
	x.Lsh(x, uint(checksumBits))
	x.Or(x, big.NewInt(int64(checksum)))

	// Cut the lowest 11 bits off repeatedly, filling the words back to
	// front so the most significant group ends up first.
	mask := big.NewInt(1<<wordBits - 1)
	idx := new(big.Int)
	ws := make([]string, numWords)
	for i := numWords - 1; i >= 0; i-- {
		idx.And(x, mask)
		ws[i] = words[idx.Int64()]
		x.Rsh(x, wordBits)
	}
	return strings.Join(ws, " "), nil
}

// Decode converts a phrase back into its entropy, verifying the embedded
// checksum. Words missing from the wordlist are collected and reported
// together as an *UnknownWordError.
func Decode(phrase string) ([]byte, error) {
	for _, r := range phrase {
		if r != ' ' && (r < 'a' || r > 'z') {
			return nil, ErrInvalidChar
		}
	}
	ws := strings.Fields(phrase)
	bits, err := BitLength(len(ws))
	if err != nil {
		return nil, err
	}
	if unknown := unknownWords(ws); len(unknown) > 0 {
		return nil, &UnknownWordError{Words: unknown}
	}

	x := new(big.Int)
	wi := new(big.Int)
	for _, w := range ws {
		x.Lsh(x, wordBits)
		x.Or(x, wi.SetInt64(int64(wordIndex[w])))
	}
	checksumBits := uint(bits / 32)
	checksum := byte(new(big.Int).And(x, big.NewInt(int64(1)<<checksumBits-1)).Int64())
	x.Rsh(x, checksumBits)

	entropy := x.FillBytes(make([]byte, bits/8))
	sum := sha256.Sum256(entropy)
	if checksum != sum[0]>>(8-checksumBits) {
		return nil, ErrChecksum
	}
	return entropy, nil
}

// Verify reports whether phrase decodes cleanly. In strict mode the phrase
// must also be the canonical encoding of its entropy, single-spaced with
// no surrounding whitespace.
func Verify(phrase string, strict bool) bool {
	entropy, err := Decode(phrase)
	if err != nil {
		return false
	}
	if !strict {
		return true
	}
	canonical, err := Encode(entropy)
	return err == nil && canonical == phrase
}
