package mnemonic

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// Seed derivation parameters fixed by BIP39.
const (
	seedSalt       = "mnemonic"
	seedIterations = 2048
	seedSize       = 64
)

// Seed derives the 64-byte BIP39 seed from a phrase and an optional
// passphrase via PBKDF2-HMAC-SHA512. The phrase is validated and
// canonicalized first; the passphrase is NFKD-normalized as BIP39
// requires.
func Seed(phrase, passphrase string) ([]byte, error) {
	entropy, err := Decode(phrase)
	if err != nil {
		return nil, err
	}
	canonical, err := Encode(entropy)
	if err != nil {
		return nil, err
	}
	salt := seedSalt + norm.NFKD.String(passphrase)
	return pbkdf2.Key([]byte(canonical), []byte(salt), seedIterations, seedSize, sha512.New), nil
}
