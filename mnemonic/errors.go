package mnemonic

import (
	"errors"
	"fmt"
)

var (
	// ErrEntropyLength indicates an entropy size with no phrase length.
	ErrEntropyLength = errors.New("mnemonic: entropy must be 16, 20, 24, 28, or 32 bytes")

	// ErrInvalidChar indicates a phrase with characters outside lowercase
	// letters and spaces.
	ErrInvalidChar = errors.New("mnemonic: phrase contains invalid characters")

	// ErrWordCount indicates a phrase length outside 12, 15, 18, 21, or 24
	// words.
	ErrWordCount = errors.New("mnemonic: phrases have 12, 15, 18, 21, or 24 words")

	// ErrChecksum indicates a phrase whose embedded checksum does not match
	// its entropy.
	ErrChecksum = errors.New("mnemonic: checksum verification failed")

	// ErrUnknownWord indicates words that are not part of the wordlist. The
	// concrete error is an *UnknownWordError carrying the words.
	ErrUnknownWord = errors.New("mnemonic: word is not part of the BIP39 wordlist")

	// ErrShareFormat indicates a share string that is not "{index}: {phrase}".
	ErrShareFormat = errors.New("mnemonic: invalid share format")

	// ErrShareIndex indicates a share index outside 1 to 255.
	ErrShareIndex = errors.New("mnemonic: share index out of the allowed range of 1 to 255")

	// ErrWordIndex indicates a word index outside 0 to 2047.
	ErrWordIndex = errors.New("mnemonic: word index out of the allowed range of 0 to 2047")
)

// UnknownWordError reports the words of a phrase that are missing from the
// wordlist, deduplicated in order of first occurrence.
type UnknownWordError struct {
	Words []string
}

func (e *UnknownWordError) Error() string {
	switch len(e.Words) {
	case 0:
		return ErrUnknownWord.Error()
	case 1:
		return fmt.Sprintf("mnemonic: the word %q is not part of the BIP39 wordlist", e.Words[0])
	default:
		return fmt.Sprintf("mnemonic: the words %q and %q are not part of the BIP39 wordlist",
			e.Words[0], e.Words[len(e.Words)-1])
	}
}

func (e *UnknownWordError) Unwrap() error { return ErrUnknownWord }
