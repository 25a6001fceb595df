package mnemonic

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// listLen is the number of words addressable by an 11-bit index.
const listLen = 2048

// englishDigest is the SHA-256 of the English wordlist rendered one word
// per line with a trailing newline, exactly the upstream english.txt file.
const englishDigest = "2f5eed53a4727b4bf8880d8f3f199efc90e58503646d9ff8eff3a2ed3b24dbda"

var (
	words     []string
	wordIndex map[string]int
)

func init() {
	words = wordlists.English
	if len(words) != listLen {
		panic(fmt.Sprintf("mnemonic: wordlist has %d words, want %d", len(words), listLen))
	}
	sum := sha256.Sum256([]byte(strings.Join(words, "\n") + "\n"))
	if got := hex.EncodeToString(sum[:]); got != englishDigest {
		panic("mnemonic: wordlist digest mismatch: " + got)
	}
	wordIndex = make(map[string]int, listLen)
	for i, w := range words {
		wordIndex[w] = i
	}
}

// unknownWords returns the words missing from the wordlist, deduplicated in
// order of first occurrence.
func unknownWords(ws []string) []string {
	var unknown []string
	seen := make(map[string]bool)
	for _, w := range ws {
		if _, ok := wordIndex[w]; ok || seen[w] {
			continue
		}
		seen[w] = true
		unknown = append(unknown, w)
	}
	return unknown
}

// FromIndices joins wordlist entries by index into a phrase. No checksum is
// computed; the result is only a valid mnemonic if the indices were.
func FromIndices(indices []int) (string, error) {
	ws := make([]string, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= listLen {
			return "", fmt.Errorf("%w: got %d", ErrWordIndex, idx)
		}
		ws[i] = words[idx]
	}
	return strings.Join(ws, " "), nil
}

// ToIndices maps every word of the phrase to its wordlist index. No
// checksum is verified.
func ToIndices(phrase string) ([]int, error) {
	ws := strings.Fields(phrase)
	if unknown := unknownWords(ws); len(unknown) > 0 {
		return nil, &UnknownWordError{Words: unknown}
	}
	indices := make([]int, len(ws))
	for i, w := range ws {
		indices[i] = wordIndex[w]
	}
	return indices, nil
}
