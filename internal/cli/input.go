package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/de-centralized-systems/bip39toolkit/mnemonic"
)

// ErrInsufficientEntropy is returned when dice or card input carries too
// few bits for the smallest phrase size.
var ErrInsufficientEntropy = errors.New("at least 128 bits of entropy are required")

// phraseBits lists the supported entropy sizes, smallest first.
var phraseBits = []int{128, 160, 192, 224, 256}

// separators are stripped from entropy input, so values may be grouped
// for readability ("1d2c 3h4s", "dead-beef, ...").
var separators = regexp.MustCompile(`[ ,-]`)

// parseCount parses a share count or threshold in the range 1 to 255.
func parseCount(name, arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil || v < 1 || v > 255 {
		return 0, fmt.Errorf("invalid value %q for argument %s: a value from 1 to 255 is required", arg, name)
	}
	return v, nil
}

// normalizePhrase decodes and re-encodes a phrase, validating it and
// canonicalizing its spacing.
func normalizePhrase(phrase string) (string, error) {
	secret, err := mnemonic.Decode(phrase)
	if err != nil {
		return "", err
	}
	return mnemonic.Encode(secret)
}

// parseHex parses a hex string of exactly one of the supported entropy
// sizes into raw bytes.
func parseHex(arg string) ([]byte, error) {
	normalized := strings.ToLower(separators.ReplaceAllString(arg, ""))
	switch len(normalized) {
	case 32, 40, 48, 56, 64:
	default:
		return nil, fmt.Errorf("invalid value %q for argument input: a hexstring with a length of 128, 160, 192, 224, or 256 bits is required", arg)
	}
	data, err := hex.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q for argument input: %w", arg, err)
	}
	return data, nil
}

// diceBits maps a die face to the bits it contributes. Faces 1, 2, 3,
// and 6 carry two bits, faces 4 and 5 one.
var diceBits = [7]string{"", "01", "10", "11", "0", "1", "00"}

// parseDice converts a sequence of die faces into a bit string.
func parseDice(arg string) (string, error) {
	normalized := separators.ReplaceAllString(arg, "")
	var bits strings.Builder
	for _, r := range normalized {
		if r < '1' || r > '6' {
			return "", fmt.Errorf("invalid value %q for argument input: a sequence of dice rolls [1-6]+ is required", arg)
		}
		bits.WriteString(diceBits[r-'0'])
	}
	return bits.String(), nil
}

// cardIndex maps a two-character card like "AS" or "TC" to its deck
// position: suits in the order clubs, diamonds, hearts, spades, ranks
// ace to king within each suit.
var cardIndex = make(map[string]int, 52)

func init() {
	const suits = "CDHS"
	const ranks = "A23456789TJQK"
	for si := 0; si < len(suits); si++ {
		for ri := 0; ri < len(ranks); ri++ {
			cardIndex[string(ranks[ri])+string(suits[si])] = si*len(ranks) + ri
		}
	}
}

// cardBits returns the bits one drawn card contributes. The first 32
// deck positions carry five bits, the next 16 four, and the last 4 two.
func cardBits(index int) string {
	if index < 32 {
		return fmt.Sprintf("%05b", index)
	}
	index -= 32
	if index < 16 {
		return fmt.Sprintf("%04b", index)
	}
	return fmt.Sprintf("%02b", index-16)
}

// parseCards converts a sequence of playing cards, each given as rank
// then suit ("AS", "7D", "TC"), into a bit string.
func parseCards(arg string) (string, error) {
	normalized := strings.ToUpper(separators.ReplaceAllString(arg, ""))

	var bits strings.Builder
	var invalid []string
	seen := make(map[string]bool)
	for i := 0; i < len(normalized); i += 2 {
		card := normalized[i:min(i+2, len(normalized))]
		index, ok := cardIndex[card]
		if !ok {
			if !seen[card] {
				seen[card] = true
				invalid = append(invalid, card)
			}
			continue
		}
		bits.WriteString(cardBits(index))
	}
	if len(invalid) > 0 {
		return "", fmt.Errorf("invalid value %q for argument input: the following values are not valid cards: %s", arg, strings.Join(invalid, ", "))
	}
	return bits.String(), nil
}

// entropyFromBits packs a bit string into entropy bytes, left-trimming
// to the largest supported phrase size it covers. The returned count is
// the number of bits kept.
func entropyFromBits(bits string) ([]byte, int, error) {
	if len(bits) < phraseBits[0] {
		return nil, 0, fmt.Errorf("%w: the input only contains %d bits", ErrInsufficientEntropy, len(bits))
	}
	var trimmed int
	for _, b := range phraseBits {
		if len(bits) >= b {
			trimmed = b
		}
	}

	x, ok := new(big.Int).SetString(bits[:trimmed], 2)
	if !ok {
		return nil, 0, fmt.Errorf("invalid bit string %q", bits)
	}
	return x.FillBytes(make([]byte, trimmed/8)), trimmed, nil
}

// indexSeparators split a word index sequence; unlike entropy input,
// runs of separators count as one.
var indexSeparators = regexp.MustCompile(`[ ,-]+`)

// parseIndices parses a separated sequence of word indices, one per
// phrase word.
func parseIndices(arg string) ([]int, error) {
	parts := indexSeparators.Split(strings.TrimSpace(arg), -1)

	indices := make([]int, 0, len(parts))
	valid := true
	for _, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 || v > 2047 {
			valid = false
			continue
		}
		indices = append(indices, v)
	}

	if !valid {
		return nil, fmt.Errorf("invalid value %q for argument input: the sequence contains invalid indices; all indices must be from the range [0-2047]", arg)
	}
	switch len(indices) {
	case 12, 15, 18, 21, 24:
		return indices, nil
	}
	return nil, fmt.Errorf("invalid value %q for argument input: the provided sequence is of length %d; a sequence of 12, 15, 18, 21, or 24 indices is required", arg, len(indices))
}
