package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-centralized-systems/bip39toolkit/mnemonic"
)

func TestParseCount(t *testing.T) {
	for arg, want := range map[string]int{"1": 1, "42": 42, "255": 255} {
		got, err := parseCount("num_shares", arg)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, arg := range []string{"0", "-1", "256", "", "five", "3.5"} {
		_, err := parseCount("num_shares", arg)
		assert.Error(t, err, "arg %q", arg)
	}
}

func TestNormalizePhrase(t *testing.T) {
	messy := "  abandon abandon  abandon abandon abandon abandon abandon abandon abandon abandon abandon   about "
	clean := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	got, err := normalizePhrase(messy)
	require.NoError(t, err)
	assert.Equal(t, clean, got)

	_, err = normalizePhrase("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon")
	assert.ErrorIs(t, err, mnemonic.ErrChecksum)
}

func TestParseHex(t *testing.T) {
	entropy, err := parseHex("c4e3325cb7e993761e1d9cc14b9a184f")
	require.NoError(t, err)
	assert.Len(t, entropy, 16)
	assert.Equal(t, byte(0xc4), entropy[0])

	// Grouping and case are immaterial.
	grouped, err := parseHex("C4E3-325C B7E9,9376 1e1d9cc14b9a184f")
	require.NoError(t, err)
	assert.Equal(t, entropy, grouped)

	for _, size := range []int{40, 48, 56, 64} {
		data, err := parseHex(strings.Repeat("a", size))
		require.NoError(t, err)
		assert.Len(t, data, size/2)
	}

	for _, arg := range []string{
		"c4e3325cb7e993761e1d9cc14b9a184",  // 31 digits
		"c4e3325cb7e993761e1d9cc14b9a184X", // not hex
		"",
		"abcd",
	} {
		_, err := parseHex(arg)
		assert.Error(t, err, "arg %q", arg)
	}
}

func TestParseDice(t *testing.T) {
	rolls := "1243152351541453343151323541235431254323543541543125356665412562441456654121246141256"
	// expected bits have been manually reviewed and verified
	want := "01100110111" +
		"01110110010" +
		"11111011011" +
		"01111011100" +
		"11011101101" +
		"10101110111" +
		"01110011011" +
		"01101111000" +
		"00010011010" +
		"01000010100" +
		"00100110011" +
		"00000100110" +
		"100"

	bits, err := parseDice(rolls)
	require.NoError(t, err)
	assert.Equal(t, want, bits)

	bits, err = parseDice("6 6-6,6")
	require.NoError(t, err)
	assert.Equal(t, "00000000", bits)

	for _, arg := range []string{"1230", "c4e3", "1 2 7"} {
		_, err := parseDice(arg)
		assert.Error(t, err, "arg %q", arg)
	}
}

func TestParseCards(t *testing.T) {
	cards := "3C 7S 8C 3S JD 9C 8H 2D 4D TC AC 4H 9S 6H 5S QS AH 8S 2S KC QD QC TS 5C 5D TH 2C 6D 6S"
	// expected bits have been manually reviewed and verified
	want := "00010110100" +
		"11110011011" +
		"10100000010" +
		"11101000001" +
		"00100000111" +
		"01111111111" +
		"10111011010" +
		"11101000011" +
		"00110000101" +
		"10000100100" +
		"01001100001" +
		"100101100"

	bits, err := parseCards(cards)
	require.NoError(t, err)
	assert.Equal(t, want, bits)

	// Lowercase input and different grouping normalize to the same bits.
	lower, err := parseCards(strings.ToLower(strings.ReplaceAll(cards, " ", ",")))
	require.NoError(t, err)
	assert.Equal(t, want, lower)

	_, err = parseCards("3Z 0S")
	assert.ErrorContains(t, err, "3Z")
	assert.ErrorContains(t, err, "0S")

	// An odd trailing character is reported as an invalid card.
	_, err = parseCards("AC 7")
	assert.ErrorContains(t, err, "7")
}

func TestEntropyFromBits(t *testing.T) {
	entropy, trimmed, err := entropyFromBits(strings.Repeat("0", 128))
	require.NoError(t, err)
	assert.Equal(t, 128, trimmed)
	assert.Equal(t, make([]byte, 16), entropy)

	// 1000... packs into the most significant bit of the first byte.
	entropy, trimmed, err = entropyFromBits("1" + strings.Repeat("0", 159))
	require.NoError(t, err)
	assert.Equal(t, 160, trimmed)
	assert.Equal(t, byte(0x80), entropy[0])
	assert.Len(t, entropy, 20)

	// 130 bits of input are left-trimmed to 128.
	entropy, trimmed, err = entropyFromBits(strings.Repeat("1", 130))
	require.NoError(t, err)
	assert.Equal(t, 128, trimmed)
	assert.Equal(t, byte(0xff), entropy[15])

	// Anything at or above 256 bits is capped there.
	_, trimmed, err = entropyFromBits(strings.Repeat("0", 300))
	require.NoError(t, err)
	assert.Equal(t, 256, trimmed)

	_, _, err = entropyFromBits(strings.Repeat("0", 127))
	assert.ErrorIs(t, err, ErrInsufficientEntropy)
	_, _, err = entropyFromBits("")
	assert.ErrorIs(t, err, ErrInsufficientEntropy)
}

func TestParseIndices(t *testing.T) {
	indices, err := parseIndices("723, 1646, 1035, 1284, 1053, 2046, 1899, 1292, 1558, 145, 390, 718")
	require.NoError(t, err)
	assert.Equal(t, []int{723, 1646, 1035, 1284, 1053, 2046, 1899, 1292, 1558, 145, 390, 718}, indices)

	indices, err = parseIndices("0 0 0 0 0 0 0 0 0 0 0 3")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3}, indices)

	for _, arg := range []string{
		"1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 2048, 12",
		"1, 2, 3, 4, 5, 6, 7, 9, 10, 11, not-a-number, 12",
		"1, 2, 3",
		"-1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13",
	} {
		_, err := parseIndices(arg)
		assert.Error(t, err, "arg %q", arg)
	}
}
