package mnemonic

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeShare renders a secret share as "{index}: {phrase}". The index is
// the share's x-coordinate and must be in the range 1 to 255.
func EncodeShare(index int, value []byte) (string, error) {
	if index < 1 || index > 255 {
		return "", fmt.Errorf("%w: got %d", ErrShareIndex, index)
	}
	phrase, err := Encode(value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d: %s", index, phrase), nil
}

// DecodeShare parses a "{index}: {phrase}" share string back into its
// index and value. The phrase part is decoded and checksum-verified.
func DecodeShare(share string) (int, []byte, error) {
	errFormat := error(ErrShareFormat)
	if !strings.ContainsAny(share, "0123456789") {
		errFormat = fmt.Errorf("%w, index missing?", ErrShareFormat)
	}
	parts := strings.Split(share, ":")
	if len(parts) != 2 {
		return 0, nil, errFormat
	}
	index, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, nil, errFormat
	}
	if index < 1 || index > 255 {
		return 0, nil, fmt.Errorf("%w: got %d", ErrShareIndex, index)
	}
	value, err := Decode(parts[1])
	if err != nil {
		return 0, nil, err
	}
	return index, value, nil
}

// VerifyShare reports whether share parses cleanly. In strict mode the
// string must also be the canonical "{index}: {phrase}" rendering.
func VerifyShare(share string, strict bool) bool {
	index, value, err := DecodeShare(share)
	if err != nil {
		return false
	}
	if !strict {
		return true
	}
	canonical, err := EncodeShare(index, value)
	return err == nil && canonical == share
}
