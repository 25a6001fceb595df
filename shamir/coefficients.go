package shamir

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"
)

// coefficientTag domain-separates the coefficient derivation HMAC.
const coefficientTag = "secret-sharing-coefficient"

// maxSecretLen caps secrets at the HMAC-SHA256 output size so a derived
// coefficient always covers the secret's length.
const maxSecretLen = sha256.Size

// coefficients builds the threshold polynomial coefficients for secret,
// constant term first. Coefficient 0 is the secret. Coefficient j is
// HMAC-SHA256(key=secret, msg=tag || threshold || j || session) truncated
// to the secret's length; with a nil session it is additionally XORed with
// fresh bytes from random.
func coefficients(random io.Reader, threshold int, secret []byte, session *string) ([][]byte, error) {
	coeffs := make([][]byte, 1, threshold)
	coeffs[0] = append([]byte(nil), secret...)

	for j := 1; j < threshold; j++ {
		mac := hmac.New(sha256.New, secret)
		mac.Write([]byte(coefficientTag))
		mac.Write([]byte{byte(threshold), byte(j)})
		if session != nil {
			mac.Write([]byte(*session))
		}
		c := mac.Sum(nil)[:len(secret)]

		if session == nil {
			fresh := make([]byte, len(c))
			if _, err := io.ReadFull(random, fresh); err != nil {
				return nil, fmt.Errorf("shamir: reading random bytes: %w", err)
			}
			for i := range c {
				c[i] ^= fresh[i]
			}
		}

		coeffs = append(coeffs, c)
	}

	return coeffs, nil
}
