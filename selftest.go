package bip39toolkit

import (
	"fmt"
	"time"

	"github.com/de-centralized-systems/bip39toolkit/mnemonic"
	"github.com/de-centralized-systems/bip39toolkit/shamir"
)

// A SelfTestReport describes one completed share verification.
type SelfTestReport struct {
	// Combinations is the number of share subsets that were recovered and
	// compared against the phrase.
	Combinations int

	// Exhaustive reports whether every subset from all shares down to
	// threshold many was tested. False means the timeout cut the run
	// short after the guaranteed sizes.
	Exhaustive bool

	// Elapsed is the wall-clock duration of the verification.
	Elapsed time.Duration
}

// SelfTest verifies that a share set reproduces its phrase. Share subsets
// of decreasing size, from all shares down to threshold many, are
// recovered and compared against the canonical encoding of the phrase.
// Small subset spaces are enumerated in full. Large ones run until the
// toolkit's timeout, except that the two largest sizes always finish, so
// every single share takes part in at least one tested recovery. Any
// mismatch or recovery failure returns ErrSelfTest.
func (k *Toolkit) SelfTest(phrase string, shares []string, threshold int) (*SelfTestReport, error) {
	k.init()

	secret, err := mnemonic.Decode(phrase)
	if err != nil {
		return nil, err
	}
	canonical, err := mnemonic.Encode(secret)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeShares(shares)
	if err != nil {
		return nil, err
	}
	n := len(decoded)
	if threshold < 1 || threshold > n {
		return nil, fmt.Errorf("%w: got %d for %d shares", shamir.ErrThreshold, threshold, n)
	}

	start := time.Now()
	deadline := start.Add(k.SelfTestTimeout)
	report := &SelfTestReport{Exhaustive: true}

	subset := make([]shamir.Share, n)
	var failure error
	for sizesDone, size := 0, n; size >= threshold; sizesDone, size = sizesDone+1, size-1 {
		aborted := false
		combinations(n, size, func(picks []int) bool {
			for j, p := range picks {
				subset[j] = decoded[p]
			}
			recovered, err := shamir.Recover(subset[:len(picks)])
			if err != nil {
				failure = fmt.Errorf("%w: recovering a subset of %d shares: %v", ErrSelfTest, len(picks), err)
				return false
			}
			got, err := mnemonic.Encode(recovered)
			if err != nil || got != canonical {
				failure = fmt.Errorf("%w: a subset of %d shares does not reproduce the phrase", ErrSelfTest, len(picks))
				return false
			}
			report.Combinations++

			// The timeout only applies once the two largest sizes are
			// fully enumerated. Those are cheap (1+n recoveries) and
			// guarantee that every share was exercised.
			if sizesDone >= 2 && time.Now().After(deadline) {
				aborted = true
				report.Exhaustive = false
				return false
			}
			return true
		})
		if failure != nil || aborted {
			break
		}
	}

	report.Elapsed = time.Since(start)
	if failure != nil {
		return nil, failure
	}
	return report, nil
}

// SelfTest verifies a share set using the default toolkit.
func SelfTest(phrase string, shares []string, threshold int) (*SelfTestReport, error) {
	return Default.SelfTest(phrase, shares, threshold)
}

// combinations visits every size-k subset of {0, …, n-1} in lexicographic
// order until visit returns false. The index slice passed to visit is
// reused between calls.
func combinations(n, k int, visit func(picks []int) bool) {
	if k < 0 || k > n {
		return
	}
	picks := make([]int, k)
	for i := range picks {
		picks[i] = i
	}
	for {
		if !visit(picks) {
			return
		}
		// Advance the rightmost index that still has room, then reset
		// everything to its right.
		i := k - 1
		for i >= 0 && picks[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		picks[i]++
		for j := i + 1; j < k; j++ {
			picks[j] = picks[j-1] + 1
		}
	}
}
