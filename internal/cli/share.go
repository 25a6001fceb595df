package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/de-centralized-systems/bip39toolkit"
)

var shareCmd = &cobra.Command{
	Use:   "share <num-shares> <threshold> <phrase>",
	Short: "Split a BIP39 phrase into secret shares",
	Long: `Split a BIP39 phrase into num-shares shares such that any threshold
many of them recover the original phrase. Both counts range from 1 to
255; if given in the wrong order, the larger value is taken as the
share count. Each share is itself a BIP39 phrase prefixed with its
share index ("1: abandon ability ...") and should be written down or
stored just like the original phrase.

Sharing is randomized: resharing the same phrase yields a different,
incompatible share set. With --deterministic the share set is derived
from the phrase (and the optional --session string) alone and can be
reproduced exactly.

Before any share is printed, a self-test recovers share subsets and
compares them against the original phrase. The operation fails rather
than hand out an unverified share set.`,
	Args: cobra.ExactArgs(3),
	RunE: runShare,
}

func init() {
	shareCmd.Flags().Bool("deterministic", false,
		"derive the shares from the phrase instead of fresh randomness")
	shareCmd.Flags().String("session", "",
		"session string separating deterministic share sets of the same phrase")
}

func runShare(cmd *cobra.Command, args []string) error {
	n, err := parseCount("num_shares", args[0])
	if err != nil {
		return err
	}
	threshold, err := parseCount("threshold", args[1])
	if err != nil {
		return err
	}
	// Accept the two counts in either order.
	if threshold > n {
		threshold, n = n, threshold
	}

	phrase, err := normalizePhrase(args[2])
	if err != nil {
		return err
	}

	deterministic, _ := cmd.Flags().GetBool("deterministic")
	session, _ := cmd.Flags().GetString("session")
	if cmd.Flags().Changed("session") && !deterministic {
		return errors.New("the --session argument requires the flag --deterministic to be specified")
	}

	p := newPrinter(cmd)
	p.Info("BIP39 phrase loaded.")
	p.Phrase(phrase)
	p.Blank()
	p.Info("Set up to generate n=%d secret shares for the given BIP39 phrase, such that t=%d shares are required to recover the original phrase.", n, threshold)
	if deterministic {
		p.Info("Sharing mode: deterministic, resharing the same phrase will yield the same set of shares.")
		if cmd.Flags().Changed("session") {
			p.Info("The session parameter %q is used for deriving the shares. To get the same set of shares, reshare using the same session parameter. Using a different (or no) session parameter, resharing will yield a different and incompatible set of shares.", session)
		}
	} else {
		p.Info("Sharing mode: randomized, resharing the same phrase will yield a different and incompatible set of shares.")
	}
	p.Blank()
	p.Info("Running secret sharing procedure...")

	k := newToolkit()
	var shares []string
	var report *bip39toolkit.SelfTestReport
	if deterministic {
		shares, report, err = k.ShareDeterministic(phrase, n, threshold, session)
	} else {
		shares, report, err = k.Share(phrase, n, threshold)
	}
	if err != nil {
		return err
	}
	slog.Debug("share self-test finished",
		"combinations", report.Combinations,
		"exhaustive", report.Exhaustive,
		"elapsed", report.Elapsed)

	p.Info("Shares created.")
	p.Blank()
	if report.Exhaustive {
		p.Info("Selftest successful (all %d combinations checked).", report.Combinations)
	} else {
		p.Info("Selftest successful (stopped after %.1f seconds, %d combinations checked, each share checked at least once).", report.Elapsed.Seconds(), report.Combinations)
	}
	for _, share := range shares {
		p.Phrase(share)
	}
	p.Result(shares...)
	return nil
}
