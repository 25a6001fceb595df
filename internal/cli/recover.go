package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-centralized-systems/bip39toolkit"
	"github.com/de-centralized-systems/bip39toolkit/mnemonic"
)

var recoverCmd = &cobra.Command{
	Use:   "recover <share>...",
	Short: "Recover a BIP39 phrase from secret shares",
	Long: `Recover a BIP39 phrase from the given shares, each passed as one
argument of the form "1: abandon ability ...".

Recovery needs at least as many distinct shares as the threshold
chosen when the phrase was shared. With fewer shares the command still
completes and prints a syntactically valid but wrong phrase; the
number of required shares is deliberately not encoded in the shares
themselves.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecover,
}

func runRecover(cmd *cobra.Command, args []string) error {
	shares := make([]string, len(args))
	seen := make(map[int]bool)
	var duplicates []string
	lengths := make(map[int]bool)
	for i, arg := range args {
		index, value, err := mnemonic.DecodeShare(arg)
		if err != nil {
			return fmt.Errorf("invalid share %q provided: %w", arg, err)
		}
		shares[i], err = mnemonic.EncodeShare(index, value)
		if err != nil {
			return err
		}
		if seen[index] {
			duplicates = append(duplicates, strconv.Itoa(index))
		}
		seen[index] = true
		lengths[len(value)] = true
	}
	if len(duplicates) > 0 {
		return fmt.Errorf("shares with duplicate indices (%s) detected", strings.Join(duplicates, ", "))
	}
	if len(lengths) > 1 {
		return errors.New("inconsistent share length, all shares must contain the same number of words")
	}

	p := newPrinter(cmd)
	p.Info("BIP39 shares loaded.")
	for _, share := range shares {
		p.Phrase(share)
	}
	p.Blank()
	p.Info("Running share recovery procedure...")

	phrase, err := bip39toolkit.Recover(shares)
	if err != nil {
		return err
	}

	p.Info("BIP39 phrase recovered.")
	p.Phrase(phrase)
	p.Result(phrase)
	return nil
}
