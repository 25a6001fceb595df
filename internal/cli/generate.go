package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/de-centralized-systems/bip39toolkit/mnemonic"
)

var generateCmd = &cobra.Command{
	Use:   "generate [num-words]",
	Short: "Generate a new BIP39 phrase",
	Long: `Generate a new BIP39 phrase of 12, 15, 18, 21, or 24 words (default 24).

Without further flags the phrase comes from the system's
cryptographically secure random number generator. With --entropy the
random bytes are mixed with a keyed derivation of the given string, so
the phrase stays unpredictable as long as either source is. With
--deterministic (which requires --entropy) the phrase is derived from
the entropy string alone and can be regenerated from it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("deterministic", false,
		"derive the phrase from --entropy alone, without randomness")
	generateCmd.Flags().String("entropy", "",
		"user supplied entropy to mix into the phrase")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	numWords := viper.GetInt("words")
	if len(args) == 1 {
		switch args[0] {
		case "12", "15", "18", "21", "24":
			numWords, _ = strconv.Atoi(args[0])
		default:
			return fmt.Errorf("invalid value %q for argument num-words (choose from {12, 15, 18, 21, 24})", args[0])
		}
	}
	numBits, err := mnemonic.BitLength(numWords)
	if err != nil {
		return err
	}

	deterministic, _ := cmd.Flags().GetBool("deterministic")
	entropy, _ := cmd.Flags().GetString("entropy")
	haveEntropy := cmd.Flags().Changed("entropy")
	if deterministic && !haveEntropy {
		return errors.New("the --deterministic flag requires the argument --entropy to be specified")
	}

	p := newPrinter(cmd)
	k := newToolkit()

	var phrase string
	switch {
	case deterministic:
		p.Info("Deterministically deriving a BIP39 phrase (%d words / %d bits) from the user-supplied entropy.", numWords, numBits)
		p.Info("CAUTION: The security of the generated phrase critically depends on the quality of the provided entropy.")
		phrase, err = k.GenerateDeterministic(numWords, entropy)
	case haveEntropy:
		p.Info("Generating a BIP39 phrase (%d words / %d bits) using the system's internal cryptographically secure random number generator in combination with the user-supplied entropy.", numWords, numBits)
		phrase, err = k.GenerateMixed(numWords, entropy)
	default:
		p.Info("Generating a BIP39 phrase (%d words / %d bits) using the system's internal cryptographically secure random number generator (no additional user-supplied entropy is used).", numWords, numBits)
		phrase, err = k.Generate(numWords)
	}
	if err != nil {
		return err
	}

	p.Phrase(phrase)
	p.Result(phrase)
	return nil
}
