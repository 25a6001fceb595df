package cli

import (
	"github.com/spf13/cobra"

	"github.com/de-centralized-systems/bip39toolkit/mnemonic"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <input>",
	Short: "Convert raw entropy into a BIP39 phrase",
	Long: `Convert the given input into the corresponding BIP39 phrase. The
--hex, --dice, --cards, or --indices flag selects the input format
(default: --hex). Sequences of dice rolls, playing cards, or word
indices are passed as a single argument, grouped freely with spaces,
commas, or dashes.

Dice rolls and playing cards are entropy sources: their bits are
collected and left-trimmed to the largest phrase size they cover, so
some extra rolls or draws beyond 128 bits are never wasted. Word
indices map one to one onto phrase words and must already include the
checksum word.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().Bool("hex", false, "input format: a hexstring of 128, 160, 192, 224, or 256 bits")
	encodeCmd.Flags().Bool("dice", false, "input format: a sequence of dice rolls [1-6]+")
	encodeCmd.Flags().Bool("cards", false, "input format: a sequence of playing cards [A2-9TJQK][CDHS]")
	encodeCmd.Flags().Bool("indices", false, "input format: a sequence of word indices [0-2047]")
	encodeCmd.MarkFlagsMutuallyExclusive("hex", "dice", "cards", "indices")
}

func runEncode(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)
	p.Info("Input loaded: %q", args[0])
	p.Blank()

	dice, _ := cmd.Flags().GetBool("dice")
	cards, _ := cmd.Flags().GetBool("cards")
	indices, _ := cmd.Flags().GetBool("indices")

	var phrase string
	switch {
	case dice, cards:
		var bits string
		var err error
		if dice {
			p.Info("Converting the given sequence of dice rolls to the corresponding BIP39 phrase.")
			bits, err = parseDice(args[0])
		} else {
			p.Info("Converting the given sequence of playing cards to the corresponding BIP39 phrase.")
			bits, err = parseCards(args[0])
		}
		if err != nil {
			return err
		}
		entropy, trimmed, err := entropyFromBits(bits)
		if err != nil {
			return err
		}
		if trimmed != len(bits) {
			p.Info("Note: input of length: %d bits, left-trimmed to %d bits.", len(bits), trimmed)
		}
		if phrase, err = mnemonic.Encode(entropy); err != nil {
			return err
		}

	case indices:
		p.Info("Converting the given list of word indices to the corresponding BIP39 phrase.")
		idx, err := parseIndices(args[0])
		if err != nil {
			return err
		}
		if phrase, err = mnemonic.FromIndices(idx); err != nil {
			return err
		}

	default:
		p.Info("Converting the given hexstring to the corresponding BIP39 phrase.")
		entropy, err := parseHex(args[0])
		if err != nil {
			return err
		}
		if phrase, err = mnemonic.Encode(entropy); err != nil {
			return err
		}
	}

	p.Info("BIP39 phrase created.")
	p.Phrase(phrase)
	p.Result(phrase)
	return nil
}
