package cli

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/de-centralized-systems/bip39toolkit/mnemonic"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <phrase>",
	Short: "Convert a BIP39 phrase into raw entropy",
	Long: `Convert the given BIP39 phrase into a hex string or a sequence of
word indices. The --hex or --indices flag selects the output format
(default: --hex). The phrase's checksum is verified before anything is
printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().Bool("hex", false, "output format: a hexstring")
	decodeCmd.Flags().Bool("indices", false, "output format: a sequence of word indices [0-2047]")
	decodeCmd.MarkFlagsMutuallyExclusive("hex", "indices")
}

func runDecode(cmd *cobra.Command, args []string) error {
	phrase, err := normalizePhrase(args[0])
	if err != nil {
		return err
	}

	p := newPrinter(cmd)
	p.Info("BIP39 phrase loaded.")
	p.Phrase(phrase)
	p.Blank()

	var result string
	if indices, _ := cmd.Flags().GetBool("indices"); indices {
		p.Info("Converting the given BIP39 phrase to a list of word indices.")
		idx, err := mnemonic.ToIndices(phrase)
		if err != nil {
			return err
		}
		parts := make([]string, len(idx))
		for i, v := range idx {
			parts[i] = strconv.Itoa(v)
		}
		result = strings.Join(parts, ", ")
	} else {
		p.Info("Converting the given BIP39 phrase to a hexstring.")
		entropy, err := mnemonic.Decode(phrase)
		if err != nil {
			return err
		}
		result = hex.EncodeToString(entropy)
	}

	p.Info("Decoding completed.")
	p.Blank()
	p.Info("%q", result)
	p.Result(result)
	return nil
}
