// Package cli implements the bip39toolkit command line interface.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/de-centralized-systems/bip39toolkit"
)

var cfgFile string

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "bip39toolkit",
	Short: "Generate, share, and recover BIP39 mnemonic phrases",
	Long: `bip39toolkit is an offline tool for handling BIP39 mnemonic phrases.

It generates new phrases from the system's cryptographically secure
random number generator (optionally hardened with user supplied
entropy), splits a phrase into n mnemonic-encoded shares of which any
t recover it, and recovers a phrase from such shares. Conversion
helpers translate between phrases and raw entropy given as hex
strings, dice rolls, playing cards, or word indices.

Every split is followed by a self-test that recovers share subsets
and compares them against the original phrase before any share is
printed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.bip39toolkit.yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false,
		"print only the bare result, one quoted value per line")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"enable debug logging on stderr")
	rootCmd.PersistentFlags().Duration("selftest-timeout", bip39toolkit.DefaultSelfTestTimeout,
		"time budget for the post-split share verification")

	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("selftest-timeout", rootCmd.PersistentFlags().Lookup("selftest-timeout"))
	viper.SetDefault("words", 24)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(recoverCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig loads the optional config file and environment overrides and
// switches the default logger to debug level when --verbose is set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bip39toolkit")
	}

	viper.SetEnvPrefix("BIP39TOOLKIT")
	viper.AutomaticEnv()

	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("config file loaded", "path", viper.ConfigFileUsed())
	}
}

// newToolkit builds a Toolkit configured from flags and config file.
func newToolkit() *bip39toolkit.Toolkit {
	return &bip39toolkit.Toolkit{
		SelfTestTimeout: viper.GetDuration("selftest-timeout"),
	}
}

// newPrinter builds the output printer for cmd, honoring --quiet.
func newPrinter(cmd *cobra.Command) *Printer {
	return NewPrinter(viper.GetBool("quiet"), cmd.OutOrStdout())
}
