// bip39toolkit generates, shares, and recovers BIP39 mnemonic phrases.
//
// Usage:
//
//	bip39toolkit generate [num-words] [--entropy <string>] [--deterministic]
//	bip39toolkit share <num-shares> <threshold> <phrase> [--deterministic] [--session <string>]
//	bip39toolkit recover <share>...
//	bip39toolkit encode <input> [--hex|--dice|--cards|--indices]
//	bip39toolkit decode <phrase> [--hex|--indices]
//	bip39toolkit version
//
// generate creates a new phrase of 12, 15, 18, 21, or 24 words (default
// 24) from the system's cryptographically secure random number generator.
// With --entropy, a keyed derivation of the given string is mixed into
// the random bytes; with --deterministic (requires --entropy) the phrase
// is derived from the string alone.
//
// share splits a phrase into <num-shares> shares such that any
// <threshold> of them recover it. Each share is itself a BIP39 phrase
// prefixed with its share index ("1: abandon ability ...") and carries
// the same checksum protection as the original phrase. Every split is
// followed by a self-test that recovers share subsets and compares them
// against the phrase; only a verified share set is printed. Sharing is
// randomized unless --deterministic is given, in which case the same
// phrase (and optional --session string) always produces the same
// shares.
//
// recover reassembles the phrase from the given shares, each passed as
// one argument. It needs at least <threshold> distinct shares; with
// fewer it prints a syntactically valid but wrong phrase.
//
// encode converts raw entropy into a phrase. The input is a hex string
// by default; --dice and --cards collect entropy from physical sources
// and left-trim it to the largest phrase size it covers, and --indices
// maps wordlist positions directly onto words.
//
// decode converts a phrase back into a hex string (default) or the
// sequence of its word indices, verifying the checksum first.
//
// All commands accept --quiet to print only the bare result, one quoted
// value per line, and --verbose to enable debug logging on stderr.
// Defaults can be placed in $HOME/.bip39toolkit.yaml or given through
// BIP39TOOLKIT_* environment variables.
//
// Example:
//
//	> bip39toolkit generate 24
//	> bip39toolkit share 5 3 "vault thing ..." --deterministic --session family
//	> bip39toolkit recover "1: squeeze proud ..." "4: loan width ..." "5: happy odor ..."
package main
