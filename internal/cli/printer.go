package cli

import (
	"crypto/sha256"
	"fmt"
	"io"
)

// A Printer writes command output. In normal mode it prints narrative
// lines plus quoted values with their SHA2-256 fingerprint, so a phrase
// on paper can be checked against a transcript without retyping it. In
// quiet mode only the bare result values are printed, one per line.
type Printer struct {
	quiet bool
	out   io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(quiet bool, out io.Writer) *Printer {
	return &Printer{quiet: quiet, out: out}
}

// Info prints one narrative line. Suppressed in quiet mode.
func (p *Printer) Info(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Blank prints an empty separator line. Suppressed in quiet mode.
func (p *Printer) Blank() {
	if !p.quiet {
		fmt.Fprintln(p.out)
	}
}

// Phrase prints a quoted phrase or share together with its SHA2-256
// fingerprint. Suppressed in quiet mode.
func (p *Printer) Phrase(phrase string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "\n%q\n", phrase)
	fmt.Fprintf(p.out, "(SHA2-256 hash: %x)\n", sha256.Sum256([]byte(phrase)))
}

// Result prints the bare result values, one quoted value per line. Only
// active in quiet mode, where it is the command's entire output.
func (p *Printer) Result(values ...string) {
	if !p.quiet {
		return
	}
	for _, v := range values {
		fmt.Fprintf(p.out, "%q\n", v)
	}
}
