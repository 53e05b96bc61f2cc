/*
Gcide-patch re-renders a GCIDE file through the round-trip emitter.

Usage:

	gcide-patch [flags] INFILE [OUTFILE]

INFILE is read, parsed, and re-emitted through the GCIDE emitter;
malformed input is marked inline with "[ERROR->]" rather than causing
failure. If OUTFILE is omitted, INFILE is overwritten in place. INFILE
is never touched until the patched output has been fully computed.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/websterdict/gcide"
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: gcide-patch INFILE [OUTFILE]")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	args := pflag.Args()
	if len(args) < 1 {
		pflag.Usage()
		return 2
	}
	infile := args[0]
	outfile := infile
	if len(args) > 1 {
		outfile = args[1]
	}

	contents, err := os.ReadFile(infile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	patched := gcide.Patch(gcide.DecodeLenient(contents))

	if err := os.WriteFile(outfile, patched, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
