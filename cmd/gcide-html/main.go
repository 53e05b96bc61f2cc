/*
Gcide-html renders a GCIDE file to a standalone HTML document.

Usage:

	gcide-html [flags] INFILE [OUTFILE]

INFILE is read and parsed; every entry is rendered through the HTML
emitter and wrapped in a minimal document. If OUTFILE is omitted, the
result is written to standard output.
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
		fmt.Fprintln(os.Stderr, "usage: gcide-html INFILE [OUTFILE]")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	args := pflag.Args()
	if len(args) < 1 {
		pflag.Usage()
		return 2
	}
	infile := args[0]

	contents, err := os.ReadFile(infile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	doc := gcide.RenderHTMLDocument(gcide.DecodeLenient(contents))

	if len(args) > 1 {
		if err := os.WriteFile(args[1], doc, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	if _, err := os.Stdout.Write(doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
