// Strided resolves Python-style range triples (start:stop:step) against a
// sequence length. It can also resolve them with the legacy non-clamping
// rules, perform a strided assignment into a list, and keep a history of
// queries in a database.
package main

import (
	"os"

	"src.strided.sh/pkg/prog"
	"src.strided.sh/pkg/rangetool"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&prog.VersionProgram{}, &rangetool.HistoryProgram{},
			&rangetool.Program{})))
}
