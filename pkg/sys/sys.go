// Package sys provides terminal utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// DefaultWidth is the width assumed for outputs that are not terminals, or
// whose width cannot be determined.
const DefaultWidth = 80

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the number of columns of the terminal referenced by the given
// file, or DefaultWidth if it is not a terminal.
func Width(file *os.File) int {
	if !IsATTY(file.Fd()) {
		return DefaultWidth
	}
	col := winCol(file)
	if col <= 0 {
		return DefaultWidth
	}
	return col
}
