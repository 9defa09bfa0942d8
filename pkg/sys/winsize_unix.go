//go:build unix

package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

func winCol(file *os.File) int {
	ws, err := unix.IoctlGetWinsize(int(file.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return -1
	}
	// Serial consoles may report 0.
	return int(ws.Col)
}
