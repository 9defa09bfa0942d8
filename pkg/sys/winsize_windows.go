package sys

import (
	"os"

	"golang.org/x/sys/windows"
)

func winCol(file *os.File) int {
	var info windows.ConsoleScreenBufferInfo
	err := windows.GetConsoleScreenBufferInfo(windows.Handle(file.Fd()), &info)
	if err != nil {
		return -1
	}
	return int(info.Window.Right - info.Window.Left + 1)
}
