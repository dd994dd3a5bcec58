//go:build windows

package logger

import (
	"os"

	"golang.org/x/sys/windows"
)

// ANSI colours need virtual terminal processing switched on for the console
// (Windows 10 build 16257 and later).
func init() {
	stdout := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(stdout, &mode); err != nil {
		return
	}

	windowsColors = windows.SetConsoleMode(stdout, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
