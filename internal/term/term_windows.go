//go:build windows

// Package term provides minimal terminal detection for CLI output decisions.
package term

import "golang.org/x/sys/windows"

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd uintptr) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(fd), &mode) == nil
}
