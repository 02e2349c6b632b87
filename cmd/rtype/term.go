package main

import (
	"os"

	"golang.org/x/term"
)

// terminalSize returns the size of stdout, 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
