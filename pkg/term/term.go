package term

import (
	"fmt"
	"io"
	"runtime"

	"github.com/mattn/go-isatty"
)

const escape = "\x1b"

// Foreground colors
const (
	FgRed   = 31
	FgGreen = 32
)

// Colors turns color output on or off. Windows terminals
// get plain text.
var Colors = runtime.GOOS != "windows"

// Red returns s but colored red
func Red(s string) string { return color(FgRed, s) }

// Green returns s but colored green
func Green(s string) string { return color(FgGreen, s) }

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func color(color int, s string) string {
	if !Colors {
		return s
	}
	return fmt.Sprintf("%[1]s[%dm%s%[1]s[0m", escape, color, s)
}
