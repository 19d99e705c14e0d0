// Package log provides colored terminal output for authkit.
// Messages are prefixed with a bracketed level tag and written to Out.
package log

import (
	"fmt"
	"io"
	"os"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorCyan   = "\033[0;36m"
	colorWhite  = "\033[1;37m"
)

const sectionLine = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Out receives all log output. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

// OsExit is the function called by Fatal to terminate the process.
var OsExit = os.Exit

func emit(color, tag, msg string) {
	fmt.Fprintf(Out, "%s[%s]%s %s\n", color, tag, colorReset, msg)
}

// Info prints a white [INFO] message.
func Info(msg string) { emit(colorWhite, "INFO", msg) }

// Success prints a green [SUCCESS] message.
func Success(msg string) { emit(colorGreen, "SUCCESS", msg) }

// Warning prints a yellow [WARNING] message.
func Warning(msg string) { emit(colorYellow, "WARNING", msg) }

// Error prints a red [ERROR] message.
func Error(msg string) { emit(colorRed, "ERROR", msg) }

// Fatal prints a red [ERROR] message then exits with status 1.
func Fatal(msg string) {
	Error(msg)
	OsExit(1)
}

// Section prints a cyan box-draw separator around title.
func Section(title string) {
	fmt.Fprintf(Out, "\n%s%s%s\n", colorCyan, sectionLine, colorReset)
	fmt.Fprintf(Out, "%s%s%s\n", colorCyan, title, colorReset)
	fmt.Fprintf(Out, "%s%s%s\n\n", colorCyan, sectionLine, colorReset)
}
