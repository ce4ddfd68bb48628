package main

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// useColor honours https://no-color.org
var useColor = os.Getenv("NO_COLOR") == ""

func paint(color, text string) string {
	if !useColor {
		return text
	}
	return color + text + colorReset
}

func status(color, symbol, format string, a ...any) {
	fmt.Println(paint(color, symbol+" "+fmt.Sprintf(format, a...)))
}

func PrintInfo(format string, a ...any)    { status(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...any) { status(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...any) { status(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...any)   { status(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Println()
	fmt.Println(paint(colorYellow, "=== "+title+" ==="))
}

// writerOrStdout lets commands take an injected writer in tests
func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
