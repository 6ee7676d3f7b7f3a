package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// ============================================================================
// BARH CLI — Horizontal bar charts from CSV, JSON or XLSX datasets
// ============================================================================

const version = "0.1.0"

var (
	errStyle  = color.New(color.FgRed, color.Bold)
	okStyle   = color.New(color.FgGreen)
	infoStyle = color.New(color.FgCyan)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errStyle.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func statusf(format string, args ...interface{}) {
	okStyle.Fprintf(os.Stderr, "✓ "+format+"\n", args...)
}

func infof(format string, args ...interface{}) {
	infoStyle.Fprintln(os.Stderr, fmt.Sprintf(format, args...))
}
