// Package ui holds the CLI color palette and small print helpers.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// Palette for terminal output.
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Warn   = color.New(color.FgYellow)
	Bad    = color.New(color.FgRed)
)

// Banner prints the command banner.
func Banner(subtitle string) {
	fmt.Printf("%s — %s\n", Brand.Sprint("kineto"), subtitle)
}

// StatusIcon returns a check or cross for summary lines.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}
