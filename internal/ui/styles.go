package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	bannerStyle  = pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	sectionStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
)

// Banner prints the application banner shown at the top of interactive sessions.
func Banner(format string, a ...any) {
	bannerStyle.Println(fmt.Sprintf(" %s ", fmt.Sprintf(format, a...)))
}

// Section prints a heading above a detail block.
func Section(format string, a ...any) {
	sectionStyle.Println("# " + fmt.Sprintf(format, a...))
}
