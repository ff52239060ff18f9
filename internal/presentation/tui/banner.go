package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the RoboAdvisor title line with its version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	title := out.String(" RoboAdvisor ").Bold().Foreground(out.Color("#ffffff")).Background(out.Color("#4f46e5"))
	ver := out.String(" v" + version).Faint()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s\n", title, ver)
	fmt.Fprintln(w)
}

// Heading styles a single line for terminal output.
func Heading(w io.Writer, text string) string {
	out := termenv.NewOutput(w)
	return out.String(text).Bold().Foreground(out.Color("#818cf8")).String()
}
