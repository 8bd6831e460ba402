package console

import (
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var (
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Success renders s in green.
func Success(s string) string { return successStyle.Render(s) }

// Highlight renders s in yellow.
func Highlight(s string) string { return highlightStyle.Render(s) }

// Failure renders s in red.
func Failure(s string) string { return failStyle.Render(s) }

// Symbols holds the status marks printed next to check results.
type Symbols struct {
	OK   string
	Fail string
}

// StatusSymbols returns the ok/fail marks. The Windows console cannot render
// the heavy check marks, so it gets √ and × instead.
func StatusSymbols() Symbols {
	if runtime.GOOS == "windows" {
		return Symbols{OK: "√", Fail: "×"}
	}
	return Symbols{OK: "✔", Fail: "✖"}
}

// controlChars matches C0 and C1 control characters except \n and \r.
var controlChars = runes.Remove(runes.Predicate(func(r rune) bool {
	if r == '\n' || r == '\r' {
		return false
	}
	return r <= 0x1F || (r >= 0x7F && r <= 0x9F)
}))

// StripControlChars removes invisible control characters from s, keeping
// newlines and carriage returns.
func StripControlChars(s string) string {
	out, _, err := transform.String(controlChars, s)
	if err != nil {
		return s
	}
	return out
}
