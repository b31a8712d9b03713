// Package cmdline assembles and sanitizes the installer argument string.
package cmdline

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Build concatenates a preset argument string and an optional free-text
// suffix. Either side may be empty; the result never carries leading or
// trailing whitespace.
func Build(presetArgs, extra string) string {
	presetArgs = strings.TrimSpace(presetArgs)
	extra = strings.TrimSpace(extra)
	switch {
	case presetArgs == "":
		return extra
	case extra == "":
		return presetArgs
	default:
		return presetArgs + " " + extra
	}
}

// Sanitize normalizes common unicode characters that often get inserted by
// editors (smart quotes, NBSP, zero-width spaces) and removes embedded NUL
// and other invisible runes.
func Sanitize(s string) string {
	r := strings.NewReplacer(
		"\u2018", "'", // left single quote
		"\u2019", "'", // right single quote
		"\u201C", "\"", // left double quote
		"\u201D", "\"", // right double quote
		"\u00A0", " ", // NO-BREAK SPACE
		"\u200B", "", // zero width space
		"\u200E", "", // left-to-right mark
		"\u200F", "", // right-to-left mark
	)
	rp := r.Replace(s)
	return strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, rp)
}

// Validate checks for characters that will break process creation (newlines
// and control characters) and returns an error describing the problem.
func Validate(s string) error {
	if strings.Contains(s, "\n") {
		return fmt.Errorf("invalid arguments: contains newline characters; the command line must be a single line")
	}
	if strings.IndexFunc(s, func(r rune) bool { return r == 0 || (r < 32 && r != '\t') || r == 0x7f }) != -1 {
		return fmt.Errorf("invalid arguments: contains control characters; remove non-printable characters")
	}
	return nil
}

// Split tokenizes an argument string respecting single and double quotes.
// Quoted tokens lose their surrounding quotes, so `/Dir "C:\My Logs"` yields
// two tokens. Falls back to whitespace splitting if the splitter fails.
func Split(s string) []string {
	if toks, err := shellquote.Split(s); err == nil {
		return toks
	}
	return strings.Fields(s)
}
