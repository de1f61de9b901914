// Package shorthand parses the task-capture shorthand.
//
// A line is whitespace-delimited words, classified by leading marker:
// ".name" adds a label reference, "@name" sets the list reference,
// ":N" sets the duration in minutes, and everything else is title
// text. Text after a " n:" separator is the task's notes.
package shorthand

import (
	"strconv"
	"strings"
)

// notesSeparator splits the main part from the trailing notes.
const notesSeparator = " n:"

// Draft is the parsed form of a shorthand line. List and label
// references are human-readable names, not yet resolved to remote
// identifiers.
type Draft struct {
	// Title is the non-marker words joined by single spaces.
	Title string

	// ListName is the list reference without its "@" prefix. When
	// several "@" tokens appear the last one wins here, but such
	// inputs are rejected later by the raw marker-count check.
	ListName string

	// LabelNames holds label references in input order, duplicates
	// preserved.
	LabelNames []string

	// DurationMinutes is nil when no valid ":N" token was present.
	DurationMinutes *int

	// Notes is the trimmed text after the " n:" separator, empty if
	// the separator is absent.
	Notes string
}

// Parse tokenizes input into a Draft. It never fails: a marker token
// that doesn't parse falls back into the title verbatim, and a bare
// "." or "@" is dropped silently.
func Parse(input string) Draft {
	var d Draft

	main := input
	if i := strings.Index(input, notesSeparator); i >= 0 {
		main = input[:i]
		d.Notes = strings.TrimSpace(input[i+len(notesSeparator):])
	}

	var title []string
	for _, word := range strings.Fields(main) {
		switch {
		case strings.HasPrefix(word, "."):
			if label := strings.TrimLeft(word, "."); label != "" {
				d.LabelNames = append(d.LabelNames, label)
			}
		case strings.HasPrefix(word, "@"):
			if list := strings.TrimLeft(word, "@"); list != "" {
				d.ListName = list
			}
		case strings.HasPrefix(word, ":"):
			if minutes, err := strconv.Atoi(strings.TrimLeft(word, ":")); err == nil {
				d.DurationMinutes = &minutes
			} else {
				// Not a duration after all; keep the token, marker included.
				title = append(title, word)
			}
		default:
			title = append(title, word)
		}
	}
	d.Title = strings.Join(title, " ")

	return d
}

// CountListMarkers counts raw "@"-prefixed tokens in the full input,
// notes included. The submission check uses this count rather than
// the captured ListName, so a two-"@" input is always rejected even
// though parsing already picked a winner.
func CountListMarkers(input string) int {
	n := 0
	for _, word := range strings.Fields(input) {
		if strings.HasPrefix(word, "@") {
			n++
		}
	}
	return n
}
