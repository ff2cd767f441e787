package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength is Discord's limit on message content
const MaxMessageLength = 2000

// msgTruncated replaces the lines that did not fit
const msgTruncated = "…and %d more"

// fitMessage shortens s to MaxMessageLength at a line boundary, noting how
// many lines were dropped.
func fitMessage(s string) string {
	if utf8.RuneCountInString(s) <= MaxMessageLength {
		return s
	}

	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	used := 0
	for i, line := range lines {
		trailer := fmt.Sprintf(msgTruncated, countLines(lines[i:]))
		n := utf8.RuneCountInString(line)
		if used+n+utf8.RuneCountInString(trailer) > MaxMessageLength {
			if i == 0 {
				return string([]rune(s)[:MaxMessageLength-1]) + "…"
			}
			sb.WriteString(trailer)
			return sb.String()
		}
		sb.WriteString(line)
		used += n
	}
	return sb.String()
}

func countLines(lines []string) int {
	n := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}
