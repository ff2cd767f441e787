package command

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix starts every text command
const Prefix = "/"

// Command is a parsed inbound message
type Command struct {
	Kind Kind
	// Arg is everything after the keyword and one separating whitespace rune, verbatim
	Arg string
}

// Parse splits text into a command keyword and its argument.
// Text that is not a known command yields ok=false.
func Parse(text string) (Command, bool) {
	if !strings.HasPrefix(text, Prefix) {
		return Command{}, false
	}

	keyword, arg := splitKeyword(strings.TrimPrefix(text, Prefix))
	// "/add@closet_bot Hat" addresses this bot explicitly in group chats
	keyword, _, _ = strings.Cut(keyword, "@")

	kind, ok := KindFromKeyword(keyword)
	if !ok {
		return Command{}, false
	}
	return Command{Kind: kind, Arg: arg}, true
}

// splitKeyword cuts body at its first whitespace rune, which is dropped.
func splitKeyword(body string) (keyword, arg string) {
	i := strings.IndexFunc(body, unicode.IsSpace)
	if i < 0 {
		return body, ""
	}
	_, size := utf8.DecodeRuneInString(body[i:])
	return body[:i], body[i+size:]
}

// Text renders c back into its message form
func (c Command) Text() string {
	if c.Arg == "" {
		return Prefix + string(c.Kind)
	}
	return Prefix + string(c.Kind) + " " + c.Arg
}
