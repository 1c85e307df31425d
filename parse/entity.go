package parse

import (
	"regexp"
	"strings"

	"github.com/chatmark/go-chatmark/ast"
)

// Entity matchers are anchored at the start of the slice: each either
// consumes a prefix and yields a leaf node, or fails without consuming.
var (
	emojiRx   = regexp.MustCompile(`^<(a?):(\w+):(\d+)>`)
	userRx    = regexp.MustCompile(`^<@!?(\d+)>`)
	roleRx    = regexp.MustCompile(`^<@&(\d+)>`)
	channelRx = regexp.MustCompile(`^<#(\d+)>`)
	linkRx    = regexp.MustCompile(`^(?:https?|ftp|file)://[-A-Za-z0-9+&@#/%?=~_|!:,.;]*[A-Za-z0-9+&@#/%=~_|]`)
)

func matchEmoji(s string) (*ast.Node, string, bool) {
	m := emojiRx.FindStringSubmatch(s)
	if m == nil {
		return nil, s, false
	}
	ext := ".png"
	if m[1] == "a" {
		ext = ".gif"
	}
	return ast.Emoji(m[2], m[3]+ext), s[len(m[0]):], true
}

func matchUser(s string) (*ast.Node, string, bool) {
	// <@id> and the nickname form <@!id> resolve to the same node.
	m := userRx.FindStringSubmatch(s)
	if m == nil {
		return nil, s, false
	}
	return ast.User(m[1]), s[len(m[0]):], true
}

func matchRole(s string) (*ast.Node, string, bool) {
	m := roleRx.FindStringSubmatch(s)
	if m == nil {
		return nil, s, false
	}
	return ast.Role(m[1]), s[len(m[0]):], true
}

func matchChannel(s string) (*ast.Node, string, bool) {
	m := channelRx.FindStringSubmatch(s)
	if m == nil {
		return nil, s, false
	}
	return ast.Channel(m[1]), s[len(m[0]):], true
}

// matchURL recognizes a bare URL, or the same URL wrapped in <...>. The
// final character class of linkRx excludes trailing punctuation so that
// sentence punctuation is not swallowed.
func matchURL(s string) (url, rest string, ok bool) {
	if u := linkRx.FindString(s); u != "" {
		return u, s[len(u):], true
	}
	if strings.HasPrefix(s, "<") {
		u := linkRx.FindString(s[1:])
		if u != "" && strings.HasPrefix(s[1+len(u):], ">") {
			return u, s[2+len(u):], true
		}
	}
	return "", s, false
}

func matchLink(s string) (*ast.Node, string, bool) {
	u, rest, ok := matchURL(s)
	if !ok {
		return nil, s, false
	}
	return ast.Link(u, u), rest, true
}

// matchAltTextLink additionally recognizes [label](url), where the url may
// be <...>-wrapped. The bare form is tried first.
func matchAltTextLink(s string) (*ast.Node, string, bool) {
	if n, rest, ok := matchLink(s); ok {
		return n, rest, true
	}
	if !strings.HasPrefix(s, "[") {
		return nil, s, false
	}
	end := strings.Index(s[1:], "]")
	if end < 0 {
		return nil, s, false
	}
	label := s[1 : 1+end]
	r := s[2+end:]
	if !strings.HasPrefix(r, "(") {
		return nil, s, false
	}
	u, r, ok := matchURL(r[1:])
	if !ok || !strings.HasPrefix(r, ")") {
		return nil, s, false
	}
	return ast.Link(label, u), r[1:], true
}
