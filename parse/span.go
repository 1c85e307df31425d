package parse

import (
	"strings"

	"github.com/chatmark/go-chatmark/ast"
)

// delimited matches open, then content up to the first occurrence of close,
// then close. Content may be empty.
func delimited(s, open, close string) (inner, rest string, ok bool) {
	if !strings.HasPrefix(s, open) {
		return "", s, false
	}
	body := s[len(open):]
	j := strings.Index(body, close)
	if j < 0 {
		return "", s, false
	}
	return body[:j], body[j+len(close):], true
}

// Code content is taken verbatim: it is never recursively scanned, and raw
// newlines are kept for the renderer to handle.

func matchMultilineCode(s string) (*ast.Node, string, bool) {
	inner, rest, ok := delimited(s, "```", "```")
	if !ok {
		return nil, s, false
	}
	return ast.MultilineCode(inner), rest, true
}

func matchInlineCode(s string) (*ast.Node, string, bool) {
	// The double-backtick form comes first; its content may contain a
	// single backtick.
	if inner, rest, ok := delimited(s, "``", "``"); ok {
		return ast.InlineCode(inner), rest, true
	}
	if len(s) >= 2 && s[0] == '`' && s[1] != '`' {
		j := strings.IndexByte(s[1:], '`')
		if j >= 0 {
			return ast.InlineCode(s[1 : 1+j]), s[2+j:], true
		}
	}
	return nil, s, false
}

// matchBlockquote is only tried when quoting is allowed. Its patterns, in
// order: a quoted line followed by a newline (the newline is consumed, not
// re-emitted), an empty quoted line, and a quoted line running to end of
// input.
func matchBlockquote(s string, altLinks bool) (*ast.Node, string, bool) {
	r, found := strings.CutPrefix(s, "> ")
	if !found {
		return nil, s, false
	}
	var inner, rest string
	switch j := strings.IndexByte(r, '\n'); {
	case j > 0:
		inner, rest = r[:j], r[j+1:]
	case j == 0:
		// "> " directly before a newline quotes the newline itself.
		inner, rest = "\n", r[1:]
	case len(r) > 0:
		inner, rest = r, ""
	default:
		return nil, s, false
	}
	return ast.Blockquote(section(inner, altLinks)...), rest, true
}

func matchSpoiler(s string, altLinks bool) (*ast.Node, string, bool) {
	inner, rest, ok := delimited(s, "||", "||")
	if !ok {
		return nil, s, false
	}
	return ast.Spoiler(section(inner, altLinks)...), rest, true
}

func matchStrikethrough(s string, altLinks bool) (*ast.Node, string, bool) {
	inner, rest, ok := delimited(s, "~~", "~~")
	if !ok {
		return nil, s, false
	}
	return ast.Strikethrough(section(inner, altLinks)...), rest, true
}

func matchUnderline(s string, altLinks bool) (*ast.Node, string, bool) {
	inner, rest, ok := doubled(s, '_')
	if !ok {
		return nil, s, false
	}
	return ast.Underline(section(inner, altLinks)...), rest, true
}

func matchBold(s string, altLinks bool) (*ast.Node, string, bool) {
	inner, rest, ok := doubled(s, '*')
	if !ok {
		return nil, s, false
	}
	return ast.Bold(section(inner, altLinks)...), rest, true
}

// doubled matches a doubled delimiter pair (__ or **). Four alternatives
// resolve the ambiguity with the single-character italics delimiter, tried
// in this order; the first that matches wins.
func doubled(s string, d byte) (inner, rest string, ok bool) {
	dd := string([]byte{d, d})
	ddd := dd + string(d)
	dddd := dd + dd
	// Degenerate 4-marker run: ____x____.
	if inner, rest, ok = delimited(s, dddd, dddd); ok {
		return inner, rest, true
	}
	if !strings.HasPrefix(s, dd) {
		return "", s, false
	}
	r := s[2:]
	// Content wrapped one level in the single delimiter: __ then _x_
	// closed by ___. Keeps the inner marker for the nested scan.
	if strings.HasPrefix(r, string(d)) {
		if j := strings.Index(r[1:], ddd); j >= 0 {
			return r[:j+2], r[j+4:], true
		}
	}
	// Content ending in a lone trailing single delimiter before the
	// closing pair: __x_ closed by ___.
	if j := strings.Index(r, ddd); j >= 0 {
		return r[:j+1], r[j+3:], true
	}
	// Plain doubled pair.
	if j := strings.Index(r, dd); j >= 0 {
		return r[:j], r[j+2:], true
	}
	return "", s, false
}

func matchItalics(s string, altLinks bool) (*ast.Node, string, bool) {
	// Underscore form first, then asterisk; content must not contain the
	// delimiter and must be non-empty.
	for _, d := range []byte{'_', '*'} {
		if len(s) < 2 || s[0] != d || s[1] == d {
			continue
		}
		if j := strings.IndexByte(s[1:], d); j >= 0 {
			return ast.Italics(section(s[1:1+j], altLinks)...), s[2+j:], true
		}
	}
	return nil, s, false
}
