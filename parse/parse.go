package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/chatmark/go-chatmark/ast"
	"github.com/chatmark/go-chatmark/debug"
)

const shrug = `¯\_(ツ)_/¯`

// Parse parses the given text as chat markup and returns the tree.
func Parse(text string, opts ...ParseOption) ast.Tree {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return scan(text, true, pOpts.altTextLinks)
}

// ParseWithAltTextLinks parses like Parse and additionally recognizes
// [label](url) hyperlinks, which are supported in embeds.
func ParseWithAltTextLinks(text string) ast.Tree {
	return Parse(text, ParseAltTextLinks(true))
}

// section parses the delimited content of a span. Quoting starts disabled:
// only the outermost scan and text immediately following a newline may
// begin a block quote.
func section(input string, altLinks bool) []*ast.Node {
	return scan(input, false, altLinks)
}

// scan is the control loop: a single left-to-right pass that flushes plain
// text around structural characters and matched nodes. Each branch strictly
// advances the input, so the loop terminates.
func scan(input string, quote, altLinks bool) ast.Tree {
	var tree ast.Tree
outer:
	for len(input) > 0 {
		for i, c := range input {
			switch {
			case c == '\n':
				if i > 0 {
					tree = append(tree, ast.Text(input[:i]))
				}
				tree = append(tree, ast.Newline())
				quote = true
				input = input[i+1:]
				continue outer
			case c == '¯' && strings.HasPrefix(input[i:], shrug):
				// The shrug glyph stays a single verbatim text node so its
				// backslash does not escape the following underscore.
				if i > 0 {
					tree = append(tree, ast.Text(input[:i]))
				}
				tree = append(tree, ast.Text(shrug))
				input = input[i+len(shrug):]
				continue outer
			case c == '\\' && i+1 < len(input):
				if i > 0 {
					tree = append(tree, ast.Text(input[:i]))
				}
				_, size := utf8.DecodeRuneInString(input[i+1:])
				tree = append(tree, ast.Text(input[i+1:i+1+size]))
				input = input[i+1+size:]
				continue outer
			}
			n, rest, ok := match(input[i:], quote, altLinks)
			if !ok {
				// Not immediately after a newline anymore.
				quote = false
				continue
			}
			if debug.Match() {
				debug.Logf("matched %s consuming %d bytes\n", n.Type, len(input)-i-len(rest))
			}
			// A block quote consumes its trailing newline when present, so
			// the flag is left as-is in that case.
			if n.Type != ast.BlockquoteType {
				quote = false
			}
			if i > 0 {
				tree = append(tree, ast.Text(input[:i]))
			}
			tree = append(tree, n)
			input = rest
			continue outer
		}
		tree = append(tree, ast.Text(input))
		input = ""
	}
	return tree
}

// match tries the matchers at the start of s in fixed priority order. The
// first that succeeds wins; order encodes disambiguation (e.g. bold before
// italics) and is part of the contract.
func match(s string, quote, altLinks bool) (*ast.Node, string, bool) {
	if quote {
		if n, rest, ok := matchBlockquote(s, altLinks); ok {
			return n, rest, true
		}
	}
	if n, rest, ok := matchEmoji(s); ok {
		return n, rest, true
	}
	if n, rest, ok := matchUser(s); ok {
		return n, rest, true
	}
	if n, rest, ok := matchRole(s); ok {
		return n, rest, true
	}
	if n, rest, ok := matchChannel(s); ok {
		return n, rest, true
	}
	if altLinks {
		if n, rest, ok := matchAltTextLink(s); ok {
			return n, rest, true
		}
	} else if n, rest, ok := matchLink(s); ok {
		return n, rest, true
	}
	if n, rest, ok := matchMultilineCode(s); ok {
		return n, rest, true
	}
	if n, rest, ok := matchInlineCode(s); ok {
		return n, rest, true
	}
	if n, rest, ok := matchSpoiler(s, altLinks); ok {
		return n, rest, true
	}
	if n, rest, ok := matchUnderline(s, altLinks); ok {
		return n, rest, true
	}
	if n, rest, ok := matchStrikethrough(s, altLinks); ok {
		return n, rest, true
	}
	if n, rest, ok := matchBold(s, altLinks); ok {
		return n, rest, true
	}
	if n, rest, ok := matchItalics(s, altLinks); ok {
		return n, rest, true
	}
	return nil, s, false
}
