package parse

import (
	"testing"

	"github.com/chatmark/go-chatmark/ast"
	"github.com/chatmark/go-chatmark/render"
)

func FuzzParse(f *testing.F) {
	// Seed with various valid inputs
	seeds := []string{
		// Plain text
		"",
		"hello",
		"line one\nline two",

		// Paired delimiters
		"_foo_",
		"*foo*",
		"**foo**",
		"__foo__",
		"~~foo~~",
		"||foo||",
		"***foo***",
		"____foo____",

		// Code
		"`foo`",
		"``foo ` bar``",
		"```foo\nbar```",

		// Quotes
		"> quoted",
		"> \n",
		"a\n> b\n> c",

		// Tokens
		"<@123>",
		"<@!123>",
		"<@&123>",
		"<#123>",
		"<:foo:123>",
		"<a:foo:123>",

		// Links
		"https://example.com",
		"<https://example.com>",
		"[label](https://example.com)",
		"ftp://host/file.txt",

		// Escapes and the shrug glyph
		`\*not italics\*`,
		`trailing \`,
		shrug,

		// Unbalanced markup
		"**unclosed",
		"``",
		"```",
		"||half",
		"_mixed**delims~~",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, text string) {
		// Primary target: parsing is total and should never panic.
		for _, tree := range []ast.Tree{
			Parse(text),
			ParseWithAltTextLinks(text),
		} {
			// Text nodes never hold the empty string.
			err := tree.Visit(func(n *ast.Node, isPost bool) (bool, error) {
				if !isPost && n.Type == ast.TextType && n.Text == "" {
					t.Errorf("empty text node for input %q", text)
				}
				return true, nil
			})
			if err != nil {
				t.Fatal(err)
			}
			// Secondary: rendering a parsed tree should not panic.
			render.HTML(tree)
		}
	})
}
