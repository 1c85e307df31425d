// Package chatmark converts chat markup (bold/italic/underline/
// strikethrough/spoiler markers, block quotes, code spans, mention tokens,
// and hyperlinks) into a typed syntax tree and renders that tree to HTML.
//
// The subpackages carry the work: parse scans text into an ast.Tree, and
// render walks the tree emitting HTML with pluggable resolution of emoji
// and mention ids. This package wraps the common parse-then-render pair.
//
//	html := chatmark.ToHTML("> _**example** formatted_ ||string||")
//
// Use ToHTMLWithResolvers when the input carries custom emoji or mentions;
// the identity resolvers used by ToHTML echo raw ids back, which is rarely
// what a chat front end wants.
package chatmark

import (
	"github.com/chatmark/go-chatmark/parse"
	"github.com/chatmark/go-chatmark/render"
)

// ToHTML parses text and renders it with identity resolvers.
func ToHTML(text string) string {
	return render.HTML(parse.Parse(text))
}

// ToHTMLWithResolvers parses text and renders it with the given emoji,
// user, role, and channel resolvers.
func ToHTMLWithResolvers(text string, emoji, user, role, channel render.Resolver) string {
	return render.HTMLWithResolvers(parse.Parse(text), emoji, user, role, channel)
}
