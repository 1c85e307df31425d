// Package parse parses chat markup text into ast trees.
//
// # Usage
//
//	// Parse a message
//	tree := parse.Parse("> _**example** formatted_ ||string||")
//
//	// Parse with [label](url) hyperlinks, as used in embeds
//	tree := parse.ParseWithAltTextLinks("[example](https://example.com)")
//
// Parsing is total: there is no failure mode. Markup that does not match
// any recognized form is carried through as literal text.
//
// # Related Packages
//
//   - github.com/chatmark/go-chatmark/ast - tree representation
//   - github.com/chatmark/go-chatmark/render - render trees to HTML
package parse
