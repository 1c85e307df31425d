// Package ast provides the syntax tree for chat markup documents.
//
// # Overview
//
// A parsed message is represented as a Tree, an ordered sequence of Node
// values in source order. Nodes are either leaves (text runs, custom emoji,
// mentions, hyperlinks, code spans, explicit newlines) or containers
// (blockquote, spoiler, underline, strikethrough, bold, italics) holding an
// ordered sequence of child nodes.
//
// The tree works as a tagged union: the Type field indicates the node kind,
// and values are placed in fields depending on the type.
//
// # Node Types
//
//   - TextType: verbatim run of characters, not yet HTML-escaped
//   - EmojiType: custom emoji with a display name and a file id carrying a
//     .gif or .png suffix chosen at parse time
//   - UserType, RoleType, ChannelType: mention with an opaque id
//   - LinkType: hyperlink with a label and a target (equal for bare links)
//   - MultilineCodeType, InlineCodeType: raw code content, newlines kept
//   - BlockquoteType, SpoilerType, UnderlineType, StrikethroughType,
//     BoldType, ItalicsType: containers with Children
//   - NewlineType: explicit line break (never emitted inside code nodes,
//     whose raw newlines are preserved in Text instead)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	ast.Text("hello")
//	ast.Emoji("ferris", "123.png")
//	ast.Bold(ast.Text("loud"))
//	ast.Link("example", "https://example.com")
//
// # Invariants
//
// Trees produced by the parse package satisfy:
//
//   - TextType nodes never hold the empty string.
//   - A container's children come from parsing exactly the delimited inner
//     substring; no child spans the parent's delimiters.
//   - Blockquote children come from a single logical line, so no raw
//     newline from the source survives past the quote delimiter.
//   - Mention and emoji ids are the captured digit/word runs from the
//     source, unvalidated and unnormalized.
//
// Trees are immutable after construction. Nothing here is safe for
// concurrent mutation, but distinct trees may be built and consumed from
// any number of goroutines without coordination.
//
// # Related Packages
//
//   - github.com/chatmark/go-chatmark/parse - parses message text to a Tree
//   - github.com/chatmark/go-chatmark/render - renders a Tree to HTML
package ast
