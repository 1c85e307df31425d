// Package render renders ast trees to HTML.
//
// # Usage
//
//	// Render with identity resolvers
//	html := render.HTML(parse.Parse(message))
//
//	// Render with lookups for emoji and mentions
//	html := render.HTML(tree,
//	    render.EmojiResolver(emojiPath),
//	    render.UserResolver(userName),
//	    render.RoleResolver(roleNameAndColor),
//	    render.ChannelResolver(channelName),
//	)
//
// Text content is HTML-escaped, so the output can be inserted into a
// document directly. Rendering has no error channel: resolvers always
// return a usable string, and a missing role color falls back to
// DefaultRoleColor.
//
// # Related Packages
//
//   - github.com/chatmark/go-chatmark/ast - tree representation
//   - github.com/chatmark/go-chatmark/parse - parse text to trees
package render
