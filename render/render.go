package render

import (
	"html"
	"strings"
	"unicode"

	"github.com/chatmark/go-chatmark/ast"
)

// DefaultRoleColor is used when the role resolver supplies no color.
const DefaultRoleColor = "#afafaf"

type renderState struct {
	emoji   Resolver
	user    Resolver
	role    Resolver
	channel Resolver
	enlarge bool
}

func echo(id string) (string, string) { return id, "" }

// HTML renders the tree to a single HTML string. Resolvers are invoked
// synchronously in document order.
func HTML(tree ast.Tree, opts ...RenderOption) string {
	rs := &renderState{emoji: echo, user: echo, role: echo, channel: echo}
	for _, f := range opts {
		f(rs)
	}
	rs.enlarge = soloEmoji(tree)
	var b strings.Builder
	renderAll(&b, tree, rs)
	return b.String()
}

// HTMLWithResolvers renders with the four resolvers supplied positionally.
func HTMLWithResolvers(tree ast.Tree, emoji, user, role, channel Resolver) string {
	return HTML(tree,
		EmojiResolver(emoji),
		UserResolver(user),
		RoleResolver(role),
		ChannelResolver(channel))
}

// soloEmoji reports whether the top-level sequence is only custom emoji
// and whitespace text. A message consisting solely of emoji renders every
// emoji, however deeply nested, with the enlargement class.
func soloEmoji(tree ast.Tree) bool {
	for _, n := range tree {
		switch n.Type {
		case ast.EmojiType:
		case ast.TextType:
			if strings.ContainsFunc(n.Text, func(r rune) bool { return !unicode.IsSpace(r) }) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func renderAll(b *strings.Builder, nodes []*ast.Node, rs *renderState) {
	for _, n := range nodes {
		renderNode(b, n, rs)
	}
}

func renderNode(b *strings.Builder, n *ast.Node, rs *renderState) {
	switch n.Type {
	case ast.TextType:
		b.WriteString(html.EscapeString(n.Text))
	case ast.EmojiType:
		path, _ := rs.emoji(n.ID)
		class := "emoji"
		if rs.enlarge {
			class = "emoji wumboji"
		}
		b.WriteString(`<img src="` + path + `" alt="` + n.Name +
			`" class="` + class + `" title="` + n.Name + `"></img>`)
	case ast.UserType:
		name, _ := rs.user(n.ID)
		b.WriteString(`<span class="user">@` + name + `</span>`)
	case ast.RoleType:
		name, c := rs.role(n.ID)
		if c == "" {
			c = DefaultRoleColor
		}
		b.WriteString(`<div class="role" style="color: ` + c + `">@` + name +
			`<span style="background-color: ` + c + `"></span></div>`)
	case ast.ChannelType:
		name, _ := rs.channel(n.ID)
		b.WriteString(`<span class="channel" data-id="` + n.ID + `">#` + name + `</span>`)
	case ast.LinkType:
		// The label is already-safe source text and is emitted as-is.
		b.WriteString(`<a href="` + n.URL + `" target="_blank">` + n.Label + `</a>`)
	case ast.MultilineCodeType:
		code := strings.ReplaceAll(strings.TrimSpace(n.Text), "\n", "<br>")
		b.WriteString(`<pre class="multiline_code">` + code + `</pre>`)
	case ast.InlineCodeType:
		code := strings.ReplaceAll(n.Text, "\n", "<br>")
		b.WriteString(`<span class="inline_code">` + code + `</span>`)
	case ast.BlockquoteType:
		wrap(b, n, "<blockquote>", "</blockquote>", rs)
	case ast.SpoilerType:
		wrap(b, n, `<span class="spoiler">`, "</span>", rs)
	case ast.UnderlineType:
		wrap(b, n, "<u>", "</u>", rs)
	case ast.StrikethroughType:
		wrap(b, n, `<span class="strikethrough">`, "</span>", rs)
	case ast.BoldType:
		wrap(b, n, "<strong>", "</strong>", rs)
	case ast.ItalicsType:
		wrap(b, n, "<em>", "</em>", rs)
	case ast.NewlineType:
		b.WriteString("<br>")
	}
}

func wrap(b *strings.Builder, n *ast.Node, open, close string, rs *renderState) {
	b.WriteString(open)
	renderAll(b, n.Children, rs)
	b.WriteString(close)
}
