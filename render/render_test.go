package render

import (
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/chatmark/go-chatmark/ast"
	"github.com/chatmark/go-chatmark/parse"
)

func checkHTML(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	diffs := diffpatch.New().DiffMain(want, got, false)
	t.Errorf("html mismatch (want vs got):\n%s", diffpatch.New().DiffPrettyText(diffs))
}

func echoResolver(id string) (string, string) { return id, "" }

func TestHTMLBasic(t *testing.T) {
	got := HTML(parse.Parse(
		"foo > _foo bar_ *foo bar* **foo bar** __foo bar__\n> `foo bar` ``foo bar`` ||foo bar||\n> \n> test"))
	checkHTML(t, got,
		`foo &gt; <em>foo bar</em> <em>foo bar</em> <strong>foo bar</strong> <u>foo bar</u><br>`+
			`<blockquote><span class="inline_code">foo bar</span> <span class="inline_code">foo bar</span> <span class="spoiler">foo bar</span></blockquote>`+
			`<blockquote><br></blockquote>`+
			`<blockquote>test</blockquote>`)
}

func TestHTMLNested(t *testing.T) {
	got := HTML(parse.Parse("foo _> foo_ _bar\n> foo_ ||***__~~foo\nbar~~__***||"))
	checkHTML(t, got,
		`foo <em>&gt; foo</em> <em>bar<br><blockquote>foo</blockquote></em> `+
			`<span class="spoiler"><strong><em><u><span class="strikethrough">foo<br>bar</span></u></em></strong></span>`)
}

func TestHTMLTokens(t *testing.T) {
	got := HTMLWithResolvers(
		parse.Parse("<#1234567890><@&1234567890><@1234567890><@!1234567890><:foo:1234567890><a:foo:1234567890>"),
		func(filename string) (string, string) { return filename, "" },
		echoResolver,
		func(id string) (string, string) { return id, "#ff00ff" },
		echoResolver,
	)
	checkHTML(t, got,
		`<span class="channel" data-id="1234567890">#1234567890</span>`+
			`<div class="role" style="color: #ff00ff">@1234567890<span style="background-color: #ff00ff"></span></div>`+
			`<span class="user">@1234567890</span><span class="user">@1234567890</span>`+
			`<img src="1234567890.png" alt="foo" class="emoji" title="foo"></img>`+
			`<img src="1234567890.gif" alt="foo" class="emoji" title="foo"></img>`)
}

func TestHTMLHyperlinks(t *testing.T) {
	in := "<https://www.example.com/> https://example.com [foo](https://example.com/) [foo](<http://example.com>)"
	got := HTML(parse.Parse(in))
	checkHTML(t, got,
		`<a href="https://www.example.com/" target="_blank">https://www.example.com/</a> `+
			`<a href="https://example.com" target="_blank">https://example.com</a> `+
			`[foo](<a href="https://example.com/" target="_blank">https://example.com/</a>) `+
			`[foo](<a href="http://example.com" target="_blank">http://example.com</a>)`)

	got = HTML(parse.ParseWithAltTextLinks(in))
	checkHTML(t, got,
		`<a href="https://www.example.com/" target="_blank">https://www.example.com/</a> `+
			`<a href="https://example.com" target="_blank">https://example.com</a> `+
			`<a href="https://example.com/" target="_blank">foo</a> `+
			`<a href="http://example.com" target="_blank">foo</a>`)
}

func TestHTMLEscapesText(t *testing.T) {
	checkHTML(t, HTML(ast.Tree{ast.Text("<script>")}), "&lt;script&gt;")
	checkHTML(t, HTML(ast.Tree{ast.Text(`"a" & 'b'`)}), "&#34;a&#34; &amp; &#39;b&#39;")
}

func TestHTMLRoleDefaultColor(t *testing.T) {
	got := HTML(parse.Parse("<@&7>"), RoleResolver(func(id string) (string, string) {
		return "mod", ""
	}))
	checkHTML(t, got,
		`<div class="role" style="color: #afafaf">@mod<span style="background-color: #afafaf"></span></div>`)
}

func TestHTMLCodeNewlines(t *testing.T) {
	// Multiline code is trimmed; inline code is not.
	checkHTML(t, HTML(parse.Parse("```\nfoo\nbar\n```")),
		`<pre class="multiline_code">foo<br>bar</pre>`)
	checkHTML(t, HTML(parse.Parse("`a\nb`")),
		`<span class="inline_code">a<br>b</span>`)
}

func TestHTMLSoloEmoji(t *testing.T) {
	wumboji := `<img src="9.png" alt="foo" class="emoji wumboji" title="foo"></img>`
	plain := `<img src="9.png" alt="foo" class="emoji" title="foo"></img>`

	checkHTML(t, HTML(parse.Parse("<:foo:9>")), wumboji)
	checkHTML(t, HTML(parse.Parse("  <:foo:9> \t")), "  "+wumboji+" \t")
	checkHTML(t, HTML(parse.Parse("hey <:foo:9>")), "hey "+plain)
	// Any non-emoji, non-text node disables enlargement.
	checkHTML(t, HTML(parse.Parse("<:foo:9>\n")), plain+"<br>")
}

func TestHTMLResolverOrder(t *testing.T) {
	var order []string
	HTML(parse.Parse("<@1> **<@2>** <@3>"), UserResolver(func(id string) (string, string) {
		order = append(order, id)
		return id, ""
	}))
	if len(order) != 3 || order[0] != "1" || order[1] != "2" || order[2] != "3" {
		t.Errorf("resolver call order %v, want [1 2 3]", order)
	}
}
