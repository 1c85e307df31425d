package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Colorable struct {
	Type Type
	Attr ColorAttr
}

type ColorAttr int

const (
	TypeColor ColorAttr = iota
	ValueColor
	IDColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range Types() {
		able := Colorable{Type: t, Attr: TypeColor}
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = IDColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = TextType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = EmojiType
	colors.Map[able] = color.CyanString

	able.Type = LinkType
	colors.Map[able] = color.BlueString

	able.Type = MultilineCodeType
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Type = InlineCodeType
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

type printState struct {
	indent int
	Color  func(Type, ColorAttr, string) string
}

type PrintOption func(*printState)

func PrintColors(c *Colors) PrintOption {
	return func(ps *printState) { ps.Color = c.Color }
}

func PrintIndent(n int) PrintOption {
	return func(ps *printState) { ps.indent = n }
}

// Print writes a human-readable rendition of the tree to w, one node per
// line, children indented under their container.
func Print(tr Tree, w io.Writer, opts ...PrintOption) error {
	ps := &printState{indent: 2}
	for _, opt := range opts {
		opt(ps)
	}
	if ps.Color == nil {
		ps.Color = (&Colors{Default: colorDefault}).Color
	}
	for _, n := range tr {
		if err := printNode(n, w, 0, ps); err != nil {
			return err
		}
	}
	return nil
}

func printNode(n *Node, w io.Writer, depth int, ps *printState) error {
	pad := strings.Repeat(" ", depth*ps.indent)
	line := pad + ps.Color(n.Type, TypeColor, n.Type.String())
	switch n.Type {
	case TextType, MultilineCodeType, InlineCodeType:
		line += " " + ps.Color(n.Type, ValueColor, fmt.Sprintf("%q", n.Text))
	case EmojiType:
		line += " " + ps.Color(n.Type, ValueColor, n.Name) +
			" " + ps.Color(n.Type, IDColor, n.ID)
	case UserType, RoleType, ChannelType:
		line += " " + ps.Color(n.Type, IDColor, n.ID)
	case LinkType:
		line += " " + ps.Color(n.Type, ValueColor, fmt.Sprintf("%q", n.Label)) +
			" -> " + ps.Color(n.Type, IDColor, n.URL)
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := printNode(c, w, depth+1, ps); err != nil {
			return err
		}
	}
	return nil
}
