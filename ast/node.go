package ast

// Node represents a single element of a parsed message.
//
// Which fields are populated depends on Type: Text holds literal runs and
// raw code content, Name and ID describe custom emoji, ID alone identifies
// mentions, Label and URL describe hyperlinks, and Children holds the
// nested tree for container types.
type Node struct {
	Type Type

	Text  string
	Name  string
	ID    string
	Label string
	URL   string

	Children []*Node
}

// Tree is the ordered sequence of top-level nodes produced by one parse.
// Sequence order is source order and rendering order.
type Tree []*Node

func Text(s string) *Node {
	return &Node{Type: TextType, Text: s}
}

// Emoji constructs a custom emoji node. The id carries its file extension,
// e.g. "123456.png".
func Emoji(name, id string) *Node {
	return &Node{Type: EmojiType, Name: name, ID: id}
}

func User(id string) *Node {
	return &Node{Type: UserType, ID: id}
}

func Role(id string) *Node {
	return &Node{Type: RoleType, ID: id}
}

func Channel(id string) *Node {
	return &Node{Type: ChannelType, ID: id}
}

// Link constructs a hyperlink node. Bare links use the target as label.
func Link(label, target string) *Node {
	return &Node{Type: LinkType, Label: label, URL: target}
}

func MultilineCode(raw string) *Node {
	return &Node{Type: MultilineCodeType, Text: raw}
}

func InlineCode(raw string) *Node {
	return &Node{Type: InlineCodeType, Text: raw}
}

func Blockquote(children ...*Node) *Node {
	return &Node{Type: BlockquoteType, Children: children}
}

func Spoiler(children ...*Node) *Node {
	return &Node{Type: SpoilerType, Children: children}
}

func Underline(children ...*Node) *Node {
	return &Node{Type: UnderlineType, Children: children}
}

func Strikethrough(children ...*Node) *Node {
	return &Node{Type: StrikethroughType, Children: children}
}

func Bold(children ...*Node) *Node {
	return &Node{Type: BoldType, Children: children}
}

func Italics(children ...*Node) *Node {
	return &Node{Type: ItalicsType, Children: children}
}

func Newline() *Node {
	return &Node{Type: NewlineType}
}

// Visit walks the node depth-first. f is called before and after the
// children with isPost false and true respectively; returning false from
// the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Visit walks every top-level node in order.
func (tr Tree) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	for _, n := range tr {
		if err := n.Visit(f); err != nil {
			return err
		}
	}
	return nil
}
