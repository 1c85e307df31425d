package ast

import "fmt"

type Type int

const (
	TextType Type = iota
	EmojiType
	UserType
	RoleType
	ChannelType
	LinkType
	MultilineCodeType
	InlineCodeType
	BlockquoteType
	SpoilerType
	UnderlineType
	StrikethroughType
	BoldType
	ItalicsType
	NewlineType
)

var typeNames = map[Type]string{
	TextType:          "Text",
	EmojiType:         "Emoji",
	UserType:          "User",
	RoleType:          "Role",
	ChannelType:       "Channel",
	LinkType:          "Link",
	MultilineCodeType: "MultilineCode",
	InlineCodeType:    "InlineCode",
	BlockquoteType:    "Blockquote",
	SpoilerType:       "Spoiler",
	UnderlineType:     "Underline",
	StrikethroughType: "Strikethrough",
	BoldType:          "Bold",
	ItalicsType:       "Italics",
	NewlineType:       "Newline",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		TextType,
		EmojiType,
		UserType,
		RoleType,
		ChannelType,
		LinkType,
		MultilineCodeType,
		InlineCodeType,
		BlockquoteType,
		SpoilerType,
		UnderlineType,
		StrikethroughType,
		BoldType,
		ItalicsType,
		NewlineType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case BlockquoteType, SpoilerType, UnderlineType, StrikethroughType, BoldType, ItalicsType:
		return false
	default:
		return true
	}
}
