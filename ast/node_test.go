package ast

import (
	"strings"
	"testing"
)

func TestVisitOrder(t *testing.T) {
	tr := Tree{
		Bold(
			Text("a"),
			Italics(Text("b")),
		),
		Text("c"),
	}
	var pre, post []string
	err := tr.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Type.String())
		} else {
			pre = append(pre, n.Type.String())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	wantPre := "Bold Text Italics Text Text"
	wantPost := "Text Text Italics Bold Text"
	if got := strings.Join(pre, " "); got != wantPre {
		t.Errorf("pre order %q, want %q", got, wantPre)
	}
	if got := strings.Join(post, " "); got != wantPost {
		t.Errorf("post order %q, want %q", got, wantPost)
	}
}

func TestVisitSkipsChildren(t *testing.T) {
	tr := Tree{Bold(Text("a"))}
	n := 0
	err := tr.Visit(func(node *Node, isPost bool) (bool, error) {
		if !isPost {
			n++
		}
		return false, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("visited %d nodes, want 1", n)
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("round trip %s gave %s", typ, back)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Nope")); err == nil {
		t.Error("expected error for unknown type name")
	}
}

func TestIsLeaf(t *testing.T) {
	if BlockquoteType.IsLeaf() || BoldType.IsLeaf() {
		t.Error("container types reported as leaves")
	}
	if !TextType.IsLeaf() || !EmojiType.IsLeaf() || !NewlineType.IsLeaf() {
		t.Error("leaf types reported as containers")
	}
}
