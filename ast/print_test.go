package ast

import (
	"bytes"
	"testing"
)

func TestPrint(t *testing.T) {
	tr := Tree{
		Blockquote(
			Italics(
				Bold(Text("example")),
				Text(" formatted"),
			),
		),
		Emoji("foo", "9.png"),
		Link("label", "https://example.com"),
		User("123"),
		Newline(),
	}
	var buf bytes.Buffer
	if err := Print(tr, &buf); err != nil {
		t.Fatal(err)
	}
	want := `Blockquote
  Italics
    Bold
      Text "example"
    Text " formatted"
Emoji foo 9.png
Link "label" -> https://example.com
User 123
Newline
`
	if got := buf.String(); got != want {
		t.Errorf("print gave:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintIndent(t *testing.T) {
	tr := Tree{Bold(Text("a"))}
	var buf bytes.Buffer
	if err := Print(tr, &buf, PrintIndent(4)); err != nil {
		t.Fatal(err)
	}
	want := "Bold\n    Text \"a\"\n"
	if got := buf.String(); got != want {
		t.Errorf("print gave %q, want %q", got, want)
	}
}
