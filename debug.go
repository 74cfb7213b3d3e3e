package bbclash

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"
)

// DumpTree renders root's subtree as an indented, human-readable listing
// for test failure diagnostics — one line per node, with kr/pretty
// formatting the non-structural fields (Kind, Text, Arg, Void, Broken)
// so a mismatch is easy to spot without wading through pointer fields.
func DumpTree(root *Element) string {
	var b strings.Builder
	dumpNode(&b, root, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, e *Element, depth int) {
	fmt.Fprintf(b, "%s%# v\n", strings.Repeat("  ", depth), pretty.Formatter(elementSummary{
		Kind:          e.Kind,
		Text:          e.Text,
		Arg:           e.Arg,
		HasArg:        e.HasArg,
		Void:          e.Void,
		Broken:        e.Broken,
		BrokenTagName: e.BrokenTagName,
	}))
	for c := e.FirstChild; c != nil; c = c.NextSibling {
		dumpNode(b, c, depth+1)
	}
}

// elementSummary strips Element down to the fields worth showing in a
// tree dump; the pointer fields (Parent, siblings) would make
// kr/pretty's output unreadable and carry no diagnostic value on their
// own.
type elementSummary struct {
	Kind          Kind
	Text          string
	Arg           string
	HasArg        bool
	Void          bool
	Broken        bool
	BrokenTagName string
}
