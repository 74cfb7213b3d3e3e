package bbclash

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// shape is a tree-equality fixture: it strips an Element down to the
// fields worth comparing in a test and flattens the sibling-pointer
// structure into ordinary slices, so cmp.Diff gives a readable failure
// instead of choking on Parent/PrevSibling cycles.
type shape struct {
	Kind          Kind
	Text          string
	Arg           string
	HasArg        bool
	Void          bool
	Broken        bool
	BrokenTagName string
	Children      []shape
}

func toShape(e *Element) shape {
	s := shape{
		Kind:          e.Kind,
		Text:          e.Text,
		Arg:           e.Arg,
		HasArg:        e.HasArg,
		Void:          e.Void,
		Broken:        e.Broken,
		BrokenTagName: e.BrokenTagName,
	}
	for c := e.FirstChild; c != nil; c = c.NextSibling {
		s.Children = append(s.Children, toShape(c))
	}
	return s
}

func lex(t *testing.T, input string) *Element {
	t.Helper()
	instrs := NewTokenizer(input).Tokenize()
	return NewLexer().Lex(instrs)
}

// rootShape returns the Anchor root alongside the shape of its
// children, skipping the Anchor and Document wrapper levels that every
// tree shares. The root is returned so a failing diff can dump the
// actual tree it was built from.
func rootShape(t *testing.T, input string) (*Element, []shape) {
	t.Helper()
	anchor := lex(t, input)
	require.Equal(t, KindAnchor, anchor.Kind)
	require.NotNil(t, anchor.FirstChild)
	doc := anchor.FirstChild
	require.Equal(t, KindDocument, doc.Kind)
	var children []shape
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, toShape(c))
	}
	return anchor, children
}

// diff compares got against want and, on mismatch, dumps the full tree
// root was built from alongside the cmp diff so a failure shows both
// the flattened shape mismatch and the actual Element structure.
func diff(t *testing.T, root *Element, got, want []shape) {
	t.Helper()
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("tree shape mismatch (-want +got):\n%s\ntree:\n%s", d, DumpTree(root))
	}
}

func TestLexPlainTextWrapsInParagraph(t *testing.T) {
	root, got := rootShape(t, "hi")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindText, Text: "hi"},
		}},
	}
	diff(t, root, got, want)
}

func TestLexEmptyInputProducesNoParagraph(t *testing.T) {
	// The ambient Paragraph opened by NewLexer never receives any
	// content, so the final endGroup(Paragraph) in Lex detaches it.
	root, got := rootShape(t, "")
	diff(t, root, got, nil)
}

func TestLexSimpleInlinePair(t *testing.T) {
	root, got := rootShape(t, "[b]hi[/b]")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindBold, Children: []shape{
				{Kind: KindText, Text: "hi"},
			}},
		}},
	}
	diff(t, root, got, want)
}

func TestLexAdoptionAgencyReplay(t *testing.T) {
	root, got := rootShape(t, "[i][b]fucking[/i] broken![/b]")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindItalic, Children: []shape{
				{Kind: KindBold, Children: []shape{
					{Kind: KindText, Text: "fucking"},
				}},
			}},
			{Kind: KindBold, Children: []shape{
				{Kind: KindText, Text: " broken!"},
			}},
		}},
	}
	diff(t, root, got, want)
}

func TestLexBrokenColourKeepsBody(t *testing.T) {
	root, got := rootShape(t, "[color=talapia]This should be broken[/color]")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindBroken, Arg: "talapia", HasArg: true, Broken: true, BrokenTagName: "color", Children: []shape{
				{Kind: KindText, Text: "This should be broken"},
			}},
		}},
	}
	diff(t, root, got, want)
}

func TestLexBrokenColourPreservesColourSpelling(t *testing.T) {
	root, got := rootShape(t, "[colour=talapia]x[/colour]")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindBroken, Arg: "talapia", HasArg: true, Broken: true, BrokenTagName: "colour", Children: []shape{
				{Kind: KindText, Text: "x"},
			}},
		}},
	}
	diff(t, root, got, want)
}

func TestLexBareURLSuccess(t *testing.T) {
	root, got := rootShape(t, "[url]https://example.com[/url]")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindUrl, Arg: "https://example.com", HasArg: true, Children: []shape{
				{Kind: KindText, Text: "https://example.com"},
			}},
		}},
	}
	diff(t, root, got, want)
}

func TestLexBareURLEmptyCaptureIsBroken(t *testing.T) {
	root, got := rootShape(t, "[url][/url]")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindBroken, Broken: true, BrokenTagName: "url"},
		}},
	}
	diff(t, root, got, want)
}

func TestLexBareImgBadExtensionIsBroken(t *testing.T) {
	root, got := rootShape(t, "[img]https://example.com/x.exe[/img]")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindBroken, Arg: "https://example.com/x.exe", Broken: true, BrokenTagName: "img"},
		}},
	}
	diff(t, root, got, want)
}

func TestLexBareImgSuccessIsVoidNoTextChild(t *testing.T) {
	root, got := rootShape(t, "[img]https://example.com/x.png[/img]")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindImage, Arg: "https://example.com/x.png", HasArg: true, Void: true},
		}},
	}
	diff(t, root, got, want)
}

func TestLexListStructure(t *testing.T) {
	root, got := rootShape(t, "[list=1][*]a[*]b[/list]")
	want := []shape{
		{Kind: KindList, Arg: "1", HasArg: true, Children: []shape{
			{Kind: KindListItem, Children: []shape{{Kind: KindText, Text: "a"}}},
			{Kind: KindListItem, Children: []shape{{Kind: KindText, Text: "b"}}},
		}},
	}
	diff(t, root, got, want)
}

func TestLexListItemOutsideListIsLiteral(t *testing.T) {
	root, got := rootShape(t, "[*]a")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindText, Text: "[*]"},
			{Kind: KindText, Text: "a"},
		}},
	}
	diff(t, root, got, want)
}

func TestLexTableStructure(t *testing.T) {
	root, got := rootShape(t, "[table][tr][th]H[/th][/tr][tr][td]D[/td][/tr][/table]")
	want := []shape{
		{Kind: KindTable, Children: []shape{
			{Kind: KindTableRow, Children: []shape{
				{Kind: KindTableHeader, Children: []shape{{Kind: KindText, Text: "H"}}},
			}},
			{Kind: KindTableRow, Children: []shape{
				{Kind: KindTableData, Children: []shape{{Kind: KindText, Text: "D"}}},
			}},
		}},
	}
	diff(t, root, got, want)
}

func TestLexPreservesWhitespaceInsidePre(t *testing.T) {
	root, got := rootShape(t, "[pre]A\n\nB[/pre]")
	want := []shape{
		{Kind: KindPre, Children: []shape{
			{Kind: KindText, Text: "A"},
			{Kind: KindText, Text: "\n\n"},
			{Kind: KindText, Text: "B"},
		}},
	}
	diff(t, root, got, want)
}

func TestLexCodeTreatsTagsAsLiteral(t *testing.T) {
	root, got := rootShape(t, "[code]a[b]b[/b]c[/code]")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindCode, Children: []shape{
				{Kind: KindText, Text: "a"},
				{Kind: KindText, Text: "[b]"},
				{Kind: KindText, Text: "b"},
				{Kind: KindText, Text: "[/b]"},
				{Kind: KindText, Text: "c"},
			}},
		}},
	}
	diff(t, root, got, want)
}

func TestLexFigureBadArgIsBrokenNoParagraphLeak(t *testing.T) {
	// A failed [figure] never calls openWrappedBlock, so it never closes
	// the ambient Paragraph; the Broken node and its body land inside
	// that same ambient Paragraph rather than as a Document-level peer.
	// The close tag itself can't find a Figure to close either (the open
	// never produced one), so it falls back to literal text too.
	root, got := rootShape(t, "[figure=up]x[/figure]")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindBroken, Arg: "up", HasArg: true, Broken: true, BrokenTagName: "figure", Children: []shape{
				{Kind: KindText, Text: "x"},
			}},
			{Kind: KindText, Text: "[/figure]"},
		}},
	}
	diff(t, root, got, want)
}

func TestLexFigureCloseAfterBrokenOpenFallsBackToLiteral(t *testing.T) {
	root, got := rootShape(t, "[figure=up]x[/figure]after")
	want := []shape{
		{Kind: KindParagraph, Children: []shape{
			{Kind: KindBroken, Arg: "up", HasArg: true, Broken: true, BrokenTagName: "figure", Children: []shape{
				{Kind: KindText, Text: "x"},
			}},
			{Kind: KindText, Text: "[/figure]"},
			{Kind: KindText, Text: "after"},
		}},
	}
	diff(t, root, got, want)
}

func TestLexFigureWellFormed(t *testing.T) {
	root, got := rootShape(t, "[figure=left]x[/figure]")
	want := []shape{
		{Kind: KindFigure, Arg: "left", HasArg: true, Children: []shape{
			{Kind: KindParagraph, Children: []shape{
				{Kind: KindText, Text: "x"},
			}},
		}},
	}
	diff(t, root, got, want)
}
