package bbclash

// Kind enumerates every node kind the lexer can place in the element
// tree, grouped by role: structural, inline, block, void, and the two
// wrapper kinds (Broken, Null).
type Kind int

const (
	KindNull Kind = iota

	// Structural
	KindDocument
	KindAnchor
	KindParagraph

	// Inline formatting
	KindBold
	KindItalic
	KindStrong
	KindEmphasis
	KindUnderline
	KindSmallcaps
	KindStrikethrough
	KindMonospace
	KindSubscript
	KindSuperscript
	KindSpoiler
	KindColour
	KindUrl
	KindEmail
	KindOpacity
	KindSize
	KindCode
	KindMath
	KindFootnote

	// Block
	KindCenter
	KindRight
	KindQuote
	KindImage
	KindHeader
	KindPre
	KindPreLine
	KindFigure
	KindCodeBlock
	KindMathBlock
	KindIndent
	KindEmbed
	KindList
	KindListItem
	KindTable
	KindTableRow
	KindTableData
	KindTableHeader
	KindTableCaption

	// Void
	KindHr
	KindBr
	KindScenebreak

	// Leaf / wrapper
	KindText
	KindBroken
)

// Element is a node in the intermediate tree the lexer builds and the
// constructor walks. It mirrors golang.org/x/net/html.Node's shape: a
// parent pointer plus first/last-child and prev/next-sibling pointers,
// so a node's position is fully determined by its neighbors and no
// separate index or arena is needed.
type Element struct {
	Kind Kind

	// Text holds the payload for KindText nodes.
	Text string

	// Arg holds the validated (or, for Broken, the raw offending)
	// argument string.
	Arg    string
	HasArg bool

	// Void marks a node that has no children and emits a single
	// self-closing tag.
	Void bool

	// Detachable marks a node the lexer may prune from its parent when
	// it ends up with no children, no text, and isn't Void. Broken
	// nodes are deliberately not Detachable: see SPEC_FULL.md.
	Detachable bool

	// Broken marks a node whose originating tag failed argument
	// validation. BrokenTagName is the literal tag name the user
	// typed (e.g. "colour", not a canonicalized "color") so ugly-mode
	// serialization can reconstruct the exact source form.
	Broken       bool
	BrokenTagName string

	Parent, PrevSibling, NextSibling *Element
	FirstChild, LastChild            *Element
}

// NewElement allocates a detached node of the given kind. Inline/block/
// structural container kinds default to Detachable; callers that build
// Broken or void nodes override the relevant fields explicitly.
func NewElement(kind Kind) *Element {
	return &Element{Kind: kind, Detachable: true}
}

// AppendChild attaches child as the new last child of e. child must be
// detached (no parent, no siblings) — the tree never aliases a node
// from two positions.
func (e *Element) AppendChild(child *Element) {
	if child.Parent != nil || child.PrevSibling != nil || child.NextSibling != nil {
		panic("bbclash: AppendChild called on an already-attached Element")
	}
	child.Parent = e
	if e.LastChild != nil {
		e.LastChild.NextSibling = child
		child.PrevSibling = e.LastChild
	} else {
		e.FirstChild = child
	}
	e.LastChild = child
}

// Detach removes e from its parent's child list. e becomes a root of
// its own (possibly still non-empty) subtree.
func (e *Element) Detach() {
	parent := e.Parent
	if parent == nil {
		return
	}
	if e.PrevSibling != nil {
		e.PrevSibling.NextSibling = e.NextSibling
	} else {
		parent.FirstChild = e.NextSibling
	}
	if e.NextSibling != nil {
		e.NextSibling.PrevSibling = e.PrevSibling
	} else {
		parent.LastChild = e.PrevSibling
	}
	e.Parent = nil
	e.PrevSibling = nil
	e.NextSibling = nil
}

// Empty reports whether e has no children and no text — the condition
// end_group's pruning logic checks before detaching a Detachable node.
func (e *Element) Empty() bool {
	return e.FirstChild == nil && e.Text == ""
}

// Root walks up to the root of e's tree.
func (e *Element) Root() *Element {
	n := e
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// SetArg sets the node's validated argument.
func (e *Element) SetArg(arg string) {
	e.Arg = arg
	e.HasArg = true
}

// MarkBroken converts e in place into a Broken wrapper: tagName is the
// literal tag name as the user typed it. hasArg distinguishes the two
// shapes a Broken node's ugly-mode reconstruction can take: hasArg=true
// means arg was an "=value" the user actually wrote (e.g. a failed
// [color=talapia], reconstructed "[color=talapia]" with its body
// rendered normally from children); hasArg=false means arg is itself
// the literal body of a failed bare single-capture tag (e.g. a failed
// [img]bad-url[/img], which has no children at all and reconstructs as
// "[img]" + arg + "[/img]"). Broken nodes are never Detachable — see
// SPEC_FULL.md — so they survive end_group's empty-subtree pruning and
// ugly mode can still reconstruct their literal source form even when
// their content ends up empty.
func (e *Element) MarkBroken(tagName, arg string, hasArg bool) {
	e.Kind = KindBroken
	e.BrokenTagName = tagName
	e.Arg = arg
	e.HasArg = hasArg
	e.Broken = true
	e.Detachable = false
}
