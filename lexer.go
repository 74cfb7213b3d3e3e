package bbclash

// noArgHandler opens or closes a group for a tag with no argument.
type noArgHandler func(l *Lexer)

// oneArgHandler opens a group for a tag that takes a primary argument.
type oneArgHandler func(l *Lexer, arg string)

// noArgCmd and oneArgCmd are the lexer's compile-time tag-dispatch
// tables, populated once at init() time rather than through any
// exported registration function — the tag vocabulary is fixed, so
// there's no runtime registration surface to expose.
var (
	noArgCmd  = map[string]noArgHandler{}
	oneArgCmd = map[string]oneArgHandler{}
)

// Lexer walks an instruction stream and builds an Element tree. It owns
// a single movable cursor into the tree it's building (never aliased
// from two positions at once) plus a handful of mode flags that change
// how subsequent instructions are interpreted.
type Lexer struct {
	anchor *Element
	cur    *Element

	// nextTextAsArg is a one-shot hook: when set, the next InstrText
	// instruction is consumed as a tag argument instead of becoming a
	// Text node, used by bare [url]...[/url] and [img]...[/img].
	nextTextAsArg func(l *Lexer, text string)

	// ignoreTags holds the one close-tag name still recognized while
	// inside a raw-mode ([code]/[codeblock]) element; every other tag
	// is passed through as literal text.
	ignoreTags string
	ignoring   bool

	// ignoreFormatting, when set, makes Linebreak/Parabreak/Scenebreak
	// emit as literal text instead of structural nodes.
	ignoreFormatting bool

	// preLineMode, when set, makes Parabreak emit void Brs instead of
	// closing and reopening the ambient Paragraph — one Br per newline
	// in the run, so line breaks are preserved rather than collapsed.
	// Set by [preline].
	preLineMode bool
}

// NewLexer creates a Lexer with a fresh Document (wrapped in a
// detachable Anchor) and an open Paragraph as the initial cursor.
func NewLexer() *Lexer {
	anchor := NewElement(KindAnchor)
	doc := NewElement(KindDocument)
	anchor.AppendChild(doc)
	l := &Lexer{anchor: anchor, cur: doc}
	l.newGroup(KindParagraph)
	return l
}

// Lex consumes instrs and returns the root Anchor of the built tree.
func (l *Lexer) Lex(instrs []Instruction) *Element {
	for i := range instrs {
		l.execute(instrs[i])
	}
	l.endGroup(KindParagraph)
	return l.anchor
}

func (l *Lexer) execute(instr Instruction) {
	if l.nextTextAsArg != nil {
		cmd := l.nextTextAsArg
		l.nextTextAsArg = nil
		if instr.Kind == InstrText {
			cmd(l, instr.Text)
			return
		}
		// The tokenizer never emits an InstrText for a zero-length run
		// (e.g. the immediately-closed capture in "[url][/url]"), so a
		// non-text instruction arriving with the hook still pending means
		// an empty capture: fire the hook with "" before reprocessing
		// this instruction normally.
		cmd(l, "")
	}

	switch instr.Kind {
	case InstrText:
		l.appendText(instr.Text)
	case InstrTag:
		l.dispatchTag(instr.Name, instr.Arg, instr.HasArg)
	case InstrParabreak:
		switch {
		case l.ignoreFormatting:
			// The instruction kind already implies the two newlines that
			// triggered it; Text carries only whatever whitespace ran on
			// after them, so raw-mode reemission has to put the newlines
			// back before it.
			l.appendText("\n\n" + instr.Text)
		case l.preLineMode:
			// A Parabreak is two newlines; preline turns every newline into
			// its own <br> rather than collapsing the run, so it emits the
			// void Br twice.
			l.newGroup(KindBr)
			l.cur.Void = true
			l.endGroup(KindBr)
			l.newGroup(KindBr)
			l.cur.Void = true
			l.endGroup(KindBr)
		default:
			l.endGroup(KindParagraph)
			l.newGroup(KindParagraph)
		}
	case InstrLinebreak:
		if l.ignoreFormatting {
			l.appendText("\n")
		} else {
			l.newGroup(KindBr)
			l.cur.Void = true
			l.endGroup(KindBr)
		}
	case InstrScenebreak:
		if l.ignoreFormatting {
			l.appendText("\n\n\n")
		} else {
			l.newGroup(KindScenebreak)
			l.cur.Void = true
			l.endGroup(KindScenebreak)
		}
	}
}

// appendText adds a Text child under the cursor with the given
// already-escaped payload.
func (l *Lexer) appendText(s string) {
	l.newGroup(KindText)
	l.cur.Text += s
	l.endGroup(KindText)
}

// dispatchTag routes a tag Instruction either through raw-mode
// passthrough (ignoreTags) or normal dispatch.
func (l *Lexer) dispatchTag(name, arg string, hasArg bool) {
	if l.ignoring {
		if name == l.ignoreTags {
			l.parseTag(name, arg, hasArg)
			return
		}
		l.literalTag(name, arg, hasArg)
		return
	}
	l.parseTag(name, arg, hasArg)
}

// literalTag re-emits a tag Instruction as the literal source text that
// produced it — the single source of the "unknown tags (and tags whose
// argument arity doesn't match) become literal text" contract.
func (l *Lexer) literalTag(name, arg string, hasArg bool) {
	if hasArg {
		l.appendText("[" + name + "=" + arg + "]")
	} else {
		l.appendText("[" + name + "]")
	}
}

// parseTag looks the tag up in the appropriate dispatch table and runs
// its handler, falling back to literalTag on a miss.
func (l *Lexer) parseTag(name, arg string, hasArg bool) {
	if hasArg {
		if cmd, ok := oneArgCmd[name]; ok {
			cmd(l, arg)
			return
		}
		l.literalTag(name, arg, hasArg)
		return
	}
	if cmd, ok := noArgCmd[name]; ok {
		cmd(l)
		return
	}
	l.literalTag(name, arg, hasArg)
}

// newGroup opens a new child of the given kind under the cursor and
// moves the cursor into it.
func (l *Lexer) newGroup(kind Kind) {
	child := NewElement(kind)
	l.cur.AppendChild(child)
	l.cur = child
}

// endGroup is the nesting-repair algorithm ("adoption agency lite"): it
// walks up from the cursor looking for an open group of the given kind,
// stopping at Paragraph/Document boundaries, and replays whatever
// inline kinds it had to pop through so they reopen under the new
// cursor.
func (l *Lexer) endGroup(kind Kind) {
	if l.cur.Kind == kind {
		l.ascendOne()
		return
	}

	var stack []Kind
	for {
		my := l.cur.Kind
		if my == KindParagraph && kind != KindParagraph {
			break
		}
		if my == KindDocument && kind != KindDocument {
			break
		}
		if my == kind {
			l.ascendOne()
			break
		}
		// A node MarkBroken converted in place no longer carries kind —
		// it stands in for whatever the open tag was trying to become,
		// so a close in search of that original kind stops here rather
		// than treating Broken as just another intermediate to replay.
		if my == KindBroken {
			l.ascendOne()
			break
		}
		stack = append(stack, my)
		if l.cur.Parent == nil {
			break
		}
		l.ascendOne()
	}
	for i := len(stack) - 1; i >= 0; i-- {
		l.newGroup(stack[i])
	}
}

// openPeerBlock closes the ambient Paragraph and opens kind as its
// peer — used by block tags whose content is appended directly to the
// new node rather than to a nested Paragraph (Header, Pre, CodeBlock,
// Hr).
func (l *Lexer) openPeerBlock(kind Kind) {
	l.endGroup(KindParagraph)
	l.newGroup(kind)
}

// closePeerBlock is openPeerBlock's mirror: close kind, then reopen the
// ambient Paragraph for whatever follows.
func (l *Lexer) closePeerBlock(kind Kind) {
	l.endGroup(kind)
	l.newGroup(KindParagraph)
}

// openWrappedBlock closes the ambient Paragraph, opens kind, and opens
// a fresh inner Paragraph so the block's own flowing content (which may
// itself contain Parabreaks) has somewhere to live — used by Quote,
// Center, Right, Figure, MathBlock.
func (l *Lexer) openWrappedBlock(kind Kind) {
	l.endGroup(KindParagraph)
	l.newGroup(kind)
	l.newGroup(KindParagraph)
}

// closeWrappedBlock is openWrappedBlock's mirror.
func (l *Lexer) closeWrappedBlock(kind Kind) {
	l.endGroup(KindParagraph)
	l.endGroup(kind)
	l.newGroup(KindParagraph)
}

// ascendOne prunes the cursor if it's empty and Detachable, then moves
// the cursor up to its parent. It is a no-op at the root (which has no
// parent to move to).
func (l *Lexer) ascendOne() {
	parent := l.cur.Parent
	if parent == nil {
		return
	}
	if l.cur.Empty() && !l.cur.Void && l.cur.Detachable {
		l.cur.Detach()
	}
	l.cur = parent
}

// inAncestor reports whether kind appears anywhere from the cursor up
// to (but not including) the nearest Paragraph/Document boundary — used
// by table-cell/row tags to tell whether they're inside a Table.
func (l *Lexer) inAncestor(kind Kind) bool {
	for n := l.cur; n != nil; n = n.Parent {
		if n.Kind == kind {
			return true
		}
		if n.Kind == KindParagraph || n.Kind == KindDocument {
			break
		}
	}
	return false
}
