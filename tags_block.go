package bbclash

import "strconv"

// Center, Right, Quote, MathBlock all wrap their flowing content in an
// inner Paragraph (openWrappedBlock), since that content may itself
// split into further paragraphs; Header, Pre, CodeBlock, Hr hold their
// content directly (openPeerBlock), since it never does.
func init() {
	registerWrappedBlock("center", KindCenter)
	registerWrappedBlock("right", KindRight)
	registerWrappedBlock("mathblock", KindMathBlock)

	noArgCmd["quote"] = func(l *Lexer) { l.openWrappedBlock(KindQuote) }
	oneArgCmd["quote"] = func(l *Lexer, arg string) {
		l.openWrappedBlock(KindQuote)
		l.cur.Parent.SetArg(arg)
	}
	noArgCmd["/quote"] = func(l *Lexer) { l.closeWrappedBlock(KindQuote) }

	for n := 1; n <= 6; n++ {
		level := strconv.Itoa(n)
		name := "h" + level
		noArgCmd[name] = func(l *Lexer) {
			l.openPeerBlock(KindHeader)
			l.cur.SetArg(level)
		}
		noArgCmd["/"+name] = func(l *Lexer) { l.closePeerBlock(KindHeader) }
	}

	noArgCmd["pre"] = func(l *Lexer) {
		l.openPeerBlock(KindPre)
		l.ignoreFormatting = true
	}
	noArgCmd["/pre"] = func(l *Lexer) {
		l.closePeerBlock(KindPre)
		l.ignoreFormatting = false
	}

	noArgCmd["preline"] = func(l *Lexer) {
		l.openPeerBlock(KindPreLine)
		l.preLineMode = true
	}
	noArgCmd["/preline"] = func(l *Lexer) {
		l.closePeerBlock(KindPreLine)
		l.preLineMode = false
	}

	oneArgCmd["figure"] = cmdFigure
	noArgCmd["/figure"] = closeWrappedBlockOrLiteral("/figure", KindFigure)

	oneArgCmd["indent"] = cmdIndent
	noArgCmd["/indent"] = closeWrappedBlockOrLiteral("/indent", KindIndent)

	noArgCmd["hr"] = cmdHr
}

// registerWrappedBlock wires name/"/"+name to open/close a bare
// (no-argument) wrapped block of kind.
func registerWrappedBlock(name string, kind Kind) {
	noArgCmd[name] = func(l *Lexer) { l.openWrappedBlock(kind) }
	noArgCmd["/"+name] = func(l *Lexer) { l.closeWrappedBlock(kind) }
}

// closeWrappedBlockOrLiteral guards a wrapped-block close against the
// case where the matching open failed validation and produced a
// Broken node instead of kind: it closes the inner Paragraph first (as
// closeWrappedBlock would) and checks whether that actually surfaced
// kind as the new cursor. If the matching open never happened, the
// cursor lands back on the ambient Paragraph instead, and the close
// falls back to the unknown-tag literal path rather than running
// endGroup/newGroup against the wrong node.
func closeWrappedBlockOrLiteral(closeName string, kind Kind) noArgHandler {
	return func(l *Lexer) {
		l.endGroup(KindParagraph)
		if l.cur.Kind != kind {
			l.literalTag(closeName, "", false)
			return
		}
		l.endGroup(kind)
		l.newGroup(KindParagraph)
	}
}

// cmdFigure requires arg to be exactly "left" or "right"; anything else
// is Broken without consuming a Paragraph boundary (the node never
// opens, so nothing needs closing later).
func cmdFigure(l *Lexer, arg string) {
	if arg != "left" && arg != "right" {
		l.newGroup(KindBroken)
		l.cur.MarkBroken("figure", arg, true)
		return
	}
	l.openWrappedBlock(KindFigure)
	l.cur.Parent.SetArg(arg)
}

// cmdIndent requires arg to parse as an integer in [1, 6].
func cmdIndent(l *Lexer, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > 6 {
		l.newGroup(KindBroken)
		l.cur.MarkBroken("indent", arg, true)
		return
	}
	l.openWrappedBlock(KindIndent)
	l.cur.Parent.SetArg(arg)
}

func cmdHr(l *Lexer) {
	l.openPeerBlock(KindHr)
	l.cur.Void = true
	l.closePeerBlock(KindHr)
}
