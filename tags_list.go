package bbclash

// orderedListStyles and unorderedListStyles are the valid [list=style]
// arguments: single-letter/numeral markers select an <ol type="...">,
// named bullet shapes select a styled <ul>.
var orderedListStyles = map[string]struct{}{
	"1": {}, "a": {}, "A": {}, "i": {}, "I": {},
}

var unorderedListStyles = map[string]struct{}{
	"disc": {}, "circle": {}, "square": {},
}

func init() {
	noArgCmd["list"] = func(l *Lexer) { l.openPeerBlock(KindList) }
	oneArgCmd["list"] = cmdList
	noArgCmd["/list"] = cmdListClose

	noArgCmd["*"] = cmdListItemBullet
}

func cmdList(l *Lexer, arg string) {
	_, ordered := orderedListStyles[arg]
	_, unordered := unorderedListStyles[arg]
	if !ordered && !unordered {
		l.newGroup(KindBroken)
		l.cur.MarkBroken("list", arg, true)
		return
	}
	l.openPeerBlock(KindList)
	l.cur.SetArg(arg)
}

// cmdListClose unwinds any still-open ListItem before closing the List
// itself, so when no inline tag is left open inside the item the close
// finds List at the cursor directly; inline tags still open there are
// replayed by endGroup as usual. A stray "/list"
// with no enclosing List falls back to the unknown-tag literal path
// instead of walking past the ambient Paragraph boundary.
func cmdListClose(l *Lexer) {
	if !l.inAncestor(KindList) {
		l.literalTag("/list", "", false)
		return
	}
	if l.inAncestor(KindListItem) {
		l.endGroup(KindListItem)
	}
	l.closePeerBlock(KindList)
}

// cmdListItemBullet handles [*]: if a ListItem is already open under
// the enclosing List, close it first, then open a fresh one. Outside a
// List ancestor, "*" falls back to the unknown-tag literal-text path.
func cmdListItemBullet(l *Lexer) {
	if !l.inAncestor(KindList) {
		l.literalTag("*", "", false)
		return
	}
	if l.inAncestor(KindListItem) {
		l.endGroup(KindListItem)
	}
	l.newGroup(KindListItem)
}
