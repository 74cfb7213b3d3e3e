package bbclash

// Table, TableRow, TableData, TableHeader, and TableCaption implement
// full table markup. Row and cell tags only dispatch their table
// semantics inside a Table ancestor; outside one they fall back to the
// unknown-tag literal-text path, exactly like any other unrecognized
// tag.
func init() {
	noArgCmd["table"] = func(l *Lexer) { l.openPeerBlock(KindTable) }
	noArgCmd["/table"] = cmdTableClose

	noArgCmd["tr"] = cmdTableRowOpen
	noArgCmd["/tr"] = cmdTableRowClose

	noArgCmd["td"] = cmdTableCellOpen(KindTableData)
	noArgCmd["/td"] = cmdTableCellClose(KindTableData)

	noArgCmd["th"] = cmdTableCellOpen(KindTableHeader)
	noArgCmd["/th"] = cmdTableCellClose(KindTableHeader)

	noArgCmd["caption"] = cmdTableCaptionOpen
	noArgCmd["/caption"] = cmdTableCaptionClose
}

// cmdTableClose unwinds any still-open TableRow/TableData/TableHeader/
// TableCaption before closing the Table itself. A stray "/table" with
// no enclosing Table falls back to the unknown-tag literal path.
func cmdTableClose(l *Lexer) {
	if !l.inAncestor(KindTable) {
		l.literalTag("/table", "", false)
		return
	}
	switch {
	case l.inAncestor(KindTableData):
		l.endGroup(KindTableData)
	case l.inAncestor(KindTableHeader):
		l.endGroup(KindTableHeader)
	case l.inAncestor(KindTableCaption):
		l.endGroup(KindTableCaption)
	}
	if l.inAncestor(KindTableRow) {
		l.endGroup(KindTableRow)
	}
	l.closePeerBlock(KindTable)
}

func cmdTableRowOpen(l *Lexer) {
	if !l.inAncestor(KindTable) {
		l.literalTag("tr", "", false)
		return
	}
	l.newGroup(KindTableRow)
}

func cmdTableRowClose(l *Lexer) {
	if !l.inAncestor(KindTable) {
		l.literalTag("/tr", "", false)
		return
	}
	l.endGroup(KindTableRow)
}

func cmdTableCellOpen(kind Kind) noArgHandler {
	name := tableCellTagName(kind)
	return func(l *Lexer) {
		if !l.inAncestor(KindTable) {
			l.literalTag(name, "", false)
			return
		}
		l.newGroup(kind)
	}
}

func cmdTableCellClose(kind Kind) noArgHandler {
	name := "/" + tableCellTagName(kind)
	return func(l *Lexer) {
		if !l.inAncestor(KindTable) {
			l.literalTag(name, "", false)
			return
		}
		l.endGroup(kind)
	}
}

func tableCellTagName(kind Kind) string {
	if kind == KindTableHeader {
		return "th"
	}
	return "td"
}

func cmdTableCaptionOpen(l *Lexer) {
	if !l.inAncestor(KindTable) {
		l.literalTag("caption", "", false)
		return
	}
	l.newGroup(KindTableCaption)
}

func cmdTableCaptionClose(l *Lexer) {
	if !l.inAncestor(KindTable) {
		l.literalTag("/caption", "", false)
		return
	}
	l.endGroup(KindTableCaption)
}
