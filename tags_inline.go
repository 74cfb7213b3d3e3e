package bbclash

// Simple inline formatting tags: no argument, no validation, a single
// newGroup/endGroup pair per open/close. Registered table-driven since
// every one of these tags has an identical handler body modulo Kind.
func init() {
	registerSimpleInline("b", KindBold)
	registerSimpleInline("i", KindItalic)
	registerSimpleInline("strong", KindStrong)
	registerSimpleInline("em", KindEmphasis)
	registerSimpleInline("u", KindUnderline)
	registerSimpleInline("smcaps", KindSmallcaps)
	registerSimpleInline("s", KindStrikethrough)
	registerSimpleInline("mono", KindMonospace)
	registerSimpleInline("sub", KindSubscript)
	registerSimpleInline("sup", KindSuperscript)
	registerSimpleInline("spoiler", KindSpoiler)
	registerSimpleInline("math", KindMath)

	noArgCmd["footnote"] = func(l *Lexer) { l.newGroup(KindFootnote) }
	oneArgCmd["footnote"] = func(l *Lexer, arg string) {
		l.newGroup(KindFootnote)
		l.cur.SetArg(arg)
	}
	noArgCmd["/footnote"] = func(l *Lexer) { l.endGroup(KindFootnote) }
}

// registerSimpleInline wires name/"/"+name to open/close a plain inline
// node of kind with no argument.
func registerSimpleInline(name string, kind Kind) {
	noArgCmd[name] = func(l *Lexer) { l.newGroup(kind) }
	noArgCmd["/"+name] = func(l *Lexer) { l.endGroup(kind) }
}
