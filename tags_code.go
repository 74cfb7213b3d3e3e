package bbclash

// Code and CodeBlock both suppress tag parsing until their own matching
// close tag via ignoreTags; CodeBlock additionally suppresses
// Linebreak/Parabreak/Scenebreak via ignoreFormatting and is
// block-level.
func init() {
	noArgCmd["code"] = func(l *Lexer) {
		l.ignoreTags = "/code"
		l.ignoring = true
		l.newGroup(KindCode)
	}
	noArgCmd["/code"] = func(l *Lexer) {
		l.endGroup(KindCode)
		l.ignoring = false
		l.ignoreTags = ""
	}

	noArgCmd["codeblock"] = func(l *Lexer) {
		l.openPeerBlock(KindCodeBlock)
		l.ignoreTags = "/codeblock"
		l.ignoring = true
		l.ignoreFormatting = true
	}
	oneArgCmd["codeblock"] = func(l *Lexer, arg string) {
		l.openPeerBlock(KindCodeBlock)
		l.cur.SetArg(arg)
		l.ignoreTags = "/codeblock"
		l.ignoring = true
		l.ignoreFormatting = true
	}
	noArgCmd["/codeblock"] = func(l *Lexer) {
		l.closePeerBlock(KindCodeBlock)
		l.ignoring = false
		l.ignoreTags = ""
		l.ignoreFormatting = false
	}
}
