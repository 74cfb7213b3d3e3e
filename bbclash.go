package bbclash

// ToHTML compiles BBCode source to HTML in pretty mode: empty Paragraphs
// and Broken tag wrappers are pruned from the output.
func ToHTML(input string) string {
	return compile(input, false)
}

// ToHTMLUgly compiles BBCode source to HTML in ugly mode: the constructor
// prunes nothing (empty tags are still dropped by the lexer, as in pretty
// mode), and a tag that failed argument validation round-trips as the
// literal "[name=arg]...[/name]" the user typed instead of disappearing.
func ToHTMLUgly(input string) string {
	return compile(input, true)
}

// compile runs the three-stage pipeline — Tokenizer, Lexer, Constructor —
// that turns BBCode source into HTML, in either pretty or ugly mode.
func compile(input string, ugly bool) string {
	instrs := NewTokenizer(input).Tokenize()
	root := NewLexer().Lex(instrs)
	return NewConstructor(len(input), ugly).Construct(root)
}
