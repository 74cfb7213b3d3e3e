// Package bbclash compiles BBCode markup to HTML.
//
// The compiler runs as a three-stage pipeline: a Tokenizer turns raw
// source into a flat instruction stream, a Lexer walks that stream and
// builds an Element tree (repairing malformed nesting as it goes), and a
// Constructor walks the tree to produce the final HTML string. ToHTML
// and ToHTMLUgly drive the whole pipeline for you; the stage types are
// exported for callers who want to inspect an intermediate result.
//
//	out := bbclash.ToHTML("[b]Hello[/b], [url=https://example.com]world[/url]!")
//	// out == `<p><b>Hello</b>, <a href="https://example.com" rel="nofollow">world</a>!</p>`
//
// Pretty mode (ToHTML) silently discards tags whose arguments failed
// validation, along with any paragraph left empty by that pruning. Ugly
// mode (ToHTMLUgly) keeps failed tags and the paragraphs around them,
// reconstructing a failed tag as the literal BBCode the caller typed. In
// both modes the lexer drops tags that end up with no content.
package bbclash
