package bbclash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizerPlainText(t *testing.T) {
	instrs := NewTokenizer("hello").Tokenize()
	require.Len(t, instrs, 1)
	assert.Equal(t, textInstruction("hello"), instrs[0])
}

func TestTokenizerEmptyInput(t *testing.T) {
	instrs := NewTokenizer("").Tokenize()
	assert.Empty(t, instrs)
}

func TestTokenizerEscapesEntityChars(t *testing.T) {
	instrs := NewTokenizer(`<>&"'\`).Tokenize()
	require.Len(t, instrs, 1)
	assert.Equal(t, "&lt&gt&amp&quot&#x27", instrs[0].Text)
}

func TestTokenizerBackslashEscape(t *testing.T) {
	// A backslash-escaped bracket is taken literally rather than opening a
	// tag; an escaped entity character still gets sanitized.
	instrs := NewTokenizer(`\[b\]\<`).Tokenize()
	require.Len(t, instrs, 1)
	assert.Equal(t, "[b]&lt", instrs[0].Text)
}

func TestTokenizerBareTag(t *testing.T) {
	instrs := NewTokenizer("[b]").Tokenize()
	require.Len(t, instrs, 1)
	assert.Equal(t, tagInstruction("b", "", false), instrs[0])
}

func TestTokenizerTagWithArg(t *testing.T) {
	instrs := NewTokenizer("[color=red]").Tokenize()
	require.Len(t, instrs, 1)
	assert.Equal(t, tagInstruction("color", "red", true), instrs[0])
}

func TestTokenizerUnterminatedTagAtEOF(t *testing.T) {
	instrs := NewTokenizer("[b").Tokenize()
	require.Len(t, instrs, 1)
	assert.Equal(t, tagInstruction("b", "", false), instrs[0])
}

func TestTokenizerSingleNewlineIsLinebreak(t *testing.T) {
	instrs := NewTokenizer("a\nb").Tokenize()
	require.Len(t, instrs, 3)
	assert.Equal(t, textInstruction("a"), instrs[0])
	assert.Equal(t, Instruction{Kind: InstrLinebreak}, instrs[1])
	assert.Equal(t, textInstruction("b"), instrs[2])
}

func TestTokenizerTrailingNewlineAtEOFIsDropped(t *testing.T) {
	instrs := NewTokenizer("a\n").Tokenize()
	require.Len(t, instrs, 1)
	assert.Equal(t, textInstruction("a"), instrs[0])
}

func TestTokenizerDoubleNewlineIsParabreak(t *testing.T) {
	instrs := NewTokenizer("a\n\nb").Tokenize()
	require.Len(t, instrs, 3)
	assert.Equal(t, textInstruction("a"), instrs[0])
	assert.Equal(t, parabreakInstruction(""), instrs[1])
	assert.Equal(t, textInstruction("b"), instrs[2])
}

func TestTokenizerParabreakCapturesTrailingSpaces(t *testing.T) {
	instrs := NewTokenizer("a\n\n  b").Tokenize()
	require.Len(t, instrs, 3)
	assert.Equal(t, parabreakInstruction("  "), instrs[1])
}

func TestTokenizerDoubleNewlineAtEOFIsDropped(t *testing.T) {
	// No text follows the blank line to trigger finalizing the pending
	// instruction, so it never gets emitted at all.
	instrs := NewTokenizer("a\n\n").Tokenize()
	require.Len(t, instrs, 1)
	assert.Equal(t, textInstruction("a"), instrs[0])
}

func TestTokenizerTripleNewlineIsScenebreak(t *testing.T) {
	instrs := NewTokenizer("a\n\n\nb").Tokenize()
	require.Len(t, instrs, 3)
	assert.Equal(t, textInstruction("a"), instrs[0])
	assert.Equal(t, Instruction{Kind: InstrScenebreak}, instrs[1])
	assert.Equal(t, textInstruction("b"), instrs[2])
}

func TestTokenizerSingleNewlineThenTabIsParabreak(t *testing.T) {
	// A tab right after one newline finalizes as Parabreak, the same
	// instruction kind a blank line produces — the tokenizer can't tell
	// the two apart downstream, only the lexer's ignoreFormatting path
	// cares, and no boundary scenario exercises this combination.
	instrs := NewTokenizer("a\n\tb").Tokenize()
	require.Len(t, instrs, 3)
	assert.Equal(t, parabreakInstruction(""), instrs[1])
	assert.Equal(t, textInstruction("b"), instrs[2])
}

func TestTokenizerUnicodePassthrough(t *testing.T) {
	instrs := NewTokenizer("café 日本語").Tokenize()
	require.Len(t, instrs, 1)
	assert.Equal(t, "café 日本語", instrs[0].Text)
}
