package bbclash

import (
	"strconv"
	"strings"
)

// Colour, Opacity, and Size all share a shape: validate a numeric or
// set-membership argument, open a styled span on success, mark Broken
// on failure.
func init() {
	oneArgCmd["color"] = cmdColourNamed("color")
	oneArgCmd["colour"] = cmdColourNamed("colour")
	noArgCmd["/color"] = func(l *Lexer) { l.endGroup(KindColour) }
	noArgCmd["/colour"] = func(l *Lexer) { l.endGroup(KindColour) }

	oneArgCmd["opacity"] = cmdOpacity
	noArgCmd["/opacity"] = func(l *Lexer) { l.endGroup(KindOpacity) }

	oneArgCmd["size"] = cmdSize
	noArgCmd["/size"] = func(l *Lexer) { l.endGroup(KindSize) }
}

// cmdColourNamed returns a handler for one of the "color"/"colour"
// spellings, keeping tagName so a validation failure's Broken
// reconstruction echoes back whichever spelling the user actually typed.
func cmdColourNamed(tagName string) oneArgHandler {
	return func(l *Lexer, arg string) {
		if isHexColour(arg) || isWebColour(arg) {
			l.newGroup(KindColour)
			l.cur.SetArg(arg)
			return
		}
		l.newGroup(KindBroken)
		l.cur.MarkBroken(tagName, arg, true)
	}
}

// cmdOpacity parses arg as a float, treating a trailing "%" as dividing
// by 100, and clamps the result to [0.0, 1.0].
func cmdOpacity(l *Lexer, arg string) {
	divisor := 1.0
	numeric := arg
	if strings.HasSuffix(arg, "%") {
		numeric = strings.TrimSuffix(arg, "%")
		divisor = 100.0
	}
	val, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		l.newGroup(KindBroken)
		l.cur.MarkBroken("opacity", arg, true)
		return
	}
	val /= divisor
	if val < 0.0 {
		val = 0.0
	} else if val > 1.0 {
		val = 1.0
	}
	l.newGroup(KindOpacity)
	l.cur.SetArg(strconv.FormatFloat(val, 'g', -1, 64))
}

// cmdSize parses arg as a float; a trailing "em" preserves the number
// as-is, otherwise the number is treated as points and divided by 16.
// Result is clamped to [0.5, 2.0].
func cmdSize(l *Lexer, arg string) {
	divisor := 16.0
	numeric := arg
	if strings.HasSuffix(arg, "em") {
		numeric = strings.TrimSuffix(arg, "em")
		divisor = 1.0
	}
	val, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		l.newGroup(KindBroken)
		l.cur.MarkBroken("size", arg, true)
		return
	}
	val /= divisor
	if val < 0.5 {
		val = 0.5
	} else if val > 2.0 {
		val = 2.0
	}
	l.newGroup(KindSize)
	l.cur.SetArg(strconv.FormatFloat(val, 'g', -1, 64))
}
