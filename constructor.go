package bbclash

import "strings"

// Constructor walks an Element tree depth-first and serializes it to an
// HTML string, applying a per-kind open/close template to every node in
// the tree's vocabulary.
type Constructor struct {
	out   strings.Builder
	ugly  bool
}

// NewConstructor creates a Constructor whose output buffer is pre-sized
// to 1.5x sourceLen, matching the reference implementation's
// String::with_capacity(out_len + out_len/2).
func NewConstructor(sourceLen int, ugly bool) *Constructor {
	c := &Constructor{ugly: ugly}
	c.out.Grow(sourceLen + sourceLen/2)
	return c
}

// Construct serializes root (an Anchor) to HTML and returns the result.
func (c *Constructor) Construct(root *Element) string {
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		c.walk(n)
	}
	return c.out.String()
}

// walk visits e and its subtree, honoring pretty-mode pruning: an empty
// Paragraph (all of whose children were themselves pruned/dropped)
// never reaches the output in pretty mode — in ugly mode it's kept so
// Broken markers around it still show their literal source.
func (c *Constructor) walk(e *Element) {
	if e.Kind == KindParagraph && !c.ugly && e.isEffectivelyEmpty() {
		return
	}

	skipWrapper := e.Kind == KindBroken && !c.ugly

	if !skipWrapper {
		c.open(e)
	}
	for child := e.FirstChild; child != nil; child = child.NextSibling {
		c.walk(child)
	}
	if !skipWrapper && !e.Void {
		c.close(e)
	}
}

// isEffectivelyEmpty reports whether e (a Paragraph) has no children
// that would themselves produce output — used only by pretty mode,
// since pretty mode is the only mode that drops subtrees (Broken
// wrappers), which can leave a Paragraph with children in the tree but
// nothing to show.
func (e *Element) isEffectivelyEmpty() bool {
	for c := e.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == KindBroken {
			if !c.isEffectivelyEmptySubtree() {
				return false
			}
			continue
		}
		return false
	}
	return true
}

func (e *Element) isEffectivelyEmptySubtree() bool {
	for c := e.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == KindBroken {
			if !c.isEffectivelyEmptySubtree() {
				return false
			}
			continue
		}
		return false
	}
	return true
}

func (c *Constructor) open(e *Element) {
	switch e.Kind {
	case KindText:
		c.out.WriteString(e.Text)
	case KindParagraph:
		c.out.WriteString("<p>")
	case KindBold:
		c.out.WriteString("<b>")
	case KindStrong:
		c.out.WriteString("<strong>")
	case KindItalic:
		c.out.WriteString("<i>")
	case KindEmphasis:
		c.out.WriteString("<em>")
	case KindStrikethrough:
		c.out.WriteString("<s>")
	case KindSubscript:
		c.out.WriteString("<sub>")
	case KindSuperscript:
		c.out.WriteString("<sup>")
	case KindUnderline:
		c.out.WriteString(`<span class="underline">`)
	case KindSmallcaps:
		c.out.WriteString(`<span class="smallcaps">`)
	case KindMonospace:
		c.out.WriteString(`<span class="monospace">`)
	case KindSpoiler:
		c.out.WriteString(`<span class="spoiler">`)
	case KindColour:
		c.out.WriteString(`<span style="color:` + e.Arg + `;">`)
	case KindOpacity:
		c.out.WriteString(`<span style="opacity:` + e.Arg + `;">`)
	case KindSize:
		c.out.WriteString(`<span style="font-size:` + e.Arg + `rem;">`)
	case KindUrl:
		c.out.WriteString(`<a href="` + e.Arg + `" rel="nofollow">`)
	case KindEmail:
		c.out.WriteString(`<a href="mailto:` + e.Arg + `">`)
	case KindImage:
		c.out.WriteString(`<img src="` + e.Arg + `">`)
	case KindQuote:
		if e.HasArg {
			c.out.WriteString(`<blockquote data-author="` + e.Arg + `">`)
		} else {
			c.out.WriteString("<blockquote>")
		}
	case KindCenter:
		c.out.WriteString(`<div class="center">`)
	case KindRight:
		c.out.WriteString(`<div class="right">`)
	case KindFigure:
		c.out.WriteString(`<figure class="figure-` + e.Arg + `">`)
	case KindHeader:
		c.out.WriteString("<h" + e.Arg + ">")
	case KindPre:
		c.out.WriteString("<pre>")
	case KindPreLine:
		c.out.WriteString(`<div class="preline">`)
	case KindCodeBlock:
		if e.HasArg {
			c.out.WriteString(`<pre data-language="` + e.Arg + `">`)
		} else {
			c.out.WriteString("<pre>")
		}
	case KindCode:
		c.out.WriteString("<code>")
	case KindFootnote:
		if e.HasArg {
			c.out.WriteString(`<span class="footnote" data-symbol="` + e.Arg + `">`)
		} else {
			c.out.WriteString(`<span class="footnote">`)
		}
	case KindIndent:
		c.out.WriteString(`<div class="indent-` + e.Arg + `">`)
	case KindMath:
		c.out.WriteString(`<span class="math_container">`)
	case KindMathBlock:
		c.out.WriteString(`<div class="math_container">`)
	case KindEmbed:
		c.out.WriteString(`<div class="embed" data-content="` + e.Arg + `"></div>`)
	case KindList:
		switch e.Arg {
		case "", "disc", "circle", "square":
			if e.Arg == "" {
				c.out.WriteString("<ul>")
			} else {
				c.out.WriteString(`<ul style="list-style-type:` + e.Arg + `;">`)
			}
		default:
			c.out.WriteString(`<ol type="` + e.Arg + `">`)
		}
	case KindListItem:
		c.out.WriteString("<li>")
	case KindTable:
		c.out.WriteString("<table>")
	case KindTableRow:
		c.out.WriteString("<tr>")
	case KindTableData:
		c.out.WriteString("<td>")
	case KindTableHeader:
		c.out.WriteString("<th>")
	case KindTableCaption:
		c.out.WriteString("<caption>")
	case KindHr:
		c.out.WriteString("<hr>")
	case KindBr:
		c.out.WriteString("<br>")
	case KindScenebreak:
		c.out.WriteString("<br><br><br>")
	case KindBroken:
		c.writeBrokenOpen(e)
	}
}

// writeBrokenOpen reconstructs a Broken node's literal source form for
// ugly mode. This path is only reached when c.ugly is true — pretty mode
// already skipped the wrapper (and, for the hasArg=false shape, the
// entire node, since it has no children) in walk. HasArg nodes carry a
// real "=value" and render their body from ordinary children afterward;
// !HasArg nodes have no children at all, so their Arg *is* the body and
// gets written here, between the open and close brackets.
func (c *Constructor) writeBrokenOpen(e *Element) {
	if e.HasArg {
		c.out.WriteString("[" + e.BrokenTagName + "=" + e.Arg + "]")
		return
	}
	if e.Arg == "" {
		c.out.WriteString("[" + e.BrokenTagName + "]")
		return
	}
	c.out.WriteString("[" + e.BrokenTagName + "]" + e.Arg)
}

func (c *Constructor) close(e *Element) {
	switch e.Kind {
	case KindParagraph:
		c.out.WriteString("</p>")
	case KindBold:
		c.out.WriteString("</b>")
	case KindStrong:
		c.out.WriteString("</strong>")
	case KindItalic:
		c.out.WriteString("</i>")
	case KindEmphasis:
		c.out.WriteString("</em>")
	case KindSubscript:
		c.out.WriteString("</sub>")
	case KindSuperscript:
		c.out.WriteString("</sup>")
	case KindStrikethrough:
		c.out.WriteString("</s>")
	case KindUnderline, KindSmallcaps, KindMonospace, KindSpoiler,
		KindColour, KindOpacity, KindSize, KindFootnote:
		c.out.WriteString("</span>")
	case KindUrl, KindEmail:
		c.out.WriteString("</a>")
	case KindQuote:
		c.out.WriteString("</blockquote>")
	case KindCenter, KindRight, KindIndent:
		c.out.WriteString("</div>")
	case KindFigure:
		c.out.WriteString("</figure>")
	case KindHeader:
		c.out.WriteString("</h" + e.Arg + ">")
	case KindPre, KindCodeBlock:
		c.out.WriteString("</pre>")
	case KindPreLine:
		c.out.WriteString("</div>")
	case KindCode:
		c.out.WriteString("</code>")
	case KindMath:
		c.out.WriteString("</span>")
	case KindMathBlock:
		c.out.WriteString("</div>")
	case KindList:
		switch e.Arg {
		case "", "disc", "circle", "square":
			c.out.WriteString("</ul>")
		default:
			c.out.WriteString("</ol>")
		}
	case KindListItem:
		c.out.WriteString("</li>")
	case KindTable:
		c.out.WriteString("</table>")
	case KindTableRow:
		c.out.WriteString("</tr>")
	case KindTableData:
		c.out.WriteString("</td>")
	case KindTableHeader:
		c.out.WriteString("</th>")
	case KindTableCaption:
		c.out.WriteString("</caption>")
	case KindBroken:
		c.out.WriteString("[/" + e.BrokenTagName + "]")
	}
}
