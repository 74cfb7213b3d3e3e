package bbclash

import "strings"

// acceptedImageExts is the fixed allow-list of image URL suffixes.
// ".svg" is deliberately excluded: it's a script-capable format and
// letting it through [img] would allow embedded script content.
var acceptedImageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".pjpeg": {}, ".pjp": {}, ".jfif": {},
	".png": {}, ".apng": {}, ".gif": {}, ".bmp": {}, ".webp": {},
}

func init() {
	noArgCmd["url"] = cmdURLBareOpen
	oneArgCmd["url"] = cmdURLArgOpen
	noArgCmd["/url"] = func(l *Lexer) { l.endGroup(KindUrl) }

	noArgCmd["email"] = cmdEmailBareOpen
	oneArgCmd["email"] = cmdEmailArgOpen
	noArgCmd["/email"] = func(l *Lexer) { l.endGroup(KindEmail) }

	noArgCmd["img"] = cmdImgBareOpen
	noArgCmd["/img"] = func(l *Lexer) { l.endGroup(KindImage) }

	oneArgCmd["embed"] = cmdEmbed
}

// resolveURL reports whether arg is an accepted URL (after applying the
// "www." -> "http://" rewrite) and returns the resolved form.
func resolveURL(arg string) (resolved string, ok bool) {
	switch {
	case strings.HasPrefix(arg, "https://"), strings.HasPrefix(arg, "http://"):
		return arg, true
	case strings.HasPrefix(arg, "www."):
		return "http://" + arg, true
	default:
		return "", false
	}
}

// cmdURLArgOpen handles [url=target]text[/url]: target is validated and
// set as the node's argument immediately; the enclosed text becomes
// ordinary child content.
func cmdURLArgOpen(l *Lexer, arg string) {
	if resolved, ok := resolveURL(arg); ok {
		l.newGroup(KindUrl)
		l.cur.SetArg(resolved)
		return
	}
	l.newGroup(KindBroken)
	l.cur.MarkBroken("url", arg, true)
}

// cmdURLBareOpen handles bare [url]target[/url]: the next Text
// instruction is captured as both the validated argument and the
// link's own visible text. On success the capture becomes both the
// href and a real Text child. On failure — including an empty capture,
// from an immediately-closed [url][/url] — nothing is added as a child;
// the raw capture is stashed as the Broken node's body instead, so
// pretty mode shows nothing at all (there's no argument separate from
// the body to fall back to) and ugly mode reconstructs the literal
// "[url]text[/url]" (or bare "[url][/url]" when the capture was empty).
func cmdURLBareOpen(l *Lexer) {
	l.newGroup(KindUrl)
	l.nextTextAsArg = func(l *Lexer, text string) {
		if resolved, ok := resolveURL(text); ok {
			l.cur.SetArg(resolved)
			l.appendText(text)
			return
		}
		l.cur.MarkBroken("url", text, false)
	}
}

func cmdEmailArgOpen(l *Lexer, arg string) {
	if isValidEmail(arg) {
		l.newGroup(KindEmail)
		l.cur.SetArg(arg)
		return
	}
	l.newGroup(KindBroken)
	l.cur.MarkBroken("email", arg, true)
}

// cmdEmailBareOpen mirrors cmdURLBareOpen's success/failure split.
func cmdEmailBareOpen(l *Lexer) {
	l.newGroup(KindEmail)
	l.nextTextAsArg = func(l *Lexer, text string) {
		if isValidEmail(text) {
			l.cur.SetArg(text)
			l.appendText(text)
			return
		}
		l.cur.MarkBroken("email", text, false)
	}
}

// isValidEmail is a minimal sanity check, not a full RFC grammar: an
// "@" with no surrounding whitespace.
func isValidEmail(arg string) bool {
	return strings.Contains(arg, "@") && !strings.ContainsAny(arg, " \t\n\r")
}

// cmdImgBareOpen handles [img]target[/img]: like bare url, the next Text
// instruction is captured as the argument, but must additionally pass
// the image-extension allow-list. Image is void and carries no visible
// body, so on success the capture only ever becomes the src argument,
// never a Text child; on failure it's stashed as the Broken node's body
// for ugly-mode reconstruction, same as the bare url/email failure path.
func cmdImgBareOpen(l *Lexer) {
	l.newGroup(KindImage)
	l.nextTextAsArg = func(l *Lexer, text string) {
		resolved, ok := resolveURL(text)
		if ok {
			ok = hasAcceptedImageExt(resolved)
		}
		if !ok {
			l.cur.MarkBroken("img", text, false)
			return
		}
		l.cur.Void = true
		l.cur.SetArg(resolved)
	}
}

func hasAcceptedImageExt(url string) bool {
	i := strings.LastIndexByte(url, '.')
	if i < 0 {
		return false
	}
	_, ok := acceptedImageExts[url[i:]]
	return ok
}

// cmdEmbed handles [embed=target], a void block element validated like
// Url.
func cmdEmbed(l *Lexer, arg string) {
	resolved, ok := resolveURL(arg)
	if !ok {
		l.newGroup(KindBroken)
		l.cur.MarkBroken("embed", arg, true)
		l.endGroup(KindBroken)
		return
	}
	l.openPeerBlock(KindEmbed)
	l.cur.Void = true
	l.cur.SetArg(resolved)
	l.closePeerBlock(KindEmbed)
}
