package bbclash

import (
	"strings"

	"golang.org/x/text/cases"
)

// colourFold is a reusable case-folder for web-colour-name lookups.
// golang.org/x/text/cases.Fold is the Unicode-aware equivalent of
// strings.ToLower for caseless comparisons — the right tool for a
// case-insensitive identifier set, rather than a hand-rolled ToLower
// loop that only works correctly for ASCII (see dekarrin-tunaq, which
// pulls in golang.org/x/text for the same reason: matching user-typed
// identifiers case-insensitively).
var colourFold = cases.Fold()

// webColours is the fixed set of recognized CSS colour keywords a
// [color=name] argument may reference. Entries are stored lower-cased;
// lookups fold the argument through colourFold first, so "Red",
// "RED", and "red" are all equivalent — a single-case table instead of
// the doubled upper/lower table the original hard-coded twice.
var webColours = map[string]struct{}{
	"aliceblue": {}, "antiquewhite": {}, "aqua": {}, "aquamarine": {}, "azure": {},
	"beige": {}, "bisque": {}, "black": {}, "blanchedalmond": {}, "blue": {},
	"blueviolet": {}, "brown": {}, "burlywood": {}, "cadetblue": {}, "chartreuse": {},
	"chocolate": {}, "coral": {}, "cornflowerblue": {}, "cornsilk": {}, "crimson": {},
	"cyan": {}, "darkblue": {}, "darkcyan": {}, "darkgoldenrod": {}, "darkgray": {},
	"darkgrey": {}, "darkgreen": {}, "darkkhaki": {}, "darkmagenta": {}, "darkolivegreen": {},
	"darkorange": {}, "darkorchid": {}, "darkred": {}, "darksalmon": {}, "darkseagreen": {},
	"darkslateblue": {}, "darkslategray": {}, "darkslategrey": {}, "darkturquoise": {}, "darkviolet": {},
	"deeppink": {}, "deepskyblue": {}, "dimgray": {}, "dimgrey": {}, "dodgerblue": {},
	"firebrick": {}, "floralwhite": {}, "forestgreen": {}, "fuchsia": {}, "gainsboro": {},
	"ghostwhite": {}, "gold": {}, "goldenrod": {}, "gray": {}, "grey": {},
	"green": {}, "greenyellow": {}, "honeydew": {}, "hotpink": {}, "indianred": {},
	"indigo": {}, "ivory": {}, "khaki": {}, "lavender": {}, "lavenderblush": {},
	"lawngreen": {}, "lemonchiffon": {}, "lightblue": {}, "lightcoral": {}, "lightcyan": {},
	"lightgoldenrodyellow": {}, "lightgray": {}, "lightgrey": {}, "lightgreen": {}, "lightpink": {},
	"lightsalmon": {}, "lightseagreen": {}, "lightskyblue": {}, "lightslategray": {}, "lightslategrey": {},
	"lightsteelblue": {}, "lightyellow": {}, "lime": {}, "limegreen": {}, "linen": {},
	"magenta": {}, "maroon": {}, "mediumaquamarine": {}, "mediumblue": {}, "mediumorchid": {},
	"mediumpurple": {}, "mediumseagreen": {}, "mediumslateblue": {}, "mediumspringgreen": {}, "mediumturquoise": {},
	"mediumvioletred": {}, "midnightblue": {}, "mintcream": {}, "mistyrose": {}, "moccasin": {},
	"navajowhite": {}, "navy": {}, "oldlace": {}, "olive": {}, "olivedrab": {},
	"orange": {}, "orangered": {}, "orchid": {}, "palegoldenrod": {}, "palegreen": {},
	"paleturquoise": {}, "palevioletred": {}, "papayawhip": {}, "peachpuff": {}, "peru": {},
	"pink": {}, "plum": {}, "powderblue": {}, "purple": {}, "rebeccapurple": {},
	"red": {}, "rosybrown": {}, "royalblue": {}, "saddlebrown": {}, "salmon": {},
	"sandybrown": {}, "seagreen": {}, "seashell": {}, "sienna": {}, "silver": {},
	"skyblue": {}, "slateblue": {}, "slategray": {}, "slategrey": {}, "snow": {},
	"springgreen": {}, "steelblue": {}, "tan": {}, "teal": {}, "thistle": {},
	"tomato": {}, "turquoise": {}, "transparent": {}, "transparant": {}, "violet": {},
	"wheat": {}, "white": {}, "whitesmoke": {}, "yellow": {}, "yellowgreen": {},
}

// isWebColour reports whether name (in any case) names a recognized CSS
// colour keyword.
func isWebColour(name string) bool {
	_, ok := webColours[colourFold.String(name)]
	return ok
}

// isHexColour reports whether arg is a "#RGB" or "#RRGGBB" literal —
// a "#" followed by exactly 3 or 6 ASCII hex digits.
func isHexColour(arg string) bool {
	if !strings.HasPrefix(arg, "#") {
		return false
	}
	digits := arg[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
