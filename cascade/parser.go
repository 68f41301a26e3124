package cascade

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// ValueParser parses token streams produced by variable substitution.
type ValueParser interface {
	// ParseLonghand returns nil when tokens are not a valid value of p.
	ParseLonghand(p Property, tokens []Token) Value
	// ParseShorthand returns nil when tokens are not a valid value of
	// shorthand.
	ParseShorthand(shorthand PropertyID, tokens []Token) []Declaration
}

// DefaultParser accepts any non-empty token list as a value of a native
// longhand and knows enough of shorthand grammars to distribute values
// between longhands.
type DefaultParser struct{}

var _ ValueParser = DefaultParser{}

func stripComments(tokens []Token) []Token {
	for _, t := range tokens {
		if t.Type == css.CommentToken {
			out := make([]Token, 0, len(tokens))
			for _, t := range tokens {
				if t.Type != css.CommentToken {
					out = append(out, t)
				}
			}
			return out
		}
	}
	return tokens
}

func containsSubstitution(tokens []Token) bool {
	for _, t := range tokens {
		if t.isFunction("var") || t.isFunction("env") {
			return true
		}
	}
	return false
}

func (DefaultParser) ParseLonghand(_ Property, tokens []Token) Value {
	tokens = trimWhitespace(stripComments(tokens))
	if len(tokens) == 0 || containsSubstitution(tokens) {
		return nil
	}
	if k, ok := keywordFromTokens(tokens); ok {
		return k
	}
	for _, t := range tokens {
		if t.isDelim('!') || t.Type == css.SemicolonToken || t.Type == css.BadStringToken || t.Type == css.BadURLToken {
			return nil
		}
	}
	return NewTokenListValue(tokens)
}

// splitComponents splits tokens on top level whitespace, blocks and
// functions are kept whole. Top level '/' becomes a separate component.
func splitComponents(tokens []Token) [][]Token {
	var (
		out   [][]Token
		cur   []Token
		depth int
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
			cur = nil
		}
	}
	for _, t := range tokens {
		switch {
		case t.opensBlock():
			depth++
		case t.closesBlock():
			depth--
		case depth == 0 && t.Type == css.WhitespaceToken:
			flush()
			continue
		case depth == 0 && t.isDelim('/'):
			flush()
			out = append(out, []Token{t})
			continue
		}
		cur = append(cur, t)
	}
	flush()
	return out
}

func isSlash(c []Token) bool {
	return len(c) == 1 && c[0].isDelim('/')
}

// boxValues expands 1 to 4 components into top, right, bottom, left.
func boxValues(c [][]Token) ([4][]Token, bool) {
	switch len(c) {
	case 1:
		return [4][]Token{c[0], c[0], c[0], c[0]}, true
	case 2:
		return [4][]Token{c[0], c[1], c[0], c[1]}, true
	case 3:
		return [4][]Token{c[0], c[1], c[2], c[1]}, true
	case 4:
		return [4][]Token{c[0], c[1], c[2], c[3]}, true
	}
	return [4][]Token{}, false
}

func joinComponents(c ...[]Token) []Token {
	var out []Token
	for i, part := range c {
		if i > 0 {
			out = append(out, Token{Type: css.WhitespaceToken, Text: " "})
		}
		out = append(out, part...)
	}
	return out
}

var (
	borderStyles = map[string]bool{"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
		"double": true, "groove": true, "ridge": true, "inset": true, "outset": true, "auto": true}
	borderWidths    = map[string]bool{"thin": true, "medium": true, "thick": true}
	decorationLines = map[string]bool{"none": true, "underline": true, "overline": true, "line-through": true, "blink": true}
	decorationStyle = map[string]bool{"solid": true, "double": true, "dotted": true, "dashed": true, "wavy": true}
	imageRepeats    = map[string]bool{"stretch": true, "repeat": true, "round": true, "space": true}
	listPositions   = map[string]bool{"inside": true, "outside": true}
)

func identOf(c []Token) (string, bool) {
	if len(c) == 1 && c[0].Type == css.IdentToken {
		return strings.ToLower(c[0].Text), true
	}
	return "", false
}

func isImage(c []Token) bool {
	if len(c) == 0 {
		return false
	}
	if c[0].Type == css.URLToken {
		return true
	}
	if c[0].Type == css.FunctionToken {
		name := strings.ToLower(strings.TrimSuffix(c[0].Text, "("))
		return name == "url" || name == "image-set" || strings.HasSuffix(name, "gradient")
	}
	return false
}

func isLength(c []Token) bool {
	if len(c) != 1 {
		return c[0].Type == css.FunctionToken && (c[0].isFunction("calc") || c[0].isFunction("min") || c[0].isFunction("max") || c[0].isFunction("clamp"))
	}
	switch c[0].Type {
	case css.DimensionToken, css.NumberToken, css.PercentageToken:
		return true
	}
	return false
}

func (DefaultParser) ParseShorthand(shorthand PropertyID, tokens []Token) []Declaration {
	tokens = trimWhitespace(stripComments(tokens))
	if len(tokens) == 0 || containsSubstitution(tokens) {
		return nil
	}
	sp := LookupProperty(shorthand)
	if !sp.IsShorthand() {
		return nil
	}
	longhands := sp.Longhands()
	if shorthand == PropertyAll {
		longhands = allExpansion
	}
	if k, ok := keywordFromTokens(tokens); ok {
		out := make([]Declaration, 0, len(longhands))
		for _, id := range longhands {
			out = append(out, Declaration{Name: NativeName(id), Value: k})
		}
		return out
	}
	if shorthand == PropertyAll {
		return nil
	}

	values := make(map[PropertyID][]Token, len(longhands))
	components := splitComponents(tokens)

	switch shorthand {
	case PropertyMargin, PropertyPadding, PropertyInset, PropertyBorderWidth, PropertyBorderStyle, PropertyBorderColor:
		box, ok := boxValues(components)
		if !ok {
			return nil
		}
		for i, id := range longhands {
			values[id] = box[i]
		}

	case PropertyBorderRadius:
		horizontal, vertical := components, [][]Token(nil)
		for i, c := range components {
			if isSlash(c) {
				horizontal, vertical = components[:i], components[i+1:]
				break
			}
		}
		h, ok := boxValues(horizontal)
		if !ok {
			return nil
		}
		v := h
		if vertical != nil {
			if v, ok = boxValues(vertical); !ok {
				return nil
			}
		}
		for i, id := range longhands {
			if vertical == nil {
				values[id] = h[i]
			} else {
				values[id] = joinComponents(h[i], v[i])
			}
		}

	case PropertyMarginInline, PropertyMarginBlock, PropertyPaddingInline, PropertyPaddingBlock,
		PropertyInsetInline, PropertyInsetBlock, PropertyOverflow, PropertyBackgroundPosition:
		switch len(components) {
		case 1:
			values[longhands[0]], values[longhands[1]] = components[0], components[0]
		case 2:
			values[longhands[0]], values[longhands[1]] = components[0], components[1]
		default:
			return nil
		}

	case PropertyBorderTop, PropertyBorderRight, PropertyBorderBottom, PropertyBorderLeft, PropertyOutline, PropertyBorder:
		var width, style, color []Token
		for _, c := range components {
			ident, isIdent := identOf(c)
			switch {
			case isIdent && borderStyles[ident] && style == nil:
				style = c
			case (isIdent && borderWidths[ident] || isLength(c)) && width == nil:
				width = c
			case color == nil && !isSlash(c):
				color = c
			default:
				return nil
			}
		}
		if shorthand == PropertyBorder {
			for i := range 4 {
				setOrInitial(values, longhands[i], width)
				setOrInitial(values, longhands[4+i], style)
				setOrInitial(values, longhands[8+i], color)
			}
			for _, id := range longhands[12:] {
				values[id] = nil
			}
		} else {
			setOrInitial(values, longhands[0], width)
			setOrInitial(values, longhands[1], style)
			setOrInitial(values, longhands[2], color)
		}

	case PropertyTextDecoration:
		var line [][]Token
		var style, color []Token
		for _, c := range components {
			ident, isIdent := identOf(c)
			switch {
			case isIdent && decorationLines[ident]:
				line = append(line, c)
			case isIdent && decorationStyle[ident] && style == nil:
				style = c
			case color == nil:
				color = c
			default:
				return nil
			}
		}
		setOrInitial(values, PropertyTextDecorationLine, joinComponents(line...))
		setOrInitial(values, PropertyTextDecorationStyle, style)
		setOrInitial(values, PropertyTextDecorationColor, color)

	case PropertyListStyle:
		var position, image, typ []Token
		for _, c := range components {
			ident, isIdent := identOf(c)
			switch {
			case isIdent && listPositions[ident] && position == nil:
				position = c
			case isImage(c) && image == nil:
				image = c
			case typ == nil:
				typ = c
			default:
				return nil
			}
		}
		setOrInitial(values, PropertyListStylePosition, position)
		setOrInitial(values, PropertyListStyleImage, image)
		setOrInitial(values, PropertyListStyleType, typ)

	case PropertyBorderImage:
		var source []Token
		var repeat [][]Token
		var numeric [3][][]Token
		section := 0
		for _, c := range components {
			ident, isIdent := identOf(c)
			switch {
			case isSlash(c):
				if section++; section > 2 {
					return nil
				}
			case isImage(c) || isIdent && ident == "none":
				source = c
			case isIdent && imageRepeats[ident]:
				repeat = append(repeat, c)
			default:
				numeric[section] = append(numeric[section], c)
			}
		}
		setOrInitial(values, PropertyBorderImageSource, source)
		setOrInitial(values, PropertyBorderImageRepeat, joinComponents(repeat...))
		setOrInitial(values, PropertyBorderImageSlice, joinComponents(numeric[0]...))
		setOrInitial(values, PropertyBorderImageWidth, joinComponents(numeric[1]...))
		setOrInitial(values, PropertyBorderImageOutset, joinComponents(numeric[2]...))

	default:
		for _, id := range longhands {
			values[id] = tokens
		}
	}

	out := make([]Declaration, 0, len(longhands))
	for _, id := range longhands {
		v, ok := values[id]
		if !ok {
			return nil
		}
		if v == nil {
			out = append(out, Declaration{Name: NativeName(id), Value: KeywordInitial})
			continue
		}
		out = append(out, Declaration{Name: NativeName(id), Value: NewTokenListValue(v)})
	}
	return out
}

// setOrInitial records value, nil value stands for the initial value.
func setOrInitial(values map[PropertyID][]Token, id PropertyID, v []Token) {
	if len(v) == 0 {
		values[id] = nil
		return
	}
	values[id] = v
}
