package input

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/css"

	"csc/cascade"
)

var lengthUnits = map[string]bool{
	"px": true, "em": true, "rem": true, "ex": true, "rex": true, "ch": true, "rch": true,
	"cap": true, "rcap": true, "ic": true, "ric": true, "lh": true, "rlh": true,
	"vw": true, "vh": true, "vi": true, "vb": true, "vmin": true, "vmax": true,
	"cm": true, "mm": true, "q": true, "in": true, "pt": true, "pc": true,
}

var colorFunctions = map[string]bool{
	"rgb": true, "rgba": true, "hsl": true, "hsla": true, "hwb": true,
	"lab": true, "lch": true, "oklab": true, "oklch": true, "color": true, "color-mix": true,
}

// significant drops whitespace and comments.
func significant(tokens []cascade.Token) []cascade.Token {
	out := make([]cascade.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Type != css.WhitespaceToken && t.Type != css.CommentToken {
			out = append(out, t)
		}
	}
	return out
}

func isLength(t cascade.Token) bool {
	switch t.Type {
	case css.NumberToken:
		return t.Text == "0"
	case css.DimensionToken:
		return lengthUnits[t.Unit()]
	}
	return false
}

func isColor(tokens []cascade.Token) bool {
	t := tokens[0]
	switch t.Type {
	case css.HashToken:
		return len(tokens) == 1
	case css.IdentToken:
		_, keyword := cascade.ParseKeyword(t.Text)
		return len(tokens) == 1 && !keyword
	case css.FunctionToken:
		name := strings.ToLower(strings.TrimSuffix(t.Text, "("))
		return colorFunctions[name] && tokens[len(tokens)-1].Type == css.RightParenthesisToken
	}
	return false
}

// components maps syntax component names to their matchers.
var components = map[string]func([]cascade.Token) bool{
	"<length>": func(tokens []cascade.Token) bool {
		return len(tokens) == 1 && isLength(tokens[0])
	},
	"<number>": func(tokens []cascade.Token) bool {
		return len(tokens) == 1 && tokens[0].Type == css.NumberToken
	},
	"<integer>": func(tokens []cascade.Token) bool {
		return len(tokens) == 1 && tokens[0].Type == css.NumberToken && !strings.ContainsAny(tokens[0].Text, ".eE")
	},
	"<percentage>": func(tokens []cascade.Token) bool {
		return len(tokens) == 1 && tokens[0].Type == css.PercentageToken
	},
	"<length-percentage>": func(tokens []cascade.Token) bool {
		return len(tokens) == 1 && (isLength(tokens[0]) || tokens[0].Type == css.PercentageToken)
	},
	"<color>": isColor,
	"<ident>": func(tokens []cascade.Token) bool {
		if len(tokens) != 1 || tokens[0].Type != css.IdentToken {
			return false
		}
		_, keyword := cascade.ParseKeyword(tokens[0].Text)
		return !keyword
	},
}

// ParseSyntax converts syntax descriptor of a registered custom property.
// Supported are the universal syntax "*" and alternatives of single
// components separated by "|", for example "<length> | <percentage>".
func ParseSyntax(text string) (cascade.Syntax, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == "*" {
		return cascade.UniversalSyntax{}, nil
	}

	var alternatives []func([]cascade.Token) bool
	for part := range strings.SplitSeq(text, "|") {
		part = strings.TrimSpace(part)
		fn, ok := components[part]
		if !ok {
			return nil, fmt.Errorf("unsupported syntax component %q", part)
		}
		alternatives = append(alternatives, fn)
	}

	return cascade.SyntaxFunc{
		Name: text,
		Fn: func(tokens []cascade.Token) bool {
			tokens = significant(tokens)
			if len(tokens) == 0 {
				return false
			}
			for _, fn := range alternatives {
				if fn(tokens) {
					return true
				}
			}
			return false
		},
	}, nil
}
