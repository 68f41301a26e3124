package cascade

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// maxSubstitutionTokens limits the number of tokens a single substitution
// may produce.
const maxSubstitutionTokens = 65536

// Token is a single CSS token with its source text.
type Token struct {
	Type css.TokenType
	Text string
}

var commentToken = Token{Type: css.CommentToken, Text: "/**/"}

// Tokenize splits text into CSS tokens, whitespace and comments included.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	l := css.NewLexer(parse.NewInputString(text))
	tokens := make([]Token, 0, 8)
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		tokens = append(tokens, Token{Type: tt, Text: string(data)})
	}
	return tokens
}

// Serialize concatenates token text.
func Serialize(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

func (t Token) isWhitespace() bool {
	return t.Type == css.WhitespaceToken || t.Type == css.CommentToken
}

func (t Token) isDelim(c byte) bool {
	return t.Type == css.DelimToken && len(t.Text) == 1 && t.Text[0] == c
}

// isCustomIdent reports whether token is a custom property name, lexer may
// report those either as identifiers or as custom property names.
func (t Token) isCustomIdent() bool {
	return t.Type != css.DelimToken && t.Type != css.StringToken && IsCustomPropertyName(t.Text)
}

func (t Token) isIdent() bool {
	return t.Type == css.IdentToken || t.Type == css.CustomPropertyNameToken
}

func (t Token) isFunction(name string) bool {
	return t.Type == css.FunctionToken && strings.EqualFold(strings.TrimSuffix(t.Text, "("), name)
}

// opensBlock reports whether token starts a block which ends with a
// matching closing token.
func (t Token) opensBlock() bool {
	switch t.Type {
	case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken, css.LeftBraceToken:
		return true
	}
	return false
}

func (t Token) closesBlock() bool {
	switch t.Type {
	case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
		return true
	}
	return false
}

// blockEnd returns index of the token closing the block opened at start, or
// len(tokens) if block is not closed.
func blockEnd(tokens []Token, start int) int {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch {
		case tokens[i].opensBlock():
			depth++
		case tokens[i].closesBlock():
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(tokens)
}

func trimWhitespace(tokens []Token) []Token {
	for len(tokens) > 0 && tokens[0].Type == css.WhitespaceToken {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].Type == css.WhitespaceToken {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// Unit returns lower cased unit of a dimension token, empty string for
// other tokens.
func (t Token) Unit() string {
	if t.Type != css.DimensionToken {
		return ""
	}
	return dimensionUnit(t.Text)
}

// dimensionUnit returns the unit of a dimension token text, lower cased.
func dimensionUnit(text string) string {
	i := 0
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		i++
	}
	for i < len(text) && (text[i] >= '0' && text[i] <= '9' || text[i] == '.') {
		i++
	}
	if i+1 < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if text[j] == '+' || text[j] == '-' {
			j++
		}
		if j < len(text) && text[j] >= '0' && text[j] <= '9' {
			for j < len(text) && text[j] >= '0' && text[j] <= '9' {
				j++
			}
			i = j
		}
	}
	return strings.ToLower(text[i:])
}

type unitFlags struct {
	fontUnits       bool
	rootFontUnits   bool
	lineHeightUnits bool
}

func (u *unitFlags) observe(t Token) {
	if t.Type != css.DimensionToken {
		return
	}
	switch dimensionUnit(t.Text) {
	case "em", "ex", "ch", "ic", "cap":
		u.fontUnits = true
	case "rem", "rex", "rch", "ric", "rcap":
		u.rootFontUnits = true
	case "lh":
		u.lineHeightUnits = true
	case "rlh":
		u.rootFontUnits = true
		u.lineHeightUnits = true
	}
}

func (u *unitFlags) merge(o unitFlags) {
	u.fontUnits = u.fontUnits || o.fontUnits
	u.rootFontUnits = u.rootFontUnits || o.rootFontUnits
	u.lineHeightUnits = u.lineHeightUnits || o.lineHeightUnits
}

// needsInsertedComment reports whether serializing a immediately followed by
// b would produce different tokens, in which case an empty comment has to
// separate them.
func needsInsertedComment(a, b Token) bool {
	numericOrIdent := func(t Token) bool {
		switch t.Type {
		case css.IdentToken, css.CustomPropertyNameToken, css.FunctionToken, css.URLToken, css.BadURLToken,
			css.NumberToken, css.PercentageToken, css.DimensionToken, css.CDCToken:
			return true
		}
		return t.isDelim('-')
	}
	switch {
	case a.isIdent():
		return numericOrIdent(b) || b.Type == css.LeftParenthesisToken
	case a.Type == css.AtKeywordToken, a.Type == css.HashToken, a.Type == css.DimensionToken:
		return numericOrIdent(b)
	case a.isDelim('#'), a.isDelim('-'):
		return numericOrIdent(b) && b.Type != css.CDCToken || a.isDelim('-') && b.Type == css.CDCToken
	case a.Type == css.NumberToken:
		switch b.Type {
		case css.IdentToken, css.CustomPropertyNameToken, css.FunctionToken, css.URLToken, css.BadURLToken,
			css.NumberToken, css.PercentageToken, css.DimensionToken:
			return true
		}
		return b.isDelim('%')
	case a.isDelim('@'):
		switch b.Type {
		case css.IdentToken, css.CustomPropertyNameToken, css.FunctionToken, css.URLToken, css.BadURLToken, css.CDCToken:
			return true
		}
		return b.isDelim('-')
	case a.isDelim('.'), a.isDelim('+'):
		switch b.Type {
		case css.NumberToken, css.PercentageToken, css.DimensionToken:
			return true
		}
	case a.isDelim('/'):
		return b.isDelim('*')
	}
	return false
}

// TokenSequence accumulates the result of a substitution.
type TokenSequence struct {
	tokens           []Token
	animationTainted bool
	units            unitFlags
}

// Len returns number of tokens in the sequence.
func (s *TokenSequence) Len() int { return len(s.tokens) }

// Tokens returns accumulated tokens.
func (s *TokenSequence) Tokens() []Token { return s.tokens }

func (s *TokenSequence) appendTokens(tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}
	extra := 0
	if len(s.tokens) > 0 && needsInsertedComment(s.tokens[len(s.tokens)-1], tokens[0]) {
		extra = 1
	}
	if len(s.tokens)+len(tokens)+extra > maxSubstitutionTokens {
		return false
	}
	if extra > 0 {
		s.tokens = append(s.tokens, commentToken)
	}
	s.tokens = append(s.tokens, tokens...)
	return true
}

// Append adds single token.
func (s *TokenSequence) Append(t Token) bool {
	s.units.observe(t)
	return s.appendTokens([]Token{t})
}

// AppendData adds tokens of an already resolved variable.
func (s *TokenSequence) AppendData(data *VariableData) bool {
	if !s.appendTokens(data.tokens) {
		return false
	}
	s.animationTainted = s.animationTainted || data.animationTainted
	s.units.merge(data.units)
	return true
}

// AppendFallback adds resolved fallback of a var() or env() function,
// leading and trailing whitespace is dropped.
func (s *TokenSequence) AppendFallback(fallback *TokenSequence) bool {
	if !s.appendTokens(trimWhitespace(fallback.tokens)) {
		return false
	}
	s.animationTainted = s.animationTainted || fallback.animationTainted
	s.units.merge(fallback.units)
	return true
}

// StripComments removes comment tokens from the sequence.
func (s *TokenSequence) StripComments() {
	out := s.tokens[:0]
	for _, t := range s.tokens {
		if t.Type != css.CommentToken {
			out = append(out, t)
		}
	}
	s.tokens = out
}

// BuildVariableData converts sequence into variable data. The result no
// longer needs variable resolution.
func (s *TokenSequence) BuildVariableData() *VariableData {
	tokens := make([]Token, len(s.tokens))
	copy(tokens, s.tokens)
	return &VariableData{
		text:             Serialize(tokens),
		tokens:           tokens,
		animationTainted: s.animationTainted,
		units:            s.units,
	}
}
