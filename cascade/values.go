package cascade

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// Value is a specified or cascaded CSS value.
type Value interface {
	CSSText() string
}

// Keyword is one of the CSS-wide keywords.
type Keyword uint8

const (
	KeywordInitial Keyword = iota + 1
	KeywordInherit
	KeywordUnset
	KeywordRevert
	KeywordRevertLayer
)

var keywordNames = map[Keyword]string{
	KeywordInitial:     "initial",
	KeywordInherit:     "inherit",
	KeywordUnset:       "unset",
	KeywordRevert:      "revert",
	KeywordRevertLayer: "revert-layer",
}

func (k Keyword) CSSText() string { return keywordNames[k] }
func (k Keyword) String() string  { return keywordNames[k] }

// ParseKeyword returns CSS-wide keyword for an identifier.
func ParseKeyword(s string) (Keyword, bool) {
	for k, name := range keywordNames {
		if strings.EqualFold(s, name) {
			return k, true
		}
	}
	return 0, false
}

// keywordFromTokens returns CSS-wide keyword if tokens contain nothing but a
// single such keyword.
func keywordFromTokens(tokens []Token) (Keyword, bool) {
	var ident *Token
	for i := range tokens {
		if tokens[i].isWhitespace() {
			continue
		}
		if ident != nil || tokens[i].Type != css.IdentToken {
			return 0, false
		}
		ident = &tokens[i]
	}
	if ident == nil {
		return 0, false
	}
	return ParseKeyword(ident.Text)
}

// TokenListValue is a parsed value of a native property kept as tokens.
type TokenListValue struct {
	tokens []Token
	text   string
}

// NewTokenListValue makes value from tokens, surrounding whitespace and
// comments are dropped.
func NewTokenListValue(tokens []Token) *TokenListValue {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Type != css.CommentToken {
			out = append(out, t)
		}
	}
	out = trimWhitespace(out)
	return &TokenListValue{tokens: out, text: Serialize(out)}
}

func (v *TokenListValue) CSSText() string { return v.text }
func (v *TokenListValue) Tokens() []Token { return v.tokens }

// VariableData is the token stream of a custom property value or of a value
// referencing variables.
type VariableData struct {
	text                    string
	tokens                  []Token
	animationTainted        bool
	needsVariableResolution bool
	units                   unitFlags
}

// NewVariableData tokenizes text. Animation tainted data comes from
// keyframes and must not be substituted into animation properties.
func NewVariableData(text string, animationTainted bool) *VariableData {
	tokens := trimWhitespace(Tokenize(text))
	d := &VariableData{
		text:             Serialize(tokens),
		tokens:           tokens,
		animationTainted: animationTainted,
	}
	for _, t := range tokens {
		d.units.observe(t)
		if t.isFunction("var") || t.isFunction("env") {
			d.needsVariableResolution = true
		}
	}
	return d
}

func (d *VariableData) Text() string                  { return d.text }
func (d *VariableData) Tokens() []Token               { return d.tokens }
func (d *VariableData) IsAnimationTainted() bool      { return d.animationTainted }
func (d *VariableData) NeedsVariableResolution() bool { return d.needsVariableResolution }
func (d *VariableData) HasFontUnits() bool            { return d.units.fontUnits }
func (d *VariableData) HasRootFontUnits() bool        { return d.units.rootFontUnits }
func (d *VariableData) HasLineHeightUnits() bool      { return d.units.lineHeightUnits }

// Keyword returns CSS-wide keyword if data consists of a single one.
func (d *VariableData) Keyword() (Keyword, bool) {
	return keywordFromTokens(d.tokens)
}

// CustomPropertyDeclaration is the specified value of a custom property.
type CustomPropertyDeclaration struct {
	Data *VariableData
}

func (v *CustomPropertyDeclaration) CSSText() string {
	if v.Data == nil {
		return ""
	}
	return v.Data.text
}

// VariableReferenceValue is the value of a native longhand which contains
// var() or env() references.
type VariableReferenceValue struct {
	Data *VariableData
}

func (v *VariableReferenceValue) CSSText() string { return v.Data.text }

// PendingSubstitutionValue is set on every longhand of a shorthand whose
// value contains var() or env() references. All longhands of one shorthand
// declaration share the same pointer.
type PendingSubstitutionValue struct {
	Shorthand PropertyID
	Ref       *VariableReferenceValue
}

func (v *PendingSubstitutionValue) CSSText() string { return "" }

// CyclicVariableValue is the result of resolving a custom property involved
// in a reference cycle.
type CyclicVariableValue struct{}

func (CyclicVariableValue) CSSText() string { return "" }

// InvalidVariableValue is the result of resolving a custom property which
// is invalid at computed-value time.
type InvalidVariableValue struct{}

func (InvalidVariableValue) CSSText() string { return "" }

// Declaration is a single property: value pair of a declaration block.
type Declaration struct {
	Name      PropertyName
	Value     Value
	Important bool
}

// PropertySet is a parsed declaration block. Shorthands are stored expanded
// into their longhands, except 'all'.
type PropertySet struct {
	decls []Declaration
}

// NewPropertySet creates property set with given declarations.
func NewPropertySet(decls ...Declaration) *PropertySet {
	return &PropertySet{decls: decls}
}

func (s *PropertySet) Add(d Declaration) {
	s.decls = append(s.decls, d)
}

func (s *PropertySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.decls)
}

func (s *PropertySet) At(i int) Declaration { return s.decls[i] }

func (s *PropertySet) Declarations() []Declaration {
	if s == nil {
		return nil
	}
	return s.decls
}
