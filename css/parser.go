package css

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"csc/cascade"
)

// Parser parses CSS declaration blocks and stylesheets into property sets
// the cascade consumes. Parser is not safe for concurrent use.
type Parser struct {
	log    *zap.Logger
	values cascade.ValueParser
	lower  cases.Caser
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{
		log:    log.Named("css-parser"),
		values: cascade.DefaultParser{},
		lower:  cases.Lower(language.Und),
	}
}

// ParseDeclarations parses contents of a style attribute or of a single
// declaration block. Invalid declarations are dropped and reported in
// returned warnings.
func (p *Parser) ParseDeclarations(text string) (*cascade.PropertySet, []string) {
	set := cascade.NewPropertySet()
	var warnings []string

	parser := css.NewParser(parse.NewInput(strings.NewReader(text)), true)
	p.parseDeclarations(parser, set, &warnings)
	return set, warnings
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Rules:    make([]Rule, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(strings.NewReader(string(data))), false)

	root := &layerNode{}
	// open @layer blocks, other at-rules are skipped whole
	var stack []*layerNode
	current := func() *layerNode {
		if len(stack) == 0 {
			return root
		}
		return stack[len(stack)-1]
	}
	anonymous := 0
	var nodes []*layerNode

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if !p.recoverable(parser, &sheet.Warnings) {
				p.finishLayers(root, nodes, sheet)
				return sheet
			}

		case css.BeginAtRuleGrammar:
			atRule := p.lower.String(string(data))
			if atRule != "@layer" {
				p.skipAtRuleBlock(parser)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
				sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
				continue
			}
			names := layerNames(parser.Values())
			var path []string
			switch len(names) {
			case 0:
				anonymous++
				path = []string{"<anonymous-" + strconv.Itoa(anonymous) + ">"}
			case 1:
				path = names[0]
			default:
				sheet.Warnings = append(sheet.Warnings, "layer block with multiple names")
				p.skipAtRuleBlock(parser)
				continue
			}
			stack = append(stack, current().declare(path))

		case css.EndAtRuleGrammar:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case css.AtRuleGrammar:
			atRule := p.lower.String(string(data))
			if atRule == "@layer" {
				parent := current()
				for _, path := range layerNames(parser.Values()) {
					parent.declare(path)
				}
				continue
			}
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)

		case css.BeginRulesetGrammar:
			selectors := p.parseSelectors(data, parser.Values())
			set := cascade.NewPropertySet()
			p.parseDeclarations(parser, set, &sheet.Warnings)
			node := current()
			for _, sel := range selectors {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Properties: set})
				nodes = append(nodes, node)
			}
		}
	}
}

// finishLayers assigns layer names and orders to collected rules once the
// whole layer tree is known.
func (p *Parser) finishLayers(root *layerNode, nodes []*layerNode, sheet *Stylesheet) {
	var next uint16
	sheet.Layers = root.assign(&next, nil)

	for i, node := range nodes {
		if node == root {
			sheet.Rules[i].LayerOrder = cascade.DefaultLayerOrder
			continue
		}
		sheet.Rules[i].Layer = node.full
		sheet.Rules[i].LayerOrder = node.order
	}
	p.log.Debug("Parsed stylesheet", zap.Int("rules", len(sheet.Rules)), zap.Strings("layers", sheet.Layers))
}

// recoverable reports whether parsing may continue after ErrorGrammar.
// Syntax errors are recorded as warnings, end of input stops parsing.
func (p *Parser) recoverable(parser *css.Parser, warnings *[]string) bool {
	err := parser.Err()
	if err == nil || errors.Is(err, io.EOF) {
		return false
	}
	var perr *parse.Error
	if errors.As(err, &perr) {
		p.log.Debug("CSS syntax error", zap.Error(err))
		*warnings = append(*warnings, perr.Message)
		return true
	}
	p.log.Debug("CSS parse error", zap.Error(err))
	*warnings = append(*warnings, err.Error())
	return false
}

// layerNames splits @layer prelude into dotted layer paths.
func layerNames(tokens []css.Token) [][]string {
	var (
		names [][]string
		sb    strings.Builder
	)
	flush := func() {
		if sb.Len() > 0 {
			names = append(names, strings.Split(sb.String(), "."))
			sb.Reset()
		}
	}
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken, css.CommentToken:
		case css.CommaToken:
			flush()
		default:
			sb.Write(t.Data)
		}
	}
	flush()
	return names
}

// parseSelectors extracts selector strings from token data.
func (p *Parser) parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations adds declarations to set until the end of the current
// block or of the input.
func (p *Parser) parseDeclarations(parser *css.Parser, set *cascade.PropertySet, warnings *[]string) {
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.EndRulesetGrammar:
			return

		case css.ErrorGrammar:
			if !p.recoverable(parser, warnings) {
				return
			}

		case css.DeclarationGrammar:
			if err := p.addDeclaration(set, string(data), parser.Values()); err != nil {
				p.log.Debug("Dropping declaration", zap.Error(err))
				*warnings = append(*warnings, err.Error())
			}

		case css.CustomPropertyGrammar:
			if err := p.addCustomProperty(set, string(data), parser.Values()); err != nil {
				p.log.Debug("Dropping declaration", zap.Error(err))
				*warnings = append(*warnings, err.Error())
			}
		}
	}
}

func (p *Parser) addDeclaration(set *cascade.PropertySet, name string, values []css.Token) error {
	name = p.lower.String(strings.TrimSpace(name))
	pn, ok := cascade.ParsePropertyName(name)
	if !ok || pn.IsCustom() {
		return fmt.Errorf("unknown property %q", name)
	}

	values, important := cutImportant(values)
	text := tokenText(values)
	if text == "" {
		return fmt.Errorf("empty value of %q", name)
	}

	decls, err := p.specified(pn.ID(), text)
	if err != nil {
		return fmt.Errorf("property %q: %w", name, err)
	}
	for _, d := range decls {
		d.Important = important
		set.Add(d)
	}
	return nil
}

func (p *Parser) addCustomProperty(set *cascade.PropertySet, name string, values []css.Token) error {
	name = norm.NFC.String(strings.TrimSpace(name))
	if !cascade.IsCustomPropertyName(name) {
		return fmt.Errorf("bad custom property name %q", name)
	}
	var sb strings.Builder
	for _, t := range values {
		sb.Write(t.Data)
	}
	text, important := cutImportantText(sb.String())

	set.Add(cascade.Declaration{
		Name:      cascade.CustomName(name),
		Value:     &cascade.CustomPropertyDeclaration{Data: cascade.NewVariableData(text, false)},
		Important: important,
	})
	return nil
}

var errInvalidValue = errors.New("invalid value")

// specified converts value text of a native property into declarations.
// Shorthands are expanded here, a shorthand referencing variables gives
// every longhand the same pending substitution value.
func (p *Parser) specified(id cascade.PropertyID, text string) ([]cascade.Declaration, error) {
	prop := cascade.LookupProperty(id)
	data := cascade.NewVariableData(text, false)
	keyword, isKeyword := data.Keyword()

	if id == cascade.PropertyAll {
		// 'all' stays a single declaration, longhands are produced by the
		// cascade
		switch {
		case data.NeedsVariableResolution():
			pending := &cascade.PendingSubstitutionValue{Shorthand: id, Ref: &cascade.VariableReferenceValue{Data: data}}
			return []cascade.Declaration{{Name: cascade.NativeName(id), Value: pending}}, nil
		case isKeyword:
			return []cascade.Declaration{{Name: cascade.NativeName(id), Value: keyword}}, nil
		}
		return nil, errInvalidValue
	}

	if !prop.IsShorthand() {
		if data.NeedsVariableResolution() {
			return []cascade.Declaration{{Name: cascade.NativeName(id), Value: &cascade.VariableReferenceValue{Data: data}}}, nil
		}
		v := p.values.ParseLonghand(prop, data.Tokens())
		if v == nil {
			return nil, errInvalidValue
		}
		return []cascade.Declaration{{Name: cascade.NativeName(id), Value: v}}, nil
	}

	var shared cascade.Value
	switch {
	case data.NeedsVariableResolution():
		shared = &cascade.PendingSubstitutionValue{Shorthand: id, Ref: &cascade.VariableReferenceValue{Data: data}}
	case isKeyword:
		shared = keyword
	default:
		decls := p.values.ParseShorthand(id, data.Tokens())
		if decls == nil {
			return nil, errInvalidValue
		}
		return decls, nil
	}

	longhands := prop.Longhands()
	decls := make([]cascade.Declaration, 0, len(longhands))
	for _, lh := range longhands {
		decls = append(decls, cascade.Declaration{Name: cascade.NativeName(lh), Value: shared})
	}
	return decls, nil
}

// cutImportant removes trailing "!important" from declaration value.
func cutImportant(values []css.Token) ([]css.Token, bool) {
	end := len(values)
	skip := func() {
		for end > 0 && (values[end-1].TokenType == css.WhitespaceToken || values[end-1].TokenType == css.CommentToken) {
			end--
		}
	}
	skip()
	if end < 2 {
		return values, false
	}
	last, bang := values[end-1], values[end-2]
	if last.TokenType != css.IdentToken || !strings.EqualFold(string(last.Data), "important") {
		return values, false
	}
	if bang.TokenType != css.DelimToken || string(bang.Data) != "!" {
		return values, false
	}
	end -= 2
	skip()
	return values[:end], true
}

// cutImportantText is cutImportant for raw text of custom property values.
func cutImportantText(text string) (string, bool) {
	text = strings.TrimSpace(text)
	i := strings.LastIndexByte(text, '!')
	if i < 0 || !strings.EqualFold(strings.TrimSpace(text[i+1:]), "important") {
		return text, false
	}
	return strings.TrimSpace(text[:i]), true
}

// tokenText joins value tokens back into text.
func tokenText(values []css.Token) string {
	var sb strings.Builder
	for _, t := range values {
		if t.TokenType == css.CommentToken {
			continue
		}
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			var perr *parse.Error
			if !errors.As(parser.Err(), &perr) {
				return
			}
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
