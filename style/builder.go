package style

import (
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"csc/cascade"
)

// Builder builds Computed style from cascade results. Inherited properties
// start with values of the parent style.
type Builder struct {
	log      *zap.Logger
	parent   *Computed
	style    *Computed
	registry cascade.Registry
	parser   cascade.ValueParser
}

var _ cascade.StyleBuilder = (*Builder)(nil)

// NewBuilder creates builder for a child of parent. Nil parent means the
// root element.
func NewBuilder(parent *Computed, registry cascade.Registry, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	if parent == nil {
		parent = Initial()
	}
	b := &Builder{
		log:      log.Named("style"),
		parent:   parent,
		style:    newComputed(),
		registry: registry,
		parser:   cascade.DefaultParser{},
	}
	for id, v := range parent.native {
		if cascade.LookupProperty(id).IsInherited() {
			b.style.native[id] = v
		}
	}
	for name, d := range parent.inheritedVars {
		b.style.inheritedVars[name] = d
	}
	b.style.direction = parent.direction
	b.style.writingMode = parent.writingMode
	b.style.insideLink = parent.insideLink
	return b
}

// SetInsideLink sets link state of the element.
func (b *Builder) SetInsideLink(l InsideLink) { b.style.insideLink = l }

// Style returns style being built.
func (b *Builder) Style() *Computed { return b.style }

func (b *Builder) Direction() cascade.Direction     { return b.style.direction }
func (b *Builder) WritingMode() cascade.WritingMode { return b.style.writingMode }

func (b *Builder) UpdateFont()       { b.style.fontUpdates++ }
func (b *Builder) UpdateLineHeight() { b.style.lineHeightUpdates++ }

func (b *Builder) SetCascadeFlags(flags cascade.CascadeFlags) { b.style.flags = flags }

// VariableData returns current value of custom property. Registered
// properties which were never set have their initial values.
func (b *Builder) VariableData(name string, inherited bool) *cascade.VariableData {
	vars := b.style.nonInheritedVars
	if inherited {
		vars = b.style.inheritedVars
	}
	if d, ok := vars[name]; ok {
		return d
	}
	if reg := b.registration(name); reg != nil {
		return reg.Initial
	}
	return nil
}

func (b *Builder) ApplyProperty(p cascade.Property, value cascade.Value, ctx cascade.ApplyContext) {
	if p.IsCustom() {
		b.applyCustom(p, value)
		return
	}

	text := b.compute(p, value)
	id := p.ID()
	b.style.native[id] = text
	b.style.origins[id] = ctx.Origin

	switch id {
	case cascade.PropertyDirection:
		b.style.direction = cascade.ParseDirection(text)
	case cascade.PropertyWritingMode:
		b.style.writingMode = cascade.ParseWritingMode(text)
	case cascade.PropertyWebkitBorderImage:
		b.applyWide(cascade.PropertyBorderImage, text, ctx)
	case cascade.PropertyTransformOrigin:
		b.applyComponents(text, ctx, cascade.PropertyWebkitTransformOriginX, cascade.PropertyWebkitTransformOriginY,
			cascade.PropertyWebkitTransformOriginZ)
	case cascade.PropertyPerspectiveOrigin:
		b.applyComponents(text, ctx, cascade.PropertyWebkitPerspectiveOriginX, cascade.PropertyWebkitPerspectiveOriginY)
	case cascade.PropertyVerticalAlign:
		b.setNative(cascade.PropertyBaselineSource, cascade.LookupProperty(cascade.PropertyBaselineSource).Initial(), ctx)
	}
}

func (b *Builder) setNative(id cascade.PropertyID, text string, ctx cascade.ApplyContext) {
	b.style.native[id] = text
	b.style.origins[id] = ctx.Origin
}

// compute turns cascaded value of a native property into computed text.
func (b *Builder) compute(p cascade.Property, value cascade.Value) string {
	k, ok := value.(cascade.Keyword)
	if !ok {
		return value.CSSText()
	}
	switch k {
	case cascade.KeywordInherit:
		return b.parent.Value(p.ID())
	case cascade.KeywordUnset, cascade.KeywordRevert, cascade.KeywordRevertLayer:
		if p.IsInherited() {
			return b.parent.Value(p.ID())
		}
	}
	return p.Initial()
}

// applyWide sets longhands of shorthand from value of a wide legacy
// property.
func (b *Builder) applyWide(shorthand cascade.PropertyID, text string, ctx cascade.ApplyContext) {
	decls := b.parser.ParseShorthand(shorthand, cascade.Tokenize(text))
	if decls == nil {
		b.log.Debug("Unable to distribute value", zap.Stringer("shorthand", shorthand), zap.String("value", text))
		return
	}
	for _, d := range decls {
		p := cascade.LookupProperty(d.Name.ID())
		b.setNative(p.ID(), b.compute(p, d.Value), ctx)
	}
}

// applyComponents sets legacy per axis properties from whitespace separated
// components of text, missing components become initial.
func (b *Builder) applyComponents(text string, ctx cascade.ApplyContext, ids ...cascade.PropertyID) {
	var parts []string
	for _, t := range cascade.Tokenize(text) {
		if t.Type != css.WhitespaceToken && t.Type != css.CommentToken {
			parts = append(parts, t.Text)
		}
	}
	for i, id := range ids {
		if i < len(parts) {
			b.setNative(id, parts[i], ctx)
		} else {
			b.setNative(id, cascade.LookupProperty(id).Initial(), ctx)
		}
	}
}

func (b *Builder) storeVariable(p cascade.Property, name string, d *cascade.VariableData) {
	vars := b.style.nonInheritedVars
	if p.IsInherited() {
		vars = b.style.inheritedVars
	}
	if d == nil {
		delete(vars, name)
		return
	}
	vars[name] = d
}

func (b *Builder) applyCustom(p cascade.Property, value cascade.Value) {
	name := p.Name().Custom()
	reg := b.registration(name)

	initial := func() *cascade.VariableData {
		if reg != nil {
			return reg.Initial
		}
		return nil
	}
	unset := func() *cascade.VariableData {
		if p.IsInherited() {
			return b.parent.Variable(name)
		}
		return initial()
	}

	switch v := value.(type) {
	case *cascade.CustomPropertyDeclaration:
		d := v.Data
		if reg != nil && reg.Syntax != nil && d != nil && !reg.Syntax.Accepts(d.Tokens()) {
			b.log.Debug("Value does not match registered syntax",
				zap.String("property", name), zap.String("value", d.Text()), zap.Stringer("syntax", reg.Syntax))
			d = unset()
		}
		b.storeVariable(p, name, d)
	case cascade.Keyword:
		switch v {
		case cascade.KeywordInitial:
			b.storeVariable(p, name, initial())
		case cascade.KeywordInherit:
			b.storeVariable(p, name, b.parent.Variable(name))
		default:
			b.storeVariable(p, name, unset())
		}
	case cascade.CyclicVariableValue, cascade.InvalidVariableValue:
		if reg != nil {
			b.storeVariable(p, name, unset())
			return
		}
		b.storeVariable(p, name, nil)
	default:
		b.storeVariable(p, name, cascade.NewVariableData(value.CSSText(), false))
	}
}

func (b *Builder) registration(name string) *cascade.Registration {
	if b.registry == nil {
		return nil
	}
	return b.registry.Registration(name)
}
