package cascade

import (
	"math/bits"
	"strconv"

	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// maxGeneration is the number of Apply passes the map can distinguish
// before its generation stamps have to be cleared.
const maxGeneration = 15

// StyleCascade resolves the cascade for a single element: it analyzes
// matched declarations and active interpolations into a Map, then applies
// the winning value of every property to a StyleBuilder.
//
// StyleCascade is not safe for concurrent use.
type StyleCascade struct {
	log      *zap.Logger
	builder  StyleBuilder
	registry Registry
	env      EnvironmentVariables
	parser   ValueParser
	isRoot   bool

	matchResult    MatchResult
	interpolations Interpolations
	cmap           *Map
	generation     uint8
	pendingFlags   CascadeFlags

	needsMatchResultAnalyze           bool
	needsInterpolationsAnalyze        bool
	dependsOnCascadeAffectingProperty bool
}

// Option configures StyleCascade.
type Option func(*StyleCascade)

// WithRegistry sets registry of custom properties.
func WithRegistry(r Registry) Option {
	return func(c *StyleCascade) { c.registry = r }
}

// WithEnvironment sets source of env() variables.
func WithEnvironment(e EnvironmentVariables) Option {
	return func(c *StyleCascade) { c.env = e }
}

// WithParser replaces DefaultParser.
func WithParser(p ValueParser) Option {
	return func(c *StyleCascade) { c.parser = p }
}

// WithRootElement tells the cascade it works on the root element, root
// font relative units then depend on the element's own font.
func WithRootElement(root bool) Option {
	return func(c *StyleCascade) { c.isRoot = root }
}

// New creates cascade which applies results to builder.
func New(builder StyleBuilder, log *zap.Logger, opts ...Option) *StyleCascade {
	if log == nil {
		log = zap.NewNop()
	}
	c := &StyleCascade{
		log:     log.Named("cascade"),
		builder: builder,
		parser:  DefaultParser{},
		cmap:    NewMap(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MutableMatchResult returns match result to be populated. The cascade is
// analyzed again on the next Apply.
func (c *StyleCascade) MutableMatchResult() *MatchResult {
	c.needsMatchResultAnalyze = true
	return &c.matchResult
}

// AddInterpolations adds active interpolations of given origin. Returns
// false if the entry was dropped because too many were added.
func (c *StyleCascade) AddInterpolations(m *ActiveInterpolationsMap, origin Origin) bool {
	if m == nil || m.Len() == 0 {
		return true
	}
	if !c.interpolations.Add(m, origin) {
		c.log.Debug("Interpolations dropped", zap.Stringer("origin", origin), zap.Int("properties", m.Len()))
		return false
	}
	c.needsInterpolationsAnalyze = true
	return true
}

// Reset prepares cascade for reuse with another element.
func (c *StyleCascade) Reset() {
	c.cmap.Reset()
	c.matchResult.Reset()
	c.interpolations.Reset()
	c.generation = 0
	c.pendingFlags = 0
	c.needsMatchResultAnalyze = false
	c.needsInterpolationsAnalyze = false
	c.dependsOnCascadeAffectingProperty = false
}

// Map returns the cascade map, analyzing inputs if needed.
func (c *StyleCascade) Map() *Map {
	c.analyzeIfNeeded()
	return c.cmap
}

// Builder returns builder results are applied to.
func (c *StyleCascade) Builder() StyleBuilder { return c.builder }

// DependsOnCascadeAffectingProperty reports whether analysis resolved
// logical properties, which depend on direction and writing-mode.
func (c *StyleCascade) DependsOnCascadeAffectingProperty() bool {
	return c.dependsOnCascadeAffectingProperty
}

// InlineStyleLost reports whether any inline style declaration lost the
// cascade.
func (c *StyleCascade) InlineStyleLost() bool {
	c.analyzeIfNeeded()
	return c.cmap.InlineStyleLost()
}

// Apply applies the winner of every property not rejected by filter.
// Apply may be called repeatedly, properties already applied by an earlier
// pass are applied again.
func (c *StyleCascade) Apply(filter Filter) {
	c.analyzeIfNeeded()

	r := NewResolver(filter, c.nextGeneration())
	c.pendingFlags = 0

	c.applyCascadeAffecting(r)

	// color-scheme affects the computed value of color, math-depth affects
	// font-size, mask images and forced colors must be known before colors
	// are computed.
	c.lookupAndApply(LookupProperty(PropertyColorScheme), r)
	c.lookupAndApply(LookupProperty(PropertyMathDepth), r)
	c.lookupAndApply(LookupProperty(PropertyMaskImage), r)
	c.lookupAndApply(LookupProperty(PropertyWebkitMaskImage), r)
	c.lookupAndApply(LookupProperty(PropertyForcedColorAdjust), r)

	c.applyHighPriority(r)
	c.builder.UpdateFont()

	c.lookupAndApply(LookupProperty(PropertyLineHeight), r)
	c.builder.UpdateLineHeight()

	c.applyWideOverlapping(r)
	c.applyMatchResult(r)
	c.applyInterpolations(r)

	flags := c.pendingFlags
	if r.Flags().Has(FlagAnimation) {
		flags |= CanAffectAnimations
	}
	if r.RejectedFlags().Has(FlagLegacyOverlapping) {
		flags |= RejectedLegacyOverlapping
	}
	author := r.AuthorFlags()
	if author.Has(FlagBackground) {
		flags |= HasAuthorBackground
	}
	if author.Has(FlagBorder) {
		flags |= HasAuthorBorder
	}
	if author.Has(FlagBorderRadius) {
		flags |= HasAuthorBorderRadius
	}
	c.builder.SetCascadeFlags(flags)

	c.log.Debug("Cascade applied",
		zap.Uint8("generation", r.Generation()),
		zap.Stringer("flags", flags),
		zap.Bool("important", c.cmap.HasImportant()))
}

func (c *StyleCascade) nextGeneration() uint8 {
	if c.generation >= maxGeneration {
		c.cmap.ResetGenerations()
		c.generation = 0
	}
	c.generation++
	return c.generation
}

func (c *StyleCascade) analyzeIfNeeded() {
	if c.needsMatchResultAnalyze {
		c.analyzeMatchResult()
		c.needsMatchResultAnalyze = false
	}
	if c.needsInterpolationsAnalyze {
		c.analyzeInterpolations()
		c.needsInterpolationsAnalyze = false
	}
}

// Reanalyze rebuilds the map from scratch.
func (c *StyleCascade) Reanalyze() {
	c.cmap.Reset()
	c.dependsOnCascadeAffectingProperty = false
	c.needsMatchResultAnalyze = true
	c.needsInterpolationsAnalyze = !c.interpolations.IsEmpty()
	c.analyzeIfNeeded()
}

func (c *StyleCascade) resolveSurrogate(p Property) Property {
	if !p.IsSurrogate() {
		return p
	}
	if isDirectionAware(p) {
		c.dependsOnCascadeAffectingProperty = true
	}
	return ResolveSurrogate(p, c.builder.Direction(), c.builder.WritingMode())
}

func (c *StyleCascade) analyzeMatchResult() {
	for i, block := range c.matchResult.Matched() {
		for e := range ExpandCascade(block, i, c.registry) {
			p := c.resolveSurrogate(e.Property)
			c.cmap.Add(p.Name(), e.Priority)
		}
	}
}

func (c *StyleCascade) analyzeInterpolations() {
	for i, entry := range c.interpolations.Entries() {
		for _, handle := range entry.Map.Keys() {
			pos := EncodeInterpolationPosition(handle.Name.id, i, handle.PresentationAttribute)
			priority := NewPriority(entry.Origin, false, 0, false, 0, pos)
			p := c.resolveSurrogate(PropertyFor(handle.Name, c.registry))
			c.cmap.Add(p.Name(), priority)
			// Interpolating an unvisited property interpolates its visited
			// counterpart too.
			if v, ok := p.Visited(); ok {
				c.cmap.Add(v.Name(), priority)
			}
		}
	}
}

func (c *StyleCascade) applyCascadeAffecting(r *Resolver) {
	dir, wm := c.builder.Direction(), c.builder.WritingMode()

	c.lookupAndApply(LookupProperty(PropertyDirection), r)
	c.lookupAndApply(LookupProperty(PropertyWritingMode), r)

	if c.dependsOnCascadeAffectingProperty && (dir != c.builder.Direction() || wm != c.builder.WritingMode()) {
		c.log.Debug("Reanalyzing cascade",
			zap.Stringer("direction", c.builder.Direction()),
			zap.Stringer("writing-mode", c.builder.WritingMode()))
		c.Reanalyze()
	}
}

func (c *StyleCascade) applyHighPriority(r *Resolver) {
	for b := c.cmap.HighPriorityBits(); b != 0; b &= b - 1 {
		c.lookupAndApply(LookupProperty(PropertyID(bits.TrailingZeros64(b))), r)
	}
}

// wideOverlapping lists properties which set the same computed value as a
// group of narrower longhands.
var wideOverlapping = []struct {
	wide   PropertyID
	narrow []PropertyID
}{
	{PropertyWebkitBorderImage, []PropertyID{PropertyBorderImageSource, PropertyBorderImageSlice,
		PropertyBorderImageWidth, PropertyBorderImageOutset, PropertyBorderImageRepeat}},
	{PropertyPerspectiveOrigin, []PropertyID{PropertyWebkitPerspectiveOriginX, PropertyWebkitPerspectiveOriginY}},
	{PropertyTransformOrigin, []PropertyID{PropertyWebkitTransformOriginX, PropertyWebkitTransformOriginY,
		PropertyWebkitTransformOriginZ}},
	{PropertyVerticalAlign, []PropertyID{PropertyBaselineSource}},
}

// applyWideOverlapping applies wide properties first and marks narrower
// longhands declared before them as applied, so that the narrow ones are
// applied by the generic pass only when they were declared later.
func (c *StyleCascade) applyWideOverlapping(r *Resolver) {
	for _, wo := range wideOverlapping {
		wide := LookupProperty(wo.wide)
		if r.Filter().Rejects(wide) {
			continue
		}
		priority := c.cmap.Find(wide.Name())
		if priority == nil {
			continue
		}
		c.lookupAndApply(wide, r)
		for _, id := range wo.narrow {
			c.maybeSkip(id, *priority, r)
		}
	}
}

func (c *StyleCascade) maybeSkip(id PropertyID, priority Priority, r *Resolver) {
	if p := c.cmap.Find(NativeName(id)); p != nil && p.Less(priority) {
		*p = p.WithGeneration(r.Generation())
	}
}

func (c *StyleCascade) applyMatchResult(r *Resolver) {
	for id, p := range c.cmap.Native() {
		if p.Generation() >= r.Generation() || p.IsInterpolation() {
			continue
		}
		property := LookupProperty(id)
		if r.Rejects(property) {
			continue
		}
		c.lookupAndApplyDeclaration(property, p, r)
	}
	for name, p := range c.cmap.Custom() {
		if p.Generation() >= r.Generation() || p.IsInterpolation() {
			continue
		}
		property := NewCustomProperty(name, c.registry)
		if r.Rejects(property) {
			continue
		}
		c.lookupAndApplyDeclaration(property, p, r)
	}
}

func (c *StyleCascade) applyInterpolations(r *Resolver) {
	for i, entry := range c.interpolations.Entries() {
		c.applyInterpolationMap(entry, i, r)
	}
}

func (c *StyleCascade) applyInterpolationMap(entry InterpolationsEntry, index int, r *Resolver) {
	for _, handle := range entry.Map.Keys() {
		pos := EncodeInterpolationPosition(handle.Name.id, index, handle.PresentationAttribute)
		priority := NewPriority(entry.Origin, false, 0, false, 0, pos).WithGeneration(r.Generation())

		property := c.resolveSurrogate(PropertyFor(handle.Name, c.registry))
		if r.Rejects(property) {
			continue
		}
		p := c.cmap.Find(property.Name())
		if p == nil || p.Compare(priority) >= 0 {
			continue
		}
		*p = priority

		list, _ := entry.Map.Get(handle)
		c.applyInterpolation(property, priority, list, r)

		// Applying the interpolation of an unvisited property also sets its
		// visited counterpart. When the visited property has a declaration
		// which wins over the interpolation it has to be applied again.
		if v, ok := property.Visited(); ok {
			if vp := c.cmap.Find(v.Name()); vp != nil && vp.Compare(priority) > 0 {
				*vp = vp.WithGeneration(0)
				c.lookupAndApply(v, r)
			}
		}
	}
}

func (c *StyleCascade) applyInterpolation(p Property, priority Priority, list []Interpolation, r *Resolver) {
	if len(list) == 0 {
		return
	}
	env := &InterpolationEnvironment{cascade: c, resolver: r, property: p, origin: priority.Origin()}
	for _, i := range list {
		i.Apply(env)
	}
}

// lookupAndApply applies the winning value of property unless it was
// already applied during this pass.
func (c *StyleCascade) lookupAndApply(p Property, r *Resolver) {
	priority := c.cmap.Find(p.Name())
	if priority == nil {
		return
	}
	if r.Rejects(p) {
		return
	}
	c.lookupAndApplyValue(p, priority, r)
}

func (c *StyleCascade) lookupAndApplyValue(p Property, priority *Priority, r *Resolver) {
	if priority.IsInterpolation() {
		c.lookupAndApplyInterpolation(p, priority, r)
		return
	}
	c.lookupAndApplyDeclaration(p, priority, r)
}

func (c *StyleCascade) lookupAndApplyDeclaration(p Property, priority *Priority, r *Resolver) {
	if priority.Generation() >= r.Generation() {
		return
	}
	*priority = priority.WithGeneration(r.Generation())

	decl, ok := c.matchResult.valueAt(priority.Position())
	if !ok {
		dcheck(false, "priority position outside of match result")
		return
	}
	origin := priority.Origin()
	value := c.resolve(p, decl.Value, *priority, &origin, r)
	c.builder.ApplyProperty(p, value, ApplyContext{Origin: origin, TreeOrder: priority.TreeOrder()})
}

func (c *StyleCascade) lookupAndApplyInterpolation(p Property, priority *Priority, r *Resolver) {
	// Visited properties are interpolated together with their unvisited
	// counterparts.
	if p.IsVisited() {
		return
	}
	if priority.Generation() >= r.Generation() {
		return
	}
	*priority = priority.WithGeneration(r.Generation())

	id, index, presentation := DecodeInterpolationPosition(priority.Position())
	entries := c.interpolations.Entries()
	if index >= len(entries) {
		dcheck(false, "priority position outside of interpolations")
		return
	}
	handle := PropertyHandle{Name: NativeName(id), PresentationAttribute: presentation}
	if p.IsCustom() {
		handle.Name = p.Name()
	}
	list, ok := entries[index].Map.Get(handle)
	if !ok {
		return
	}
	c.applyInterpolation(p, *priority, list, r)
}

// resolve turns a cascaded value into a value which can be applied: all
// substitutions are performed and revert/revert-layer are replaced with
// the value they revert to. origin is updated to the origin of the value
// actually used.
func (c *StyleCascade) resolve(p Property, value Value, priority Priority, origin *Origin, r *Resolver) Value {
	result := c.resolveSubstitutions(p, value, r)
	if k, ok := result.(Keyword); ok {
		switch k {
		case KeywordRevert:
			return c.resolveRevert(p, result, origin, r)
		case KeywordRevertLayer:
			return c.resolveRevertLayer(p, priority, origin, r)
		}
	}
	r.CollectFlags(p, *origin)
	return result
}

func (c *StyleCascade) resolveSubstitutions(p Property, value Value, r *Resolver) Value {
	switch v := value.(type) {
	case *CustomPropertyDeclaration:
		return c.resolveCustomProperty(p, v, r)
	case *VariableReferenceValue:
		return c.resolveVariableReference(p, v, r)
	case *PendingSubstitutionValue:
		return c.resolvePendingSubstitution(p, v, r)
	}
	return value
}

func (c *StyleCascade) resolveRevert(p Property, value Value, origin *Origin, r *Resolver) Value {
	target := targetOriginForRevert(*origin)
	if target == OriginNone {
		*origin = OriginNone
		return KeywordUnset
	}
	q := c.cmap.FindOrigin(p.Name(), target)
	if q == nil || !q.HasOrigin() {
		*origin = OriginNone
		return KeywordUnset
	}
	decl, ok := c.matchResult.valueAt(q.Position())
	if !ok {
		*origin = OriginNone
		return KeywordUnset
	}
	*origin = q.Origin()
	return c.resolve(p, decl.Value, *q, origin, r)
}

func (c *StyleCascade) resolveRevertLayer(p Property, priority Priority, origin *Origin, r *Resolver) Value {
	q := c.cmap.FindRevertLayer(p.Name(), priority.ForLayerComparison())
	if q == nil || q.IsInterpolation() {
		*origin = OriginNone
		return KeywordUnset
	}
	decl, ok := c.matchResult.valueAt(q.Position())
	if !ok {
		*origin = OriginNone
		return KeywordUnset
	}
	*origin = q.Origin()
	return c.resolve(p, decl.Value, *q, origin, r)
}

func (c *StyleCascade) resolveCustomProperty(p Property, decl *CustomPropertyDeclaration, r *Resolver) Value {
	r.Lock(p)
	defer r.Unlock()

	data := decl.Data
	if data != nil && data.NeedsVariableResolution() {
		data = c.resolveVariableData(data, r)
	}

	if c.hasFontSizeDependency(p, data) {
		r.DetectCycle(LookupProperty(PropertyFontSize))
	}
	if c.hasLineHeightDependency(p, data) {
		r.DetectCycle(LookupProperty(PropertyLineHeight))
	}

	if r.InCycle() {
		c.log.Debug("Cyclic custom property", zap.String("property", p.name))
		return CyclicVariableValue{}
	}
	if data == nil {
		return InvalidVariableValue{}
	}
	if k, ok := data.Keyword(); ok {
		return k
	}
	if data == decl.Data {
		return decl
	}
	return &CustomPropertyDeclaration{Data: data}
}

func (c *StyleCascade) markHasVariableReference(p Property) {
	if !p.IsInherited() {
		c.pendingFlags |= HasVariableReferenceFromNonInherited
	}
	c.pendingFlags |= HasVariableReference
}

func (c *StyleCascade) resolveVariableReference(p Property, v *VariableReferenceValue, r *Resolver) Value {
	r.Lock(p)
	defer r.Unlock()

	c.markHasVariableReference(p)

	seq := TokenSequence{animationTainted: v.Data.IsAnimationTainted()}
	if c.resolveTokensInto(v.Data.Tokens(), r, &seq) {
		seq.StripComments()
		if parsed := c.parser.ParseLonghand(p, seq.Tokens()); parsed != nil {
			return parsed
		}
	}
	c.log.Debug("Invalid at computed-value time", zap.Stringer("property", p), zap.String("value", v.Data.Text()))
	return KeywordUnset
}

func (c *StyleCascade) resolvePendingSubstitution(p Property, v *PendingSubstitutionValue, r *Resolver) Value {
	r.Lock(p)
	defer r.Unlock()

	c.markHasVariableReference(p)

	if r.shorthandCache.value != v {
		seq := TokenSequence{animationTainted: v.Ref.Data.IsAnimationTainted()}
		if !c.resolveTokensInto(v.Ref.Data.Tokens(), r, &seq) {
			c.log.Debug("Invalid at computed-value time", zap.Stringer("property", p), zap.Stringer("shorthand", v.Shorthand))
			return KeywordUnset
		}
		seq.StripComments()
		parsed := c.parser.ParseShorthand(v.Shorthand, seq.Tokens())
		if parsed == nil {
			c.log.Debug("Invalid at computed-value time", zap.Stringer("property", p), zap.Stringer("shorthand", v.Shorthand))
			return KeywordUnset
		}
		r.shorthandCache.value = v
		r.shorthandCache.parsed = parsed
	}

	unvisited := p.Unvisited()
	for _, decl := range r.shorthandCache.parsed {
		longhand := c.resolveSurrogate(PropertyFor(decl.Name, c.registry))
		if longhand.ID() == unvisited.ID() {
			return decl.Value
		}
	}
	dcheck(false, "longhand not found in parsed shorthand")
	return KeywordUnset
}

func (c *StyleCascade) resolveVariableData(data *VariableData, r *Resolver) *VariableData {
	seq := TokenSequence{animationTainted: data.IsAnimationTainted()}
	if !c.resolveTokensInto(data.Tokens(), r, &seq) {
		return nil
	}
	return seq.BuildVariableData()
}

// resolveTokensInto copies tokens into out, substituting var() and env()
// functions. Substitution continues after a failure so that all cycles are
// detected.
func (c *StyleCascade) resolveTokensInto(tokens []Token, r *Resolver, out *TokenSequence) bool {
	success := true
	for i := 0; i < len(tokens); {
		t := tokens[i]
		isVar, isEnv := t.isFunction("var"), t.isFunction("env")
		if isVar || isEnv {
			end := blockEnd(tokens, i)
			args := tokens[i+1 : min(end, len(tokens))]
			if isVar {
				success = c.resolveVarInto(args, r, out) && success
			} else {
				success = c.resolveEnvInto(args, r, out) && success
			}
			i = end + 1
			continue
		}
		if !out.Append(t) {
			return false
		}
		i++
	}
	return success
}

func skipWhitespace(tokens []Token) []Token {
	for len(tokens) > 0 && tokens[0].isWhitespace() {
		tokens = tokens[1:]
	}
	return tokens
}

// consumeComma returns tokens after a leading comma.
func consumeComma(tokens []Token) ([]Token, bool) {
	tokens = skipWhitespace(tokens)
	if len(tokens) > 0 && tokens[0].Type == css.CommaToken {
		return tokens[1:], true
	}
	return tokens, false
}

func (c *StyleCascade) resolveVarInto(args []Token, r *Resolver, out *TokenSequence) bool {
	args = skipWhitespace(args)
	if len(args) == 0 || !args[0].isCustomIdent() {
		return false
	}
	name := args[0].Text
	args = args[1:]

	p := NewCustomProperty(name, c.registry)
	if marker, ok := c.registry.(ReferenceMarker); ok && lookupRegistration(c.registry, name) != nil {
		marker.MarkReferenced(name)
	}

	// Any cycle is detected by the lookup below, a cycle involving the
	// current property is marked here.
	if !r.DetectCycle(p) {
		c.lookupAndApply(p, r)
	}

	data := c.variableData(p)
	if !r.AllowSubstitution(data) {
		data = nil
	}

	if rest, ok := consumeComma(args); ok {
		// Fallback is resolved even when it is not used to discover cycles
		// it may contain.
		var fallback TokenSequence
		success := c.resolveTokensInto(rest, r, &fallback)
		if !c.validateFallback(p, fallback.Tokens()) {
			return false
		}
		if data == nil {
			return success && out.AppendFallback(&fallback)
		}
	}

	if data == nil || r.InCycle() {
		return false
	}
	return out.AppendData(data)
}

func (c *StyleCascade) resolveEnvInto(args []Token, r *Resolver, out *TokenSequence) bool {
	args = skipWhitespace(args)
	if len(args) == 0 || !args[0].isIdent() {
		return false
	}
	name := args[0].Text
	args = args[1:]

	var indices []int
	for {
		args = skipWhitespace(args)
		if len(args) == 0 || args[0].Type != css.NumberToken {
			break
		}
		n, err := strconv.Atoi(args[0].Text)
		if err != nil || n < 0 {
			return false
		}
		indices = append(indices, n)
		args = args[1:]
	}

	var data *VariableData
	if c.env != nil {
		data = c.env.Variable(name, indices)
	}
	if data == nil {
		rest, ok := consumeComma(args)
		if !ok {
			return false
		}
		var fallback TokenSequence
		if !c.resolveTokensInto(rest, r, &fallback) {
			return false
		}
		return out.AppendFallback(&fallback)
	}
	return out.AppendData(data)
}

func (c *StyleCascade) variableData(p Property) *VariableData {
	return c.builder.VariableData(p.name, p.IsInherited())
}

func (c *StyleCascade) validateFallback(p Property, tokens []Token) bool {
	reg := lookupRegistration(c.registry, p.name)
	if reg == nil || reg.Syntax == nil {
		return true
	}
	return reg.Syntax.Accepts(trimWhitespace(stripComments(tokens)))
}

func (c *StyleCascade) hasFontSizeDependency(p Property, data *VariableData) bool {
	if data == nil || !p.IsCustom() || lookupRegistration(c.registry, p.name) == nil {
		return false
	}
	if data.HasFontUnits() || data.HasLineHeightUnits() {
		return true
	}
	return data.HasRootFontUnits() && c.isRoot
}

func (c *StyleCascade) hasLineHeightDependency(p Property, data *VariableData) bool {
	if data == nil || !p.IsCustom() || lookupRegistration(c.registry, p.name) == nil {
		return false
	}
	return data.HasLineHeightUnits()
}

// GetImportantSet returns set of native properties whose winning
// declaration is important, visited properties are reported as their
// unvisited counterparts. Returns nil when there are no important
// declarations.
func (c *StyleCascade) GetImportantSet() *PropertyBitset {
	c.analyzeIfNeeded()
	if !c.cmap.HasImportant() {
		return nil
	}
	set := new(PropertyBitset)
	for id, p := range c.cmap.Native() {
		if p.IsImportant() {
			set.Set(LookupProperty(id).Unvisited().ID())
		}
	}
	return set
}

// GetCascadedValues returns winning values before any resolution.
// Interpolated properties are not included.
func (c *StyleCascade) GetCascadedValues() map[PropertyName]Value {
	c.analyzeIfNeeded()
	result := make(map[PropertyName]Value)
	for id, p := range c.cmap.Native() {
		if p.IsInterpolation() {
			continue
		}
		if decl, ok := c.matchResult.valueAt(p.Position()); ok {
			result[NativeName(id)] = decl.Value
		}
	}
	for name, p := range c.cmap.Custom() {
		if p.IsInterpolation() {
			continue
		}
		if decl, ok := c.matchResult.valueAt(p.Position()); ok {
			result[CustomName(name)] = decl.Value
		}
	}
	return result
}

// Resolve resolves value as if it was declared for property name with
// given origin. Cyclic references produce nil, values invalid at
// computed-value time produce unset.
func (c *StyleCascade) Resolve(name PropertyName, value Value, origin Origin) Value {
	r := NewResolver(Filter{}, 0)
	resolved := c.resolveValue(name, value, origin, r)
	switch resolved.(type) {
	case CyclicVariableValue:
		return nil
	case InvalidVariableValue:
		return KeywordUnset
	}
	return resolved
}

func (c *StyleCascade) resolveValue(name PropertyName, value Value, origin Origin, r *Resolver) Value {
	p := c.resolveSurrogate(PropertyFor(name, c.registry))
	return c.resolve(p, value, PriorityForOrigin(origin), &origin, r)
}

// Resolve resolves a single value outside of any cascade: references are
// looked up in builder only.
func Resolve(builder StyleBuilder, name PropertyName, value Value, origin Origin, opts ...Option) Value {
	return New(builder, nil, opts...).Resolve(name, value, origin)
}
