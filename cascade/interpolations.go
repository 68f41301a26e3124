package cascade

// maxInterpolationEntries bounds the number of interpolation maps a cascade
// accepts.
const maxInterpolationEntries = 256

// Interpolation is an active animation or transition effect for a single
// property.
type Interpolation interface {
	// Apply sets the current interpolated value using env.
	Apply(env *InterpolationEnvironment)
}

// PropertyHandle identifies an animated property. Presentation attributes
// are animated separately from the property itself.
type PropertyHandle struct {
	Name                  PropertyName
	PresentationAttribute bool
}

// ActiveInterpolationsMap maps animated properties to interpolation stacks,
// later interpolations composite on top of earlier ones. Iteration order is
// insertion order.
type ActiveInterpolationsMap struct {
	keys   []PropertyHandle
	values map[PropertyHandle][]Interpolation
}

func NewActiveInterpolationsMap() *ActiveInterpolationsMap {
	return &ActiveInterpolationsMap{values: make(map[PropertyHandle][]Interpolation)}
}

// Add appends interpolation to the stack of handle.
func (m *ActiveInterpolationsMap) Add(handle PropertyHandle, i Interpolation) {
	if _, ok := m.values[handle]; !ok {
		m.keys = append(m.keys, handle)
	}
	m.values[handle] = append(m.values[handle], i)
}

func (m *ActiveInterpolationsMap) Get(handle PropertyHandle) ([]Interpolation, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[handle]
	return v, ok
}

func (m *ActiveInterpolationsMap) Keys() []PropertyHandle {
	if m == nil {
		return nil
	}
	return m.keys
}

func (m *ActiveInterpolationsMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// InterpolationsEntry is a single map of active interpolations with the
// origin it belongs to.
type InterpolationsEntry struct {
	Map    *ActiveInterpolationsMap
	Origin Origin
}

// Interpolations is an ordered bounded list of interpolation maps.
type Interpolations struct {
	entries []InterpolationsEntry
}

// Add appends entry, returns false when limit is reached and entry is
// ignored.
func (i *Interpolations) Add(m *ActiveInterpolationsMap, origin Origin) bool {
	dcheck(origin.IsInterpolation(), "interpolations must have animation or transition origin")
	if len(i.entries) >= maxInterpolationEntries {
		return false
	}
	i.entries = append(i.entries, InterpolationsEntry{Map: m, Origin: origin})
	return true
}

func (i *Interpolations) IsEmpty() bool { return len(i.entries) == 0 }

func (i *Interpolations) Entries() []InterpolationsEntry { return i.entries }

func (i *Interpolations) Reset() {
	clear(i.entries)
	i.entries = i.entries[:0]
}

// InterpolationEnvironment gives an interpolation access to the cascade
// while it is being applied.
type InterpolationEnvironment struct {
	cascade  *StyleCascade
	resolver *Resolver
	property Property
	origin   Origin
}

// Property returns the animated property, surrogates are already resolved.
func (e *InterpolationEnvironment) Property() Property { return e.property }

// Origin returns origin of the interpolation.
func (e *InterpolationEnvironment) Origin() Origin { return e.origin }

// Builder returns builder interpolated values are applied to.
func (e *InterpolationEnvironment) Builder() StyleBuilder { return e.cascade.builder }

// Resolve resolves keyframe value of the animated property. Returns nil
// when value is cyclic or invalid at computed-value time.
func (e *InterpolationEnvironment) Resolve(value Value) Value {
	origin := e.origin
	resolved := e.cascade.resolve(e.property, value, PriorityForOrigin(origin), &origin, e.resolver)
	switch resolved.(type) {
	case CyclicVariableValue, InvalidVariableValue:
		if !e.property.IsCustom() {
			return nil
		}
	}
	return resolved
}

// Apply resolves value and applies it to the animated property and its
// visited counterpart.
func (e *InterpolationEnvironment) Apply(value Value) {
	resolved := e.Resolve(value)
	if resolved == nil {
		return
	}
	ctx := ApplyContext{Origin: e.origin}
	e.cascade.builder.ApplyProperty(e.property, resolved, ctx)
	if v, ok := e.property.Visited(); ok {
		e.cascade.builder.ApplyProperty(v, resolved, ctx)
	}
}
