package cascade

import "math"

const notFound = math.MaxInt

// Resolver keeps state of a single Apply pass: the stack of properties
// currently being resolved, used to detect reference cycles, and flags
// collected along the way.
type Resolver struct {
	stack      []Property
	cycleStart int
	cycleEnd   int

	filter     Filter
	generation uint8

	authorFlags   PropertyFlags
	flags         PropertyFlags
	rejectedFlags PropertyFlags

	shorthandCache struct {
		value  *PendingSubstitutionValue
		parsed []Declaration
	}
}

// NewResolver creates resolver for one pass with given filter and
// generation.
func NewResolver(filter Filter, generation uint8) *Resolver {
	return &Resolver{
		filter:     filter,
		generation: generation,
		cycleStart: notFound,
		cycleEnd:   notFound,
	}
}

func samePropertyKey(a, b Property) bool {
	return a.id == b.id && a.name == b.name
}

func (r *Resolver) find(p Property) int {
	for i, s := range r.stack {
		if samePropertyKey(s, p) {
			return i
		}
	}
	return notFound
}

// IsLocked reports whether property is currently being resolved.
func (r *Resolver) IsLocked(p Property) bool {
	return r.find(p) != notFound
}

// Lock pushes property on the stack of properties being resolved. Every
// Lock must be paired with Unlock.
func (r *Resolver) Lock(p Property) {
	dcheck(!r.IsLocked(p), "property "+p.String()+" is already locked")
	r.stack = append(r.stack, p)
}

// Unlock pops the top of the stack, shrinking any marked cycle.
func (r *Resolver) Unlock() {
	r.stack = r.stack[:len(r.stack)-1]
	r.cycleEnd = min(r.cycleEnd, len(r.stack))
	if r.cycleEnd <= r.cycleStart {
		r.cycleStart = notFound
		r.cycleEnd = notFound
	}
}

// DetectCycle returns true if property is already being resolved, marking
// everything from its first occurrence to the current top of the stack as
// cyclic.
func (r *Resolver) DetectCycle(p Property) bool {
	idx := r.find(p)
	if idx == notFound {
		return false
	}
	r.cycleStart = min(r.cycleStart, idx)
	r.cycleEnd = len(r.stack)
	return true
}

// InCycle reports whether the property on top of the stack takes part in a
// detected cycle.
func (r *Resolver) InCycle() bool {
	return len(r.stack) > r.cycleStart && len(r.stack) <= r.cycleEnd
}

// CurrentProperty returns the property on top of the stack.
func (r *Resolver) CurrentProperty() (Property, bool) {
	if len(r.stack) == 0 {
		return Property{}, false
	}
	return r.stack[len(r.stack)-1], true
}

// AllowSubstitution reports whether data may be substituted into the
// current property. Animation tainted values are not allowed in properties
// affecting animations, except custom properties.
func (r *Resolver) AllowSubstitution(data *VariableData) bool {
	if data != nil && data.IsAnimationTainted() && len(r.stack) > 0 {
		p := r.stack[len(r.stack)-1]
		return p.IsCustom() || !p.AffectsAnimations()
	}
	return true
}

// Rejects reports whether the pass filter excludes property.
func (r *Resolver) Rejects(p Property) bool {
	if !r.filter.Rejects(p) {
		return false
	}
	r.rejectedFlags |= p.Flags()
	return true
}

// CollectFlags records flags of an applied property.
func (r *Resolver) CollectFlags(p Property, origin Origin) {
	flags := p.Flags()
	if origin == OriginAuthor {
		r.authorFlags |= flags
	}
	r.flags |= flags
}

func (r *Resolver) Filter() Filter               { return r.filter }
func (r *Resolver) Generation() uint8            { return r.generation }
func (r *Resolver) AuthorFlags() PropertyFlags   { return r.authorFlags }
func (r *Resolver) Flags() PropertyFlags         { return r.flags }
func (r *Resolver) RejectedFlags() PropertyFlags { return r.rejectedFlags }
