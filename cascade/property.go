package cascade

import (
	"iter"
	"math/bits"
	"strings"
)

// PropertyID identifies a native CSS property. IDs below
// firstLowPriorityProperty belong to high priority properties and are
// applied first, in ID order.
type PropertyID uint16

// PropertyFlags are traits of a property which can be used to filter
// properties out of a cascade or which are collected while applying.
type PropertyFlags uint32

const (
	FlagInherited PropertyFlags = 1 << iota
	FlagHighPriority
	// Visited properties are -internal-visited-* counterparts of color
	// properties, used when the element is a visited link.
	FlagVisited
	FlagInternal
	// Surrogates never reach the cascade map: they are replaced with the
	// property they stand in for during analysis.
	FlagSurrogate
	FlagShorthand
	FlagCustom
	// Properties that can affect animations and must not receive
	// animation-tainted variable values.
	FlagAnimation
	FlagBackground
	FlagBorder
	FlagBorderRadius
	// Longhands which overlap with a wider longhand and are skipped when
	// the wider one wins.
	FlagOverlapping
	FlagLegacyOverlapping
	FlagNotAffectedByAll
)

var flagNames = []struct {
	flag PropertyFlags
	name string
}{
	{FlagInherited, "inherited"},
	{FlagHighPriority, "high-priority"},
	{FlagVisited, "visited"},
	{FlagInternal, "internal"},
	{FlagSurrogate, "surrogate"},
	{FlagShorthand, "shorthand"},
	{FlagCustom, "custom"},
	{FlagAnimation, "animation"},
	{FlagBackground, "background"},
	{FlagBorder, "border"},
	{FlagBorderRadius, "border-radius"},
	{FlagOverlapping, "overlapping"},
	{FlagLegacyOverlapping, "legacy-overlapping"},
	{FlagNotAffectedByAll, "not-affected-by-all"},
}

func (f PropertyFlags) Has(flag PropertyFlags) bool {
	return f&flag != 0
}

func (f PropertyFlags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// PropertyName names either a native property or a custom property.
type PropertyName struct {
	id     PropertyID
	custom string
}

// NativeName returns name of a native property.
func NativeName(id PropertyID) PropertyName {
	return PropertyName{id: id}
}

// CustomName returns name of custom property, name includes leading "--".
func CustomName(name string) PropertyName {
	return PropertyName{id: PropertyVariable, custom: name}
}

// ParsePropertyName returns the name of a known native property or of a
// custom property. Native names are ASCII case insensitive.
func ParsePropertyName(name string) (PropertyName, bool) {
	if IsCustomPropertyName(name) {
		return CustomName(name), true
	}
	id, ok := propertiesByName[strings.ToLower(name)]
	if !ok {
		return PropertyName{}, false
	}
	return NativeName(id), true
}

// IsCustomPropertyName reports whether name is a custom property name.
func IsCustomPropertyName(name string) bool {
	return len(name) > 2 && strings.HasPrefix(name, "--")
}

func (n PropertyName) ID() PropertyID { return n.id }
func (n PropertyName) IsCustom() bool { return n.id == PropertyVariable }

// Custom returns custom property name or an empty string for native
// properties.
func (n PropertyName) Custom() string { return n.custom }

func (n PropertyName) String() string {
	if n.IsCustom() {
		return n.custom
	}
	return n.id.String()
}

// Property is a resolved handle to either a native or a custom property.
type Property struct {
	id    PropertyID
	name  string
	flags PropertyFlags
}

// LookupProperty returns native property by ID.
func LookupProperty(id PropertyID) Property {
	if int(id) >= len(propertyTable) {
		return Property{}
	}
	return Property{id: id, flags: propertyTable[id].flags}
}

// NewCustomProperty returns handle for custom property name. Unregistered
// custom properties are inherited; registered ones are inherited only when
// their registration says so.
func NewCustomProperty(name string, registry Registry) Property {
	flags := FlagCustom | FlagInherited
	if reg := lookupRegistration(registry, name); reg != nil && !reg.Inherits {
		flags &^= FlagInherited
	}
	return Property{id: PropertyVariable, name: name, flags: flags}
}

// PropertyFor returns Property for name.
func PropertyFor(name PropertyName, registry Registry) Property {
	if name.IsCustom() {
		return NewCustomProperty(name.custom, registry)
	}
	return LookupProperty(name.id)
}

func (p Property) ID() PropertyID          { return p.id }
func (p Property) Flags() PropertyFlags    { return p.flags }
func (p Property) IsCustom() bool          { return p.id == PropertyVariable }
func (p Property) IsValid() bool           { return p.id != PropertyInvalid }
func (p Property) IsInherited() bool       { return p.flags.Has(FlagInherited) }
func (p Property) IsVisited() bool         { return p.flags.Has(FlagVisited) }
func (p Property) IsSurrogate() bool       { return p.flags.Has(FlagSurrogate) }
func (p Property) IsShorthand() bool       { return p.flags.Has(FlagShorthand) }
func (p Property) IsHighPriority() bool    { return p.flags.Has(FlagHighPriority) }
func (p Property) AffectsAnimations() bool { return p.flags.Has(FlagAnimation) }

// Name returns the property name.
func (p Property) Name() PropertyName {
	if p.IsCustom() {
		return CustomName(p.name)
	}
	return NativeName(p.id)
}

func (p Property) String() string {
	return p.Name().String()
}

// Visited returns the -internal-visited-* counterpart of an unvisited
// property, if it has one.
func (p Property) Visited() (Property, bool) {
	if p.IsCustom() || !p.IsValid() {
		return Property{}, false
	}
	v := propertyTable[p.id].visited
	if v == PropertyInvalid {
		return Property{}, false
	}
	return LookupProperty(v), true
}

// Unvisited returns the unvisited counterpart of a visited property or the
// property itself.
func (p Property) Unvisited() Property {
	if p.IsCustom() || !p.IsVisited() {
		return p
	}
	return LookupProperty(propertyTable[p.id].unvisited)
}

// Initial returns text of the initial value of a native property.
func (p Property) Initial() string {
	if p.IsCustom() {
		return ""
	}
	return propertyTable[p.id].initial
}

// Longhands returns the longhands of a shorthand property.
func (p Property) Longhands() []PropertyID {
	if p.IsCustom() {
		return nil
	}
	return propertyTable[p.id].longhands
}

func (id PropertyID) String() string {
	if int(id) < len(propertyTable) && propertyTable[id].name != "" {
		return propertyTable[id].name
	}
	return "<unknown>"
}

// IsHighPriority reports whether id must be applied before all other
// properties.
func (id PropertyID) IsHighPriority() bool {
	return id < firstLowPriorityProperty && id != PropertyInvalid
}

// PropertyBitset is a set of native property IDs.
type PropertyBitset [(numProperties + 63) / 64]uint64

func (b *PropertyBitset) Set(id PropertyID) {
	b[id/64] |= 1 << (id % 64)
}

func (b *PropertyBitset) Has(id PropertyID) bool {
	return b[id/64]&(1<<(id%64)) != 0
}

func (b *PropertyBitset) Reset() {
	*b = PropertyBitset{}
}

func (b *PropertyBitset) IsEmpty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

// All returns set IDs in ascending order.
func (b *PropertyBitset) All() iter.Seq[PropertyID] {
	return func(yield func(PropertyID) bool) {
		for i, w := range b {
			for w != 0 {
				bit := bits.TrailingZeros64(w)
				if !yield(PropertyID(i*64 + bit)) {
					return
				}
				w &= w - 1
			}
		}
	}
}
