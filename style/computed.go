package style

import (
	"fmt"
	"slices"

	"csc/cascade"
	"csc/utils/debug"
)

// InsideLink tells which link state an element is in, it decides whether
// visited or unvisited colors are used.
type InsideLink uint8

const (
	NotInsideLink InsideLink = iota
	InsideUnvisitedLink
	InsideVisitedLink
)

var insideLinkNames = map[InsideLink]string{
	NotInsideLink:       "none",
	InsideUnvisitedLink: "unvisited",
	InsideVisitedLink:   "visited",
}

func (l InsideLink) String() string { return insideLinkNames[l] }

// ParseInsideLink converts name into InsideLink, empty name means not
// inside link.
func ParseInsideLink(name string) (InsideLink, error) {
	if name == "" {
		return NotInsideLink, nil
	}
	for l, n := range insideLinkNames {
		if n == name {
			return l, nil
		}
	}
	return NotInsideLink, fmt.Errorf("unknown link state %q", name)
}

// Computed is computed style of a single element. Native values are kept as
// serialized text, properties never set report their initial values.
type Computed struct {
	native           map[cascade.PropertyID]string
	origins          map[cascade.PropertyID]cascade.Origin
	inheritedVars    map[string]*cascade.VariableData
	nonInheritedVars map[string]*cascade.VariableData

	direction   cascade.Direction
	writingMode cascade.WritingMode
	insideLink  InsideLink
	flags       cascade.CascadeFlags

	fontUpdates       int
	lineHeightUpdates int
}

func newComputed() *Computed {
	return &Computed{
		native:           make(map[cascade.PropertyID]string),
		origins:          make(map[cascade.PropertyID]cascade.Origin),
		inheritedVars:    make(map[string]*cascade.VariableData),
		nonInheritedVars: make(map[string]*cascade.VariableData),
	}
}

// Initial returns style with every property at its initial value, it is
// the parent of the root element.
func Initial() *Computed {
	return newComputed()
}

// FromValues creates style from property values, used to describe parent
// of an element. Values of custom properties are stored as inherited.
func FromValues(values map[string]string) (*Computed, error) {
	c := newComputed()
	for name, text := range values {
		pn, ok := cascade.ParsePropertyName(name)
		if !ok {
			return nil, fmt.Errorf("unknown property %q", name)
		}
		if pn.IsCustom() {
			c.inheritedVars[name] = cascade.NewVariableData(text, false)
			continue
		}
		p := cascade.LookupProperty(pn.ID())
		if p.IsShorthand() || p.IsSurrogate() {
			return nil, fmt.Errorf("property %q can not have computed value", name)
		}
		c.native[pn.ID()] = text
		switch pn.ID() {
		case cascade.PropertyDirection:
			c.direction = cascade.ParseDirection(text)
		case cascade.PropertyWritingMode:
			c.writingMode = cascade.ParseWritingMode(text)
		}
	}
	return c, nil
}

// Value returns computed value of a native property.
func (c *Computed) Value(id cascade.PropertyID) string {
	if v, ok := c.native[id]; ok {
		return v
	}
	return cascade.LookupProperty(id).Initial()
}

// IsSet reports whether property got its value from the cascade or from
// inheritance rather than being initial.
func (c *Computed) IsSet(id cascade.PropertyID) bool {
	_, ok := c.native[id]
	return ok
}

// Origin returns origin of the declaration which set property.
func (c *Computed) Origin(id cascade.PropertyID) cascade.Origin {
	return c.origins[id]
}

// Effective returns value used for rendering: inside visited links colors
// come from -internal-visited-* counterparts.
func (c *Computed) Effective(id cascade.PropertyID) string {
	if c.insideLink == InsideVisitedLink {
		if v, ok := cascade.LookupProperty(id).Visited(); ok {
			return c.Value(v.ID())
		}
	}
	return c.Value(id)
}

// Variable returns value of custom property, nil data means the
// guaranteed-invalid value.
func (c *Computed) Variable(name string) *cascade.VariableData {
	if d, ok := c.inheritedVars[name]; ok {
		return d
	}
	return c.nonInheritedVars[name]
}

// Get returns text of a native or custom property by name.
func (c *Computed) Get(name string) (string, bool) {
	pn, ok := cascade.ParsePropertyName(name)
	if !ok {
		return "", false
	}
	if pn.IsCustom() {
		d := c.Variable(name)
		if d == nil {
			return "", false
		}
		return d.Text(), true
	}
	return c.Value(pn.ID()), true
}

func (c *Computed) Direction() cascade.Direction     { return c.direction }
func (c *Computed) WritingMode() cascade.WritingMode { return c.writingMode }
func (c *Computed) InsideLink() InsideLink           { return c.insideLink }
func (c *Computed) Flags() cascade.CascadeFlags      { return c.flags }
func (c *Computed) FontUpdates() int                 { return c.fontUpdates }
func (c *Computed) LineHeightUpdates() int           { return c.lineHeightUpdates }

// Properties returns IDs of properties which are not at their initial
// values, in ID order.
func (c *Computed) Properties() []cascade.PropertyID {
	ids := make([]cascade.PropertyID, 0, len(c.native))
	for id := range c.native {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// CustomProperties returns names of all valid custom properties in natural
// order.
func (c *Computed) CustomProperties() []string {
	all := make(map[string]struct{}, len(c.inheritedVars)+len(c.nonInheritedVars))
	for name, d := range c.inheritedVars {
		if d != nil {
			all[name] = struct{}{}
		}
	}
	for name, d := range c.nonInheritedVars {
		if d != nil {
			all[name] = struct{}{}
		}
	}
	return debug.SortedKeys(all)
}

// Values returns all set properties by name, visited counterparts are
// reported only when they differ from unvisited values.
func (c *Computed) Values() map[string]string {
	out := make(map[string]string, len(c.native))
	for id, v := range c.native {
		p := cascade.LookupProperty(id)
		if p.IsVisited() && c.Value(p.Unvisited().ID()) == v {
			continue
		}
		out[id.String()] = v
	}
	for _, name := range c.CustomProperties() {
		out[name] = c.Variable(name).Text()
	}
	return out
}

// Dump returns human readable representation of style.
func (c *Computed) Dump() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "style direction=%s writing-mode=%s link=%s flags=%s", c.direction, c.writingMode, c.insideLink, c.flags)
	for _, id := range c.Properties() {
		tw.TextBlock(1, id.String(), c.native[id])
		if o := c.origins[id]; o != cascade.OriginNone {
			tw.Line(2, "origin=%s", o)
		}
	}
	vars := make(map[string]string)
	for _, name := range c.CustomProperties() {
		vars[name] = c.Variable(name).Text()
	}
	tw.Values(1, vars)
	return tw.String()
}
