package cascade

import "iter"

// priorityNode is an element of a per-property priority stack, stacks are
// linked lists threaded through Map.backing.
type priorityNode struct {
	priority Priority
	next     int32
}

const noNode int32 = -1

// Map holds, for every property, the stack of winning priorities. The top
// of the stack is the cascaded winner, lower entries are winners of earlier
// cascade layers.
type Map struct {
	backing      []priorityNode
	native       [numProperties]int32
	nativeBits   PropertyBitset
	custom       map[string]int32
	customOrder  []string
	highPriority uint64

	hasImportant    bool
	inlineStyleLost bool
}

// NewMap returns an empty map.
func NewMap() *Map {
	m := &Map{custom: make(map[string]int32)}
	m.Reset()
	return m
}

func (m *Map) head(name PropertyName) int32 {
	if name.IsCustom() {
		if h, ok := m.custom[name.custom]; ok {
			return h
		}
		return noNode
	}
	if !m.nativeBits.Has(name.id) {
		return noNode
	}
	return m.native[name.id]
}

func (m *Map) setHead(name PropertyName, h int32) {
	if name.IsCustom() {
		if _, ok := m.custom[name.custom]; !ok {
			m.customOrder = append(m.customOrder, name.custom)
		}
		m.custom[name.custom] = h
		return
	}
	m.nativeBits.Set(name.id)
	m.native[name.id] = h
}

// Add records declaration with priority p for property name. Declarations
// must be added in non-decreasing priority order within a layer.
func (m *Map) Add(name PropertyName, p Priority) {
	if !name.IsCustom() {
		if name.id.IsHighPriority() {
			m.highPriority |= 1 << uint(name.id)
		}
	}
	m.hasImportant = m.hasImportant || p.IsImportant()

	h := m.head(name)
	if h == noNode {
		m.backing = append(m.backing, priorityNode{priority: p, next: noNode})
		m.setHead(name, int32(len(m.backing)-1))
		return
	}
	top := &m.backing[h].priority
	if top.Compare(p) >= 0 {
		if p.IsInlineStyle() {
			m.inlineStyleLost = true
		}
		return
	}
	if top.IsInlineStyle() {
		m.inlineStyleLost = true
	}
	if top.ForLayerComparison().Less(p.ForLayerComparison()) {
		m.backing = append(m.backing, priorityNode{priority: p, next: h})
		m.setHead(name, int32(len(m.backing)-1))
		return
	}
	*top = p
}

// Find returns the winning priority of property, or nil. The returned
// pointer stays valid until the next Add or Reset.
func (m *Map) Find(name PropertyName) *Priority {
	h := m.head(name)
	if h == noNode {
		return nil
	}
	return &m.backing[h].priority
}

// At returns the winning priority or the zero Priority.
func (m *Map) At(name PropertyName) Priority {
	if p := m.Find(name); p != nil {
		return *p
	}
	return Priority{}
}

// FindOrigin returns the highest priority with origin less or equal to
// origin.
func (m *Map) FindOrigin(name PropertyName, origin Origin) *Priority {
	for h := m.head(name); h != noNode; h = m.backing[h].next {
		if p := &m.backing[h].priority; p.Origin() <= origin {
			return p
		}
	}
	return nil
}

// FindRevertLayer returns the highest priority belonging to a layer
// strictly below key.
func (m *Map) FindRevertLayer(name PropertyName, key LayerKey) *Priority {
	for h := m.head(name); h != noNode; h = m.backing[h].next {
		if p := &m.backing[h].priority; p.ForLayerComparison().Less(key) {
			return p
		}
	}
	return nil
}

// Stack returns all priorities of a property, top first.
func (m *Map) Stack(name PropertyName) []Priority {
	var out []Priority
	for h := m.head(name); h != noNode; h = m.backing[h].next {
		out = append(out, m.backing[h].priority)
	}
	return out
}

// HighPriorityBits returns bits of high priority properties present in the
// map, bit N corresponds to PropertyID N.
func (m *Map) HighPriorityBits() uint64 { return m.highPriority }

// HasImportant reports whether any added declaration was important.
func (m *Map) HasImportant() bool { return m.hasImportant }

// InlineStyleLost reports whether a declaration from inline style lost the
// cascade to some other declaration.
func (m *Map) InlineStyleLost() bool { return m.inlineStyleLost }

// NativeBits returns the set of native properties present in the map.
func (m *Map) NativeBits() *PropertyBitset { return &m.nativeBits }

// Native iterates over native properties with their winning priorities in
// ID order.
func (m *Map) Native() iter.Seq2[PropertyID, *Priority] {
	return func(yield func(PropertyID, *Priority) bool) {
		for id := range m.nativeBits.All() {
			if !yield(id, &m.backing[m.native[id]].priority) {
				return
			}
		}
	}
}

// Custom iterates over custom properties with their winning priorities in
// the order they were first added.
func (m *Map) Custom() iter.Seq2[string, *Priority] {
	return func(yield func(string, *Priority) bool) {
		for _, name := range m.customOrder {
			if !yield(name, &m.backing[m.custom[name]].priority) {
				return
			}
		}
	}
}

// ResetGenerations clears generation stamps of all entries.
func (m *Map) ResetGenerations() {
	for i := range m.backing {
		m.backing[i].priority = m.backing[i].priority.WithGeneration(0)
	}
}

// Reset removes all entries and summaries.
func (m *Map) Reset() {
	m.backing = m.backing[:0]
	m.nativeBits.Reset()
	clear(m.custom)
	m.customOrder = m.customOrder[:0]
	m.highPriority = 0
	m.hasImportant = false
	m.inlineStyleLost = false
}
