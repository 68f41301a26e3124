package cascade

import "testing"

func TestMapAdd(t *testing.T) {
	color := NativeName(PropertyColor)
	layer := func(order uint16, pos uint32) Priority {
		return NewPriority(OriginAuthor, false, 0, false, order, pos)
	}

	m := NewMap()
	m.Add(color, PriorityForOrigin(OriginUserAgent))
	m.Add(color, layer(1, 1))
	m.Add(color, layer(1, 2))
	m.Add(color, layer(2, 3))
	m.Add(color, layer(2, 1))

	stack := m.Stack(color)
	want := []Priority{layer(2, 3), layer(1, 2), PriorityForOrigin(OriginUserAgent)}
	if len(stack) != len(want) {
		t.Fatalf("stack = %v, want %v", stack, want)
	}
	for i := range want {
		if stack[i] != want[i] {
			t.Errorf("stack[%d] = %v, want %v", i, stack[i], want[i])
		}
	}

	if p := m.FindOrigin(color, OriginUser); p == nil || p.Origin() != OriginUserAgent {
		t.Errorf("FindOrigin(user) = %v", p)
	}
	if p := m.FindRevertLayer(color, layer(2, 0).ForLayerComparison()); p == nil || *p != layer(1, 2) {
		t.Errorf("FindRevertLayer(2) = %v", p)
	}
	if p := m.FindRevertLayer(color, PriorityForOrigin(OriginUserAgent).ForLayerComparison()); p != nil {
		t.Errorf("FindRevertLayer(user-agent) = %v, want nil", p)
	}
}

func TestMapSummaries(t *testing.T) {
	m := NewMap()
	if m.HasImportant() || m.HighPriorityBits() != 0 {
		t.Fatal("new map is not empty")
	}

	m.Add(NativeName(PropertyWidth), PriorityForOrigin(OriginAuthor))
	m.Add(NativeName(PropertyFontSize), PriorityForOrigin(OriginAuthor))
	m.Add(CustomName("--b"), PriorityForOrigin(OriginAuthor))
	m.Add(CustomName("--a"), NewPriority(OriginAuthor, true, 0, false, 0, 0))

	if m.HighPriorityBits() != 1<<uint(PropertyFontSize) {
		t.Errorf("HighPriorityBits() = %b", m.HighPriorityBits())
	}
	if !m.HasImportant() {
		t.Error("HasImportant() = false")
	}

	var native []PropertyID
	for id := range m.Native() {
		native = append(native, id)
	}
	if len(native) != 2 || native[0] != PropertyFontSize || native[1] != PropertyWidth {
		t.Errorf("Native() = %v", native)
	}
	var custom []string
	for name := range m.Custom() {
		custom = append(custom, name)
	}
	if len(custom) != 2 || custom[0] != "--b" || custom[1] != "--a" {
		t.Errorf("Custom() = %v", custom)
	}

	m.Reset()
	if m.Find(NativeName(PropertyWidth)) != nil || m.Find(CustomName("--a")) != nil || m.HasImportant() {
		t.Error("Reset() left entries")
	}
}

func TestMapGenerations(t *testing.T) {
	m := NewMap()
	name := NativeName(PropertyDisplay)
	m.Add(name, PriorityForOrigin(OriginAuthor))

	p := m.Find(name)
	*p = p.WithGeneration(7)
	if m.At(name).Generation() != 7 {
		t.Fatal("generation not stored in map")
	}
	m.ResetGenerations()
	if m.At(name).Generation() != 0 {
		t.Error("ResetGenerations() kept generation")
	}
	if m.At(NativeName(PropertyColor)).HasOrigin() {
		t.Error("At() of missing property has origin")
	}
}

func TestMapInlineStyleLost(t *testing.T) {
	inline := NewPriority(OriginAuthor, false, 0, true, 0, 1)
	tests := []struct {
		name   string
		add    []Priority
		wanted bool
	}{
		{"inline wins", []Priority{PriorityForOrigin(OriginAuthor), inline}, false},
		{"inline loses to later important", []Priority{inline, NewPriority(OriginAuthor, true, 0, false, 0, 2)}, true},
		{"inline added under important", []Priority{NewPriority(OriginAuthor, true, 0, false, 0, 2), inline}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMap()
			for _, p := range tt.add {
				m.Add(NativeName(PropertyColor), p)
			}
			if m.InlineStyleLost() != tt.wanted {
				t.Errorf("InlineStyleLost() = %t, want %t", m.InlineStyleLost(), tt.wanted)
			}
		})
	}
}
