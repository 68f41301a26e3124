package cascade

import "testing"

func TestPriorityCompare(t *testing.T) {
	author := func(pos uint32) Priority { return NewPriority(OriginAuthor, false, 0, false, 0, pos) }
	important := func(o Origin) Priority { return NewPriority(o, true, 0, false, 0, 0) }

	tests := []struct {
		name string
		a, b Priority
		want int
	}{
		{"same", author(1), author(1), 0},
		{"later position", author(2), author(1), 1},
		{"origin", PriorityForOrigin(OriginUser), PriorityForOrigin(OriginUserAgent), 1},
		{"author over presentational hint", PriorityForOrigin(OriginAuthor), PriorityForOrigin(OriginAuthorPresentationalHint), 1},
		{"animation over author", PriorityForOrigin(OriginAnimation), author(100), 1},
		{"important author over animation", important(OriginAuthor), PriorityForOrigin(OriginAnimation), 1},
		{"important user over important author", important(OriginUser), important(OriginAuthor), 1},
		{"important user agent over important user", important(OriginUserAgent), important(OriginUser), 1},
		{"transition over important user agent", PriorityForOrigin(OriginTransition), important(OriginUserAgent), 1},
		{"later tree scope", NewPriority(OriginAuthor, false, 2, false, 0, 0), NewPriority(OriginAuthor, false, 1, false, 0, 9), 1},
		{"earlier tree scope when important", NewPriority(OriginAuthor, true, 1, false, 0, 0), NewPriority(OriginAuthor, true, 2, false, 0, 9), 1},
		{"inline style", NewPriority(OriginAuthor, false, 0, true, 0, 0), author(9), 1},
		{"later layer", NewPriority(OriginAuthor, false, 0, false, 2, 0), NewPriority(OriginAuthor, false, 0, false, 1, 9), 1},
		{"earlier layer when important", NewPriority(OriginAuthor, true, 0, false, 1, 0), NewPriority(OriginAuthor, true, 0, false, 2, 9), 1},
		{"generation", author(1).WithGeneration(2), author(1).WithGeneration(1), 1},
		{"position before generation", author(2), author(1).WithGeneration(5), 1},
		{"none loses", Priority{}, PriorityForOrigin(OriginUserAgent), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("reverse Compare() = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestPriorityLayerKey(t *testing.T) {
	a := NewPriority(OriginAuthor, false, 0, false, 3, EncodeMatchPosition(0, 1))
	b := NewPriority(OriginAuthor, false, 0, false, 3, EncodeMatchPosition(4, 2))
	if a.ForLayerComparison() != b.ForLayerComparison() {
		t.Error("declarations of one layer have different keys")
	}
	if !a.Less(b) {
		t.Error("earlier declaration of a layer does not lose")
	}
	c := NewPriority(OriginAuthor, false, 0, false, 4, 0)
	if !a.ForLayerComparison().Less(c.ForLayerComparison()) {
		t.Error("layer 3 is not below layer 4")
	}
}

func TestPositionEncoding(t *testing.T) {
	pos := EncodeMatchPosition(12, 345)
	if block, decl := DecodeMatchPosition(pos); block != 12 || decl != 345 {
		t.Errorf("DecodeMatchPosition() = %d, %d", block, decl)
	}

	tests := []struct {
		id    PropertyID
		index int
		pa    bool
	}{
		{PropertyColor, 0, false},
		{PropertyWidth, 255, true},
		{PropertyVariable, 17, false},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			id, index, pa := DecodeInterpolationPosition(EncodeInterpolationPosition(tt.id, tt.index, tt.pa))
			if id != tt.id || index != tt.index || pa != tt.pa {
				t.Errorf("decoded %v, %d, %t", id, index, pa)
			}
		})
	}
}

func TestOrigin(t *testing.T) {
	for _, name := range OriginNames() {
		o, err := ParseOrigin(name)
		if err != nil {
			t.Fatalf("ParseOrigin(%q) error: %v", name, err)
		}
		if o.String() != name {
			t.Errorf("ParseOrigin(%q) = %v", name, o)
		}
	}
	if o, err := ParseOrigin("AUTHOR"); err != nil || o != OriginAuthor {
		t.Errorf("ParseOrigin(AUTHOR) = %v, %v", o, err)
	}
	if _, err := ParseOrigin("bogus"); err == nil {
		t.Error("ParseOrigin(bogus) succeeded")
	}

	tests := []struct {
		in, want Origin
	}{
		{OriginUserAgent, OriginNone},
		{OriginUser, OriginUserAgent},
		{OriginAuthorPresentationalHint, OriginUser},
		{OriginAuthor, OriginUser},
		{OriginAnimation, OriginUser},
		{OriginTransition, OriginNone},
	}
	for _, tt := range tests {
		if got := targetOriginForRevert(tt.in); got != tt.want {
			t.Errorf("targetOriginForRevert(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
