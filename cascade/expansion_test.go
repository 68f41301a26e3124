package cascade

import (
	"slices"
	"testing"
)

func expandNames(block MatchedProperties) []string {
	var out []string
	for e := range ExpandCascade(block, 0, nil) {
		out = append(out, e.Property.String())
	}
	return out
}

func TestExpandCascade(t *testing.T) {
	set := NewPropertySet(
		Declaration{Name: NativeName(PropertyColor), Value: NewTokenListValue(Tokenize("red"))},
		Declaration{Name: NativeName(PropertyDisplay), Value: NewTokenListValue(Tokenize("block"))},
		Declaration{Name: CustomName("--x"), Value: &CustomPropertyDeclaration{Data: NewVariableData("1", false)}},
	)

	tests := []struct {
		name string
		link LinkMatchType
		want []string
	}{
		{"all link states", MatchAll, []string{"color", "-internal-visited-color", "display", "--x"}},
		{"link only", MatchLink, []string{"color", "display", "--x"}},
		{"visited only", MatchVisited, []string{"-internal-visited-color"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandNames(MatchedProperties{Properties: set, Origin: OriginAuthor, LinkMatchType: tt.link})
			if !slices.Equal(got, tt.want) {
				t.Errorf("expanded %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandCascadeAll(t *testing.T) {
	set := NewPropertySet(Declaration{Name: NativeName(PropertyAll), Value: KeywordInherit, Important: true})
	block := MatchedProperties{Properties: set, Origin: OriginAuthor, LinkMatchType: MatchAll, LayerOrder: 3}

	seen := make(map[string]bool)
	for e := range ExpandCascade(block, 7, nil) {
		seen[e.Property.String()] = true
		if !e.Priority.IsImportant() || e.Priority.LayerOrder() != 3 {
			t.Fatalf("%s: unexpected priority %v", e.Property, e.Priority)
		}
		if block, decl := DecodeMatchPosition(e.Priority.Position()); block != 7 || decl != 0 {
			t.Fatalf("%s: position %d:%d", e.Property, block, decl)
		}
	}

	for _, name := range []string{"color", "-internal-visited-color", "display", "margin-top", "font-size"} {
		if !seen[name] {
			t.Errorf("all does not expand to %s", name)
		}
	}
	for _, name := range []string{"direction", "unicode-bidi", "-webkit-border-image", "margin-inline-start", "margin", "all"} {
		if seen[name] {
			t.Errorf("all expands to %s", name)
		}
	}
}

func TestExpandCascadeStops(t *testing.T) {
	set := NewPropertySet(Declaration{Name: NativeName(PropertyAll), Value: KeywordInitial})
	n := 0
	for range ExpandCascade(MatchedProperties{Properties: set, Origin: OriginAuthor, LinkMatchType: MatchAll}, 0, nil) {
		if n++; n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times", n)
	}
}
