package css_test

import (
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"csc/cascade"
	"csc/css"
	"csc/style"
)

// declared returns CSS text and importance of every declaration by name.
func declared(set *cascade.PropertySet) (map[string]string, map[string]bool) {
	values := make(map[string]string)
	important := make(map[string]bool)
	for _, d := range set.Declarations() {
		values[d.Name.String()] = d.Value.CSSText()
		important[d.Name.String()] = d.Important
	}
	return values, important
}

func TestParser_ParseDeclarations(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      map[string]string
		important []string
		warnings  int
	}{
		{
			name:  "simple",
			input: "color: red; display: block",
			want:  map[string]string{"color": "red", "display": "block"},
		},
		{
			name:  "property names are case insensitive",
			input: "COLOR: Red",
			want:  map[string]string{"color": "Red"},
		},
		{
			name:      "important",
			input:     "color: red !important; width: 1px ! IMPORTANT",
			want:      map[string]string{"color": "red", "width": "1px"},
			important: []string{"color", "width"},
		},
		{
			name:  "box shorthand",
			input: "margin: 1px 2px",
			want: map[string]string{
				"margin-top": "1px", "margin-right": "2px",
				"margin-bottom": "1px", "margin-left": "2px",
			},
		},
		{
			name:  "keyword on shorthand",
			input: "padding: inherit",
			want: map[string]string{
				"padding-top": "inherit", "padding-right": "inherit",
				"padding-bottom": "inherit", "padding-left": "inherit",
			},
		},
		{
			name:  "all",
			input: "all: revert-layer",
			want:  map[string]string{"all": "revert-layer"},
		},
		{
			name:     "all takes keywords only",
			input:    "all: 1px; color: red",
			want:     map[string]string{"color": "red"},
			warnings: 1,
		},
		{
			name:     "unknown property",
			input:    "bogus: 1px; color: red",
			want:     map[string]string{"color": "red"},
			warnings: 1,
		},
		{
			name:  "custom property keeps case",
			input: "--Main-Color: { a b } !important",
			want:  map[string]string{"--Main-Color": "{ a b }"},

			important: []string{"--Main-Color"},
		},
		{
			name:  "variable reference",
			input: "width: calc(var(--w) + 1px)",
			want:  map[string]string{"width": "calc(var(--w) + 1px)"},
		},
		{
			name:  "surrogate",
			input: "margin-inline-start: 3px",
			want:  map[string]string{"margin-inline-start": "3px"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := css.NewParser(zaptest.NewLogger(t))
			set, warnings := p.ParseDeclarations(tt.input)
			if len(warnings) != tt.warnings {
				t.Errorf("warnings = %q, want %d", warnings, tt.warnings)
			}
			values, important := declared(set)
			if len(values) != len(tt.want) {
				t.Errorf("got %d declarations %v, want %d", len(values), values, len(tt.want))
			}
			for name, want := range tt.want {
				if got, ok := values[name]; !ok || got != want {
					t.Errorf("%s = %q, want %q", name, got, want)
				}
				if got, want := important[name], slices.Contains(tt.important, name); got != want {
					t.Errorf("%s important = %v, want %v", name, got, want)
				}
			}
		})
	}
}

func TestParser_ShorthandWithVariable(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	set, warnings := p.ParseDeclarations("margin: var(--m) !important")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings %q", warnings)
	}
	decls := set.Declarations()
	if len(decls) != 4 {
		t.Fatalf("expected 4 longhands, got %d", len(decls))
	}
	first, ok := decls[0].Value.(*cascade.PendingSubstitutionValue)
	if !ok {
		t.Fatalf("expected pending substitution, got %T", decls[0].Value)
	}
	if first.Shorthand != cascade.PropertyMargin {
		t.Errorf("shorthand = %v", first.Shorthand)
	}
	for _, d := range decls {
		if d.Value != first {
			t.Errorf("%s does not share pending substitution value", d.Name)
		}
		if !d.Important {
			t.Errorf("%s is not important", d.Name)
		}
	}
}

func TestParser_ValueTypes(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	set, _ := p.ParseDeclarations("--a: 1px; width: var(--a); color: unset; height: 2px; all: var(--a)")

	tests := []struct {
		name  string
		check func(cascade.Value) bool
	}{
		{"--a", func(v cascade.Value) bool { _, ok := v.(*cascade.CustomPropertyDeclaration); return ok }},
		{"width", func(v cascade.Value) bool { _, ok := v.(*cascade.VariableReferenceValue); return ok }},
		{"color", func(v cascade.Value) bool { return v == cascade.KeywordUnset }},
		{"height", func(v cascade.Value) bool { _, ok := v.(*cascade.TokenListValue); return ok }},
		{"all", func(v cascade.Value) bool {
			p, ok := v.(*cascade.PendingSubstitutionValue)
			return ok && p.Shorthand == cascade.PropertyAll
		}},
	}
	for i, tt := range tests {
		d := set.At(i)
		if d.Name.String() != tt.name {
			t.Fatalf("declaration %d is %s, want %s", i, d.Name, tt.name)
		}
		if !tt.check(d.Value) {
			t.Errorf("%s has unexpected value type %T", tt.name, d.Value)
		}
	}
}

func TestParser_Layers(t *testing.T) {
	input := []byte(`
@layer base, theme;
p { color: red }
@layer theme { p { color: blue } }
@layer base {
	p { color: green }
	@layer inner { p { color: pink } }
}
@media print { p { color: black } }
h1, h2 { margin: 0 }
`)

	p := css.NewParser(zaptest.NewLogger(t))
	sheet := p.Parse(input, "layers.css")

	wantLayers := []string{"base.inner", "base", "theme"}
	if !slices.Equal(sheet.Layers, wantLayers) {
		t.Errorf("layers = %v, want %v", sheet.Layers, wantLayers)
	}

	rules := sheet.RulesBySelector("p")
	want := []struct {
		layer string
		order uint16
		color string
	}{
		{"", cascade.DefaultLayerOrder, "red"},
		{"theme", 2, "blue"},
		{"base", 1, "green"},
		{"base.inner", 0, "pink"},
	}
	if len(rules) != len(want) {
		t.Fatalf("expected %d 'p' rules, got %d", len(want), len(rules))
	}
	for i, w := range want {
		r := rules[i]
		if r.Layer != w.layer || r.LayerOrder != w.order || r.IsLayered() != (w.layer != "") {
			t.Errorf("rule %d: layer %q order %d, want %q %d", i, r.Layer, r.LayerOrder, w.layer, w.order)
		}
		values, _ := declared(r.Properties)
		if values["color"] != w.color {
			t.Errorf("rule %d: color %q, want %q", i, values["color"], w.color)
		}
	}

	h1, h2 := sheet.RulesBySelector("h1"), sheet.RulesBySelector("h2")
	if len(h1) != 1 || len(h2) != 1 || h1[0].Properties != h2[0].Properties {
		t.Error("grouped selectors should share properties")
	}

	found := false
	for _, w := range sheet.Warnings {
		if strings.Contains(w, "@media") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected warning about @media, got %q", sheet.Warnings)
	}
}

func TestParser_Cascade(t *testing.T) {
	log := zaptest.NewLogger(t)
	p := css.NewParser(log)

	ua, _ := p.ParseDeclarations("display: block; margin: 8px")
	author, _ := p.ParseDeclarations("--m: 1px 2px; margin: var(--m); color: blue !important")
	inline, _ := p.ParseDeclarations("color: red; margin-top: 5px")

	b := style.NewBuilder(nil, nil, log)
	c := cascade.New(b, log)
	mr := c.MutableMatchResult()
	mr.Add(ua, cascade.OriginUserAgent, cascade.MatchOptions{})
	mr.Add(author, cascade.OriginAuthor, cascade.MatchOptions{})
	mr.Add(inline, cascade.OriginAuthor, cascade.MatchOptions{IsInlineStyle: true})
	c.Apply(cascade.Filter{})

	want := map[string]string{
		"display":      "block",
		"margin-top":   "5px",
		"margin-right": "2px",
		"margin-left":  "2px",
		"color":        "blue",
		"--m":          "1px 2px",
	}
	for name, w := range want {
		if got, _ := b.Style().Get(name); got != w {
			t.Errorf("%s = %q, want %q", name, got, w)
		}
	}
}
