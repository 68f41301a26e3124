package input

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"csc/cascade"
)

func load(t *testing.T, text string, opts ...Option) *Document {
	t.Helper()
	doc, err := Load(strings.NewReader(text), zaptest.NewLogger(t), opts...)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return doc
}

// resolve loads document, cascades it and returns computed values.
func resolve(t *testing.T, text string, opts ...Option) map[string]string {
	t.Helper()
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	doc := load(t, text, opts...)
	b, err := doc.NewBuilder(log)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	c, err := doc.Build(b, log)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	c.Apply(cascade.Filter{})
	return b.Style().Values()
}

func manyCustomProperties(n int) string {
	var sb strings.Builder
	for i := range n {
		fmt.Fprintf(&sb, "--v%d: 1; ", i)
	}
	return sb.String()
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unknown field",
			input: "blocks: []\nbogus: 1\n",
			want:  []string{"field bogus not found"},
		},
		{
			name:  "unknown origin",
			input: "blocks:\n  - origin: nowhere\n",
			want:  []string{"nowhere"},
		},
		{
			name: "all block errors are reported",
			input: `
blocks:
  - origin: animation
    declarations: "color: red"
  - origin: author
    link: sometimes
  - origin: author
    presentation_attribute: true
  - origin: author
    declarations: "color: red"
    stylesheet: "p { color: red }"
`,
			want: []string{
				"block 0: origin animation",
				"block 1: unknown link match",
				"block 2: presentation attribute",
				"block 3: both declarations and stylesheet",
			},
		},
		{
			name: "bad registration",
			input: `
blocks: []
registered:
  - name: --a
    syntax: "<length>"
  - name: --b
    syntax: "<length>"
    initial: red
  - name: --c
    syntax: "<foo>"
    initial: "1"
  - name: c
`,
			want: []string{"--a: initial value is required", "--b: initial value", "unsupported syntax component", `"c" is not a custom property`},
		},
		{
			name: "bad interpolation",
			input: `
blocks: []
interpolations:
  - origin: author
    properties: {color: [red]}
  - origin: animation
    properties: {bogus: [red]}
`,
			want: []string{"interpolations 0: origin author", "value 0 of bogus"},
		},
		{
			name:  "bad template",
			input: "blocks:\n  - origin: author\n    declarations: \"color: {{ .Nope\"\n",
			want:  []string{"unable to parse template block 0"},
		},
		{
			name:  "bad link state",
			input: "inside_link: maybe\nblocks: []\n",
			want:  []string{`unknown link state "maybe"`},
		},
		{
			name:  "too many declarations",
			input: "blocks:\n  - origin: author\n    declarations: \"color: red; " + manyCustomProperties(cascade.MaxMatchIndex) + "color: green\"\n",
			want:  []string{"block 0: too many declarations: 65537"},
		},
		{
			name:  "too many rules",
			input: "blocks:\n  - origin: author\n    stylesheet: \"" + strings.Repeat("p { color: red } ", cascade.MaxMatchIndex+1) + "\"\n",
			want:  []string{"too many declaration blocks: 65536"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), zaptest.NewLogger(t))
			if err == nil {
				t.Fatal("expected error")
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q does not mention %q", err, w)
				}
			}
		})
	}
}

func TestResolveDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name: "origins and importance",
			input: `
blocks:
  - origin: user-agent
    declarations: "display: block; color: black !important"
  - origin: user
    declarations: "color: green"
  - origin: author
    declarations: "display: flex; color: blue"
`,
			want: map[string]string{"display": "flex", "color": "black"},
		},
		{
			name: "layers are sorted",
			input: `
blocks:
  - origin: author
    declarations: "color: red"
  - origin: author
    layer: 2
    declarations: "color: blue; width: 1px !important"
  - origin: author
    layer: 1
    declarations: "color: green; width: 2px !important"
`,
			want: map[string]string{"color": "red", "width": "2px"},
		},
		{
			name: "stylesheet layers",
			input: `
blocks:
  - origin: author
    stylesheet: |
      @layer base, theme;
      @layer theme { p { color: blue; --x: theme } }
      @layer base { p { color: green; --x: base !important } }
`,
			want: map[string]string{"color": "blue", "--x": "base"},
		},
		{
			name: "tree scopes",
			input: `
blocks:
  - origin: author
    tree: 1
    declarations: "color: blue"
  - origin: author
    tree: 0
    declarations: "color: red; width: 1px"
`,
			want: map[string]string{"color": "blue", "width": "1px"},
		},
		{
			name: "inline style",
			input: `
blocks:
  - origin: author
    inline: true
    declarations: "color: red"
  - origin: author
    declarations: "color: blue"
`,
			want: map[string]string{"color": "red"},
		},
		{
			name: "presentation attribute",
			input: `
blocks:
  - origin: author-presentational-hint
    presentation_attribute: true
    declarations: "width: 10px; height: 5px"
  - origin: author
    declarations: "width: 20px"
`,
			want: map[string]string{"width": "20px", "height": "5px"},
		},
		{
			name: "parent and variables",
			input: `
parent: {color: red, --accent: teal}
blocks:
  - origin: author
    declarations: "border-color: var(--accent); --gap: 2px; margin: var(--gap) 0"
`,
			want: map[string]string{
				"color":            "red",
				"border-top-color": "teal",
				"margin-top":       "2px",
				"margin-left":      "0",
				"--accent":         "teal",
				"--gap":            "2px",
			},
		},
		{
			name: "env and templates",
			input: `
env:
  safe-area-inset-top: 3px
  viewport-segment-width[1][0]: 40px
  side: right
blocks:
  - origin: author
    declarations: >
      padding-top: env(safe-area-inset-top);
      width: env(viewport-segment-width 1 0, 1px);
      height: env(missing, 7px);
      float: {{ .Env.side | upper | lower }}
`,
			want: map[string]string{"padding-top": "3px", "width": "40px", "height": "7px", "float": "right"},
		},
		{
			name: "registered properties",
			input: `
registered:
  - name: --size
    syntax: "<length> | <percentage>"
    initial: 4px
  - name: --any
    syntax: "*"
blocks:
  - origin: author
    declarations: "--size: red; width: var(--size); --any: var(--missing)"
`,
			want: map[string]string{"width": "4px", "--size": "4px"},
		},
		{
			name: "visited link",
			input: `
inside_link: visited
blocks:
  - origin: author
    link: link
    declarations: "color: blue"
  - origin: author
    link: visited
    declarations: "color: purple"
`,
			want: map[string]string{"color": "blue", "-internal-visited-color": "purple"},
		},
		{
			name: "interpolations",
			input: `
blocks:
  - origin: author
    declarations: "--c: green; color: red !important; width: 1px; margin: 1px"
interpolations:
  - origin: animation
    properties:
      color: [blue]
      width: [2px, "var(--c-width, 3px)"]
      margin-inline: [5px]
  - origin: transition
    properties:
      color: [var(--c)]
`,
			want: map[string]string{
				"color":        "green",
				"width":        "3px",
				"margin-left":  "5px",
				"margin-right": "5px",
				"margin-top":   "1px",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(t, tt.input)
			for name, want := range tt.want {
				if got[name] != want {
					t.Errorf("%s = %q, want %q", name, got[name], want)
				}
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	def := Defaults{
		InsideLink:  "visited",
		Root:        true,
		Direction:   "rtl",
		WritingMode: "vertical-rl",
		Env:         map[string]string{"a": "1px", "b": "2px"},
		Registered:  []Registration{{Name: "--r", Syntax: "<number>", Initial: new("1")}},
	}
	doc := load(t, `
inside_link: unvisited
env: {a: 5px}
blocks:
  - origin: author
    declarations: "margin-inline-start: env(a); margin-block-start: env(b)"
`, WithDefaults(def))

	if doc.InsideLink != "unvisited" || !doc.Root {
		t.Errorf("inside link = %q, root = %v", doc.InsideLink, doc.Root)
	}
	if doc.Registry().Registration("--r") == nil {
		t.Error("default registration is missing")
	}

	log := zaptest.NewLogger(t)
	b, err := doc.NewBuilder(log)
	if err != nil {
		t.Fatal(err)
	}
	c, err := doc.Build(b, log)
	if err != nil {
		t.Fatal(err)
	}
	c.Apply(cascade.Filter{})

	// vertical-rl: inline start is top, rtl flips it to bottom; block start
	// is right.
	got := b.Style().Values()
	if got["margin-bottom"] != "5px" || got["margin-right"] != "2px" {
		t.Errorf("values = %v", got)
	}
}

func TestReferencedRegistrations(t *testing.T) {
	doc := load(t, `
registered:
  - {name: --a, syntax: "<number>", initial: "1"}
  - {name: --b, syntax: "<number>", initial: "2"}
  - {name: --c10, syntax: "<number>", initial: "3"}
  - {name: --c9, syntax: "<number>", initial: "4"}
blocks:
  - origin: author
    declarations: "width: calc(var(--c10) * var(--a) * var(--c9) * 1px)"
`)
	log := zaptest.NewLogger(t)
	b, err := doc.NewBuilder(log)
	if err != nil {
		t.Fatal(err)
	}
	c, err := doc.Build(b, log)
	if err != nil {
		t.Fatal(err)
	}
	c.Apply(cascade.Filter{})

	if got, want := doc.Registry().Referenced(), []string{"--a", "--c9", "--c10"}; !slices.Equal(got, want) {
		t.Errorf("Referenced() = %v, want %v", got, want)
	}
}

func TestWarnings(t *testing.T) {
	doc := load(t, `
blocks:
  - origin: author
    declarations: "color: red; bogus: 1px; margin: 1px 2px 3px 4px 5px"
`)
	if len(doc.Warnings()) != 2 {
		t.Errorf("warnings = %q", doc.Warnings())
	}
	for _, w := range doc.Warnings() {
		if !strings.HasPrefix(w, "block 0: ") {
			t.Errorf("warning %q has no block prefix", w)
		}
	}
}

func TestParseSyntax(t *testing.T) {
	tests := []struct {
		syntax string
		value  string
		want   bool
	}{
		{"*", "anything at all", true},
		{"<length>", "10px", true},
		{"<length>", "1.5em", true},
		{"<length>", "0", true},
		{"<length>", "10", false},
		{"<length>", "10%", false},
		{"<length> | <percentage>", "10%", true},
		{"<length-percentage>", "10%", true},
		{"<number>", "1.5", true},
		{"<integer>", "1.5", false},
		{"<integer>", "7", true},
		{"<color>", "#fff", true},
		{"<color>", "rebeccapurple", true},
		{"<color>", "rgb(1 2 3)", true},
		{"<color>", "inherit", false},
		{"<ident>", "foo", true},
		{"<ident>", "foo bar", false},
		{"<ident>", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.syntax+"/"+tt.value, func(t *testing.T) {
			s, err := ParseSyntax(tt.syntax)
			if err != nil {
				t.Fatalf("ParseSyntax(%q) error = %v", tt.syntax, err)
			}
			if got := s.Accepts(cascade.Tokenize(tt.value)); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}

	if _, err := ParseSyntax("<length>+"); err == nil {
		t.Error("multipliers are not supported")
	}
}
