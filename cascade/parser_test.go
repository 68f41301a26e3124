package cascade

import "testing"

func TestDefaultParserLonghand(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"  1px  solid ", "1px  solid"},
		{"red /* c */", "red"},
		{"inherit", "inherit"},
		{"var(--x)", ""},
		{"1px !important", ""},
		{"", ""},
	}
	var p DefaultParser
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v := p.ParseLonghand(LookupProperty(PropertyWidth), Tokenize(tt.text))
			got := ""
			if v != nil {
				got = v.CSSText()
			}
			if got != tt.want {
				t.Errorf("ParseLonghand(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDefaultParserShorthand(t *testing.T) {
	tests := []struct {
		name      string
		shorthand PropertyID
		text      string
		want      map[PropertyID]string
	}{
		{
			name:      "margin two values",
			shorthand: PropertyMargin,
			text:      "1px 2px",
			want: map[PropertyID]string{PropertyMarginTop: "1px", PropertyMarginRight: "2px",
				PropertyMarginBottom: "1px", PropertyMarginLeft: "2px"},
		},
		{
			name:      "padding three values",
			shorthand: PropertyPadding,
			text:      "1px 2px 3px",
			want: map[PropertyID]string{PropertyPaddingTop: "1px", PropertyPaddingRight: "2px",
				PropertyPaddingBottom: "3px", PropertyPaddingLeft: "2px"},
		},
		{
			name:      "border-radius with slash",
			shorthand: PropertyBorderRadius,
			text:      "1px 2px / 3px",
			want:      map[PropertyID]string{PropertyBorderTopLeftRadius: "1px 3px", PropertyBorderTopRightRadius: "2px 3px"},
		},
		{
			name:      "border-top",
			shorthand: PropertyBorderTop,
			text:      "solid red thin",
			want: map[PropertyID]string{PropertyBorderTopWidth: "thin", PropertyBorderTopStyle: "solid",
				PropertyBorderTopColor: "red"},
		},
		{
			name:      "outline missing parts",
			shorthand: PropertyOutline,
			text:      "dashed",
			want: map[PropertyID]string{PropertyOutlineStyle: "dashed", PropertyOutlineWidth: "initial",
				PropertyOutlineColor: "initial"},
		},
		{
			name:      "border resets border-image",
			shorthand: PropertyBorder,
			text:      "1px solid",
			want: map[PropertyID]string{PropertyBorderLeftWidth: "1px", PropertyBorderBottomStyle: "solid",
				PropertyBorderTopColor: "initial", PropertyBorderImageSource: "initial"},
		},
		{
			name:      "text-decoration",
			shorthand: PropertyTextDecoration,
			text:      "underline overline wavy blue",
			want: map[PropertyID]string{PropertyTextDecorationLine: "underline overline",
				PropertyTextDecorationStyle: "wavy", PropertyTextDecorationColor: "blue"},
		},
		{
			name:      "list-style",
			shorthand: PropertyListStyle,
			text:      "inside url(a.png) square",
			want: map[PropertyID]string{PropertyListStylePosition: "inside",
				PropertyListStyleImage: "url(a.png)", PropertyListStyleType: "square"},
		},
		{
			name:      "border-image",
			shorthand: PropertyBorderImage,
			text:      "url(b.png) 30 / 2px round stretch",
			want: map[PropertyID]string{PropertyBorderImageSource: "url(b.png)", PropertyBorderImageSlice: "30",
				PropertyBorderImageWidth: "2px", PropertyBorderImageRepeat: "round stretch",
				PropertyBorderImageOutset: "initial"},
		},
		{
			name:      "margin-inline",
			shorthand: PropertyMarginInline,
			text:      "1px 2px",
			want:      map[PropertyID]string{PropertyMarginInlineStart: "1px", PropertyMarginInlineEnd: "2px"},
		},
		{
			name:      "keyword",
			shorthand: PropertyPadding,
			text:      "inherit",
			want:      map[PropertyID]string{PropertyPaddingTop: "inherit", PropertyPaddingLeft: "inherit"},
		},
	}

	var p DefaultParser
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls := p.ParseShorthand(tt.shorthand, Tokenize(tt.text))
			if decls == nil {
				t.Fatalf("ParseShorthand(%q) = nil", tt.text)
			}
			if len(decls) != len(LookupProperty(tt.shorthand).Longhands()) {
				t.Errorf("got %d declarations, want one per longhand", len(decls))
			}
			got := make(map[PropertyID]string)
			for _, d := range decls {
				got[d.Name.ID()] = d.Value.CSSText()
			}
			for id, v := range tt.want {
				if got[id] != v {
					t.Errorf("%s = %q, want %q", id, got[id], v)
				}
			}
		})
	}
}

func TestDefaultParserShorthandInvalid(t *testing.T) {
	tests := []struct {
		name      string
		shorthand PropertyID
		text      string
	}{
		{"too many box values", PropertyMargin, "1px 2px 3px 4px 5px"},
		{"two styles", PropertyBorderTop, "solid dashed red blue"},
		{"unresolved reference", PropertyMargin, "var(--x)"},
		{"not a shorthand", PropertyWidth, "1px"},
		{"empty", PropertyPadding, " "},
		{"all with value", PropertyAll, "red"},
	}
	var p DefaultParser
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if decls := p.ParseShorthand(tt.shorthand, Tokenize(tt.text)); decls != nil {
				t.Errorf("ParseShorthand(%q) = %v, want nil", tt.text, decls)
			}
		})
	}
}
