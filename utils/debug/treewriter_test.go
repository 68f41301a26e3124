package debug

import (
	"slices"
	"testing"
)

func TestTreeWriter(t *testing.T) {
	tests := []struct {
		name  string
		write func(tw *TreeWriter)
		want  string
	}{
		{
			name:  "empty",
			write: func(*TreeWriter) {},
			want:  "",
		},
		{
			name: "lines",
			write: func(tw *TreeWriter) {
				tw.Line(0, "cascade direction=%s", "ltr")
				tw.Line(1, "%s", "color")
				tw.Line(2, "origin=%s layer=%d", "author", 3)
			},
			want: "cascade direction=ltr\n  color\n    origin=author layer=3\n",
		},
		{
			name: "text blocks are quoted",
			write: func(tw *TreeWriter) {
				tw.TextBlock(1, "content", `"a" b`)
				tw.TextBlock(0, "--empty", "")
				tw.TextBlock(2, "value", "1px\n2px")
			},
			want: "  content: \"\\\"a\\\" b\"\n--empty: \n    value: \"1px\\n2px\"\n",
		},
		{
			name: "values in natural order",
			write: func(tw *TreeWriter) {
				tw.Values(1, map[string]string{"--item10": "b", "--item2": "a", "--alpha": ""})
			},
			want: "  --alpha: \n  --item2: \"a\"\n  --item10: \"b\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tt.write(tw)
			if got := tw.String(); got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]int
		want []string
	}{
		{"nil", nil, []string{}},
		{"plain", map[string]int{"width": 1, "color": 2, "margin-top": 3}, []string{"color", "margin-top", "width"}},
		{"numbered", map[string]int{"page10": 1, "page9": 2, "page1": 3}, []string{"page1", "page9", "page10"}},
		{"custom", map[string]int{"--b": 1, "--a2": 2, "--a10": 3}, []string{"--a2", "--a10", "--b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SortedKeys(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("SortedKeys() = %v, want %v", got, tt.want)
			}
		})
	}
}
