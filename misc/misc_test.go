package misc

import (
	"strings"
	"testing"
)

func TestGetAppName(t *testing.T) {
	if name := GetAppName(); !strings.HasPrefix(name, "csc") {
		t.Errorf("GetAppName() = %q", name)
	}
	if GetVersion() == "" || GetGitHash() == "" {
		t.Error("version information is empty")
	}
}

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{name: "plain", text: "out.txt", want: "out.txt"},
		{name: "values", text: "{{ .Name }}.{{ .Format }}", want: "page.yaml"},
		{name: "sprig", text: `{{ .Name | upper | replace "A" "4" }}`, want: "P4GE"},
		{name: "bad syntax", text: "{{ .Name", wantErr: true},
		{name: "missing field", text: "{{ .Nope }}", wantErr: true},
	}

	values := struct{ Name, Format string }{"page", "yaml"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandTemplate(tt.name, tt.text, values)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpandTemplate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExpandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}
