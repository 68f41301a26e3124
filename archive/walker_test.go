package archive

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

type entry struct {
	name    string
	content string
}

func makeArchive(t *testing.T, entries ...entry) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "suite.zip")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", e.name, err)
		}
		if _, err := fw.Write([]byte(e.content)); err != nil {
			t.Fatalf("Failed to write %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestWalk(t *testing.T) {
	arc := makeArchive(t,
		entry{"cases/origins.yaml", "blocks: []"},
		entry{"cases/layers.YML", "blocks: []"},
		entry{"cases/notes.txt", "not a document"},
		entry{"cases/deep/", ""},
		entry{"cases/deep/vars.yml", "blocks: []"},
		entry{"other/env.yaml", "blocks: []"},
	)

	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"cases/origins.yaml", "cases/layers.YML", "cases/deep/vars.yml", "other/env.yaml"}},
		{"cases/", []string{"cases/origins.yaml", "cases/layers.YML", "cases/deep/vars.yml"}},
		{"cases/deep/", []string{"cases/deep/vars.yml"}},
		{"missing/", nil},
	}
	for _, tt := range tests {
		t.Run("prefix "+tt.prefix, func(t *testing.T) {
			var visited []string
			err := Walk(arc, Documents(tt.prefix), func(archive string, file *zip.File) error {
				if archive != arc {
					t.Errorf("archive = %s, want %s", archive, arc)
				}
				visited = append(visited, file.Name)
				return nil
			})
			if err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if !slices.Equal(visited, tt.want) {
				t.Errorf("visited %v, want %v", visited, tt.want)
			}
		})
	}
}

func TestWalk_Content(t *testing.T) {
	arc := makeArchive(t, entry{"a.yaml", "inside_link: visited\n"})
	err := Walk(arc, Documents(""), func(_ string, file *zip.File) error {
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		if string(data) != "inside_link: visited\n" {
			t.Errorf("content = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestWalk_Errors(t *testing.T) {
	t.Run("stops on walkFn error", func(t *testing.T) {
		arc := makeArchive(t, entry{"a.yaml", ""}, entry{"b.yaml", ""})
		stop := errors.New("stop")
		calls := 0
		err := Walk(arc, Documents(""), func(string, *zip.File) error {
			calls++
			return stop
		})
		if !errors.Is(err, stop) || calls != 1 {
			t.Errorf("err = %v, calls = %d", err, calls)
		}
	})

	t.Run("unsafe path", func(t *testing.T) {
		arc := makeArchive(t, entry{"a.yaml", ""}, entry{"../evil.yaml", ""})
		calls := 0
		err := Walk(arc, Documents(""), func(string, *zip.File) error {
			calls++
			return nil
		})
		if err == nil || calls != 0 {
			t.Errorf("err = %v, calls = %d", err, calls)
		}
	})

	t.Run("not an archive", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "bad.zip")
		if err := os.WriteFile(name, []byte("not a zip"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := Walk(name, Documents(""), nil); err == nil {
			t.Error("expected error")
		}
		if err := Walk("/nonexistent/file.zip", Documents(""), nil); err == nil {
			t.Error("expected error")
		}
	})
}

func TestIsSafePath(t *testing.T) {
	tests := map[string]bool{
		"a/b.yaml":      true,
		"a..b.yaml":     true,
		"../a.yaml":     false,
		"a/../../b":     false,
		"/etc/passwd":   false,
		`\windows\file`: false,
	}
	for name, want := range tests {
		if got := isSafePath(name); got != want {
			t.Errorf("isSafePath(%q) = %v, want %v", name, got, want)
		}
	}
}
