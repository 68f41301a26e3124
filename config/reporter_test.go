package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func newTestReport(t *testing.T) *Report {
	t.Helper()
	cfg := ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	r, err := cfg.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	return r
}

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	arc, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer arc.Close()

	files := make(map[string]string)
	for _, f := range arc.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	r := newTestReport(t)

	src := t.TempDir()
	doc := filepath.Join(src, "page.yaml")
	if err := os.WriteFile(doc, []byte("blocks: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("input/page.yaml", doc)
	r.StoreData("result/page.txt", []byte("color: red\n"))
	if err := r.StoreCopy("snapshot", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// content changes after the copy was made
	if err := os.WriteFile(doc, []byte("blocks: [changed]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r.Store("missing", filepath.Join(src, "nope"))

	name := r.Name()
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, name)
	want := map[string]string{
		"input/page.yaml":    "blocks: [changed]\n",
		"result/page.txt":    "color: red\n",
		"snapshot/page.yaml": "blocks: []\n",
	}
	for n, content := range want {
		if files[n] != content {
			t.Errorf("%s = %q, want %q", n, files[n], content)
		}
	}
	if _, ok := files["MANIFEST"]; !ok {
		t.Error("MANIFEST is missing")
	}
	if _, ok := files["missing"]; ok {
		t.Error("absent files should be ignored")
	}
}

func TestReportClose_RemovesCopies(t *testing.T) {
	r := newTestReport(t)

	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "debug.txt"), []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("dir", src); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("dir", src); err != nil {
		t.Fatal(err)
	}
	copies := slices.Clone(r.copies)
	if len(copies) != 2 {
		t.Fatalf("expected 2 copies, got %d", len(copies))
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	for _, dir := range copies {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			os.RemoveAll(dir)
			t.Errorf("expected %s to be removed", dir)
		}
	}
	// stored originals are left alone
	if _, err := os.Stat(filepath.Join(src, "debug.txt")); err != nil {
		t.Errorf("original should not be removed: %v", err)
	}
}

func TestReport_OverwritePanics(t *testing.T) {
	r := newTestReport(t)
	defer r.Close()

	r.StoreData("data", []byte("1"))
	defer func() {
		if recover() == nil {
			t.Error("expected panic on overwrite")
		}
	}()
	r.StoreData("data", []byte("2"))
}

func TestPrepareManifest_NaturalOrder(t *testing.T) {
	entries := map[string]entry{
		"page10.txt": {data: []byte("a")},
		"page9.txt":  {data: []byte("b")},
		"config":     {data: []byte("c")},
	}
	names, buf := prepareManifest(entries)
	if want := []string{"config", "page9.txt", "page10.txt"}; !slices.Equal(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	if buf.Len() == 0 {
		t.Error("manifest is empty")
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	// all methods are safe to call on nil report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Error(err)
	}
	if r.Name() != "" {
		t.Error("nil report has no name")
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
