// Package archive walks cascade documents packed into zip archives.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"slices"
	"strings"
)

// WalkFunc is the type of the function called for each document in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Documents returns matcher for YAML documents under prefix.
func Documents(prefix string) func(name string) bool {
	return func(name string) bool {
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		switch strings.ToLower(path.Ext(name)) {
		case ".yaml", ".yml":
			return true
		}
		return false
	}
}

// Walk calls walkFn for every regular file in the archive accepted by
// match, in archive order. Archives with absolute entry names or entries
// containing ".." are rejected as a whole.
func Walk(archive string, match func(name string) bool, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !match(f.Name) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	return !slices.Contains(strings.Split(name, "/"), "..")
}
