package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set by the linker.
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "csc"

// GetAppName returns name of the program without extension.
func GetAppName() string {
	name := appName
	if exe, err := os.Executable(); err == nil {
		if base := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe)); strings.HasPrefix(base, appName) {
			name = base
		}
	}
	return name
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
