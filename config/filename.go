package config

import (
	"os"
	"strings"
)

// CleanFileName removes characters not allowed in file names on the
// current platform.
func CleanFileName(in string) string {
	forbidden := invalidNameChars + string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.Map(func(sym rune) rune {
		if sym == 0 || strings.ContainsRune(forbidden, sym) {
			return -1
		}
		return sym
	}, in)
	if out = strings.TrimLeft(out, "."); len(out) == 0 {
		out = "_bad_file_name_"
	}
	return out
}
