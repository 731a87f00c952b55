package common

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var windowsEnvPattern = regexp.MustCompile(`%([A-Za-z0-9_]+)%`)

// ExpandPath resolves `~`, `$VAR` and `%VAR%` placeholders in configured directories.
// Unknown `%VAR%` placeholders are left untouched.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}

	expanded := os.ExpandEnv(path)
	expanded = windowsEnvPattern.ReplaceAllStringFunc(expanded, func(match string) string {
		key := strings.Trim(match, "%")
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return match
	})

	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			expanded = filepath.Join(home, strings.TrimPrefix(expanded, "~"))
		}
	}

	return expanded
}
