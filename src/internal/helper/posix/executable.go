// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExecutableName is returned when os.Args carries no program name.
const DefaultExecutableName = "lspcodec"

// ExecutableName returns the name the program was invoked as, without
// directory or ".exe" suffix.
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func ExecutableName() string {
	if len(os.Args) == 0 {
		return DefaultExecutableName
	}
	return executableName(os.Args[0])
}

// executableName strips both slash styles, so a Windows path seen on Unix
// still yields its last component.
func executableName(arg0 string) string {
	parts := strings.FieldsFunc(filepath.Base(arg0), func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return DefaultExecutableName
	}
	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" || name == "." {
		return DefaultExecutableName
	}
	return name
}
