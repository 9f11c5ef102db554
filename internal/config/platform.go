package config

import "runtime"

// defaultCaseSensitive mirrors the teacher's isFileSystemCaseSensitive:
// Windows and macOS default to case-insensitive, everything else to
// case-sensitive.
func defaultCaseSensitive() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return false
	default:
		return true
	}
}
