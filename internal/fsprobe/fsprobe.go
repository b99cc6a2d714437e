// Package fsprobe wraps the filesystem existence checks the executor and
// driver need: is this dependency a file, a directory, or neither, plus
// the directory enumeration the driver uses to locate the Build File.
package fsprobe

import "os"

// IsFile reports whether path exists and is a regular file (or at least
// not a directory; sockets, devices, and the like are treated as files
// for dependency-satisfaction purposes, same as Make).
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Exists reports whether path exists at all, regardless of type.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListDir returns the file names present directly inside dir (not
// recursive, no path prefix), or an error if dir cannot be read. The
// driver uses this to scan the working directory for a Build File by
// name rather than assuming a fixed path exists.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// DirContains reports whether dir directly contains an entry named name.
// Used by the driver to scan for the Build File instead of stat'ing a
// fixed path, so a future case-insensitive or multi-name search has a
// single enumeration point to extend.
func DirContains(dir, name string) bool {
	names, err := ListDir(dir)
	if err != nil {
		return false
	}
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
