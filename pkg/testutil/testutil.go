// Package testutil provides shared fixtures for sdcv tests: temporary
// dictionary trees and mock collaborators for the session layer.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteIfo writes a well-formed descriptor file under dir and returns
// its path. relPath may contain subdirectories.
func WriteIfo(t *testing.T, dir, relPath, bookname string, wordCount int) string {
	t.Helper()
	content := fmt.Sprintf(
		"StarDict's dict ifo file\nversion=2.4.2\nbookname=%s\nwordcount=%d\n",
		bookname, wordCount)
	return WriteRawIfo(t, dir, relPath, content)
}

// WriteRawIfo writes arbitrary descriptor content (for malformed-file
// cases) and returns the path.
func WriteRawIfo(t *testing.T, dir, relPath, content string) string {
	t.Helper()
	path := filepath.Join(dir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteOrdering writes an ordering preference file with one bookname
// per line and returns its path.
func WriteOrdering(t *testing.T, dir string, booknames ...string) string {
	t.Helper()
	path := filepath.Join(dir, ".sdcv_ordering")
	var content string
	for _, name := range booknames {
		content += name + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
