package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateFilePath ensures the path is within the allowed base directory
// This prevents directory traversal attacks (CWE-22)
func ValidateFilePath(targetPath, baseDir string) error {
	// Clean and resolve paths
	cleanTarget, err := filepath.Abs(filepath.Clean(targetPath))
	if err != nil {
		return fmt.Errorf("failed to resolve target path: %w", err)
	}

	cleanBase, err := filepath.Abs(filepath.Clean(baseDir))
	if err != nil {
		return fmt.Errorf("failed to resolve base path: %w", err)
	}

	// Check if target is within base directory
	relPath, err := filepath.Rel(cleanBase, cleanTarget)
	if err != nil {
		return fmt.Errorf("failed to compute relative path: %w", err)
	}

	if containsDirectoryTraversal(relPath) {
		return fmt.Errorf("path escapes base directory: %s", targetPath)
	}

	return nil
}

// ValidateFilePathWithWorkingDir validates file path against current working directory
// This is a convenience wrapper for the common case of validating against CWD
func ValidateFilePathWithWorkingDir(targetPath string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	return ValidateFilePath(targetPath, cwd)
}

// ContainsUnsafePath reports whether a raw path carries traversal patterns.
// Unlike ValidateFilePath it does not resolve against a base directory, so it
// is usable for paths that are allowed to be absolute (log directories, export
// targets) but must not climb out of whatever they name.
func ContainsUnsafePath(path string) bool {
	if path == ".." {
		return true
	}
	for _, sep := range []string{"/", "\\"} {
		if strings.HasPrefix(path, ".."+sep) ||
			strings.HasSuffix(path, sep+"..") ||
			strings.Contains(path, sep+".."+sep) {
			return true
		}
	}
	return false
}

// containsDirectoryTraversal checks if a relative path contains directory traversal
// patterns that could be used to escape the base directory. Handles both Unix (/)
// and Windows (\) path separators.
func containsDirectoryTraversal(relPath string) bool {
	if filepath.IsAbs(relPath) {
		return true
	}
	return ContainsUnsafePath(relPath)
}
