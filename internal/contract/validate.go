package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeChars are the shell metacharacters that must never reach command
// construction, even though commands are executed with an argument list.
const unsafeChars = ";&|`$()"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateRepoPath checks that path is non-empty, free of shell
// metacharacters, exists on disk, and carries git metadata. The checks run in
// that order so injection attempts are rejected before any filesystem access.
func ValidateRepoPath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: repo_path is required and must be a string", ErrInvalidInput)
	}
	if strings.ContainsAny(path, unsafeChars) {
		return fmt.Errorf("%w: invalid characters in repo_path", ErrInvalidInput)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve repo_path: %v", ErrInvalidInput, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("%w: repository path does not exist: %s", ErrNotFound, abs)
	}
	// A .git entry may be a directory or, for worktrees, a file. Either counts.
	if _, err := os.Stat(filepath.Join(abs, ".git")); err != nil {
		return fmt.Errorf("%w: %s", ErrNotAGitRepo, abs)
	}
	return nil
}

// ValidateDate enforces the strict YYYY-MM-DD shape with no surrounding
// characters. Calendar correctness is deliberately not checked here: values
// like 2025-13-40 pass and simply fall out of date-bucketed aggregations when
// downstream parsing rejects them.
func ValidateDate(value, field string) error {
	if !dateRe.MatchString(value) {
		return fmt.Errorf("%w: invalid %s format, expected YYYY-MM-DD", ErrInvalidInput, field)
	}
	return nil
}

// SanitizeInput strips shell metacharacters from free-text filter values such
// as the author filter. It is a defense-in-depth filter, not an escaping
// mechanism; spaces and quotes pass through untouched.
func SanitizeInput(value string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeChars, r) {
			return -1
		}
		return r
	}, value)
}
