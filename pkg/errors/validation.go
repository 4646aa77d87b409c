package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds suite binding names, which end up in file listings
// and log lines.
const maxNameLength = 64

// ValidateName validates a suite binding name.
//
// Names are short identifiers shown by "topogen list" and recorded in the
// manifest. Rules:
//   - No empty names
//   - Maximum length of 64 characters
//   - Only letters, digits, '-' and '_'
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSuite, "test name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidSuite, "test name too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			continue
		}
		return New(ErrCodeInvalidSuite, "test name %q contains invalid character %q", name, r)
	}
	return nil
}

// ValidateDirName validates an output subdirectory name from configuration.
// It must be a single relative path element so that generated inputs always
// land under the chosen output root.
func ValidateDirName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "directory name cannot be empty")
	}
	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "directory name cannot be %q", name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return New(ErrCodeInvalidPath, "directory name %q must not contain path separators", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "directory name contains invalid control characters")
		}
	}
	return nil
}
