package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// groupIDRegex matches Maven groupIds: dot-separated segments of letters,
// digits, underscores and dashes.
var groupIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)*$`)

// artifactIDRegex matches Maven artifactIds.
var artifactIDRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidateGroupID validates a Maven groupId such as "com.github.javaparser".
func ValidateGroupID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "group id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "group id too long (max 256 characters)")
	}
	if !groupIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid group id: %q", id)
	}
	return nil
}

// ValidateArtifactID validates a Maven artifactId. It rejects names that
// could escape the artifact URL path.
func ValidateArtifactID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "artifact id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "artifact id too long (max 256 characters)")
	}
	if strings.Contains(id, "..") {
		return New(ErrCodeInvalidInput, "artifact id contains invalid characters: %q", "..")
	}
	if !artifactIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid artifact id: %q", id)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidateFilePrefix validates the prefix used to name report files.
// It must be a plain basename fragment without path components.
func ValidateFilePrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidInput, "file prefix cannot be empty")
	}

	for _, r := range prefix {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "file prefix contains invalid control characters")
		}
	}

	if strings.ContainsAny(prefix, "/\\") {
		return New(ErrCodeInvalidInput, "file prefix cannot contain path separators")
	}
	if strings.HasPrefix(prefix, ".") {
		return New(ErrCodeInvalidInput, "file prefix cannot start with a dot")
	}

	return nil
}
