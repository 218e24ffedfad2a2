package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateScenePath validates the path of a scene file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Extension must be .toml
func ValidateScenePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "scene path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".toml" {
		return New(ErrCodeInvalidPath, "scene file must have a .toml extension, got %q", ext)
	}

	return nil
}

// ValidateFontSize checks that a font size is a positive finite number.
func ValidateFontSize(what string, size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return New(ErrCodeInvalidMetrics, "%s font size must be positive, got %v", what, size)
	}
	return nil
}

// ValidateRatio checks an aspect ratio. Disabled constraints accept any
// value; enabled ones need a positive finite ratio.
func ValidateRatio(what string, maintain bool, ratio float64) error {
	if !maintain {
		return nil
	}
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return New(ErrCodeInvalidScene, "%s ratio must be positive, got %v", what, ratio)
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values, which would poison every
// margin sum they enter.
func ValidateFinite(what string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidScene, "%s must be a finite number, got %v", what, v)
		}
	}
	return nil
}
