package errors

import (
	"math"
	"testing"
)

func TestValidateScenePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "scenes/signal.toml", false},
		{"valid absolute", "/tmp/plot.toml", false},
		{"upper case extension", "PLOT.TOML", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 5000)) + ".toml", true},
		{"wrong extension", "scene.yaml", true},
		{"no extension", "scene", true},
		{"null byte", "foo\x00.toml", true},
		{"newline", "foo\n.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScenePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScenePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateScenePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateFontSize(t *testing.T) {
	tests := []struct {
		size    float64
		wantErr bool
	}{
		{10, false},
		{0.5, false},
		{0, true},
		{-3, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}
	for _, tt := range tests {
		err := ValidateFontSize("legend", tt.size)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFontSize(%v) error = %v, wantErr %v", tt.size, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidMetrics) {
			t.Errorf("ValidateFontSize(%v) returned wrong error code: %v", tt.size, err)
		}
	}
}

func TestValidateRatio(t *testing.T) {
	if err := ValidateRatio("aspect", false, -1); err != nil {
		t.Errorf("disabled ratio should not be validated: %v", err)
	}
	if err := ValidateRatio("aspect", true, 1.5); err != nil {
		t.Errorf("positive ratio rejected: %v", err)
	}
	if err := ValidateRatio("aspect", true, 0); !Is(err, ErrCodeInvalidScene) {
		t.Errorf("zero ratio: got %v, want INVALID_SCENE", err)
	}
}

func TestValidateFinite(t *testing.T) {
	if err := ValidateFinite("border", 1, -2, 0); err != nil {
		t.Errorf("finite values rejected: %v", err)
	}
	if err := ValidateFinite("border", 1, math.Inf(-1)); !Is(err, ErrCodeInvalidScene) {
		t.Errorf("infinite value: got %v, want INVALID_SCENE", err)
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidScene,
		ErrCodeInvalidPosition,
		ErrCodeInvalidLayout,
		ErrCodeInvalidAxis,
		ErrCodeInvalidSeries,
		ErrCodeInvalidMetrics,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeFileNotFound,
		ErrCodeFontNotFound,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
