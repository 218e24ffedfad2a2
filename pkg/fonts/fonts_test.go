package fonts

import (
	"strings"
	"testing"
)

func TestTTF(t *testing.T) {
	tests := []struct {
		name   string
		family string
		want   bool
	}{
		{"regular", "go", true},
		{"case insensitive", "Go-Bold", true},
		{"empty is default", "", true},
		{"mono", " go-mono ", true},
		{"unknown", "comic", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ok := TTF(tt.family)
			if ok != tt.want {
				t.Fatalf("TTF(%q) ok = %v, want %v", tt.family, ok, tt.want)
			}
			if ok && len(data) == 0 {
				t.Errorf("TTF(%q) returned empty data", tt.family)
			}
		})
	}
}

func TestFamiliesSorted(t *testing.T) {
	got := Families()
	if len(got) != 4 {
		t.Fatalf("Families() = %v, want 4 entries", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Errorf("Families() not sorted: %v", got)
		}
	}
}

func TestParsedIsCached(t *testing.T) {
	a, err := Parsed(Regular)
	if err != nil {
		t.Fatalf("Parsed: %v", err)
	}
	b, err := Parsed("GO")
	if err != nil {
		t.Fatalf("Parsed: %v", err)
	}
	if a != b {
		t.Error("Parsed should return the same font for the same family")
	}
}

func TestParsedUnknown(t *testing.T) {
	if _, err := Parsed("nope"); err == nil {
		t.Error("Parsed(nope) should fail")
	}
}

func TestFallbackFontFamilyLeadsWithEmbedded(t *testing.T) {
	if !strings.HasPrefix(FallbackFontFamily, "'"+FontFamily+"',") {
		t.Errorf("FallbackFontFamily = %q, want it to start with %q", FallbackFontFamily, FontFamily)
	}
}
