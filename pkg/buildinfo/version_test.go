package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v0.3.1"

	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version v0.3.1\n") {
		t.Errorf("Template() = %q, want cobra name placeholder and version", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("Template() should end with a newline")
	}
}
