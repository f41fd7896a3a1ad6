package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewManifest(t *testing.T) {
	m := New("fhe-counter", "A counter that stays encrypted.", "Alice")

	if m.Name != "fhe-counter" {
		t.Errorf("Name = %q, want fhe-counter", m.Name)
	}
	if m.License != License {
		t.Errorf("License = %q, want %q", m.License, License)
	}
	if !m.Private {
		t.Error("generated projects should be private")
	}
	if m.Scripts["test"] != "hardhat test" {
		t.Errorf("test script = %q", m.Scripts["test"])
	}
	if m.DevDependencies["@fhevm/solidity"] == "" {
		t.Error("missing @fhevm/solidity pin")
	}
}

func TestRenderDeterministic(t *testing.T) {
	a, err := Render(New("fhe-counter", "desc", ""))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	b, err := Render(New("fhe-counter", "desc", ""))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two renders of the same manifest differ")
	}
	if !bytes.HasSuffix(a, []byte("\n")) {
		t.Error("rendered manifest should end with a newline")
	}
}

func TestParseRoundTrip(t *testing.T) {
	m := New("sealed-bid-auction", "Bids stay encrypted until close.", "Bob")
	data, err := Render(m)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "package.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateGeneratedManifest(t *testing.T) {
	data, err := Render(New("fhe-add", "Adds two encrypted inputs.", ""))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("generated manifest failed validation: %+v", result.Issues)
	}
}

func TestValidateRejectsWrongLicense(t *testing.T) {
	m := New("fhe-add", "desc", "")
	m.License = "MIT"
	data, err := Render(m)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected validation failure for wrong license")
	}
	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Path, "license") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue mentioning license: %+v", result.Issues)
	}
}

func TestValidateRejectsMissingFHEVMDep(t *testing.T) {
	m := New("fhe-add", "desc", "")
	delete(m.DevDependencies, "@fhevm/solidity")
	data, err := Render(m)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Error("expected validation failure for missing @fhevm/solidity")
	}
}

func TestValidateFileMissing(t *testing.T) {
	if _, err := ValidateFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
