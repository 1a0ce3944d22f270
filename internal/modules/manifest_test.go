package modules

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

const validManifest = `
[package]
name = "demo"
version = "0.2.0"
nexus = ">= 0.1.0"

[modules]
paths = ["lib"]
`

func TestLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), validManifest)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if m.Package.Name != "demo" {
		t.Fatalf("name wrong. expected=%q, got=%q", "demo", m.Package.Name)
	}
	if m.Package.Version != "0.2.0" {
		t.Fatalf("version wrong. expected=%q, got=%q", "0.2.0", m.Package.Version)
	}
	if len(m.Modules.Paths) != 1 || m.Modules.Paths[0] != "lib" {
		t.Fatalf("paths wrong. got=%v", m.Modules.Paths)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "[package]\nversion = \"1.0.0\"\n"},
		{"bad version", "[package]\nname = \"x\"\nversion = \"not-a-version\"\n"},
		{"bad constraint", "[package]\nname = \"x\"\nnexus = \"not-a-constraint\"\n"},
		{"bad toml", "[package\n"},
	}

	for i, tt := range tests {
		path := writeManifest(t, t.TempDir(), tt.content)
		if _, err := Load(path); err == nil {
			t.Fatalf("tests[%d] - load of %s should fail", i, tt.name)
		}
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, validManifest)

	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	m, err := Find(nested)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if m.Package.Name != "demo" {
		t.Fatalf("name wrong. expected=%q, got=%q", "demo", m.Package.Name)
	}
}

func TestFindMissing(t *testing.T) {
	if _, err := Find(t.TempDir()); err == nil {
		t.Fatalf("find without manifest should fail")
	}
}

func TestCheckToolVersion(t *testing.T) {
	m, err := Load(writeManifest(t, t.TempDir(), validManifest))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if err := m.CheckToolVersion("0.1.0"); err != nil {
		t.Fatalf("matching version rejected: %v", err)
	}
	if err := m.CheckToolVersion("1.2.3"); err != nil {
		t.Fatalf("newer version rejected: %v", err)
	}
	if err := m.CheckToolVersion("0.0.9"); err == nil {
		t.Fatalf("older version should be rejected")
	}
}

func TestCheckToolVersionNoConstraint(t *testing.T) {
	m, err := Load(writeManifest(t, t.TempDir(), "[package]\nname = \"x\"\n"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if err := m.CheckToolVersion("0.0.1"); err != nil {
		t.Fatalf("unconstrained manifest should accept any version: %v", err)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, validManifest)

	libDir := filepath.Join(root, "lib")
	if err := os.MkdirAll(libDir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	for _, path := range []string{
		filepath.Join(root, "main.nxs"),
		filepath.Join(libDir, "util.nxs"),
	} {
		if err := os.WriteFile(path, []byte("let x;"), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	m, err := Load(filepath.Join(root, ManifestName))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	tests := []struct {
		filename string
		want     string
	}{
		{"main.nxs", filepath.Join(root, "main.nxs")},
		{"main", filepath.Join(root, "main.nxs")}, // extension appended
		{"util.nxs", filepath.Join(libDir, "util.nxs")},
		{"util", filepath.Join(libDir, "util.nxs")},
	}

	for i, tt := range tests {
		got, err := m.Resolve(tt.filename)
		if err != nil {
			t.Fatalf("tests[%d] - resolve failed: %v", i, err)
		}
		if got != tt.want {
			t.Fatalf("tests[%d] - path wrong. expected=%q, got=%q", i, tt.want, got)
		}
	}

	if _, err := m.Resolve("missing.nxs"); err == nil {
		t.Fatalf("resolve of missing module should fail")
	}
}
