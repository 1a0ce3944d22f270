// Package modules handles Nexus project manifests and the resolution of
// 'use' declaration filenames to files on disk.
//
// A project is described by a nexus.toml manifest:
//
//	[package]
//	name = "my-project"
//	version = "0.1.0"
//	nexus = ">= 0.1.0"
//
//	[modules]
//	paths = ["lib", "vendor/nexus"]
package modules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

// ManifestName is the manifest filename looked for in project directories.
const ManifestName = "nexus.toml"

// Package is the [package] section of a manifest.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Nexus   string `toml:"nexus"` // tool version constraint, optional
}

// Modules is the [modules] section of a manifest.
type Modules struct {
	Paths []string `toml:"paths"`
}

// Manifest is a parsed nexus.toml plus the directory it was loaded from.
type Manifest struct {
	Package Package `toml:"package"`
	Modules Modules `toml:"modules"`

	dir string
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
	}

	if m.Package.Name == "" {
		return nil, fmt.Errorf("manifest %s: package name is required", path)
	}
	if m.Package.Version != "" {
		if _, err := semver.NewVersion(m.Package.Version); err != nil {
			return nil, fmt.Errorf("manifest %s: invalid package version %q: %w", path, m.Package.Version, err)
		}
	}
	if m.Package.Nexus != "" {
		if _, err := semver.NewConstraint(m.Package.Nexus); err != nil {
			return nil, fmt.Errorf("manifest %s: invalid nexus version constraint %q: %w", path, m.Package.Nexus, err)
		}
	}

	m.dir = filepath.Dir(path)
	return &m, nil
}

// Find walks up from the start directory looking for a manifest file.
func Find(start string) (*Manifest, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("no %s found in %s or any parent directory", ManifestName, start)
		}
		dir = parent
	}
}

// Dir returns the project root directory the manifest was loaded from.
func (m *Manifest) Dir() string {
	return m.dir
}

// CheckToolVersion verifies the tool version against the manifest's nexus
// version constraint, if one is set.
func (m *Manifest) CheckToolVersion(version string) error {
	if m.Package.Nexus == "" {
		return nil
	}

	c, err := semver.NewConstraint(m.Package.Nexus)
	if err != nil {
		return err
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid tool version %q: %w", version, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("project %s requires nexus %s, tool version is %s",
			m.Package.Name, m.Package.Nexus, version)
	}
	return nil
}

// Resolve maps a 'use' declaration filename to a path on disk. The project
// root is searched first, then the module paths in manifest order. A
// filename without extension gets ".nxs" appended.
func (m *Manifest) Resolve(filename string) (string, error) {
	if !strings.Contains(filepath.Base(filename), ".") {
		filename += ".nxs"
	}

	dirs := append([]string{""}, m.Modules.Paths...)
	for _, dir := range dirs {
		path := filepath.Join(m.dir, dir, filename)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("cannot resolve module %q in project %s", filename, m.Package.Name)
}
