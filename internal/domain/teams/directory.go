package teams

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed mlb.yaml
var defaultTable []byte

// Directory maps full team names to canonical codes. It is read-only once
// built; share a single instance for the lifetime of the process.
type Directory struct {
	codes map[string]string
}

type directoryFile struct {
	Teams []directoryEntry `yaml:"teams"`
}

type directoryEntry struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// DefaultDirectory returns the embedded MLB directory.
func DefaultDirectory() *Directory {
	dir, err := ParseDirectory(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("teams: embedded directory invalid: %v", err))
	}
	return dir
}

// LoadDirectory reads a directory from a YAML file. An empty path yields the
// embedded default.
func LoadDirectory(path string) (*Directory, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultDirectory(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("teams: read %s: %w", path, err)
	}
	return ParseDirectory(data)
}

// ParseDirectory decodes a YAML document of the form `teams: [{name, code}]`.
// Names and codes must be non-empty and unique.
func ParseDirectory(data []byte) (*Directory, error) {
	var file directoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("teams: decode directory: %w", err)
	}
	if len(file.Teams) == 0 {
		return nil, errors.New("teams: directory has no entries")
	}

	dir := &Directory{codes: make(map[string]string, len(file.Teams))}
	seen := make(map[string]struct{}, len(file.Teams))
	for i, entry := range file.Teams {
		name := strings.TrimSpace(entry.Name)
		code := strings.TrimSpace(entry.Code)
		if name == "" || code == "" {
			return nil, fmt.Errorf("teams: entry %d missing name or code", i)
		}
		if _, dup := dir.codes[name]; dup {
			return nil, fmt.Errorf("teams: duplicate name %q", name)
		}
		if _, dup := seen[code]; dup {
			return nil, fmt.Errorf("teams: duplicate code %q", code)
		}
		dir.codes[name] = code
		seen[code] = struct{}{}
	}
	return dir, nil
}

// Resolve returns the canonical code for fullName, or fullName itself when the
// directory does not know it.
func (d *Directory) Resolve(fullName string) string {
	if d == nil {
		return fullName
	}
	if code, ok := d.codes[fullName]; ok {
		return code
	}
	return fullName
}

// Team resolves fullName into a Team.
func (d *Directory) Team(fullName string) Team {
	return Team{Name: fullName, Code: d.Resolve(fullName)}
}

// Len reports the number of franchises in the directory.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.codes)
}
