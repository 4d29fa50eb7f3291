// Package styles defines the ANSI palette used by plain-text dumps.
//
// Every rendered fragment has a semantic role (string, number, type, ...).
// The palette maps roles to SGR codes and is loaded from YAML, so users can
// restyle the output without touching code:
//
//	roles:
//	  string: "33"
//	  filtered: "47;30"
package styles

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Semantic roles known to the renderer
const (
	RoleTitle      = "title"
	RoleString     = "string"
	RoleNumber     = "number"
	RoleBool       = "bool"
	RoleType       = "type"
	RoleProperty   = "property"
	RoleScope      = "scope"
	RolePType      = "ptype"
	RoleFiltered   = "filtered"
	RoleVisibility = "visibility"
	RoleClosure    = "closure"
)

//go:embed styles.yaml
var defaultStyles []byte

// Config represents the palette file
type Config struct {
	Roles map[string]string `yaml:"roles"`
}

// Palette maps semantic roles to SGR codes
type Palette map[string]string

var defaultPalette Palette

func init() {
	p, err := Parse(defaultStyles)
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded styles: %v", err))
	}
	defaultPalette = p
}

// Default returns a copy of the embedded palette
func Default() Palette {
	return defaultPalette.Merge(nil)
}

// Parse reads a palette from YAML. Roles left out of data keep no code.
func Parse(data []byte) (Palette, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}
	p := make(Palette, len(config.Roles))
	for role, code := range config.Roles {
		p[role] = code
	}
	return p, nil
}

// LoadStyles reads a palette file and merges it over the default palette
func LoadStyles(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	overrides, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Default().Merge(overrides), nil
}

// Code returns the SGR code of role, empty when the role is unstyled
func (p Palette) Code(role string) string {
	return p[role]
}

// Merge returns a new palette with overrides applied over p
func (p Palette) Merge(overrides Palette) Palette {
	out := make(Palette, len(p)+len(overrides))
	for role, code := range p {
		out[role] = code
	}
	for role, code := range overrides {
		out[role] = code
	}
	return out
}
