// Package assets bundles the static files emitted with HTML dumps.
package assets

import (
	_ "embed"
)

//go:embed style.css
var stylesheet string

// Loader returns the text of a stylesheet.
type Loader func() (string, error)

// Stylesheet is the default Loader returning the bundled style.css.
func Stylesheet() (string, error) {
	return stylesheet, nil
}
