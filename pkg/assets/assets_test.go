package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesheet(t *testing.T) {
	css, err := Stylesheet()
	require.NoError(t, err)

	for _, class := range []string{".extbase-debugger", ".extbase-debugger-top", ".extbase-debug-filtered", ".extbase-debug-seeabove"} {
		assert.Contains(t, css, class)
	}
}
