package config_test

import (
	"testing"

	"github.com/arthur-debert/vardump/pkg/config"
	"github.com/arthur-debert/vardump/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpOptions(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	cfg, err := config.Load(config.LoadOptions{WorkDir: env.WorkDir})
	require.NoError(t, err)

	opts := cfg.DumpOptions()

	assert.Equal(t, "Extbase Variable Dump", opts.Title)
	assert.Equal(t, 8, opts.MaxDepth)
	assert.True(t, opts.ANSIColors)
	assert.False(t, opts.PlainText)
	assert.Equal(t, []string{"warning"}, opts.BlockedMemberNames)

	opts.BlockedMemberNames[0] = "changed"
	assert.Equal(t, "warning", cfg.Filter.BlockedMembers[0])
}

func TestDumpOptionsKeepsNilLists(t *testing.T) {
	cfg := &config.Config{}

	opts := cfg.DumpOptions()

	assert.Nil(t, opts.BlockedTypeNames)
	assert.Nil(t, opts.BlockedMemberNames)
}

func TestDefaultContent(t *testing.T) {
	assert.Contains(t, config.DefaultContent(), "[dump]")
	assert.Contains(t, config.DefaultContent(), "max_depth = 8")
}
