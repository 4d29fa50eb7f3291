package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// TestEnvironment is a temporary home with its own XDG directories and
// working directory.
type TestEnvironment struct {
	t *testing.T

	Root      string
	HomeDir   string
	ConfigDir string
	StateDir  string
	WorkDir   string
}

// NewTestEnvironment points HOME and the XDG variables at a temp directory
// and clears VARDUMP_ variables. Everything is restored when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		t:         t,
		Root:      root,
		HomeDir:   filepath.Join(root, "home"),
		ConfigDir: filepath.Join(root, "home", ".config"),
		StateDir:  filepath.Join(root, "home", ".local", "state"),
		WorkDir:   filepath.Join(root, "work"),
	}
	for _, dir := range []string{env.ConfigDir, env.StateDir, env.WorkDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	// registered first so it runs after the variables are restored
	t.Cleanup(xdg.Reload)

	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "VARDUMP_") {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "etc"))
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	xdg.Reload()

	return env
}

// WriteFile writes content below the environment root and returns the path.
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()
	path := filepath.Join(env.Root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

// WriteUserConfig writes the user's vardump/config.toml.
func (env *TestEnvironment) WriteUserConfig(content string) string {
	env.t.Helper()
	rel, err := filepath.Rel(env.Root, filepath.Join(env.ConfigDir, "vardump", "config.toml"))
	if err != nil {
		env.t.Fatalf("Failed to resolve config path: %v", err)
	}
	return env.WriteFile(rel, content)
}

// WriteProjectConfig writes .vardump.toml in the working directory.
func (env *TestEnvironment) WriteProjectConfig(content string) string {
	env.t.Helper()
	return env.WriteFile(filepath.Join("work", ".vardump.toml"), content)
}
