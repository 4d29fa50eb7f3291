package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/vardump/pkg/errors"
	"github.com/arthur-debert/vardump/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override. Nested keys are joined
	// with a double underscore: VARDUMP_DUMP__MAX_DEPTH sets dump.max_depth.
	EnvPrefix = "VARDUMP_"
	// ProjectFile is looked up in the working directory.
	ProjectFile = ".vardump.toml"
	// UserFile is looked up in the XDG config directories.
	UserFile = "vardump/config.toml"
)

// LoadOptions selects the files merged by Load.
type LoadOptions struct {
	// ExplicitPath is a file given on the command line. It must exist.
	ExplicitPath string
	// WorkDir is searched for ProjectFile; empty means the current directory.
	WorkDir string
	// SkipUserConfig disables the XDG user file lookup.
	SkipUserConfig bool
	// Overrides are applied last, keyed by dotted path ("dump.max_depth").
	Overrides map[string]interface{}
}

// Load merges every configuration layer, lowest priority first: embedded
// defaults, user file, project file, explicit file, environment, overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUserConfig {
		if path, err := xdg.SearchConfigFile(UserFile); err == nil {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			sources = append(sources, path)
		}
	}

	// 3. Project config
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	projectPath := filepath.Join(workDir, ProjectFile)
	if _, err := os.Stat(projectPath); err == nil {
		if err := loadFile(k, projectPath); err != nil {
			return nil, err
		}
		sources = append(sources, projectPath)
	}

	// 4. Explicit config
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.ExplicitPath).
				WithDetail("path", opts.ExplicitPath)
		}
		if err := loadFile(k, opts.ExplicitPath); err != nil {
			return nil, err
		}
		sources = append(sources, opts.ExplicitPath)
	}

	// 5. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 6. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Strs("sources", sources).Int("maxDepth", cfg.Dump.MaxDepth).Msg("Configuration loaded")
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps VARDUMP_FILTER__BLOCKED_TYPES to filter.blocked_types.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
