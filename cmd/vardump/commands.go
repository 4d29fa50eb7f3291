package vardump

import (
	"embed"
	"fmt"
	"io"

	"github.com/arthur-debert/vardump/internal/version"
	"github.com/arthur-debert/vardump/pkg/cobrax/topics"
	"github.com/arthur-debert/vardump/pkg/config"
	"github.com/arthur-debert/vardump/pkg/document"
	"github.com/arthur-debert/vardump/pkg/dump"
	"github.com/arthur-debert/vardump/pkg/logging"
	"github.com/arthur-debert/vardump/pkg/output/styles"
	"github.com/arthur-debert/vardump/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

//go:embed topics/*.md
var topicsFS embed.FS

// flags holds the values of the persistent and root flags of one command tree.
type flags struct {
	verbosity    int
	configPath   string
	title        string
	maxDepth     int
	format       string
	inputFormat  string
	blockTypes   []string
	blockMembers []string
	stylesPath   string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	f := &flags{}

	rootCmd := &cobra.Command{
		Use:     "vardump [file|-]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(f.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, f, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&f.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&f.configPath, "config", "", MsgFlagConfig)
	pf.StringVar(&f.format, "format", config.FormatAuto, MsgFlagFormat)
	pf.StringVar(&f.stylesPath, "styles", "", MsgFlagStyles)
	pf.StringVar(&f.title, "title", dump.DefaultTitle, MsgFlagTitle)
	pf.IntVar(&f.maxDepth, "max-depth", dump.DefaultMaxDepth, MsgFlagMaxDepth)
	pf.StringArrayVar(&f.blockTypes, "block-type", nil, MsgFlagBlockType)
	pf.StringArrayVar(&f.blockMembers, "block-member", nil, MsgFlagBlockMember)

	rootCmd.Flags().StringVar(&f.inputFormat, "input-format", "", MsgFlagInputFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{config.FormatAuto, config.FormatTerm, config.FormatText, config.FormatHTML}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("input-format", cobra.FixedCompletions(
		[]string{"json", "yaml", "toml", "xml"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConfigCmd(f))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if _, err := topics.Initialize(rootCmd, topicsFS, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadConfig merges the configuration layers with the flags the user set.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	overrides := map[string]interface{}{}
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("title") {
		overrides["dump.title"] = f.title
	}
	if changed("max-depth") {
		overrides["dump.max_depth"] = f.maxDepth
	}
	if changed("format") {
		overrides["output.format"] = f.format
	}
	if changed("styles") {
		overrides["output.styles"] = f.stylesPath
	}
	if changed("block-type") {
		overrides["filter.blocked_types"] = f.blockTypes
	}
	if changed("block-member") {
		overrides["filter.blocked_members"] = f.blockMembers
	}

	cfg, err := config.Load(config.LoadOptions{ExplicitPath: f.configPath, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	if cfg.Logging.Verbosity > f.verbosity {
		logging.SetupLogger(cfg.Logging.Verbosity)
	}
	return cfg, nil
}

// newRenderer builds the output renderer selected by the configuration.
func newRenderer(cfg *config.Config, w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	d := dump.New()
	if cfg.Output.Styles != "" {
		palette, err := styles.LoadStyles(cfg.Output.Styles)
		if err != nil {
			return nil, err
		}
		d.Palette = palette
	}
	return ui.NewRenderer(format, w, d)
}

func runDump(cmd *cobra.Command, f *flags, args []string) error {
	logger := logging.GetLogger("cmd.dump")

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	inputFormat, err := document.ParseFormat(f.inputFormat)
	if err != nil {
		return err
	}

	var value interface{}
	if path == "-" {
		value, err = document.Decode(cmd.InOrStdin(), inputFormat)
	} else {
		value, err = document.Load(path, inputFormat)
	}
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger.Info().Str("path", path).Str("format", cfg.Output.Format).Msg("Dumping document")
	return renderer.RenderDump(value, cfg.DumpOptions())
}

func newConfigCmd(f *flags) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			opts := cfg.DumpOptions()
			opts.Title = "vardump configuration"
			return renderer.RenderDump(cfg, opts)
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "vardump version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "VARDUMP",
				Section: "1",
				Source:  "vardump " + version.Version,
				Manual:  "vardump manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
