package vardump

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Dump JSON, YAML, TOML and XML documents as readable trees"
	MsgVersionShort    = "Print version information"
	MsgConfigShort     = "Show the effective configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Configuration file merged over the user and project files"
	MsgFlagTitle       = "Title shown above the dump"
	MsgFlagMaxDepth    = "Maximum nesting depth to expand"
	MsgFlagFormat      = "Output format: auto, term, text or html"
	MsgFlagInputFormat = "Input syntax: json, yaml, toml or xml (default: from extension or content)"
	MsgFlagBlockType   = "Type name pattern to hide (repeatable, replaces the configured list)"
	MsgFlagBlockMember = "Member name pattern to hide (repeatable, replaces the configured list)"
	MsgFlagStyles      = "Palette YAML file overriding the terminal colours"
	MsgFlagDefaults    = "Print the built-in defaults instead"
)

// MsgRootLong is the long description of the root command.
const MsgRootLong = `vardump decodes a document and prints it as a dump tree: every value is
shown with its type, strings with their length, and containers with their
item count. Mappings keep the order of the source document.

With no file, or with "-", the document is read from standard input.

Output is coloured text on a terminal and plain text otherwise. Use
--format html for a collapsible HTML page fragment.`

// MsgRootExample shows typical invocations.
const MsgRootExample = `  vardump config.json
  kubectl get pod web -o yaml | vardump --max-depth 4
  vardump --format html --title "Build" report.xml > report.html`

// MsgCompletionLong explains how to install completions.
const MsgCompletionLong = `To load completions:

Bash:
  $ source <(vardump completion bash)

Zsh:
  $ vardump completion zsh > "${fpath[1]}/_vardump"

Fish:
  $ vardump completion fish | source

PowerShell:
  PS> vardump completion powershell | Out-String | Invoke-Expression
`

// MsgUsageTemplate is the root usage template, styled through the
// template functions registered by initTemplateFormatting.
const MsgUsageTemplate = `{{bold "USAGE:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{bold "ALIASES:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{bold "EXAMPLES:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{bold "COMMANDS:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{bold "FLAGS:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{bold "GLOBAL FLAGS:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
Use "{{.Root.Name}} help topics" for more documentation.{{end}}
`
