package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/moneytracker-go/internal/cli/output"
	"github.com/yndnr/moneytracker-go/internal/config"
	"github.com/yndnr/moneytracker-go/internal/infra/buildinfo"
)

const envKey = "env"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "moneytracker-cli",
		Usage:   "MoneyTracker personal finance client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			LoginCommand(),
			RegisterCommand(),
			LogoutCommand(),
			WhoamiCommand(),
			RefreshCommand(),
			ProfileCommand(),
			WalletsCommand(),
			TransactionsCommand(),
			CategoriesCommand(),
			DashboardCommand(),
			SourcesCommand(),
			ConfigCommand(),
			VersionCommand(),
			ShellCommand(),
		},
		Before: func(c *cli.Context) error {
			if _, err := output.ParseFormat(c.String("output")); err != nil {
				return err
			}
			return nil
		},
		After: func(c *cli.Context) error {
			env, ok := c.App.Metadata[envKey].(*Env)
			if !ok || c.App.Metadata[sharedEnvKey] == true {
				return nil
			}
			delete(c.App.Metadata, envKey)
			return env.Close()
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the YAML config file (default ~/.moneytracker/config.yaml when present)",
			EnvVars: []string{"MONEYTRACKER_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "Data mode override: mock, api or hybrid",
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "Backend base URL override",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   string(output.FormatTable),
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.BoolFlag{
			Name:  "ephemeral",
			Usage: "Keep tokens in memory only; nothing is read from or written to disk",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log debug output to stderr",
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "Print client metrics to stderr on exit",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	ConfigPath string
	Mode       string
	BaseURL    string
	Output     output.Format
	Wide       bool
	Ephemeral  bool
	Verbose    bool
	Metrics    bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		format = output.FormatTable
	}
	return &GlobalFlags{
		ConfigPath: c.String("config"),
		Mode:       c.String("mode"),
		BaseURL:    c.String("base-url"),
		Output:     format,
		Wide:       c.Bool("wide"),
		Ephemeral:  c.Bool("ephemeral"),
		Verbose:    c.Bool("verbose"),
		Metrics:    c.Bool("metrics"),
	}
}

// ConfigOverrides returns the flag values that override file and env config.
func (f *GlobalFlags) ConfigOverrides() map[string]any {
	overrides := make(map[string]any)
	if f.Mode != "" {
		overrides["api.mode"] = f.Mode
	}
	if f.BaseURL != "" {
		overrides["api.base_url"] = f.BaseURL
	}
	return overrides
}

// loadConfig loads the configuration selected by the global flags.
func loadConfig(c *cli.Context) (*config.ClientConfig, error) {
	flags := ParseGlobalFlags(c)
	return config.Load(flags.ConfigPath, flags.ConfigOverrides())
}

// render writes data to the app writer in the selected format.
func render(c *cli.Context, data any) error {
	flags := ParseGlobalFlags(c)
	return output.NewFormatter(flags.Output, flags.Wide).Format(c.App.Writer, data)
}

// notice prints a human-readable confirmation. It is suppressed for json
// and yaml output so stdout stays machine-readable.
func notice(c *cli.Context, format string, args ...any) {
	if ParseGlobalFlags(c).Output != output.FormatTable {
		return
	}
	fmt.Fprintf(c.App.Writer, format+"\n", args...)
}

// PrintError prints an error message to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

// requireArg returns the first positional argument or a usage error.
func requireArg(c *cli.Context, name string) (string, error) {
	v := c.Args().First()
	if v == "" {
		return "", fmt.Errorf("%s required", name)
	}
	return v, nil
}
