package command

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/moneytracker-go/internal/cli/repl"
	"github.com/yndnr/moneytracker-go/internal/telemetry/logger"
)

// sharedEnvKey marks an Env owned by an enclosing shell.
const sharedEnvKey = "env.shared"

var errNestedShell = errors.New("already in a shell")

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:   "shell",
		Usage:  "Run commands interactively in one session",
		Action: runShell,
	}
}

func runShell(c *cli.Context) error {
	env, err := envFrom(c)
	if err != nil {
		return err
	}
	flags := ParseGlobalFlags(c)
	log := logger.FromContext(c.Context)

	// History lives next to the token store and is skipped when ephemeral.
	var historyPath string
	if !flags.Ephemeral {
		historyPath = filepath.Join(filepath.Dir(env.Config.Storage.Dir), "history")
	}
	history := repl.NewHistory(historyPath, repl.DefaultHistorySize)
	if err := history.Load(); err != nil {
		log.Warn("load shell history", "error", err)
	}

	exec := func(ctx context.Context, args []string) error {
		return runNested(ctx, c, env, args)
	}
	shell := repl.New(exec,
		repl.WithIO(c.App.Reader, c.App.Writer),
		repl.WithCompleter(repl.NewCompleter(commandPaths(App().Commands, ""))),
		repl.WithHistory(history),
	)

	runErr := shell.Run(c.Context)
	if err := history.Save(); err != nil {
		log.Warn("save shell history", "error", err)
	}
	return runErr
}

// runNested runs one shell line as a full CLI invocation that reuses env.
// Output flags of the shell apply unless the line sets its own.
func runNested(ctx context.Context, parent *cli.Context, env *Env, args []string) error {
	if args[0] == "shell" {
		return errNestedShell
	}

	app := App()
	app.Writer = parent.App.Writer
	app.ErrWriter = parent.App.ErrWriter
	// The shell owns the input stream; prompts inside a line see EOF.
	app.Reader = strings.NewReader("")
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Metadata = map[string]any{
		envKey:       env,
		sharedEnvKey: true,
	}

	flags := ParseGlobalFlags(parent)
	argv := []string{app.Name, "--output", string(flags.Output)}
	if flags.Wide {
		argv = append(argv, "--wide")
	}
	return app.RunContext(ctx, append(argv, args...))
}

// commandPaths lists "name" and "name sub" for every visible command.
func commandPaths(cmds []*cli.Command, prefix string) []string {
	var paths []string
	for _, cmd := range cmds {
		if cmd.Hidden {
			continue
		}
		path := prefix + cmd.Name
		paths = append(paths, path)
		paths = append(paths, commandPaths(cmd.Subcommands, path+" ")...)
	}
	return paths
}
