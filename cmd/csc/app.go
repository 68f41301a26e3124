package main

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"csc/config"
	"csc/misc"
	"csc/state"
)

const inputHelp = `
INPUT:
    path to YAML cascade document, "-" to read it from STDIN, or to zip archive
    of documents (resolve only, results go to DESTINATION directory). Document lists
    declaration blocks matched by a single element together with their origins,
    layers and tree scopes, optional active interpolations, registered custom
    properties and env() variables. Declarations are expanded as templates
    before parsing, values of "env" are available as {{ .Env.name }}.
`

const resolveHelp = `
DESTINATION:
    path to output file or existing directory, in the latter case file name
    is produced from "output.name_template" configuration value
    if absent - STDOUT
`

const dumpconfigHelp = `

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Actual configuration is what program runs with: defaults merged with values
from configuration file. Use --default flag to get embedded defaults instead.
`

// errWasLogged tells main that error has already been reported through
// program log.
var errWasLogged bool

func newApp() *cli.Command {
	toFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:  "to",
			Usage: "output `TYPE` (supported types: " + strings.Join(config.OutputFormatNames(), ", ") + "), overrides configuration",
		}
	}

	return &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "resolves CSS cascade of a single element",
		Version:         fmt.Sprintf("%s (%s) : %s", misc.GetVersion(), runtime.Version(), misc.GetGitHash()),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    passUsageError,
		ExitErrHandler:  logExitError,
		CommandNotFound: warnUnknownCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log everything and collect inputs, outputs and logs into report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "resolve",
				Usage:        "Applies cascade and outputs computed values",
				OnUsageError: passUsageError,
				Action:       resolveAction,
				Flags: []cli.Flag{
					toFlag(),
					&cli.BoolFlag{Name: "show-cascade", Aliases: []string{"sc"}, Usage: "append cascade map dump to the output"},
					&cli.StringSliceFlag{Name: "only", Usage: "apply only properties of `KIND` (supported kinds: " + strings.Join(filterNames(), ", ") + ")"},
					&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "replace existing destination files"},
				},
				ArgsUsage:          "INPUT [DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + inputHelp + resolveHelp,
			},
			{
				Name:               "cascaded",
				Usage:              "Outputs cascaded (winning, unresolved) values and important properties",
				OnUsageError:       passUsageError,
				Action:             cascadedAction,
				Flags:              []cli.Flag{toFlag()},
				ArgsUsage:          "INPUT",
				CustomHelpTemplate: cli.CommandHelpTemplate + inputHelp,
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError:       passUsageError,
				Action:             dumpConfigAction,
				ArgsUsage:          "DESTINATION",
				CustomHelpTemplate: cli.CommandHelpTemplate + dumpconfigHelp,
			},
		},
	}
}

// logExitError runs before After, while program log is still open.
func logExitError(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)
	if env.Log == nil {
		return
	}
	env.Log.Error("Program ended with error", zap.Error(err))
	errWasLogged = true
}

func passUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func warnUnknownCommand(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}
