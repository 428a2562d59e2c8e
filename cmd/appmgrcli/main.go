package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
	configcmd "github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/config"
	healthcmd "github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/health"
	subscriptioncmd "github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/subscription"
	xappcmd "github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/xapp"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	// Optional env file; APPMGR_HOST and APPMGR_PORT may come from it
	if path, ok := os.LookupEnv("APPMGRCLI_ENV"); ok {
		if err := godotenv.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load env file %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	// -h belongs to the host option; help stays reachable as --help and
	// the help command, version as --version.
	cli.HelpFlag = &cli.BoolFlag{Name: "help", Usage: "show help"}
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print the version"}

	return &cli.Command{
		Name:    "appmgrcli",
		Usage:   "A CLI for the RIC xApp manager",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Aliases: []string{"h"},
				Usage:   "app manager host",
				Sources: cli.EnvVars("APPMGR_HOST"),
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "app manager port",
				Sources: cli.EnvVars("APPMGR_PORT"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log requests and responses",
			},
			&cli.StringFlag{
				Name:    "client",
				Aliases: []string{"c"},
				Usage:   "external curl-compatible HTTP client program",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to client config file",
				Sources: cli.EnvVars("APPMGRCLI_CONFIG"),
			},
		},
		Before: setupLogging,
		Action: cmdutil.RequireSubcommand,
		Commands: []*cli.Command{
			xappcmd.DeployCommand,
			xappcmd.UndeployCommand,
			xappcmd.StatusCommand,
			subscriptioncmd.Command,
			healthcmd.Command,
			configcmd.Command,
		},
	}
}

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if cmd.Bool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	return ctx, nil
}
