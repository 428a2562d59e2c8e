package health

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
)

// Command is the top-level health command
var Command = &cli.Command{
	Name:    "health",
	Aliases: []string{"heal"},
	Usage:   "Check app manager health",
	Commands: []*cli.Command{
		AliveCommand,
		ReadyCommand,
	},
	Action: cmdutil.RequireSubcommand,
}

// AliveCommand probes the liveness endpoint. Any response from the app
// manager counts as alive; only a transport failure fails.
var AliveCommand = &cli.Command{
	Name:   "alive",
	Usage:  "Check that the app manager is alive",
	Action: runAlive,
}

// ReadyCommand probes the readiness endpoint
var ReadyCommand = &cli.Command{
	Name:   "ready",
	Usage:  "Check that the app manager is ready to serve",
	Action: runReady,
}

func runAlive(ctx context.Context, cmd *cli.Command) error {
	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	if _, err := client.HealthAlive(ctx); err != nil {
		return err
	}

	fmt.Println("app manager is alive")
	return nil
}

func runReady(ctx context.Context, cmd *cli.Command) error {
	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	resp, err := client.HealthReady(ctx)
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Println("app manager is ready")
		return nil
	case http.StatusServiceUnavailable:
		return fmt.Errorf("app manager is not ready")
	case http.StatusInternalServerError:
		return fmt.Errorf("internal error")
	default:
		return cmdutil.UnexpectedStatus(resp)
	}
}
