package xapp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
)

// UndeployCommand removes a deployed xApp
var UndeployCommand = &cli.Command{
	Name:      "undeploy",
	Aliases:   []string{"undep"},
	Usage:     "Undeploy an xApp",
	ArgsUsage: "<xapp-name>",
	Description: `Undeploy the named xApp.

Example:
  appmgrcli undeploy ueec`,
	Action: runUndeploy,
}

func runUndeploy(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 || cmd.Args().First() == "" {
		return fmt.Errorf("undeploy requires exactly one argument: <xapp-name>")
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	resp, err := client.UndeployXapp(ctx, cmd.Args().First())
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusNoContent:
		fmt.Println("SUCCESSFUL DELETION")
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("invalid xApp name supplied")
	case http.StatusInternalServerError:
		return fmt.Errorf("internal error")
	default:
		return cmdutil.UnexpectedStatus(resp)
	}
}
