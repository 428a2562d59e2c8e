package xapp

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
	"github.com/cachengo/ric-plt-appmgr/internal/jsonout"
)

// StatusCommand shows the status of deployed xApps
var StatusCommand = &cli.Command{
	Name:      "status",
	Aliases:   []string{"stat"},
	Usage:     "Show xApp status",
	ArgsUsage: "[xapp-name [instance]]",
	Description: `Show the status of all deployed xApps, one xApp, or one xApp instance.

Examples:
  appmgrcli status
  appmgrcli status ueec
  appmgrcli status ueec ueec-7f4b5c`,
	Action: runStatus,
}

func runStatus(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 2 {
		return fmt.Errorf("status accepts at most two arguments: [xapp-name [instance]]")
	}

	name := cmd.Args().Get(0)
	instance := cmd.Args().Get(1)

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	resp, err := client.XappStatus(ctx, name, instance)
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		jsonout.Fprint(os.Stdout, resp.Body)
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("invalid xApp name supplied")
	case http.StatusNotFound:
		return fmt.Errorf("xApp not found")
	case http.StatusInternalServerError:
		return fmt.Errorf("internal error")
	default:
		return cmdutil.UnexpectedStatus(resp)
	}
}
