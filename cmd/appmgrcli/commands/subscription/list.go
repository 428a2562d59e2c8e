package subscription

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
	"github.com/cachengo/ric-plt-appmgr/internal/jsonout"
)

// ListCommand lists subscriptions
var ListCommand = &cli.Command{
	Name:      "list",
	Usage:     "List event subscriptions",
	ArgsUsage: "[id]",
	Description: `List all event subscriptions, or one subscription by its
server-assigned identifier.

Examples:
  appmgrcli subscriptions list
  appmgrcli subscriptions list 3`,
	Action: runList,
}

func runList(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return fmt.Errorf("list accepts at most one argument: [id]")
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	resp, err := client.Subscriptions(ctx, cmd.Args().Get(0))
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		jsonout.Fprint(os.Stdout, resp.Body)
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("invalid subscription id supplied")
	case http.StatusNotFound:
		return fmt.Errorf("subscription not found")
	case http.StatusInternalServerError:
		return fmt.Errorf("internal error")
	default:
		return cmdutil.UnexpectedStatus(resp)
	}
}
