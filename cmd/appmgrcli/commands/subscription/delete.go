package subscription

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
)

// DeleteCommand removes an event subscription
var DeleteCommand = &cli.Command{
	Name:      "delete",
	Aliases:   []string{"del"},
	Usage:     "Delete an event subscription",
	ArgsUsage: "<id>",
	Description: `Delete the subscription identified by its server-assigned id.

Example:
  appmgrcli subscriptions delete 3`,
	Action: runDelete,
}

func runDelete(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 || cmd.Args().First() == "" {
		return fmt.Errorf("delete requires exactly one argument: <id>")
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	resp, err := client.DeleteSubscription(ctx, cmd.Args().First())
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusNoContent:
		fmt.Println("SUCCESSFUL DELETION")
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("invalid subscription id supplied")
	case http.StatusInternalServerError:
		return fmt.Errorf("internal error")
	default:
		return cmdutil.UnexpectedStatus(resp)
	}
}
