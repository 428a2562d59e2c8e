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

// ModifyCommand replaces an existing event subscription
var ModifyCommand = &cli.Command{
	Name:      "modify",
	Aliases:   []string{"mod"},
	Usage:     "Modify an event subscription",
	ArgsUsage: "<id> <target-url> <event-type> <max-retries> <retry-timer>",
	Description: `Replace the subscription identified by its server-assigned id.

Example:
  appmgrcli subscriptions modify 3 http://localhost:8087/xapps_hook all 5 30`,
	Action: runModify,
}

func runModify(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 5 {
		return fmt.Errorf("modify requires five arguments: <id> <target-url> <event-type> <max-retries> <retry-timer>")
	}

	id := cmd.Args().Get(0)
	if id == "" {
		return fmt.Errorf("subscription id cannot be empty")
	}

	req, err := buildRequest(cmd.Args().Get(1), cmd.Args().Get(2), cmd.Args().Get(3), cmd.Args().Get(4))
	if err != nil {
		return err
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	resp, err := client.ModifySubscription(ctx, id, req)
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		jsonout.Fprint(os.Stdout, resp.Body)
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("invalid input")
	case http.StatusInternalServerError:
		return fmt.Errorf("internal error")
	default:
		return cmdutil.UnexpectedStatus(resp)
	}
}
