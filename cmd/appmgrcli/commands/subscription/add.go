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

// AddCommand registers a new event subscription
var AddCommand = &cli.Command{
	Name:      "add",
	Usage:     "Add an event subscription",
	ArgsUsage: "<target-url> <event-type> <max-retries> <retry-timer>",
	Description: `Register a callback URL for xApp lifecycle events.

The target URL must be an http or https URL. The event type is one of
created, deleted, or all. Max retries and retry timer are non-negative
integers.

Example:
  appmgrcli subscriptions add http://localhost:8087/xapps_hook created 3 10`,
	Action: runAdd,
}

func runAdd(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 4 {
		return fmt.Errorf("add requires four arguments: <target-url> <event-type> <max-retries> <retry-timer>")
	}

	req, err := buildRequest(cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2), cmd.Args().Get(3))
	if err != nil {
		return err
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	resp, err := client.AddSubscription(ctx, req)
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusCreated:
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
