package config

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
	"github.com/cachengo/ric-plt-appmgr/internal/jsonout"
)

// ListCommand lists all xApp configuration objects
var ListCommand = &cli.Command{
	Name:   "list",
	Usage:  "List xApp configuration objects",
	Action: runList,
}

func runList(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 0 {
		return fmt.Errorf("list takes no arguments")
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	resp, err := client.Configs(ctx)
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		jsonout.Fprint(os.Stdout, resp.Body)
		return nil
	case http.StatusInternalServerError:
		return fmt.Errorf("internal error")
	default:
		return cmdutil.UnexpectedStatus(resp)
	}
}
