// Package cmdutil holds helpers shared by the appmgrcli command packages.
package cmdutil

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/internal/appmgr"
	"github.com/cachengo/ric-plt-appmgr/internal/settings"
)

// RequireSubcommand is the action for commands that only group subcommands.
// An unknown subcommand name is an error; a bare invocation shows help.
func RequireSubcommand(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return fmt.Errorf("unknown command %q, run 'appmgrcli --help' for usage", cmd.Args().First())
	}
	return cli.ShowSubcommandHelp(cmd)
}

// NewClient resolves the invocation settings from the root command's global
// flags and builds an app manager client, using the external HTTP client
// program when one is configured.
func NewClient(cmd *cli.Command) (*appmgr.Client, error) {
	st, err := settings.FromCommand(cmd)
	if err != nil {
		return nil, err
	}

	var opts []appmgr.Option
	if st.ClientProg != "" {
		opts = append(opts, appmgr.WithTransport(appmgr.NewExecTransport(st.ClientProg)))
	}

	return appmgr.NewClient(st.Host, st.Port, opts...), nil
}

// UnexpectedStatus reports a status code outside a command's outcome table
func UnexpectedStatus(resp *appmgr.Response) error {
	return fmt.Errorf("unexpected status %d from app manager", resp.StatusCode)
}
