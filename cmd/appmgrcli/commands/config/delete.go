package config

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
	"github.com/cachengo/ric-plt-appmgr/internal/appmgr"
)

// DeleteCommand removes an xApp configuration object
var DeleteCommand = &cli.Command{
	Name:      "delete",
	Aliases:   []string{"del"},
	Usage:     "Delete an xApp configuration object",
	ArgsUsage: "<config-file> | <xapp-name> <config-name> <namespace>",
	Description: `Delete a configuration object, identified either by a file holding a
config document with the object's metadata, or by the three object names.

Examples:
  appmgrcli config delete config.json
  appmgrcli config delete ueec ueec-appconfig ricxapp`,
	Action: runDelete,
}

func runDelete(ctx context.Context, cmd *cli.Command) error {
	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	var resp *appmgr.Response

	switch cmd.Args().Len() {
	case 1:
		doc, err := loadJSONFile(cmd.Args().First())
		if err != nil {
			return err
		}
		resp, err = client.DeleteConfigRaw(ctx, doc)
		if err != nil {
			return err
		}
	case 3:
		meta, err := metadataFromArgs(cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2))
		if err != nil {
			return err
		}
		resp, err = client.DeleteConfig(ctx, &appmgr.ConfigDeleteRequest{Metadata: *meta})
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("requires one argument (a config file) or three (<xapp-name> <config-name> <namespace>)")
	}

	switch resp.StatusCode {
	case http.StatusNoContent:
		fmt.Println("SUCCESSFUL DELETION")
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("invalid parameters supplied")
	case http.StatusInternalServerError:
		return fmt.Errorf("internal error")
	default:
		return cmdutil.UnexpectedStatus(resp)
	}
}
