package config

import (
	"context"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
)

// AddCommand creates an xApp configuration object
var AddCommand = &cli.Command{
	Name:      "add",
	Usage:     "Add an xApp configuration object",
	ArgsUsage: "<config-file> | <xapp-name> <config-name> <namespace> <schema-file> <data-file>",
	Description: `Create a configuration object, either from a single file holding a
complete config document, or from three object names plus a schema file
and a data file.

A 422 response means the server rejected the config against its schema;
the validation report is printed and the command fails.

Examples:
  appmgrcli config add config.json
  appmgrcli config add ueec ueec-appconfig ricxapp schema.json data.json`,
	Action: runAdd,
}

func runAdd(ctx context.Context, cmd *cli.Command) error {
	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}
	return runUpsert(ctx, cmd, http.StatusCreated, client.AddConfigRaw, client.AddConfig)
}
