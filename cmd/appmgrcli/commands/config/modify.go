package config

import (
	"context"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
)

// ModifyCommand replaces an xApp configuration object
var ModifyCommand = &cli.Command{
	Name:      "modify",
	Aliases:   []string{"mod"},
	Usage:     "Modify an xApp configuration object",
	ArgsUsage: "<config-file> | <xapp-name> <config-name> <namespace> <schema-file> <data-file>",
	Description: `Replace a configuration object, either from a single file holding a
complete config document, or from three object names plus a schema file
and a data file.

Examples:
  appmgrcli config modify config.json
  appmgrcli config modify ueec ueec-appconfig ricxapp schema.json data.json`,
	Action: runModify,
}

func runModify(ctx context.Context, cmd *cli.Command) error {
	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}
	return runUpsert(ctx, cmd, http.StatusOK, client.ModifyConfigRaw, client.ModifyConfig)
}
