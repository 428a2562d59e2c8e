package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
	"github.com/cachengo/ric-plt-appmgr/internal/appmgr"
	"github.com/cachengo/ric-plt-appmgr/internal/jsonout"
)

// Command is the top-level config command
var Command = &cli.Command{
	Name:  "config",
	Usage: "Manage xApp configuration objects",
	Commands: []*cli.Command{
		ListCommand,
		AddCommand,
		ModifyCommand,
		DeleteCommand,
	},
	Action: cmdutil.RequireSubcommand,
}

// loadJSONFile reads a file and verifies it holds a JSON document
func loadJSONFile(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s does not contain valid JSON", path)
	}
	return data, nil
}

// metadataFromArgs builds config object metadata from three name arguments
func metadataFromArgs(name, configName, namespace string) (*appmgr.ConfigMetadata, error) {
	m := &appmgr.ConfigMetadata{
		Name:       name,
		ConfigName: configName,
		Namespace:  namespace,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// runUpsert implements add and modify, which differ only in the client
// call and the success status code. Per the API contract a 422 means the
// server rejected the config against its schema: the validation report is
// still printed, but the command fails.
func runUpsert(ctx context.Context, cmd *cli.Command, successCode int,
	raw func(context.Context, json.RawMessage) (*appmgr.Response, error),
	typed func(context.Context, *appmgr.XAppConfig) (*appmgr.Response, error)) error {

	var resp *appmgr.Response

	switch cmd.Args().Len() {
	case 1:
		doc, err := loadJSONFile(cmd.Args().First())
		if err != nil {
			return err
		}
		resp, err = raw(ctx, doc)
		if err != nil {
			return err
		}
	case 5:
		meta, err := metadataFromArgs(cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2))
		if err != nil {
			return err
		}
		schema, err := loadJSONFile(cmd.Args().Get(3))
		if err != nil {
			return err
		}
		data, err := loadJSONFile(cmd.Args().Get(4))
		if err != nil {
			return err
		}
		resp, err = typed(ctx, &appmgr.XAppConfig{
			Metadata:   *meta,
			Descriptor: schema,
			Config:     data,
		})
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("requires one argument (a config file) or five (<xapp-name> <config-name> <namespace> <schema-file> <data-file>)")
	}

	switch resp.StatusCode {
	case successCode:
		jsonout.Fprint(os.Stdout, resp.Body)
		return nil
	case http.StatusUnprocessableEntity:
		jsonout.Fprint(os.Stdout, resp.Body)
		return fmt.Errorf("config validation failed")
	case http.StatusBadRequest:
		return fmt.Errorf("invalid input")
	case http.StatusInternalServerError:
		return fmt.Errorf("internal error")
	default:
		return cmdutil.UnexpectedStatus(resp)
	}
}
