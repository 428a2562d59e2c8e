package xapp

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/urfave/cli/v3"
	"sigs.k8s.io/yaml"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
	"github.com/cachengo/ric-plt-appmgr/internal/appmgr"
	"github.com/cachengo/ric-plt-appmgr/internal/jsonout"
)

// DeployCommand deploys an xApp through the app manager
var DeployCommand = &cli.Command{
	Name:      "deploy",
	Aliases:   []string{"dep"},
	Usage:     "Deploy an xApp",
	ArgsUsage: "<xapp-name>",
	Description: `Deploy the named xApp. The app manager picks the chart, release name,
and namespace unless they are overridden.

The --overrides file may be YAML or JSON; it is converted to JSON and
embedded in the deployment request.

Examples:
  appmgrcli deploy ueec
  appmgrcli deploy ueec --helm-version 0.0.2 --namespace ricxapp
  appmgrcli deploy ueec --overrides values.yaml`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "helm-version",
			Usage: "Helm chart version to deploy",
		},
		&cli.StringFlag{
			Name:  "release-name",
			Usage: "Helm release name override",
		},
		&cli.StringFlag{
			Name:  "namespace",
			Usage: "Target namespace override",
		},
		&cli.StringFlag{
			Name:  "overrides",
			Usage: "Path to a values-override file (YAML or JSON)",
		},
		&cli.StringFlag{
			Name:  "target-host",
			Usage: "Target host override",
		},
	},
	Action: runDeploy,
}

func runDeploy(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 || cmd.Args().First() == "" {
		return fmt.Errorf("deploy requires exactly one argument: <xapp-name>")
	}

	desc := &appmgr.XappDescriptor{
		XappName:    cmd.Args().First(),
		HelmVersion: cmd.String("helm-version"),
		ReleaseName: cmd.String("release-name"),
		Namespace:   cmd.String("namespace"),
		TargetHost:  cmd.String("target-host"),
	}

	if path := cmd.String("overrides"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read overrides file: %w", err)
		}
		jsonData, err := yaml.YAMLToJSON(data)
		if err != nil {
			return fmt.Errorf("failed to parse overrides file %s: %w", path, err)
		}
		desc.OverrideFile = jsonData
	}

	if err := desc.Validate(); err != nil {
		return err
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	resp, err := client.DeployXapp(ctx, desc)
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusCreated:
		jsonout.Fprint(os.Stdout, resp.Body)
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("invalid parameters supplied")
	case http.StatusInternalServerError:
		return fmt.Errorf("internal error")
	default:
		return cmdutil.UnexpectedStatus(resp)
	}
}
