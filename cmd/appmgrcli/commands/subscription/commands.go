package subscription

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/cachengo/ric-plt-appmgr/cmd/appmgrcli/commands/cmdutil"
	"github.com/cachengo/ric-plt-appmgr/internal/appmgr"
)

// Command is the top-level subscriptions command
var Command = &cli.Command{
	Name:    "subscriptions",
	Aliases: []string{"subs"},
	Usage:   "Manage event subscriptions",
	Commands: []*cli.Command{
		ListCommand,
		AddCommand,
		ModifyCommand,
		DeleteCommand,
	},
	Action: cmdutil.RequireSubcommand,
}

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// parseCount parses a non-negative integer CLI argument
func parseCount(arg, what string) (int, error) {
	if !digitsPattern.MatchString(arg) {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", what, arg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s is out of range: %q", what, arg)
	}
	return n, nil
}

// buildRequest assembles and validates a subscription request from the
// four positional arguments shared by add and modify.
func buildRequest(url, eventType, maxRetry, retryTimer string) (*appmgr.SubscriptionRequest, error) {
	retries, err := parseCount(maxRetry, "max retries")
	if err != nil {
		return nil, err
	}
	timer, err := parseCount(retryTimer, "retry timer")
	if err != nil {
		return nil, err
	}

	req := &appmgr.SubscriptionRequest{
		Data: appmgr.SubscriptionData{
			TargetURL:  url,
			EventType:  eventType,
			MaxRetries: retries,
			RetryTimer: timer,
		},
	}
	if err := req.Data.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}
