package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/constants"
)

type RemindersCmd struct{}

func (c *RemindersCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	pending, err := ctx.Notifier.Pending(ctx.context())
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}

	if len(pending) == 0 {
		ctx.println("No pending reminders.")
		return nil
	}

	ctx.printf("%-36s %-26s %-30s %s\n", "ID", "Trigger", "Message", "Last Fired")
	ctx.println(strings.Repeat("-", 110))

	for _, n := range pending {
		body := n.Content.Body
		if len(body) > 28 {
			body = body[:25] + "..."
		}
		lastFired := "never"
		if n.LastFiredAt != nil {
			lastFired = n.LastFiredAt.Local().Format(constants.DateFormat + " " + constants.TimeFormat)
		}
		ctx.printf("%-36s %-26s %-30s %s\n", n.ID, n.Trigger.String(), body, lastFired)
	}

	return nil
}
