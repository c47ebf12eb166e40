package cli

import (
	"time"

	"github.com/julianstephens/habitual/internal/notifier"
)

type NotifyCmd struct {
	DryRun bool `help:"Print due reminders to stdout without sending them or marking them fired."`
}

func (c *NotifyCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := time.Now()
	if c.DryRun {
		preview := notifier.WriterSender{W: ctx.out()}
		due, err := notifier.NewDispatcher(ctx.Store, preview).Due(ctx.context(), now)
		if err != nil {
			return err
		}
		for _, req := range due {
			if err := preview.Deliver(ctx.context(), req.Content); err != nil {
				return err
			}
		}
		ctx.printf("%d reminder(s) due.\n", len(due))
		return nil
	}

	_, err := notifier.NewDispatcher(ctx.Store, notifier.NewTraySender()).Run(ctx.context(), now)
	return err
}
