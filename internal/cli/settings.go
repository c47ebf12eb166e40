package cli

import (
	"fmt"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	NotificationsEnabled *bool `help:"Enable or disable reminders."`
	GracePeriod          *int  `help:"Minutes a missed reminder may still be delivered (0-60)."`
	Sound                *bool `help:"Play a sound with reminders."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.println("Current Settings:")
		ctx.printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		ctx.printf("  Permission Asked:      %v\n", settings.PermissionAsked)
		ctx.printf("  Grace Period:          %d min\n", settings.GracePeriodMin)
		ctx.printf("  Sound:                 %v\n", settings.Sound)
		return nil
	}

	updated := false
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.GracePeriod != nil {
		settings.GracePeriodMin = *c.GracePeriod
		updated = true
	}
	if c.Sound != nil {
		settings.Sound = *c.Sound
		updated = true
	}

	if !updated {
		ctx.println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.println("Settings updated successfully.")
	return nil
}
