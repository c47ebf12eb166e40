package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DBPath    DebugDBPathCmd    `cmd:"" help:"Show database path."`
	DumpHabit DebugDumpHabitCmd `cmd:"" help:"Dump a habit and its reminders as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	return printJSON(ctx, map[string]string{
		"path": ctx.Store.GetConfigPath(),
	})
}

type DebugDumpHabitCmd struct {
	Ref string `arg:"" help:"Habit ID or title."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	habit, err := ctx.ResolveHabit(cmd.Ref)
	if err != nil {
		return err
	}

	dump := struct {
		Habit     any   `json:"habit"`
		Reminders []any `json:"reminders"`
	}{Habit: habit, Reminders: []any{}}

	for _, id := range habit.NotificationIDs {
		n, err := ctx.Store.GetNotification(id)
		if err != nil {
			dump.Reminders = append(dump.Reminders, map[string]string{"id": id, "error": err.Error()})
			continue
		}
		dump.Reminders = append(dump.Reminders, n)
	}

	return printJSON(ctx, dump)
}

func printJSON(ctx *Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.println(string(jsonBytes))
	return nil
}
