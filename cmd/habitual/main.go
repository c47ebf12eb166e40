package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/keyring"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/storage/postgres"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path or PostgreSQL connection string. Credentials must NOT be embedded in the connection string; use the keyring or HABITUAL_DB_CONNECTION instead." type:"string" default:"${config}" env:"HABITUAL_CONFIG"`
	Verbose bool   `help:"Log debug output to stderr." short:"v"`

	Init      cli.InitCmd      `cmd:"" help:"Initialize habitual storage."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit     cli.HabitCmd     `cmd:"" help:"Manage habits."`
	Reminders cli.RemindersCmd `cmd:"" help:"List pending reminders."`
	Settings  cli.SettingsCmd  `cmd:"" help:"Manage application settings."`
	Keyring   cli.KeyringCmd   `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Backup    cli.BackupCmd    `cmd:"" help:"Manage SQLite database backups."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Debug     cli.DebugCmd     `cmd:"" help:"Debug commands for troubleshooting."`
	Notify    cli.NotifyCmd    `cmd:"" hidden:"" help:"Deliver due reminders (run periodically)."`
}

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with weekly reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"config":  constants.DefaultConfigPath,
		},
	)

	if err := initLogger(CLI.Verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	store, err := openStore(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCtx := cli.NewContext(sigCtx, store)

	// Init handles its own setup
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	store.Close()
	errors.Fatal(err)
}

func initLogger(debug bool) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	return logger.Init(logger.Config{
		Debug:     debug,
		ConfigDir: filepath.Join(configDir, constants.AppName),
	})
}

// openStore picks the backend: an explicit PostgreSQL connection string,
// then one from the environment or keyring, then the SQLite file.
func openStore(config string) (storage.Provider, error) {
	if postgres.IsConnString(config) {
		if err := postgres.ValidateConnString(config); err != nil {
			return nil, fmt.Errorf("%w\n  store the connection string with 'habitual keyring set' or export %s instead", err, constants.ConnectionEnvVar)
		}
		logger.Debug("using PostgreSQL backend", "source", "flag")
		return postgres.New(config), nil
	}

	if connStr, source, ok := keyring.ResolveConnectionString(); ok {
		logger.Debug("using PostgreSQL backend", "source", source)
		return postgres.New(connStr), nil
	}

	path, err := expandPath(config)
	if err != nil {
		return nil, err
	}
	logger.Debug("using SQLite backend", "path", path)
	return sqlite.NewStore(path), nil
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
