package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/sgarcia/romaday/internal/cli"
	"github.com/sgarcia/romaday/internal/geo"
	"github.com/sgarcia/romaday/internal/itinerary"
	"github.com/sgarcia/romaday/internal/storage"
	"github.com/sgarcia/romaday/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Progress store path (.json switches to the plain-file backend)." type:"path" default:"~/.config/romaday/romaday.db" env:"ROMADAY_STORE"`
	Verbose bool   `help:"Enable debug logging." short:"v"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize the progress store."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive companion." default:"1"`
	Day      cli.DayCmd      `cmd:"" help:"Print the day's timeline."`
	Now      cli.NowCmd      `cmd:"" help:"Show the current activity and countdown."`
	Check    cli.CheckCmd    `cmd:"" help:"Toggle an activity's completion."`
	Budget   cli.BudgetCmd   `cmd:"" help:"Show the budget breakdown."`
	Guide    cli.GuideCmd    `cmd:"" help:"Show the survival guide and phrasebook."`
	Validate cli.ValidateCmd `cmd:"" help:"Validate the itinerary configuration."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run diagnostics."`
	Export   cli.ExportCmd   `cmd:"" help:"Dump the merged itinerary as JSON or YAML."`
	Qr       cli.QRCmd       `cmd:"" name:"qr" help:"Print a maps QR code for an activity."`
	Reset    cli.ResetCmd    `cmd:"" help:"Clear all recorded progress."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Snapshot the progress store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available snapshots."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a snapshot."`
	} `cmd:"" help:"Manage progress-store backups."`
}

func main() {
	// Optional .env for the store path override; the itinerary itself
	// is compile-time data.
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name("romaday"),
		kong.Description("Shore-leave companion for one day in Rome"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	level := slog.LevelWarn
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	store := storage.ForPath(CLI.Config)
	defer store.Close()

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
		Source:  geo.NoSource{},
		Canon:   itinerary.Default(),
		Now:     time.Now,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
