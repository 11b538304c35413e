// Package main implements a SQLite-specific CLI for movierental.
// It accepts a database path via the -conn flag, the SQLITE_URL environment
// variable, or the "conn" field in the JSON config file.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/rs/zerolog/log"

	"github.com/bcomnes/movierental"
	"github.com/bcomnes/movierental/internal/logging"
)

var versionString = movierental.Version

// Exit statuses.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usage prints the help text.
func usage() {
	header := `Usage:
  movierental-sqlite [options] <command> [arguments]

` + movierental.CommandsHelp + `

Options:`
	fmt.Fprintln(os.Stderr, header)
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

func run() int {
	connStr := flag.String("conn", "", "SQLite database path (e.g. \"./rentals.db\"). Can also be set via SQLITE_URL env var.")
	configPath := flag.String("config", "", "Path to JSON configuration file (optional)")
	envFile := flag.String("env-file", ".env", "Path to a .env file loaded into the environment if present")
	timeout := flag.Duration("timeout", 30*time.Second, "Time limit for opening, schema verification and the command")
	logLevel := flag.String("log-level", logging.DefaultLevel, "Log level: error, warn, info, debug or trace")
	helpFlag := flag.Bool("help", false, "Show help message")
	versionFlag := flag.Bool("version", false, "Show version")

	flag.Usage = usage
	flag.Parse()

	logging.Apply(*logLevel, os.Stderr)

	// Safeguard: check for any flag-like arguments after positional arguments.
	for _, arg := range flag.Args() {
		if strings.HasPrefix(arg, "-") {
			fmt.Fprintln(os.Stderr, "Error: Flags must be specified before the command. Please reorder your arguments.")
			usage()
			return exitUsage
		}
	}

	if *helpFlag {
		usage()
		return exitOK
	}
	if *versionFlag {
		fmt.Println("movierental-sqlite version:", versionString)
		return exitOK
	}

	cmd, err := movierental.ParseCommand(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		return exitUsage
	}

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Error().Err(err).Str("path", *envFile).Msg("Error loading env file")
			return exitFailure
		}
	}

	cfg := movierental.Config{}
	if *configPath != "" {
		if err := movierental.LoadConfig(*configPath, &cfg); err != nil {
			log.Error().Err(err).Str("path", *configPath).Msg("Error loading config file")
			return exitFailure
		}
	}
	cfg.Driver = movierental.DriverSqlite3

	// Precedence: flag > env > config file > default path.
	if *connStr != "" {
		cfg.Conn = *connStr
	} else if env := os.Getenv("SQLITE_URL"); env != "" {
		cfg.Conn = env
	}

	err = withDB(cfg, *timeout, func(ctx context.Context, store *movierental.Store) error {
		return store.Execute(ctx, cmd, os.Stdout)
	})
	if err != nil {
		log.Error().Err(err).Str("command", cmd.Verb).Msg("Command failed")
		return exitFailure
	}
	return exitOK
}

func withDB(cfg movierental.Config, timeout time.Duration, f func(ctx context.Context, store *movierental.Store) error) error {
	dsn, err := cfg.DataSourceName()
	if err != nil {
		return err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	log.Debug().Str("path", dsn).Msg("Database opened")

	store, err := movierental.NewStore(cfg, db)
	if err != nil {
		return err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	log.Debug().Str("driver", store.Driver()).Msg("Schema verified")

	return f(ctx, store)
}
