// Package cli implements the command-line interface for gocube-solver.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/config"
	"github.com/SeamusWaldron/gocube_solver/internal/service"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// Loaded before every command runs.
	cfg     config.Config
	cfgFile string
	logger  *log.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube-solver",
	Short: "Rubik's Cube model and bottom cross solver",
	Long: `gocube-solver - A 3x3x3 Rubik's Cube model with a bottom cross solver.

Cubes are passed around as 54 letter codes: nine stickers per face in
Front, Right, Back, Left, Up, Down order, one letter per color (b r g o y w).
Rotations are face letters, uppercase for clockwise and lowercase for
counter-clockwise (F f R r B b L l U u D d).`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.gocube_solver/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.gocube_solver/solves.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads the config file and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg, cfgFile = c, path

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	logger = newLogger(cmd.ErrOrStderr(), level)
	logger.Debug("loaded config", "path", path, "addr", cfg.Addr, "max_moves", cfg.MaxMoves)

	return nil
}

// newLogger creates a logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// getDBPath returns the database path from flag, config or default.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return storage.DefaultDBPath()
}

// openDB opens the solve history database and applies migrations.
func openDB() (*storage.DB, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.OpenAndMigrate(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("opened database", "path", path)

	return db, nil
}

// newService builds the operation service from the loaded config.
func newService(opts ...service.Option) *service.Service {
	base := []service.Option{
		service.WithLogger(logger),
		service.WithMaxMoves(cfg.MaxMoves),
	}
	return service.New(append(base, opts...)...)
}

// run executes op and turns an error status into a command error.
func run(svc *service.Service, op string, p service.Params) (service.Result, error) {
	start := time.Now()
	r, ok := svc.Dispatch(op, p)
	logger.Debug("operation finished", "op", op, "status", r.Status(), "took", time.Since(start).Round(time.Microsecond))
	if !ok || !r.OK() {
		return r, errors.New(r.Status())
	}
	return r, nil
}
