package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/server"
	"github.com/SeamusWaldron/gocube_solver/internal/service"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

var (
	serveAddr string
	serveSave bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cube operations over HTTP",
	Long: `Serve create, rotate, solve and verify over HTTP. Parameters are passed
as query strings and results are returned as JSON:

  curl 'http://127.0.0.1:8080/rotate?cube=<code>&dir=Fu'
  curl 'http://127.0.0.1:8080/solve?cube=<code>'`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: config addr)")
	serveCmd.Flags().BoolVar(&serveSave, "save", false, "Record every successful solve in the history database")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = cfg.Addr
	}

	var opts []service.Option
	if serveSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		opts = append(opts, service.WithRecorder(storage.NewSolveRepository(db, version)))
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	e := server.New(newService(opts...), logger, level, version)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("listening", "addr", addr)
	if err := server.Run(ctx, e, addr, 5*time.Second); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
