// Package commands implements the specialty command line tool.
package commands

import (
	"context"
	"fmt"
	"os"

	"specialty-match/internal/bootstrap"
	"specialty-match/internal/config"
	"specialty-match/internal/domain"
	"specialty-match/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// services is what the subcommands run against.
type services struct {
	ingest      domain.IngestService
	match       domain.MatchService
	specialties domain.SpecialtyService
	seedPath    string
}

var (
	configPath string
	app        *services
	container  *bootstrap.Container
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specialty",
		Short: "Embed and match legal specialties",
		Long: `specialty builds embeddings for legal specialty labels, stores them in
Supabase (or Postgres with pgvector) and ranks stored specialties by cosine similarity.

Configuration is read from config.json in the parent directory, the working
directory or ./configs. Use --config to point at another file.

Examples:
  specialty embed
  specialty match "Tax Law" --top 10
  specialty search tax
  specialty reindex`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json")

	cmd.AddCommand(NewEmbedCmd())
	cmd.AddCommand(NewMatchCmd())
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewReindexCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return execute(NewRootCmd())
}

// execute releases the container and flushes the logger whether or not cmd failed.
func execute(cmd *cobra.Command) (err error) {
	defer func() {
		if closeErr := teardown(); err == nil {
			err = closeErr
		}
	}()
	return cmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	if app != nil {
		return nil
	}

	_ = godotenv.Load()

	path := configPath
	if path == "" {
		path = os.Getenv("SPECIALTY_CONFIG")
	}
	cfg, err := config.LoadConfigFrom(path)
	if err != nil {
		return err
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	log := logger.Get()

	if cfg.Store.Driver == config.StoreDriverPostgREST {
		role, err := cfg.ServiceKeyRole()
		if err != nil {
			log.Warn("Could not read role from service key", zap.Error(err))
		} else if role != "service_role" {
			log.Warn("Service key is not a service_role key, inserts may be rejected by row level security",
				zap.String("role", role))
		}
	}

	c, err := bootstrap.New(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	container = c
	app = &services{
		ingest:      c.Ingest,
		match:       c.Match,
		specialties: c.Specialties,
		seedPath:    cfg.Ingest.SeedPath,
	}
	return nil
}

func teardown() error {
	if container == nil {
		return nil
	}
	err := container.Close()
	_ = logger.Sync()
	container = nil
	app = nil
	return err
}
