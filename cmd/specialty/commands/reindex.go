package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewReindexCmd creates the reindex command
func NewReindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Copy stored specialties into the vector index",
		Long: `Load every stored specialty with its embedding and upsert it into the
configured vector index. Run it once after enabling index.driver=qdrant on a
table that was filled without the index.

Examples:
  specialty reindex`,
		Args: cobra.NoArgs,
		RunE: runReindex,
	}
}

func runReindex(cmd *cobra.Command, args []string) error {
	count, err := app.ingest.Reindex(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d specialties\n", count)
	return nil
}
