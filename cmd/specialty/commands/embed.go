package commands

import (
	"fmt"

	"specialty-match/internal/seed"

	"github.com/spf13/cobra"
)

// NewEmbedCmd creates the embed command
func NewEmbedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "embed",
		Short: "Embed the specialty list and store it",
		Long: `Embed every label of the specialty list, write the embeddings to a .npy
file and insert one row per label into the specialties table.

The built-in list of law specialties is used unless ingest.seed_path names a
JSON file holding an array of labels. The first failing insert aborts the run.

Examples:
  specialty embed
  specialty embed --config ./configs/config.json`,
		Args: cobra.NoArgs,
		RunE: runEmbed,
	}
}

func runEmbed(cmd *cobra.Command, args []string) error {
	labels, err := seed.Load(app.seedPath)
	if err != nil {
		return err
	}

	result, err := app.ingest.Ingest(cmd.Context(), labels)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d specialties (%d dimensions)\n", result.Count, result.Dimensions)
	if result.OutputPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Embeddings written to %s\n", result.OutputPath)
	}
	return nil
}
