package commands

import (
	"fmt"
	"io"

	"specialty-match/internal/domain"
	"specialty-match/internal/service"

	"github.com/spf13/cobra"
)

var matchTop int

// NewMatchCmd creates the match command
func NewMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <label>",
		Short: "Find the specialties most similar to a stored one",
		Long: `Rank every stored specialty by cosine similarity to the embedding of a
stored specialty and print the closest ones. The query label itself is never
part of the result.

Examples:
  specialty match "Tax Law"
  specialty match --top 10 "International Law"`,
		Args: cobra.ExactArgs(1),
		RunE: runMatch,
	}

	cmd.Flags().IntVarP(&matchTop, "top", "k", service.DefaultTopK, "Number of matches to return")

	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(matchTop, "top"); err != nil {
		return err
	}

	matches, err := app.match.FindSimilar(cmd.Context(), args[0], matchTop)
	if err != nil {
		return err
	}

	printMatches(cmd.OutOrStdout(), matchTop, matches)
	return nil
}

func printMatches(w io.Writer, k int, matches []domain.Match) {
	fmt.Fprintf(w, "Top %d most similar specialties:\n", k)
	for _, m := range matches {
		fmt.Fprintf(w, "%s: %.4f\n", m.Name, m.Score)
	}
}
