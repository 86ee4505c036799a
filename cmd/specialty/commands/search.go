package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <input>",
		Short: "Search specialty names",
		Long: `Search stored specialty names. Names starting with the input are listed
first, followed by names containing it. At most five results are returned.

Examples:
  specialty search tax
  specialty search "intellectual"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	results, err := app.specialties.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No specialties found for: %s\n", args[0])
		return nil
	}

	printSpecialties(cmd.OutOrStdout(), results)
	return nil
}
