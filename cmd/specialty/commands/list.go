package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored specialties",
		Long: `List the id and name of every stored specialty in store order.

Examples:
  specialty list`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	results, err := app.specialties.List(cmd.Context())
	if err != nil {
		return err
	}

	printSpecialties(cmd.OutOrStdout(), results)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d specialties\n", len(results))
	return nil
}
