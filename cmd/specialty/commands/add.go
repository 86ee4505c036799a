package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Embed and store a single specialty",
		Long: `Embed one specialty name and insert it into the specialties table.

Examples:
  specialty add "Space Law"`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := app.specialties.Add(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %q (id %d)\n", s.Name, s.ID)
	return nil
}
