package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"specialty-match/internal/domain"
)

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}

func printSpecialties(w io.Writer, specialties []*domain.Specialty) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\n")
	for _, s := range specialties {
		fmt.Fprintf(tw, "%d\t%s\n", s.ID, s.Name)
	}
	tw.Flush()
}
