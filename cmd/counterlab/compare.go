package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"counterlab/internal/compare"
)

func newCompareCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Print the object-style vs hook-style comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if width <= 0 {
				width = stdoutWidth()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), compare.Render(width))
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Wrap to this many columns (default: $COLUMNS or natural width)")
	return cmd
}
