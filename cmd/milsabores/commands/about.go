package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"milsabores/internal/about"
)

func aboutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Print the \"Nosotros\" page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := about.Content()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n", page.Title, page.Subtitle)
			for _, s := range page.Sections {
				fmt.Fprintf(out, "\n%s\n%s\n", s.Title, s.Body)
			}
			return nil
		},
	}
}
