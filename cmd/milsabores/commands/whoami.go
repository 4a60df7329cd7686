package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func whoamiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the logged-in email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, ok, err := e.wire.Auth.CurrentSessionEmail(cmd.Context())
			if err != nil {
				return userError(err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), email)
			return nil
		},
	}
}
