package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"milsabores/internal/domain"
)

func registerCmd(e *env) *cobra.Command {
	var nu domain.NewUser
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if nu.Password == "" {
				pw, err := readPassword(cmd, "Contraseña")
				if err != nil {
					return err
				}
				nu.Password = pw
			}

			user, err := e.wire.Auth.Register(cmd.Context(), nu)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Registered %s (id %d)\n",
				user.FirstName, user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&nu.FirstName, "nombre", "", "first name")
	cmd.Flags().StringVar(&nu.LastName, "apellido", "", "last name")
	cmd.Flags().StringVar(&nu.Email, "email", "", "email address")
	cmd.Flags().StringVar(&nu.Password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
