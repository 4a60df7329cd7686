package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"milsabores/internal/domain"
)

func profileCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := currentUser(e, cmd)
			if err != nil {
				return userError(err)
			}
			photo, ok, err := e.wire.Profile.LoadPhotoForUser(ctx, user.Username())
			if err != nil {
				return userError(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Nombre: %s %s\n", user.FirstName, user.LastName)
			fmt.Fprintf(out, "Correo: %s\n", user.Email)
			fmt.Fprintf(out, "Rol:    %s\n", user.Role)
			if ok {
				fmt.Fprintf(out, "Foto:   %s\n", photo)
			} else {
				fmt.Fprintln(out, "Foto:   (none)")
			}
			return nil
		},
	}
}

// currentUser resolves the session to a stored user.
func currentUser(e *env, cmd *cobra.Command) (domain.User, error) {
	user, ok, err := e.wire.Auth.CurrentUser(cmd.Context())
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		return domain.User{}, domain.ErrNotLoggedIn
	}
	return user, nil
}
