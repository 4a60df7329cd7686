package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"milsabores/internal/domain"
	"milsabores/internal/services/profile"
)

func photoCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo",
		Short: "Manage the profile photo",
	}
	cmd.AddCommand(photoShowCmd(e), photoSetCmd(e), photoImportCmd(e))
	return cmd
}

func photoShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the photo locator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := currentUser(e, cmd)
			if err != nil {
				return userError(err)
			}
			loc, ok, err := e.wire.Profile.LoadPhotoForUser(cmd.Context(), user.Username())
			if err != nil {
				return userError(err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no photo")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc)
			return nil
		},
	}
}

func photoSetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "set [locator]",
		Short: "Record an existing image locator as the photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := currentUser(e, cmd)
			if err != nil {
				return userError(err)
			}
			loc := domain.PhotoLocator(args[0])
			if err := e.wire.Profile.SavePhotoForUser(cmd.Context(), user.Username(), loc); err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Photo updated")
			return nil
		},
	}
}

func photoImportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import [path]",
		Short: "Copy an image into the store and use it as the photo",
		Long:  "Copy an image into the store and use it as the photo. Without a path the import is treated as cancelled.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := currentUser(e, cmd)
			if err != nil {
				return userError(err)
			}
			var src profile.FileSource
			if len(args) == 1 {
				src.Path = args[0]
			}

			res, err := e.wire.Profile.ImportPhoto(cmd.Context(), user.Username(), src)
			if err != nil {
				return userError(err)
			}
			if res.Status == domain.PhotoCancelled {
				fmt.Fprintln(cmd.OutOrStdout(), "Photo unchanged")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Locator)
			return nil
		},
	}
}
