package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

func newGrantCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "grant <username> <permission>...",
		Short: "Grant permissions to a user",
		Long:  fmt.Sprintf("Grants permission codenames to a user. Known codenames: %v", model.AllPermissions),
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			perms := make([]model.Permission, 0, len(args)-1)
			for _, a := range args[1:] {
				perms = append(perms, model.Permission(a))
			}
			return withStore(cmd, open, func(ctx context.Context, store Store) error {
				if err := store.GrantPermissions(ctx, args[0], perms...); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "granted %d permission(s) to %s\n", len(perms), args[0])
				return nil
			})
		},
	}
}
