package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Astemirdum/library-catalog/catalog/internal/service"
)

func newSeedCmd(open Opener) *cobra.Command {
	req := service.SeedRequest{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the catalog with random sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, open, func(ctx context.Context, store Store) error {
				res, err := store.Seed(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d authors, %d genres, %d books, %d copies\n",
					res.Authors, res.Genres, res.Books, res.Instances)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&req.Authors, "authors", 5, "number of authors")
	cmd.Flags().IntVar(&req.Genres, "genres", 3, "number of genres")
	cmd.Flags().IntVar(&req.Books, "books", 20, "number of books")
	cmd.Flags().IntVar(&req.CopiesPerBook, "copies", 2, "copies per book")
	cmd.Flags().StringVar(&req.Borrower, "borrower", "", "username that borrows the copies seeded as on loan")
	return cmd
}
