package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
)

// Store is what the commands need from the catalog.
type Store interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	GrantPermissions(ctx context.Context, username string, perms ...model.Permission) error
	Seed(ctx context.Context, req service.SeedRequest) (service.SeedResult, error)
	ListEvents(ctx context.Context, limit int) ([]model.Event, error)
	Close()
}

type Opener func(ctx context.Context) (Store, error)

func NewRootCmd(open Opener) *cobra.Command {
	root := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Administer the library catalog",
		SilenceUsage: true,
	}
	root.AddCommand(
		newCreateUserCmd(open),
		newGrantCmd(open),
		newSeedCmd(open),
		newEventsCmd(open),
	)
	return root
}

// withStore opens the catalog for the duration of one command.
func withStore(cmd *cobra.Command, open Opener, fn func(ctx context.Context, store Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := open(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(ctx, store)
}
