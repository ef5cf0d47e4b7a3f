package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

func newEventsCmd(open Opener) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List the most recent catalog events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, open, func(ctx context.Context, store Store) error {
				list, err := store.ListEvents(ctx, limit)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "AT\tKIND\tSUBJECT\tACTOR\tDUE BACK")
				for _, e := range list {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						e.At.Format(time.RFC3339), e.Kind, subject(e), e.Actor, model.FormatDate(e.DueBack))
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of events")
	return cmd
}

func subject(e model.Event) string {
	switch {
	case e.InstanceID != nil:
		return "copy " + e.InstanceID.String()
	case e.AuthorID != nil:
		return fmt.Sprintf("author %d", *e.AuthorID)
	default:
		return "-"
	}
}
