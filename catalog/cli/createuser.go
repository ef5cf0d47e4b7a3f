package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/validate"
)

func newCreateUserCmd(open Opener) *cobra.Command {
	var req model.CreateUserRequest
	cmd := &cobra.Command{
		Use:   "createuser <username>",
		Short: "Create a catalog user",
		Long:  "Creates an active user. The password is prompted for unless --password is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Username = args[0]
			if req.Password == "" {
				pw, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
				if err != nil {
					return errors.Wrap(err, "read password")
				}
				req.Password = pw
			}
			if err := validate.NewCustomValidator().Validate(req); err != nil {
				return err
			}
			return withStore(cmd, open, func(ctx context.Context, store Store) error {
				user, err := store.CreateUser(ctx, req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id %d)\n", user.Username, user.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (prompted when empty)")
	cmd.Flags().BoolVar(&req.IsSuperuser, "superuser", false, "grant every permission")
	return cmd
}

// readPassword masks input on a terminal and reads a plain line otherwise.
func readPassword(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
