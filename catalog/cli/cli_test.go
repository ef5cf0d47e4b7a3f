package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-catalog/catalog/cli"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
)

type fakeStore struct {
	created []model.CreateUserRequest
	granted map[string][]model.Permission
	seeded  []service.SeedRequest
	events  []model.Event
	closed  bool
}

func (s *fakeStore) CreateUser(_ context.Context, req model.CreateUserRequest) (model.User, error) {
	s.created = append(s.created, req)
	return model.User{ID: len(s.created), Username: req.Username}, nil
}

func (s *fakeStore) GrantPermissions(_ context.Context, username string, perms ...model.Permission) error {
	for _, p := range perms {
		if !p.IsValid() {
			return errors.Errorf("unknown permission %q", p)
		}
	}
	if s.granted == nil {
		s.granted = map[string][]model.Permission{}
	}
	s.granted[username] = append(s.granted[username], perms...)
	return nil
}

func (s *fakeStore) Seed(_ context.Context, req service.SeedRequest) (service.SeedResult, error) {
	s.seeded = append(s.seeded, req)
	return service.SeedResult{
		Authors: req.Authors, Genres: req.Genres, Books: req.Books, Instances: req.Books * req.CopiesPerBook,
	}, nil
}

func (s *fakeStore) ListEvents(_ context.Context, limit int) ([]model.Event, error) {
	if limit < len(s.events) {
		return s.events[:limit], nil
	}
	return s.events, nil
}

func (s *fakeStore) Close() { s.closed = true }

func run(t *testing.T, store *fakeStore, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd(func(context.Context) (cli.Store, error) { return store, nil })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCreateUser(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	out, err := run(t, store, "", "createuser", "librarian", "--password", "long-enough", "--email", "lib@example.com")
	require.NoError(t, err)
	require.Contains(t, out, "created user librarian (id 1)")
	require.Equal(t, "lib@example.com", store.created[0].Email)
	require.False(t, store.created[0].IsSuperuser)
	require.True(t, store.closed)
}

func TestCreateUser_PasswordFromStdin(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	_, err := run(t, store, "typed-secret\n", "createuser", "admin", "--superuser")
	require.NoError(t, err)
	require.Equal(t, "typed-secret", store.created[0].Password)
	require.True(t, store.created[0].IsSuperuser)
}

func TestCreateUser_PasswordKeepsSpaces(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	_, err := run(t, store, "  spaced secret  \r\n", "createuser", "admin")
	require.NoError(t, err)
	require.Equal(t, "  spaced secret  ", store.created[0].Password)
}

func TestCreateUser_ShortPassword(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	_, err := run(t, store, "", "createuser", "admin", "--password", "short")
	require.Error(t, err)
	require.Empty(t, store.created)
}

func TestGrant(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	out, err := run(t, store, "", "grant", "librarian", "catalog.view_list_on_loan", "catalog.can_mark_returned")
	require.NoError(t, err)
	require.Contains(t, out, "granted 2 permission(s) to librarian")
	require.Equal(t, []model.Permission{model.PermViewListOnLoan, model.PermCanMarkReturned}, store.granted["librarian"])

	_, err = run(t, store, "", "grant", "librarian", "catalog.fly")
	require.Error(t, err)

	_, err = run(t, store, "", "grant", "librarian")
	require.Error(t, err)
}

func TestSeed(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	out, err := run(t, store, "", "seed", "--books", "4", "--copies", "3")
	require.NoError(t, err)
	require.Contains(t, out, "seeded 5 authors, 3 genres, 4 books, 12 copies")
	require.Equal(t, service.SeedRequest{Authors: 5, Genres: 3, Books: 4, CopiesPerBook: 3}, store.seeded[0])
}

func TestEvents(t *testing.T) {
	t.Parallel()
	id := uuid.MustParse("6f4e8b8e-3b1e-4f35-9d8e-7c9f3a4a2b10")
	authorID := 7
	due := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{events: []model.Event{
		{Kind: model.EventRenewed, InstanceID: &id, Actor: "librarian", DueBack: &due, At: due.AddDate(0, 0, -7)},
		{Kind: model.EventAuthorDeleted, AuthorID: &authorID, Actor: "editor", At: due.AddDate(0, 0, -8)},
	}}
	out, err := run(t, store, "", "events", "--limit", "5")
	require.NoError(t, err)
	require.Contains(t, out, "KIND")
	require.Contains(t, out, "copy "+id.String())
	require.Contains(t, out, "2023-02-01")
	require.Contains(t, out, "author 7")

	out, err = run(t, store, "", "events", "--limit", "1")
	require.NoError(t, err)
	require.NotContains(t, out, "author 7")
}
