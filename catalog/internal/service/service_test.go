package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	repo_mocks "github.com/Astemirdum/library-catalog/catalog/internal/repository/mocks"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
)

var now = time.Date(2023, 1, 10, 15, 30, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e model.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func newService(t *testing.T) (*service.Service, *repo_mocks.MockRepository, *recordingPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(ctrl)
	pub := &recordingPublisher{}
	svc := service.NewService(repo, pub, zap.NewNop(),
		service.WithClock(func() time.Time { return now }),
	)
	return svc, repo, pub
}

func TestValidateRenewal(t *testing.T) {
	t.Parallel()
	today := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		due     time.Time
		wantErr error
	}{
		{name: "yesterday", due: today.AddDate(0, 0, -1), wantErr: errs.ErrRenewalInPast},
		{name: "today", due: today},
		{name: "three weeks", due: today.AddDate(0, 0, 21)},
		{name: "27 days", due: today.AddDate(0, 0, 27)},
		{name: "28 days", due: today.AddDate(0, 0, 28)},
		{name: "29 days", due: today.AddDate(0, 0, 29), wantErr: errs.ErrRenewalTooFar},
		{name: "a year", due: today.AddDate(1, 0, 0), wantErr: errs.ErrRenewalTooFar},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := service.ValidateRenewal(tt.due, now)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_ProposedRenewalDate(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)
	require.Equal(t, time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), svc.ProposedRenewalDate())
	require.Equal(t, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), svc.Today())
}

func TestService_ListBooks(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().CountBooks(ctx).Return(13, nil).Times(3)
	repo.EXPECT().ListBooks(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p model.Paging) ([]model.Book, error) {
		require.Equal(t, uint64(10), p.Offset())
		require.Equal(t, uint64(10), p.Limit())
		return []model.Book{{ID: 11}, {ID: 12}, {ID: 13}}, nil
	}).Times(2)

	list, err := svc.ListBooks(ctx, "2")
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	require.Equal(t, 2, list.NumPages)
	require.True(t, list.HasPrevious())
	require.False(t, list.HasNext())

	list, err = svc.ListBooks(ctx, "last")
	require.NoError(t, err)
	require.Equal(t, 2, list.Page)

	_, err = svc.ListBooks(ctx, "3")
	require.ErrorIs(t, err, errs.ErrInvalidPage)
}

func TestService_ListAuthors(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)
	ctx := context.Background()

	repo.EXPECT().CountAuthors(ctx).Return(13, nil).Times(2)
	repo.EXPECT().ListAuthors(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p model.Paging) ([]model.Author, error) {
		require.Equal(t, uint64(10), p.Offset())
		require.Equal(t, uint64(10), p.Limit())
		return []model.Author{{ID: 11}, {ID: 12}, {ID: 13}}, nil
	})

	list, err := svc.ListAuthors(ctx, "2")
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	require.Equal(t, 2, list.Page)
	require.Equal(t, 13, list.TotalElements)
	require.True(t, list.IsPaginated())

	_, err = svc.ListAuthors(ctx, "3")
	require.ErrorIs(t, err, errs.ErrInvalidPage)
}

func TestService_ListOnLoan(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)
	ctx := context.Background()
	want := repository.InstanceFilter{Status: model.StatusOnLoan, DueBackDesc: true}

	repo.EXPECT().CountInstances(ctx, want).Return(0, nil)
	repo.EXPECT().ListInstances(ctx, want, gomock.Any()).Return(nil, nil)

	list, err := svc.ListOnLoan(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 1, list.NumPages)
	require.False(t, list.IsPaginated())
}

func TestService_ListBorrowed(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)
	ctx := context.Background()
	userID := 5
	want := repository.InstanceFilter{Status: model.StatusOnLoan, BorrowerID: &userID}

	repo.EXPECT().CountInstances(ctx, want).Return(1, nil)
	repo.EXPECT().ListInstances(ctx, want, gomock.Any()).Return([]model.BookInstance{{BorrowerID: &userID}}, nil)

	list, err := svc.ListBorrowed(ctx, userID, "1")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
}

func TestService_HomeStats(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)

	repo.EXPECT().CountBooks(gomock.Any()).Return(4, nil)
	repo.EXPECT().CountAuthors(gomock.Any()).Return(2, nil)
	repo.EXPECT().CountInstances(gomock.Any(), repository.InstanceFilter{}).Return(9, nil)
	repo.EXPECT().CountInstances(gomock.Any(), repository.InstanceFilter{Status: model.StatusAvailable}).Return(3, nil)

	st, err := svc.HomeStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.HomeStats{NumBooks: 4, NumInstances: 9, NumInstancesAvailable: 3, NumAuthors: 2}, st)
}

func TestService_Visit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("new session", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil)

		sess, err := svc.Visit(ctx, "")
		require.NoError(t, err)
		require.Equal(t, 1, sess.Visits)
		require.NotEqual(t, uuid.Nil, sess.Key)
		require.Equal(t, now.Add(service.DefaultSessionAge), sess.ExpiresAt)
	})

	t.Run("returning visitor", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		key := uuid.New()
		repo.EXPECT().GetSession(ctx, key).Return(model.Session{Key: key, Visits: 4}, nil)
		repo.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil)

		sess, err := svc.Visit(ctx, key.String())
		require.NoError(t, err)
		require.Equal(t, key, sess.Key)
		require.Equal(t, 5, sess.Visits)
	})

	t.Run("expired session", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		key := uuid.New()
		repo.EXPECT().GetSession(ctx, key).Return(model.Session{}, errs.ErrNotFound)
		repo.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil)

		sess, err := svc.Visit(ctx, key.String())
		require.NoError(t, err)
		require.NotEqual(t, key, sess.Key)
		require.Equal(t, 1, sess.Visits)
	})
}

func TestService_RenewBookInstance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := uuid.New()

	t.Run("persisted and published", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newService(t)
		due := time.Date(2023, 2, 7, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().UpdateDueBack(ctx, id, due).Return(nil)

		require.NoError(t, svc.RenewBookInstance(ctx, "librarian", id, due))
		require.Len(t, pub.events, 1)
		require.Equal(t, model.EventRenewed, pub.events[0].Kind)
		require.Equal(t, "librarian", pub.events[0].Actor)
		require.Equal(t, due, *pub.events[0].DueBack)
		require.Equal(t, now, pub.events[0].At)
	})

	t.Run("rejected dates never reach the store", func(t *testing.T) {
		t.Parallel()
		svc, _, pub := newService(t)
		err := svc.RenewBookInstance(ctx, "librarian", id, time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, errs.ErrRenewalInPast)
		err = svc.RenewBookInstance(ctx, "librarian", id, time.Date(2023, 2, 8, 0, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, errs.ErrRenewalTooFar)
		require.Empty(t, pub.events)
	})

	t.Run("publish failure is not fatal", func(t *testing.T) {
		t.Parallel()
		svc, repo, pub := newService(t)
		pub.err = errors.New("broker down")
		due := time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().UpdateDueBack(ctx, id, due).Return(nil)
		require.NoError(t, svc.RenewBookInstance(ctx, "librarian", id, due))
	})
}

func TestService_CheckoutBookInstance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := uuid.New()
	due := time.Date(2023, 1, 24, 0, 0, 0, 0, time.UTC)

	svc, repo, pub := newService(t)
	repo.EXPECT().GetUserByUsername(ctx, "ghost").Return(model.User{}, errs.ErrNotFound)
	repo.EXPECT().GetUserByUsername(ctx, "retired").Return(model.User{ID: 8, Username: "retired"}, nil)
	repo.EXPECT().GetUserByUsername(ctx, "reader").Return(model.User{ID: 9, Username: "reader", IsActive: true}, nil).Times(2)
	repo.EXPECT().Checkout(ctx, id, 9, due).Return(nil)
	repo.EXPECT().Checkout(ctx, id, 9, due).Return(errs.ErrNotAvailable)

	require.ErrorIs(t, svc.CheckoutBookInstance(ctx, "librarian", id, "ghost", due), errs.ErrNotFound)
	require.ErrorIs(t, svc.CheckoutBookInstance(ctx, "librarian", id, "retired", due), errs.ErrNotFound)
	require.NoError(t, svc.CheckoutBookInstance(ctx, "librarian", id, "reader", due))
	require.ErrorIs(t, svc.CheckoutBookInstance(ctx, "librarian", id, "reader", due), errs.ErrNotAvailable)
	require.Len(t, pub.events, 1)
	require.Equal(t, model.EventCheckedOut, pub.events[0].Kind)
}

func TestService_ReturnBookInstance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := uuid.New()
	svc, repo, pub := newService(t)
	repo.EXPECT().Return(ctx, id).Return(errs.ErrNotOnLoan)
	repo.EXPECT().Return(ctx, id).Return(nil)

	require.ErrorIs(t, svc.ReturnBookInstance(ctx, "librarian", id), errs.ErrNotOnLoan)
	require.NoError(t, svc.ReturnBookInstance(ctx, "librarian", id))
	require.Len(t, pub.events, 1)
	require.Equal(t, model.EventReturned, pub.events[0].Kind)
}

func TestService_Authors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo, pub := newService(t)

	repo.EXPECT().CreateAuthor(ctx, model.Author{FirstName: "Ann", LastName: "Leckie"}).
		Return(model.Author{ID: 3, FirstName: "Ann", LastName: "Leckie"}, nil)
	repo.EXPECT().DeleteAuthor(ctx, 3).Return(nil)
	repo.EXPECT().DeleteAuthor(ctx, 4).Return(errs.ErrNotFound)

	a, err := svc.CreateAuthor(ctx, "editor", model.Author{FirstName: "Ann", LastName: "Leckie"})
	require.NoError(t, err)
	require.Equal(t, "/author/3", a.URL())
	require.NoError(t, svc.DeleteAuthor(ctx, "editor", 3))
	require.ErrorIs(t, svc.DeleteAuthor(ctx, "editor", 4), errs.ErrNotFound)

	require.Len(t, pub.events, 2)
	require.Equal(t, model.EventAuthorCreated, pub.events[0].Kind)
	require.Equal(t, model.EventAuthorDeleted, pub.events[1].Kind)
	require.Equal(t, 3, *pub.events[1].AuthorID)
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, repo, _ := newService(t)
	repo.EXPECT().GetUserByUsername(ctx, "reader").
		Return(model.User{ID: 1, Username: "reader", PasswordHash: string(hash), IsActive: true}, nil).Times(2)
	repo.EXPECT().GetUserByUsername(ctx, "retired").
		Return(model.User{ID: 2, Username: "retired", PasswordHash: string(hash)}, nil)
	repo.EXPECT().GetUserByUsername(ctx, "ghost").Return(model.User{}, errs.ErrNotFound)

	user, err := svc.Authenticate(ctx, "reader", "secret-pass")
	require.NoError(t, err)
	require.Equal(t, 1, user.ID)

	_, err = svc.Authenticate(ctx, "reader", "wrong")
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "retired", "secret-pass")
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "ghost", "secret-pass")
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestService_GrantPermissions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo, _ := newService(t)

	require.Error(t, svc.GrantPermissions(ctx, "reader", "catalog.fly"))

	repo.EXPECT().GetUserByUsername(ctx, "reader").Return(model.User{ID: 1, Username: "reader"}, nil)
	repo.EXPECT().GrantPermissions(ctx, 1, model.PermViewListOnLoan, model.PermCanMarkReturned).Return(nil)
	require.NoError(t, svc.GrantPermissions(ctx, "reader", model.PermViewListOnLoan, model.PermCanMarkReturned))
}

func TestService_Seed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo, _ := newService(t)

	repo.EXPECT().CreateAuthor(ctx, gomock.Any()).Return(model.Author{ID: 1}, nil).Times(2)
	repo.EXPECT().CreateGenre(ctx, gomock.Any()).Return(model.Genre{ID: 1}, nil)
	repo.EXPECT().CreateBook(ctx, gomock.Any(), []int{1}).Return(model.Book{ID: 1}, nil).Times(3)
	repo.EXPECT().CreateInstance(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, bi model.BookInstance) (model.BookInstance, error) {
		require.True(t, bi.Status.IsValid())
		require.NotEqual(t, model.StatusOnLoan, bi.Status)
		require.Nil(t, bi.BorrowerID)
		require.Equal(t, 1, bi.BookID)
		return bi, nil
	}).Times(6)

	res, err := svc.Seed(ctx, service.SeedRequest{Authors: 2, Genres: 1, Books: 3, CopiesPerBook: 2})
	require.NoError(t, err)
	require.Equal(t, service.SeedResult{Authors: 2, Genres: 1, Books: 3, Instances: 6}, res)
}

func TestService_SeedWithBorrower(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo, _ := newService(t)

	repo.EXPECT().GetUserByUsername(ctx, "reader").Return(model.User{ID: 9, Username: "reader"}, nil)
	repo.EXPECT().CreateBook(ctx, gomock.Any(), gomock.Nil()).Return(model.Book{ID: 1}, nil)
	repo.EXPECT().CreateInstance(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, bi model.BookInstance) (model.BookInstance, error) {
		if bi.Status == model.StatusOnLoan {
			require.NotNil(t, bi.BorrowerID)
			require.Equal(t, 9, *bi.BorrowerID)
			require.NotNil(t, bi.DueBack)
		} else {
			require.Nil(t, bi.BorrowerID)
		}
		return bi, nil
	}).Times(40)

	res, err := svc.Seed(ctx, service.SeedRequest{Books: 1, CopiesPerBook: 40, Borrower: "reader"})
	require.NoError(t, err)
	require.Equal(t, 40, res.Instances)
}
