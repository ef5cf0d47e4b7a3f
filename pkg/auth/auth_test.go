package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-catalog/pkg/auth"
)

func TestIssuer_RoundTrip(t *testing.T) {
	t.Parallel()
	iss := auth.NewIssuer("secret", time.Hour)
	token, err := iss.Issue(42, "librarian", time.Now())
	require.NoError(t, err)

	claims, err := iss.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "librarian", claims.Username)
	id, err := claims.UserID()
	require.NoError(t, err)
	require.Equal(t, 42, id)
}

func TestIssuer_Parse(t *testing.T) {
	t.Parallel()
	iss := auth.NewIssuer("secret", time.Hour)
	expired, err := iss.Issue(1, "reader", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	foreign, err := auth.NewIssuer("other", time.Hour).Issue(1, "reader", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "expired", token: expired, want: auth.ErrTokenExpired},
		{name: "wrong key", token: foreign, want: auth.ErrTokenInvalid},
		{name: "garbage", token: "not-a-token", want: auth.ErrTokenInvalid},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := iss.Parse(tt.token)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestContext(t *testing.T) {
	ctx := auth.SetAuthContext(context.Background(), 7)
	got, err := auth.FromContext[int](ctx)
	require.NoError(t, err)
	require.Equal(t, 7, got)

	_, err = auth.FromContext[string](ctx)
	require.ErrorIs(t, err, auth.ErrNoUser)
}
