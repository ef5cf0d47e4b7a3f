package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

func TestHandler_LoginForm(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	rec := f.serve(httptest.NewRequest(http.MethodGet, "/accounts/login/?next=%2Fmybooks%2F", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Please login to see this page.")
	require.Contains(t, rec.Body.String(), `name="next" value="/mybooks/"`)
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		next         string
		wantLocation string
	}{
		{name: "no next", wantLocation: "/"},
		{name: "local next", next: "/mybooks/?page=2", wantLocation: "/mybooks/?page=2"},
		{name: "absolute next", next: "https://evil.example/", wantLocation: "/"},
		{name: "scheme relative next", next: "//evil.example/", wantLocation: "/"},
		{name: "relative next", next: "mybooks/", wantLocation: "/"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.svc.EXPECT().Authenticate(gomock.Any(), "reader", "secret-pass").Return(reader, nil)

			rec := f.serve(postForm("/accounts/login/", url.Values{
				"username": {"reader"},
				"password": {"secret-pass"},
				"next":     {tt.next},
			}))
			require.Equal(t, http.StatusFound, rec.Code)
			require.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))

			res := rec.Result()
			defer res.Body.Close()
			var token string
			for _, c := range res.Cookies() {
				if c.Name == auth.CookieName {
					token = c.Value
					require.True(t, c.HttpOnly)
				}
			}
			claims, err := f.issuer.Parse(token)
			require.NoError(t, err)
			id, err := claims.UserID()
			require.NoError(t, err)
			require.Equal(t, reader.ID, id)
			require.Equal(t, reader.Username, claims.Username)
		})
	}
}

func TestHandler_LoginRejected(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.svc.EXPECT().Authenticate(gomock.Any(), "reader", "wrong").Return(model.User{}, errs.ErrInvalidCredentials)

	rec := f.serve(postForm("/accounts/login/", url.Values{"username": {"reader"}, "password": {"wrong"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Please enter a correct username and password.")
	require.Empty(t, rec.Header().Get(echo.HeaderSetCookie))

	rec = f.serve(postForm("/accounts/login/", url.Values{"username": {"reader"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "This field is required.")
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	req := postForm("/accounts/logout/", nil)
	f.login(t, req, reader)
	rec := f.serve(req)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	require.Contains(t, rec.Header().Get(echo.HeaderSetCookie), auth.CookieName+"=;")
	require.Contains(t, rec.Header().Get(echo.HeaderSetCookie), "Max-Age=0")
}
