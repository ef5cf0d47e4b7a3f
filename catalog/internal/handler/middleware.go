package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

const loginURL = "/accounts/login/"

// Authenticate resolves the auth cookie into a user. Requests with a
// missing, invalid or stale token proceed anonymously.
func (h *Handler) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(auth.CookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}
		claims, err := h.issuer.Parse(cookie.Value)
		if err != nil {
			h.log.Debug("auth token rejected", zap.Error(err))
			return next(c)
		}
		id, err := claims.UserID()
		if err != nil {
			return next(c)
		}
		ctx := c.Request().Context()
		user, err := h.svc.GetUser(ctx, id)
		if err != nil {
			if !errors.Is(err, errs.ErrNotFound) {
				h.log.Warn("load user", zap.Int("id", id), zap.Error(err))
			}
			return next(c)
		}
		if !user.IsActive {
			return next(c)
		}
		c.SetRequest(c.Request().WithContext(auth.SetAuthContext(ctx, user)))
		return next(c)
	}
}

func currentUser(c echo.Context) (model.User, bool) {
	user, err := auth.FromContext[model.User](c.Request().Context())
	return user, err == nil
}

func redirectToLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, loginURL+"?next="+url.QueryEscape(c.Request().RequestURI))
}

func LoginRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := currentUser(c); !ok {
			return redirectToLogin(c)
		}
		return next(c)
	}
}

// PermissionRequired sends anonymous users to the login page and
// answers 403 to users lacking perm.
func PermissionRequired(perm model.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := currentUser(c)
			if !ok {
				return redirectToLogin(c)
			}
			if !user.HasPerm(perm) {
				return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to access this page.")
			}
			return next(c)
		}
	}
}
