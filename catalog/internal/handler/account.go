package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

const (
	loginTemplate         = "login.html"
	msgInvalidCredentials = "Please enter a correct username and password. Note that both fields may be case-sensitive."
)

func (h *Handler) LoginForm(c echo.Context) error {
	return h.render(c, http.StatusOK, loginTemplate, echo.Map{
		"Form":   model.LoginForm{},
		"Next":   c.QueryParam("next"),
		"Errors": model.FormErrors{},
	})
}

func (h *Handler) Login(c echo.Context) error {
	var form model.LoginForm
	fe, err := h.bindForm(c, &form)
	if err != nil {
		return err
	}
	if fe.Any() {
		return h.renderLogin(c, form, fe)
	}

	user, err := h.svc.Authenticate(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			fe.Add(model.NonFieldErrors, msgInvalidCredentials)
			return h.renderLogin(c, form, fe)
		}
		return h.httpError(err)
	}

	token, err := h.issuer.Issue(user.ID, user.Username, h.now())
	if err != nil {
		return h.httpError(err)
	}
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.issuer.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, safeRedirect(form.Next))
}

func (h *Handler) renderLogin(c echo.Context, form model.LoginForm, fe model.FormErrors) error {
	form.Password = ""
	return h.render(c, http.StatusOK, loginTemplate, echo.Map{
		"Form":   form,
		"Next":   form.Next,
		"Errors": fe,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/")
}

// safeRedirect only follows local absolute paths.
func safeRedirect(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
