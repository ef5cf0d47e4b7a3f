package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const sessionCookieName = "sessionid"

func (h *Handler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.svc.HomeStats(ctx)
	if err != nil {
		return h.httpError(err)
	}

	var key string
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		key = cookie.Value
	}
	sess, err := h.svc.Visit(ctx, key)
	if err != nil {
		return h.httpError(err)
	}
	age := h.svc.SessionAge()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.Key.String(),
		Path:     "/",
		MaxAge:   int(age.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return h.render(c, http.StatusOK, "index.html", echo.Map{
		"Stats":      stats,
		"NumVisits":  sess.Visits,
		"SessionAge": age,
	})
}

func (h *Handler) ListBooks(c echo.Context) error {
	list, err := h.svc.ListBooks(c.Request().Context(), c.QueryParam("page"))
	if err != nil {
		return h.httpError(err)
	}
	return h.render(c, http.StatusOK, "book_list.html", echo.Map{"List": list})
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.svc.GetBookDetail(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return h.render(c, http.StatusOK, "book_detail.html", echo.Map{"Detail": detail})
}

func (h *Handler) ListAuthors(c echo.Context) error {
	list, err := h.svc.ListAuthors(c.Request().Context(), c.QueryParam("page"))
	if err != nil {
		return h.httpError(err)
	}
	return h.render(c, http.StatusOK, "author_list.html", echo.Map{"List": list})
}

func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.svc.GetAuthorDetail(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return h.render(c, http.StatusOK, "author_detail.html", echo.Map{"Detail": detail})
}
