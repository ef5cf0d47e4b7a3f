package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

const (
	authorFormTemplate   = "author_form.html"
	initialDateOfDeath   = "11/06/2020"
	authorsURL           = "/authors/"
	authorDeleteTemplate = "author_confirm_delete.html"
)

func (h *Handler) AuthorCreateForm(c echo.Context) error {
	return h.render(c, http.StatusOK, authorFormTemplate, echo.Map{
		"Form":   model.AuthorForm{DateOfDeath: initialDateOfDeath},
		"Errors": model.FormErrors{},
	})
}

func (h *Handler) AuthorCreate(c echo.Context) error {
	var form model.AuthorForm
	author, fe, err := h.bindAuthor(c, &form)
	if err != nil {
		return err
	}
	if fe.Any() {
		return h.render(c, http.StatusOK, authorFormTemplate, echo.Map{"Form": form, "Errors": fe})
	}

	user, _ := currentUser(c)
	created, err := h.svc.CreateAuthor(c.Request().Context(), user.Username, author)
	if err != nil {
		return h.httpError(err)
	}
	return c.Redirect(http.StatusFound, created.URL())
}

func (h *Handler) AuthorUpdateForm(c echo.Context) error {
	author, err := h.author(c)
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, authorFormTemplate, echo.Map{
		"Author": &author,
		"Form":   model.AuthorFormFrom(author),
		"Errors": model.FormErrors{},
	})
}

func (h *Handler) AuthorUpdate(c echo.Context) error {
	current, err := h.author(c)
	if err != nil {
		return err
	}
	var form model.AuthorForm
	author, fe, err := h.bindAuthor(c, &form)
	if err != nil {
		return err
	}
	if fe.Any() {
		return h.render(c, http.StatusOK, authorFormTemplate, echo.Map{"Author": &current, "Form": form, "Errors": fe})
	}

	author.ID = current.ID
	user, _ := currentUser(c)
	updated, err := h.svc.UpdateAuthor(c.Request().Context(), user.Username, author)
	if err != nil {
		return h.httpError(err)
	}
	return c.Redirect(http.StatusFound, updated.URL())
}

func (h *Handler) AuthorDeleteForm(c echo.Context) error {
	author, err := h.author(c)
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, authorDeleteTemplate, echo.Map{"Author": &author})
}

func (h *Handler) AuthorDelete(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	user, _ := currentUser(c)
	if err := h.svc.DeleteAuthor(c.Request().Context(), user.Username, id); err != nil {
		return h.httpError(err)
	}
	return c.Redirect(http.StatusFound, authorsURL)
}

func (h *Handler) author(c echo.Context) (model.Author, error) {
	id, err := intParam(c, "id")
	if err != nil {
		return model.Author{}, err
	}
	author, err := h.svc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return model.Author{}, h.httpError(err)
	}
	return author, nil
}

func (h *Handler) bindAuthor(c echo.Context, form *model.AuthorForm) (model.Author, model.FormErrors, error) {
	fe, err := h.bindForm(c, form)
	if err != nil {
		return model.Author{}, nil, err
	}
	author, dateErrs := form.Author()
	for field, msg := range dateErrs {
		fe.Add(field, msg)
	}
	return author, fe, nil
}
