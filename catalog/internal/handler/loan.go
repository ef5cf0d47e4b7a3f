package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

const (
	loanedBooksURL   = "/bookinst-manage/"
	msgUnknownUser   = "No active user with that username."
	msgNotAvailable  = "Copy is not available"
	fieldDueBack     = "due_back"
	fieldBorrower    = "borrower"
	renewTemplate    = "book_renew_librarian.html"
	checkoutTemplate = "book_checkout.html"
)

func (h *Handler) ListBorrowed(c echo.Context) error {
	user, _ := currentUser(c)
	list, err := h.svc.ListBorrowed(c.Request().Context(), user.ID, c.QueryParam("page"))
	if err != nil {
		return h.httpError(err)
	}
	return h.render(c, http.StatusOK, "bookinstance_list_borrowed_user.html", echo.Map{
		"List": list,
		"Now":  h.svc.Today(),
	})
}

func (h *Handler) ListOnLoan(c echo.Context) error {
	list, err := h.svc.ListOnLoan(c.Request().Context(), c.QueryParam("page"))
	if err != nil {
		return h.httpError(err)
	}
	return h.render(c, http.StatusOK, "bookinstance_list_borrowed_all.html", echo.Map{
		"List": list,
		"Now":  h.svc.Today(),
	})
}

func (h *Handler) instance(c echo.Context) (model.BookInstance, error) {
	id, err := uuidParam(c, "id")
	if err != nil {
		return model.BookInstance{}, err
	}
	inst, err := h.svc.GetBookInstance(c.Request().Context(), id)
	if err != nil {
		return model.BookInstance{}, h.httpError(err)
	}
	return inst, nil
}

// parseDueBack reports a missing or malformed due date as a field error.
func parseDueBack(raw string, fe model.FormErrors) (time.Time, bool) {
	if raw == "" {
		fe.Add(fieldDueBack, model.MsgRequired)
		return time.Time{}, false
	}
	due, err := model.ParseDate(raw)
	if err != nil {
		fe.Add(fieldDueBack, err.Error())
		return time.Time{}, false
	}
	return due, true
}

func isRenewalErr(err error) bool {
	return errors.Is(err, errs.ErrRenewalInPast) || errors.Is(err, errs.ErrRenewalTooFar)
}

func (h *Handler) RenewForm(c echo.Context) error {
	inst, err := h.instance(c)
	if err != nil {
		return err
	}
	form := model.RenewForm{DueBack: h.svc.ProposedRenewalDate().Format(time.DateOnly)}
	return h.renderRenew(c, http.StatusOK, inst, form, model.FormErrors{})
}

func (h *Handler) Renew(c echo.Context) error {
	inst, err := h.instance(c)
	if err != nil {
		return err
	}
	var form model.RenewForm
	fe, err := h.bindForm(c, &form)
	if err != nil {
		return err
	}
	due, ok := parseDueBack(form.DueBack, fe)
	if !ok {
		return h.renderRenew(c, http.StatusOK, inst, form, fe)
	}

	user, _ := currentUser(c)
	if err := h.svc.RenewBookInstance(c.Request().Context(), user.Username, inst.ID, due); err != nil {
		if isRenewalErr(err) {
			fe.Add(fieldDueBack, err.Error())
			return h.renderRenew(c, http.StatusOK, inst, form, fe)
		}
		return h.httpError(err)
	}
	return c.Redirect(http.StatusFound, loanedBooksURL)
}

func (h *Handler) renderRenew(c echo.Context, code int, inst model.BookInstance, form model.RenewForm, fe model.FormErrors) error {
	return h.render(c, code, renewTemplate, echo.Map{
		"Instance": inst,
		"Form":     form,
		"Errors":   fe,
		"Now":      h.svc.Today(),
	})
}

func (h *Handler) CheckoutForm(c echo.Context) error {
	inst, err := h.instance(c)
	if err != nil {
		return err
	}
	form := model.CheckoutForm{DueBack: h.svc.ProposedRenewalDate().Format(time.DateOnly)}
	return h.renderCheckout(c, http.StatusOK, inst, form, model.FormErrors{})
}

func (h *Handler) Checkout(c echo.Context) error {
	inst, err := h.instance(c)
	if err != nil {
		return err
	}
	var form model.CheckoutForm
	fe, err := h.bindForm(c, &form)
	if err != nil {
		return err
	}
	due, ok := parseDueBack(form.DueBack, fe)
	if !ok || fe.Any() {
		return h.renderCheckout(c, http.StatusOK, inst, form, fe)
	}

	user, _ := currentUser(c)
	err = h.svc.CheckoutBookInstance(c.Request().Context(), user.Username, inst.ID, form.Borrower, due)
	switch {
	case err == nil:
		return c.Redirect(http.StatusFound, loanedBooksURL)
	case isRenewalErr(err):
		fe.Add(fieldDueBack, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		// the instance was just loaded, so the borrower is unknown
		fe.Add(fieldBorrower, msgUnknownUser)
	case errors.Is(err, errs.ErrNotAvailable):
		fe.Add(model.NonFieldErrors, msgNotAvailable)
	default:
		return h.httpError(err)
	}
	return h.renderCheckout(c, http.StatusOK, inst, form, fe)
}

func (h *Handler) renderCheckout(c echo.Context, code int, inst model.BookInstance, form model.CheckoutForm, fe model.FormErrors) error {
	return h.render(c, code, checkoutTemplate, echo.Map{
		"Instance": inst,
		"Form":     form,
		"Errors":   fe,
	})
}

func (h *Handler) Return(c echo.Context) error {
	inst, err := h.instance(c)
	if err != nil {
		return err
	}
	user, _ := currentUser(c)
	if err := h.svc.ReturnBookInstance(c.Request().Context(), user.Username, inst.ID); err != nil {
		return h.httpError(err)
	}
	return c.Redirect(http.StatusFound, loanedBooksURL)
}
