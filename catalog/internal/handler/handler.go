package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/web"
	"github.com/Astemirdum/library-catalog/pkg/auth"
	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/Astemirdum/library-catalog/pkg/validate"
)

type Handler struct {
	svc      CatalogService
	issuer   *auth.Issuer
	renderer *Renderer
	log      *zap.Logger
	now      func() time.Time
}

func New(svc CatalogService, issuer *auth.Issuer, log *zap.Logger) *Handler {
	renderer, err := NewRenderer(web.Templates)
	if err != nil {
		// templates are embedded, so this only fails on a broken build
		panic(err)
	}
	return &Handler{
		svc:      svc,
		issuer:   issuer,
		renderer: renderer,
		log:      log,
		now:      time.Now,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		siteRPS = 100
	)
	e.Renderer = h.renderer
	e.Validator = validate.NewCustomValidator()
	e.HTTPErrorHandler = h.errorHandler

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	site := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(siteRPS),
		h.Authenticate,
	)

	site.GET("/", h.Index)
	site.GET("/books/", h.ListBooks)
	site.GET("/book/:id", h.GetBook)
	site.GET("/authors/", h.ListAuthors)
	site.GET("/author/:id", h.GetAuthor)

	site.GET("/mybooks/", h.ListBorrowed, LoginRequired)
	site.GET("/bookinst-manage/", h.ListOnLoan, PermissionRequired(model.PermViewListOnLoan))

	canMarkReturned := PermissionRequired(model.PermCanMarkReturned)
	site.GET("/book/:id/renew/", h.RenewForm, canMarkReturned)
	site.POST("/book/:id/renew/", h.Renew, canMarkReturned)
	site.GET("/book/:id/checkout/", h.CheckoutForm, canMarkReturned)
	site.POST("/book/:id/checkout/", h.Checkout, canMarkReturned)
	site.POST("/book/:id/return/", h.Return, canMarkReturned)

	site.GET("/author/create/", h.AuthorCreateForm, PermissionRequired(model.PermAddAuthor))
	site.POST("/author/create/", h.AuthorCreate, PermissionRequired(model.PermAddAuthor))
	site.GET("/author/:id/update/", h.AuthorUpdateForm, PermissionRequired(model.PermChangeAuthor))
	site.POST("/author/:id/update/", h.AuthorUpdate, PermissionRequired(model.PermChangeAuthor))
	site.GET("/author/:id/delete/", h.AuthorDeleteForm, PermissionRequired(model.PermDeleteAuthor))
	site.POST("/author/:id/delete/", h.AuthorDelete, PermissionRequired(model.PermDeleteAuthor))

	site.GET(loginURL, h.LoginForm)
	site.POST(loginURL, h.Login)
	site.POST("/accounts/logout/", h.Logout)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps service errors onto HTTP status codes.
func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrInvalidPage):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrNotOnLoan), errors.Is(err, errs.ErrNotAvailable), errors.Is(err, errs.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
}

func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	msg := http.StatusText(code)
	if he != nil && code < http.StatusInternalServerError {
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = h.render(c, code, "error.html", echo.Map{"Code": code, "Message": msg})
	}
	if err != nil {
		h.log.Error("write error page", zap.Error(err))
	}
}

// Malformed ids are indistinguishable from unknown ones.
func intParam(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Not Found")
	}
	return id, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, "Not Found")
	}
	return id, nil
}

// bindForm binds the request body into form and translates validator
// failures into form messages.
func (h *Handler) bindForm(c echo.Context, form interface{}) (model.FormErrors, error) {
	fe := model.FormErrors{}
	if err := c.Bind(form); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(form); err != nil {
		fields := validate.FieldErrors(err)
		if fields == nil {
			return nil, err
		}
		for field, tag := range fields {
			switch tag {
			case "required":
				fe.Add(field, model.MsgRequired)
			case "max":
				fe.Add(field, model.MsgMaxLen)
			default:
				fe.Add(field, "Enter a valid value.")
			}
		}
	}
	return fe, nil
}
