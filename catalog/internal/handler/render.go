package handler

import (
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

const baseTemplate = "base.html"

var templateFuncs = template.FuncMap{
	"date": model.FormatDate,
	"days": func(d time.Duration) int {
		return int(d / (24 * time.Hour))
	},
	"statusText": http.StatusText,
}

// Renderer executes a page template inside the shared base layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer(fsys fs.FS) (*Renderer, error) {
	base, err := template.New(baseTemplate).Funcs(templateFuncs).ParseFS(fsys, "templates/"+baseTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "parse base template")
	}
	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := path.Base(file)
		if name == baseTemplate {
			continue
		}
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err = t.ParseFS(fsys, file); err != nil {
			return nil, errors.Wrapf(err, "parse %s", name)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, baseTemplate, data)
}

// render adds the current user and request path every page needs.
func (h *Handler) render(c echo.Context, code int, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	if user, ok := currentUser(c); ok {
		data["User"] = &user
	}
	data["Path"] = c.Request().URL.RequestURI()
	return c.Render(code, name, data)
}
