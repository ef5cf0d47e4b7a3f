package model

import (
	"time"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
)

const (
	MsgRequired = "This field is required."
	MsgMaxLen   = "Ensure this value has at most 100 characters."
)

// FormErrors maps a form field to its message; "__all__" holds
// non-field errors.
type FormErrors map[string]string

const NonFieldErrors = "__all__"

func (fe FormErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

func (fe FormErrors) Any() bool { return len(fe) > 0 }

type AuthorForm struct {
	FirstName   string `form:"first_name" validate:"required,max=100"`
	LastName    string `form:"last_name" validate:"required,max=100"`
	DateOfBirth string `form:"date_of_birth"`
	DateOfDeath string `form:"date_of_death"`
}

// Author converts a syntactically valid form; date errors are reported
// per field.
func (f AuthorForm) Author() (Author, FormErrors) {
	fe := FormErrors{}
	a := Author{FirstName: f.FirstName, LastName: f.LastName}

	parse := func(field, raw string) *time.Time {
		if raw == "" {
			return nil
		}
		d, err := ParseDate(raw)
		if err != nil {
			fe.Add(field, err.Error())
			return nil
		}
		return &d
	}
	a.DateOfBirth = parse("date_of_birth", f.DateOfBirth)
	a.DateOfDeath = parse("date_of_death", f.DateOfDeath)

	if a.DateOfBirth != nil && a.DateOfDeath != nil && a.DateOfDeath.Before(*a.DateOfBirth) {
		fe.Add("date_of_death", errs.ErrDeathBeforeBirth.Error())
	}
	return a, fe
}

func AuthorFormFrom(a Author) AuthorForm {
	return AuthorForm{
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DateOfBirth: FormatDate(a.DateOfBirth),
		DateOfDeath: FormatDate(a.DateOfDeath),
	}
}

type RenewForm struct {
	DueBack string `form:"due_back"`
}

type CheckoutForm struct {
	Borrower string `form:"borrower" validate:"required"`
	DueBack  string `form:"due_back"`
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}
