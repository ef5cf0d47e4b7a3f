package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidPage        = errors.New("invalid page")
	ErrInvalidCredentials = errors.New("please enter a correct username and password")
	ErrNotAvailable       = errors.New("copy is not available")
	ErrNotOnLoan          = errors.New("copy is not on loan")

	ErrRenewalInPast    = errors.New("Invalid date - renewal in past")
	ErrRenewalTooFar    = errors.New("Invalid date - renewal more than 4 weeks ahead")
	ErrDeathBeforeBirth = errors.New("date of death precedes date of birth")
)
