package model

import (
	"strconv"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
)

const lastPage = "last"

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
	NumPages      int `json:"numPages"`
}

// NewPaging resolves the raw ?page= value against the total count.
// An empty list still has one (empty) page.
func NewPaging(raw string, total, size int) (Paging, error) {
	if size < 1 {
		size = 1
	}
	numPages := (total + size - 1) / size
	if numPages == 0 {
		numPages = 1
	}

	page := 1
	switch raw {
	case "":
	case lastPage:
		page = numPages
	default:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Paging{}, errs.ErrInvalidPage
		}
		page = n
	}
	if page < 1 || page > numPages {
		return Paging{}, errs.ErrInvalidPage
	}

	return Paging{
		Page:          page,
		PageSize:      size,
		TotalElements: total,
		NumPages:      numPages,
	}, nil
}

func (p Paging) Offset() uint64 {
	return uint64((p.Page - 1) * p.PageSize)
}

func (p Paging) Limit() uint64 {
	return uint64(p.PageSize)
}

func (p Paging) IsPaginated() bool { return p.NumPages > 1 }
func (p Paging) HasPrevious() bool { return p.Page > 1 }
func (p Paging) HasNext() bool     { return p.Page < p.NumPages }
func (p Paging) PreviousPage() int { return p.Page - 1 }
func (p Paging) NextPage() int     { return p.Page + 1 }

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type ListAuthors struct {
	Paging `json:",inline"`
	Items  []Author `json:"items"`
}

type ListBookInstances struct {
	Paging `json:",inline"`
	Items  []BookInstance `json:"items"`
}
