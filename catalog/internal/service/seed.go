package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

type SeedRequest struct {
	Authors       int
	Genres        int
	Books         int
	CopiesPerBook int
	// Borrower, when set, receives every copy seeded as on loan.
	Borrower string
}

type SeedResult struct {
	Authors   int `json:"authors"`
	Genres    int `json:"genres"`
	Books     int `json:"books"`
	Instances int `json:"instances"`
}

const letters = "abcdefghijklmnopqrstuvwxyz"

func randomWord(rnd *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(letters[rnd.Intn(len(letters))])
	}
	return sb.String()
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// Seed fills the catalog with random sample data.
func (s *Service) Seed(ctx context.Context, req SeedRequest) (SeedResult, error) {
	rnd := rand.New(rand.NewSource(s.now().UnixNano())) //nolint:gosec
	var res SeedResult

	var borrowerID *int
	if req.Borrower != "" {
		u, err := s.repo.GetUserByUsername(ctx, req.Borrower)
		if err != nil {
			return res, errors.Wrapf(err, "borrower %q", req.Borrower)
		}
		borrowerID = &u.ID
	}

	authorIDs := make([]int, 0, req.Authors)
	for i := 0; i < req.Authors; i++ {
		a, err := s.repo.CreateAuthor(ctx, model.Author{
			FirstName: capitalize(randomWord(rnd, 5)),
			LastName:  capitalize(randomWord(rnd, 8)),
		})
		if err != nil {
			return res, errors.Wrap(err, "create author")
		}
		authorIDs = append(authorIDs, a.ID)
		res.Authors++
	}

	genreIDs := make([]int, 0, req.Genres)
	for i := 0; i < req.Genres; i++ {
		g, err := s.repo.CreateGenre(ctx, randomWord(rnd, 10))
		if err != nil {
			return res, errors.Wrap(err, "create genre")
		}
		genreIDs = append(genreIDs, g.ID)
		res.Genres++
	}

	statuses := []model.LoanStatus{model.StatusMaintenance, model.StatusAvailable, model.StatusReserved}
	// copies go on loan only when there is someone to lend them to
	if borrowerID != nil {
		statuses = append(statuses, model.StatusOnLoan)
	}
	today := model.Today(s.now())
	for i := 0; i < req.Books; i++ {
		book := model.Book{
			Title:   capitalize(randomWord(rnd, 10)),
			Summary: randomWord(rnd, 40),
			ISBN:    fmt.Sprintf("978%010d", rnd.Int63n(1e10)),
		}
		if len(authorIDs) > 0 {
			id := authorIDs[rnd.Intn(len(authorIDs))]
			book.AuthorID = &id
		}
		var genres []int
		if len(genreIDs) > 0 {
			genres = []int{genreIDs[rnd.Intn(len(genreIDs))]}
		}
		created, err := s.repo.CreateBook(ctx, book, genres)
		if err != nil {
			return res, errors.Wrap(err, "create book")
		}
		res.Books++

		for j := 0; j < req.CopiesPerBook; j++ {
			bi := model.BookInstance{
				BookID:  created.ID,
				Imprint: randomWord(rnd, 10),
				Status:  statuses[rnd.Intn(len(statuses))],
			}
			if bi.Status == model.StatusOnLoan {
				due := today.Add(time.Duration(rnd.Intn(30)-10) * 24 * time.Hour)
				bi.DueBack = &due
				bi.BorrowerID = borrowerID
			}
			if _, err := s.repo.CreateInstance(ctx, bi); err != nil {
				return res, errors.Wrap(err, "create instance")
			}
			res.Instances++
		}
	}
	return res, nil
}
