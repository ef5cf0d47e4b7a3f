package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Author struct {
	ID          int        `json:"id" db:"id"`
	FirstName   string     `json:"firstName" db:"first_name"`
	LastName    string     `json:"lastName" db:"last_name"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"dateOfDeath,omitempty" db:"date_of_death"`
}

func (a Author) String() string {
	return fmt.Sprintf("%s, %s", a.LastName, a.FirstName)
}

func (a Author) URL() string {
	return fmt.Sprintf("/author/%d", a.ID)
}

type Genre struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

func (g Genre) String() string {
	return g.Name
}

type Book struct {
	ID       int    `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Summary  string `json:"summary" db:"summary"`
	ISBN     string `json:"isbn" db:"isbn"`
	AuthorID *int   `json:"authorId,omitempty" db:"author_id"`
	// Author is nil when the book has no author.
	Author *Author `json:"author,omitempty" db:"-"`
}

func (b Book) String() string {
	return b.Title
}

func (b Book) URL() string {
	return fmt.Sprintf("/book/%d", b.ID)
}

type BookInstance struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	BookID     int        `json:"bookId" db:"book_id"`
	BookTitle  string     `json:"bookTitle" db:"book_title"`
	Imprint    string     `json:"imprint" db:"imprint"`
	DueBack    *time.Time `json:"dueBack,omitempty" db:"due_back"`
	Status     LoanStatus `json:"status" db:"status"`
	BorrowerID *int       `json:"borrowerId,omitempty" db:"borrower_id"`
	Borrower   *string    `json:"borrower,omitempty" db:"borrower"`
}

func (bi BookInstance) String() string {
	return fmt.Sprintf("%s (%s)", bi.ID, bi.BookTitle)
}

// IsOverdue reports whether the copy was due before today.
func (bi BookInstance) IsOverdue(now time.Time) bool {
	return bi.DueBack != nil && Today(now).After(*bi.DueBack)
}

type BookDetail struct {
	Book      Book           `json:"book"`
	Genres    []Genre        `json:"genres"`
	Instances []BookInstance `json:"instances"`
}

type AuthorDetail struct {
	Author Author `json:"author"`
	Books  []Book `json:"books"`
}

type HomeStats struct {
	NumBooks              int `json:"numBooks"`
	NumInstances          int `json:"numInstances"`
	NumInstancesAvailable int `json:"numInstancesAvailable"`
	NumAuthors            int `json:"numAuthors"`
}

type Session struct {
	Key       uuid.UUID `json:"key" db:"key"`
	Visits    int       `json:"visits" db:"visits"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
}
