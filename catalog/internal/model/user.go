package model

type Permission string

const (
	PermViewListOnLoan  Permission = "catalog.view_list_on_loan"
	PermCanMarkReturned Permission = "catalog.can_mark_returned"
	PermAddAuthor       Permission = "catalog.add_author"
	PermChangeAuthor    Permission = "catalog.change_author"
	PermDeleteAuthor    Permission = "catalog.delete_author"
)

var AllPermissions = []Permission{
	PermViewListOnLoan,
	PermCanMarkReturned,
	PermAddAuthor,
	PermChangeAuthor,
	PermDeleteAuthor,
}

func (p Permission) IsValid() bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}

type User struct {
	ID           int          `json:"id" db:"id"`
	Username     string       `json:"username" db:"username"`
	Email        string       `json:"email" db:"email"`
	PasswordHash string       `json:"-" db:"password_hash"`
	IsSuperuser  bool         `json:"isSuperuser" db:"is_superuser"`
	IsActive     bool         `json:"isActive" db:"is_active"`
	Permissions  []Permission `json:"permissions" db:"-"`
}

// HasPerm reports whether u holds perm; superusers hold every permission.
func (u User) HasPerm(perm Permission) bool {
	if !u.IsActive {
		return false
	}
	if u.IsSuperuser {
		return true
	}
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

func (u User) String() string {
	return u.Username
}

type CreateUserRequest struct {
	Username    string `validate:"required,max=150"`
	Email       string `validate:"omitempty,email"`
	Password    string `validate:"required,min=8"`
	IsSuperuser bool
}
