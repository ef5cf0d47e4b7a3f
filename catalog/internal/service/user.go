package service

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

// Authenticate returns ErrInvalidCredentials for unknown users, wrong
// passwords and inactive accounts alike.
func (s *Service) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errs.ErrInvalidCredentials
		}
		return model.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, errs.ErrInvalidCredentials
	}
	if !user.IsActive {
		return model.User{}, errs.ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	return s.repo.CreateUser(ctx, model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsSuperuser:  req.IsSuperuser,
		IsActive:     true,
	})
}

func (s *Service) GrantPermissions(ctx context.Context, username string, perms ...model.Permission) error {
	for _, p := range perms {
		if !p.IsValid() {
			return errors.Errorf("unknown permission %q", p)
		}
	}
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.repo.GrantPermissions(ctx, user.ID, perms...)
}
