package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
)

const (
	// MaxRenewalPeriod is inclusive: today + 28 days is still accepted.
	MaxRenewalPeriod = 4 * 7 * 24 * time.Hour
	ProposedRenewal  = 3 * 7 * 24 * time.Hour
)

// ValidateRenewal checks a proposed due date against today's calendar date.
func ValidateRenewal(dueBack, now time.Time) error {
	today := model.Today(now)
	due := model.Today(dueBack)
	if due.Before(today) {
		return errs.ErrRenewalInPast
	}
	if due.After(today.Add(MaxRenewalPeriod)) {
		return errs.ErrRenewalTooFar
	}
	return nil
}

// ProposedRenewalDate is the default offered on the renewal form.
func (s *Service) ProposedRenewalDate() time.Time {
	return model.Today(s.now()).Add(ProposedRenewal)
}

func (s *Service) Today() time.Time {
	return model.Today(s.now())
}

func (s *Service) ListBorrowed(ctx context.Context, userID int, page string) (model.ListBookInstances, error) {
	return s.listInstances(ctx, repository.InstanceFilter{
		Status:     model.StatusOnLoan,
		BorrowerID: &userID,
	}, page)
}

func (s *Service) ListOnLoan(ctx context.Context, page string) (model.ListBookInstances, error) {
	return s.listInstances(ctx, repository.InstanceFilter{
		Status:      model.StatusOnLoan,
		DueBackDesc: true,
	}, page)
}

func (s *Service) listInstances(ctx context.Context, f repository.InstanceFilter, page string) (model.ListBookInstances, error) {
	total, err := s.repo.CountInstances(ctx, f)
	if err != nil {
		return model.ListBookInstances{}, err
	}
	paging, err := model.NewPaging(page, total, s.pageSize)
	if err != nil {
		return model.ListBookInstances{}, err
	}
	items, err := s.repo.ListInstances(ctx, f, paging)
	if err != nil {
		return model.ListBookInstances{}, err
	}
	return model.ListBookInstances{Paging: paging, Items: items}, nil
}

func (s *Service) GetBookInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error) {
	return s.repo.GetInstance(ctx, id)
}

func (s *Service) RenewBookInstance(ctx context.Context, actor string, id uuid.UUID, dueBack time.Time) error {
	if err := ValidateRenewal(dueBack, s.now()); err != nil {
		return err
	}
	dueBack = model.Today(dueBack)
	if err := s.repo.UpdateDueBack(ctx, id, dueBack); err != nil {
		return err
	}
	s.publish(ctx, model.Event{Kind: model.EventRenewed, InstanceID: &id, Actor: actor, DueBack: &dueBack})
	return nil
}

// CheckoutBookInstance lends an available copy to borrower.
func (s *Service) CheckoutBookInstance(ctx context.Context, actor string, id uuid.UUID, borrower string, dueBack time.Time) error {
	if err := ValidateRenewal(dueBack, s.now()); err != nil {
		return err
	}
	user, err := s.repo.GetUserByUsername(ctx, borrower)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrapf(errs.ErrNotFound, "borrower %q", borrower)
		}
		return err
	}
	if !user.IsActive {
		return errors.Wrapf(errs.ErrNotFound, "borrower %q", borrower)
	}

	dueBack = model.Today(dueBack)
	if err := s.repo.Checkout(ctx, id, user.ID, dueBack); err != nil {
		return err
	}
	s.publish(ctx, model.Event{Kind: model.EventCheckedOut, InstanceID: &id, Actor: actor, DueBack: &dueBack})
	return nil
}

func (s *Service) ReturnBookInstance(ctx context.Context, actor string, id uuid.UUID) error {
	if err := s.repo.Return(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, model.Event{Kind: model.EventReturned, InstanceID: &id, Actor: actor})
	return nil
}
