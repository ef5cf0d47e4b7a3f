package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
)

const (
	DefaultPageSize   = 10
	DefaultSessionAge = 14 * 24 * time.Hour
)

// Publisher delivers catalog events; failures never fail the caller.
type Publisher interface {
	Publish(ctx context.Context, e model.Event) error
}

type Service struct {
	log        *zap.Logger
	repo       repository.Repository
	events     Publisher
	now        func() time.Time
	pageSize   int
	sessionAge time.Duration
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithPageSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

func WithSessionAge(age time.Duration) Option {
	return func(s *Service) {
		if age > 0 {
			s.sessionAge = age
		}
	}
}

func NewService(repo repository.Repository, events Publisher, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:        log,
		repo:       repo,
		events:     events,
		now:        time.Now,
		pageSize:   DefaultPageSize,
		sessionAge: DefaultSessionAge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) SessionAge() time.Duration {
	return s.sessionAge
}

func (s *Service) HomeStats(ctx context.Context) (model.HomeStats, error) {
	var st model.HomeStats
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		st.NumBooks, err = s.repo.CountBooks(ctx)
		return err
	})
	gg.Go(func() (err error) {
		st.NumInstances, err = s.repo.CountInstances(ctx, repository.InstanceFilter{})
		return err
	})
	gg.Go(func() (err error) {
		st.NumInstancesAvailable, err = s.repo.CountInstances(ctx, repository.InstanceFilter{Status: model.StatusAvailable})
		return err
	})
	gg.Go(func() (err error) {
		st.NumAuthors, err = s.repo.CountAuthors(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.HomeStats{}, err
	}
	return st, nil
}

// Visit counts a home page view for the session key, starting a new
// session when the key is unknown, malformed or expired.
func (s *Service) Visit(ctx context.Context, key string) (model.Session, error) {
	sess, err := s.loadSession(ctx, key)
	if err != nil {
		return model.Session{}, err
	}
	sess.Visits++
	sess.ExpiresAt = s.now().Add(s.sessionAge)
	if err := s.repo.SaveSession(ctx, sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

func (s *Service) loadSession(ctx context.Context, key string) (model.Session, error) {
	if id, err := uuid.Parse(key); err == nil {
		sess, err := s.repo.GetSession(ctx, id)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, errs.ErrNotFound) {
			return model.Session{}, err
		}
	}
	return model.Session{Key: uuid.New()}, nil
}

func (s *Service) publish(ctx context.Context, e model.Event) {
	if s.events == nil {
		return
	}
	e.At = s.now().UTC()
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.Warn("publish event", zap.String("kind", string(e.Kind)), zap.Error(err))
	}
}

func (s *Service) RecordEvent(ctx context.Context, e model.Event) error {
	return s.repo.SaveEvent(ctx, e)
}

func (s *Service) ListEvents(ctx context.Context, limit int) ([]model.Event, error) {
	return s.repo.ListEvents(ctx, limit)
}
