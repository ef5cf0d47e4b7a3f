package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

func (s *Service) ListBooks(ctx context.Context, page string) (model.ListBooks, error) {
	total, err := s.repo.CountBooks(ctx)
	if err != nil {
		return model.ListBooks{}, err
	}
	paging, err := model.NewPaging(page, total, s.pageSize)
	if err != nil {
		return model.ListBooks{}, err
	}
	books, err := s.repo.ListBooks(ctx, paging)
	if err != nil {
		return model.ListBooks{}, err
	}
	return model.ListBooks{Paging: paging, Items: books}, nil
}

func (s *Service) GetBookDetail(ctx context.Context, id int) (model.BookDetail, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.BookDetail{}, err
	}
	detail := model.BookDetail{Book: book}

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		detail.Genres, err = s.repo.ListGenresByBook(ctx, id)
		return err
	})
	gg.Go(func() (err error) {
		detail.Instances, err = s.repo.ListInstancesByBook(ctx, id)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.BookDetail{}, err
	}
	return detail, nil
}

func (s *Service) ListAuthors(ctx context.Context, page string) (model.ListAuthors, error) {
	total, err := s.repo.CountAuthors(ctx)
	if err != nil {
		return model.ListAuthors{}, err
	}
	paging, err := model.NewPaging(page, total, s.pageSize)
	if err != nil {
		return model.ListAuthors{}, err
	}
	authors, err := s.repo.ListAuthors(ctx, paging)
	if err != nil {
		return model.ListAuthors{}, err
	}
	return model.ListAuthors{Paging: paging, Items: authors}, nil
}

func (s *Service) GetAuthorDetail(ctx context.Context, id int) (model.AuthorDetail, error) {
	author, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		return model.AuthorDetail{}, err
	}
	books, err := s.repo.ListBooksByAuthor(ctx, id)
	if err != nil {
		return model.AuthorDetail{}, err
	}
	return model.AuthorDetail{Author: author, Books: books}, nil
}

func (s *Service) GetAuthor(ctx context.Context, id int) (model.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) CreateAuthor(ctx context.Context, actor string, a model.Author) (model.Author, error) {
	created, err := s.repo.CreateAuthor(ctx, a)
	if err != nil {
		return model.Author{}, err
	}
	s.publish(ctx, model.Event{Kind: model.EventAuthorCreated, AuthorID: &created.ID, Actor: actor})
	return created, nil
}

func (s *Service) UpdateAuthor(ctx context.Context, actor string, a model.Author) (model.Author, error) {
	updated, err := s.repo.UpdateAuthor(ctx, a)
	if err != nil {
		return model.Author{}, err
	}
	s.publish(ctx, model.Event{Kind: model.EventAuthorUpdated, AuthorID: &updated.ID, Actor: actor})
	return updated, nil
}

func (s *Service) DeleteAuthor(ctx context.Context, actor string, id int) error {
	if err := s.repo.DeleteAuthor(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, model.Event{Kind: model.EventAuthorDeleted, AuthorID: &id, Actor: actor})
	return nil
}
