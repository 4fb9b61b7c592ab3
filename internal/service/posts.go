package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
	"github.com/pribylovaa/go-marketplace-storefront/internal/storage"
	"github.com/pribylovaa/go-marketplace-storefront/pkg/log"
)

// ListPosts возвращает страницу записей блога.
// Политика совпадает с ListProducts: нормализация лимита, ErrInvalidCursor
// наверх, прочие ошибки стораджа fail open (пустая страница + лог).
func (s *Service) ListPosts(ctx context.Context, opts models.PostListOptions) (*models.PostPage, error) {
	const op = "service/posts/ListPosts"

	lg := log.From(ctx).With("op", op)
	opts.PageSize = s.normalizeLimit(opts.PageSize)

	page, err := s.storage.ListPosts(ctx, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("invalid page token")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("blog query failed, serving empty page", "err", err)
		return &models.PostPage{}, nil
	}

	return page, nil
}

// PostByID возвращает запись блога по идентификатору.
//
// Ошибки:
//   - ErrNotFound — запись отсутствует;
//   - ErrInternal — прочие ошибки стораджа.
func (s *Service) PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	const op = "service/posts/PostByID"

	lg := log.From(ctx).With("op", op, "id", id.String())

	post, err := s.storage.PostByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("post not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on PostByID", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return post, nil
}
