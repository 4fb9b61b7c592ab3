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

// normalizeLimit приводит запрошенный размер страницы к [Default, Max].
func (s *Service) normalizeLimit(pageSize int32) int32 {
	if pageSize <= 0 {
		return s.cfg.Limits.Default
	}

	if s.cfg.Limits.Max > 0 && pageSize > s.cfg.Limits.Max {
		return s.cfg.Limits.Max
	}

	return pageSize
}

// ListProducts возвращает страницу каталога, обогащённую агрегатами оценок.
//
// Правила:
//   - limit нормализуется по конфигу;
//   - курсор валиден только при неизменном наборе фильтров — при смене
//     фильтров клиент обязан сбросить page_token;
//   - ErrInvalidCursor — битый page_token;
//   - прочие ошибки стораджа fail open: пустая страница + запись в лог
//     (витрина трактует её как «больше ничего нет»).
func (s *Service) ListProducts(ctx context.Context, opts models.ProductListOptions) (*models.EnrichedProductPage, error) {
	const op = "service/catalog/ListProducts"

	lg := log.From(ctx).With("op", op)
	opts.PageSize = s.normalizeLimit(opts.PageSize)

	page, err := s.storage.ListProducts(ctx, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("invalid page token")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("catalog query failed, serving empty page", "err", err)
		return &models.EnrichedProductPage{}, nil
	}

	return &models.EnrichedProductPage{
		Items:         s.EnrichProducts(ctx, page.Items),
		NextPageToken: page.NextPageToken,
	}, nil
}

// ProductByID возвращает товар с агрегатом оценок.
//
// Ошибки:
//   - ErrNotFound — товар отсутствует;
//   - ErrInternal — прочие ошибки стораджа.
func (s *Service) ProductByID(ctx context.Context, id uuid.UUID) (*models.EnrichedProduct, error) {
	const op = "service/catalog/ProductByID"

	lg := log.From(ctx).With("op", op, "id", id.String())

	product, err := s.storage.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("product not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on ProductByID", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	enriched := s.EnrichProducts(ctx, []models.Product{*product})

	return &enriched[0], nil
}
