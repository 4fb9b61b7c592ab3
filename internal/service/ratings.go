package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
	"github.com/pribylovaa/go-marketplace-storefront/pkg/log"
)

// Summarize считает агрегат оценок по набору отзывов.
// Фильтрация verified-only — обязанность вызывающего запроса.
// Пустой вход -> {AvgRating: nil, ReviewCount: 0}.
// Среднее округляется до одного знака (half away from zero): 1.666… -> 1.7.
func Summarize(reviews []models.Review) models.RatingSummary {
	if len(reviews) == 0 {
		return models.RatingSummary{AvgRating: nil, ReviewCount: 0}
	}

	var sum int64
	for _, r := range reviews {
		sum += int64(r.Rating)
	}

	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10

	return models.RatingSummary{
		AvgRating:   &avg,
		ReviewCount: int32(len(reviews)),
	}
}

// EnrichProducts дополняет товары агрегатами оценок.
//
// Свойства:
//   - ровно один батч-запрос к хранилищу на весь набор (не N запросов);
//   - порядок и кардинальность входа сохраняются 1:1;
//   - товары без отзывов получают {nil, 0};
//   - сбой выборки fail open: товары возвращаются без агрегатов, ошибка
//     уходит только в лог.
func (s *Service) EnrichProducts(ctx context.Context, products []models.Product) []models.EnrichedProduct {
	const op = "service/ratings/EnrichProducts"

	out := make([]models.EnrichedProduct, len(products))
	for i, p := range products {
		out[i] = models.EnrichedProduct{Product: p}
	}

	if len(products) == 0 {
		return out
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	reviews, err := s.storage.VerifiedReviewsByProducts(ctx, ids)
	if err != nil {
		log.From(ctx).Error("ratings lookup failed, serving products without summaries",
			"op", op, "err", err)
		return out
	}

	byProduct := make(map[uuid.UUID][]models.Review, len(products))
	for _, r := range reviews {
		byProduct[r.ProductID] = append(byProduct[r.ProductID], r)
	}

	for i := range out {
		out[i].Rating = Summarize(byProduct[out[i].ID])
	}

	return out
}
