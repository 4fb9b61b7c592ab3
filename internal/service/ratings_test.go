package service

// Тесты агрегатора оценок (internal/service/ratings.go).
//
// Проверяем:
//  - Summarize: пустой вход, округление half-away-from-zero до одного знака;
//  - EnrichProducts: один батч-запрос на весь набор, сохранение порядка и
//    кардинальности входа, {nil, 0} для товаров без отзывов, fail open при
//    ошибке выборки.
//
// Моки сгенерированы в пакете /mocks (MockStorage, MockNotifier):
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks
//   mockgen -source=./internal/notify/notify.go -destination=./mocks/notifier.go -package=mocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-marketplace-storefront/internal/config"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
	"github.com/pribylovaa/go-marketplace-storefront/mocks"
	"github.com/stretchr/testify/require"
)

// newServiceWithMocks — поднимает сервис с моками стораджа и нотификатора.
func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockStorage, *mocks.MockNotifier, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	mn := mocks.NewMockNotifier(ctrl)
	s := &Service{
		storage:  ms,
		notifier: mn,
		cfg: config.Config{
			Limits: config.LimitsConfig{Default: 20, Max: 100},
			SMTP:   config.SMTPConfig{AdminEmail: "admin@example.com"},
		},
	}
	return s, ms, mn, ctrl
}

// mustProduct — быстрый хелпер для сборки товара.
func mustProduct(title string) models.Product {
	return models.Product{
		ID:          uuid.New(),
		Title:       title,
		Slug:        title,
		Category:    "templates",
		PriceCents:  4900,
		PublishedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func verifiedReview(productID uuid.UUID, rating int32) models.Review {
	return models.Review{
		ID:          "507f1f77bcf86cd799439011",
		ProductID:   productID,
		Rating:      rating,
		Verified:    true,
		PublishedAt: time.Now().UTC(),
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	got := Summarize(nil)
	require.Nil(t, got.AvgRating)
	require.EqualValues(t, 0, got.ReviewCount)

	got = Summarize([]models.Review{})
	require.Nil(t, got.AvgRating)
	require.EqualValues(t, 0, got.ReviewCount)
}

func TestSummarize_Mean(t *testing.T) {
	t.Parallel()

	got := Summarize([]models.Review{{Rating: 4}, {Rating: 5}})
	require.NotNil(t, got.AvgRating)
	require.InDelta(t, 4.5, *got.AvgRating, 1e-9)
	require.EqualValues(t, 2, got.ReviewCount)
}

// 1.666… округляется вверх до 1.7 (half away from zero).
func TestSummarize_Rounding(t *testing.T) {
	t.Parallel()

	got := Summarize([]models.Review{{Rating: 1}, {Rating: 2}, {Rating: 2}})
	require.NotNil(t, got.AvgRating)
	require.InDelta(t, 1.7, *got.AvgRating, 1e-9)
	require.EqualValues(t, 3, got.ReviewCount)
}

// Обогащение сохраняет порядок и длину входа даже если отзывы есть
// только у части товаров; запрос к хранилищу — ровно один.
func TestEnrichProducts_PreservesOrderAndLength(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p1 := mustProduct("alpha")
	p2 := mustProduct("beta")

	ms.EXPECT().
		VerifiedReviewsByProducts(gomock.Any(), []uuid.UUID{p1.ID, p2.ID}).
		Times(1).
		Return([]models.Review{
			verifiedReview(p1.ID, 5),
			verifiedReview(p1.ID, 4),
		}, nil)

	got := s.EnrichProducts(context.Background(), []models.Product{p1, p2})
	require.Len(t, got, 2)

	require.Equal(t, p1.ID, got[0].ID)
	require.NotNil(t, got[0].Rating.AvgRating)
	require.InDelta(t, 4.5, *got[0].Rating.AvgRating, 1e-9)
	require.EqualValues(t, 2, got[0].Rating.ReviewCount)

	require.Equal(t, p2.ID, got[1].ID)
	require.Nil(t, got[1].Rating.AvgRating)
	require.EqualValues(t, 0, got[1].Rating.ReviewCount)
}

// Сбой батч-выборки не роняет выдачу: товары возвращаются без агрегатов.
func TestEnrichProducts_FailsOpenOnLookupError(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p1 := mustProduct("alpha")

	ms.EXPECT().
		VerifiedReviewsByProducts(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	got := s.EnrichProducts(context.Background(), []models.Product{p1})
	require.Len(t, got, 1)
	require.Equal(t, p1.ID, got[0].ID)
	require.Nil(t, got[0].Rating.AvgRating)
	require.EqualValues(t, 0, got[0].Rating.ReviewCount)
}

// Пустой вход не трогает хранилище.
func TestEnrichProducts_EmptyInput(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	got := s.EnrichProducts(context.Background(), nil)
	require.Empty(t, got)
}
