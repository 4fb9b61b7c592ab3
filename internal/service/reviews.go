package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
	"github.com/pribylovaa/go-marketplace-storefront/internal/notify"
	"github.com/pribylovaa/go-marketplace-storefront/internal/storage"
	"github.com/pribylovaa/go-marketplace-storefront/pkg/log"
)

// Границы валидации отзыва.
const (
	ratingMin = 1
	ratingMax = 5
	titleMin  = 3
	titleMax  = 100
	textMin   = 10
	textMax   = 1000
)

// CreateReviewInput — создание отзыва на товар.
// Rating — указатель: «не передан» и «передан 0» различаются,
// проверка диапазона при этом остаётся решающей.
type CreateReviewInput struct {
	ProductID string
	Rating    *int32
	Title     string
	Text      string
	Author    string
	Email     string
}

// validate — атомарная проверка входа: первое нарушенное правило даёт
// единственную ошибку, правила не агрегируются.
func (in *CreateReviewInput) validate() error {
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.Title = strings.TrimSpace(in.Title)
	in.Text = strings.TrimSpace(in.Text)
	in.Author = strings.TrimSpace(in.Author)
	in.Email = strings.TrimSpace(in.Email)

	if in.ProductID == "" || in.Rating == nil || in.Title == "" || in.Text == "" || in.Author == "" || in.Email == "" {
		return validationErr("All fields are required")
	}

	if *in.Rating < ratingMin || *in.Rating > ratingMax {
		return validationErr("Rating must be a whole number between 1 and 5")
	}

	if n := utf8.RuneCountInString(in.Title); n < titleMin || n > titleMax {
		return validationErr("Title must be between 3 and 100 characters")
	}

	if n := utf8.RuneCountInString(in.Text); n < textMin || n > textMax {
		return validationErr("Review text must be between 10 and 1000 characters")
	}

	return nil
}

// CreateReview — бизнес-операция создания отзыва.
//
// Порядок:
//  1. атомарная валидация входа (первое нарушенное правило -> ValidationError);
//  2. проверка существования товара (отсутствие -> ErrNotFound, это НЕ
//     ошибка валидации);
//  3. запись отзыва с verified=false (модерация отдельно);
//  4. best-effort алерт администратору: сбой уведомления логируется и
//     не откатывает и не валит уже сохранённый отзыв.
func (s *Service) CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	const op = "service/reviews/CreateReview"

	lg := log.From(ctx).With("op", op, "product_id", in.ProductID)

	if err := in.validate(); err != nil {
		lg.Warn("review rejected", "reason", err.Error())
		return nil, err
	}

	productID, err := uuid.Parse(in.ProductID)
	if err != nil {
		// Некорректный формат идентификатора — «нет такого товара».
		lg.Warn("bad product id format")
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	product, err := s.storage.ProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("referenced product not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on product lookup", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	review, err := s.storage.CreateReview(ctx, models.Review{
		ProductID: productID,
		Rating:    *in.Rating,
		Title:     in.Title,
		Content:   in.Text,
		Author:    in.Author,
		Email:     in.Email,
	})
	if err != nil {
		lg.Error("storage error on CreateReview", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.notifyReviewSubmitted(ctx, product, review)

	return review, nil
}

// notifyReviewSubmitted — persist-then-notify: письмо администратору после
// успешной записи; любая ошибка отправки только логируется.
func (s *Service) notifyReviewSubmitted(ctx context.Context, product *models.Product, review *models.Review) {
	const op = "service/reviews/notifyReviewSubmitted"

	lg := log.From(ctx).With("op", op, "review_id", review.ID)

	if s.cfg.SMTP.AdminEmail == "" {
		lg.Debug("admin email not configured, skipping alert")
		return
	}

	msg := notify.Message{
		To:      []string{s.cfg.SMTP.AdminEmail},
		ReplyTo: review.Email,
		Subject: fmt.Sprintf("New review pending moderation: %s", product.Title),
		HTMLBody: fmt.Sprintf(
			"<p><strong>%s</strong> left a %d-star review on <strong>%s</strong>.</p><h3>%s</h3><p>%s</p>",
			html.EscapeString(review.Author),
			review.Rating,
			html.EscapeString(product.Title),
			html.EscapeString(review.Title),
			html.EscapeString(review.Content),
		),
	}

	if err := s.notifier.Send(ctx, msg); err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			lg.Debug("notifier not configured, alert skipped")
			return
		}

		lg.Warn("admin alert failed", "err", err)
	}
}

// ListProductReviews возвращает страницу подтверждённых отзывов товара.
// Политика чтения совпадает со списками каталога: ErrInvalidCursor наверх,
// прочие ошибки стораджа fail open.
func (s *Service) ListProductReviews(ctx context.Context, productID uuid.UUID, opts models.ListOptions) (*models.ReviewPage, error) {
	const op = "service/reviews/ListProductReviews"

	lg := log.From(ctx).With("op", op, "product_id", productID.String())
	opts.PageSize = s.normalizeLimit(opts.PageSize)

	page, err := s.storage.ListVerifiedByProduct(ctx, productID, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("invalid page token")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("reviews query failed, serving empty page", "err", err)
		return &models.ReviewPage{}, nil
	}

	return page, nil
}
