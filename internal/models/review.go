package models

import (
	"time"

	"github.com/google/uuid"
)

// Review — отзыв на товар.
//
// Важно:
//   - ID — ObjectID MongoDB. Наружу/вовнутрь конвертируется в string.
//   - ProductID — UUID товара из каталога.
//   - Rating — целое в диапазоне [1, 5].
//   - Verified — прошёл ли отзыв модерацию; в агрегатах участвуют
//     только подтверждённые отзывы. Новые отзывы создаются с Verified=false.
//   - PublishedAt — время создания (UTC); вместе с ID — ключ пагинации.
type Review struct {
	ID          string
	ProductID   uuid.UUID
	Rating      int32
	Title       string
	Content     string
	Author      string
	Email       string
	Verified    bool
	PublishedAt time.Time
}

// ReviewPage — страница отзывов.
type ReviewPage struct {
	Items         []Review
	NextPageToken string
}
