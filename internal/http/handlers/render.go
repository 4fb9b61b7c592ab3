package handlers

// DTO ответов. Держим их отдельно от доменных моделей: формат
// для фронта (snake_case, RFC3339, nullable avg_rating) — контракт,
// который не должен дрожать вместе с внутренними структурами.

import (
	"time"

	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
)

type productResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Category    string   `json:"category"`
	TechStack   []string `json:"tech_stack,omitempty"`
	Description string   `json:"description,omitempty"`
	PriceCents  int64    `json:"price_cents"`
	PublishedAt string   `json:"published_at"`
	// AvgRating == null — «ещё нет оценок», фронт не показывает звёзды.
	AvgRating   *float64 `json:"avg_rating"`
	ReviewCount int32    `json:"review_count"`
}

type productListResponse struct {
	Items         []productResponse `json:"items"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

type postResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt,omitempty"`
	Author      string `json:"author"`
	Content     string `json:"content,omitempty"`
	PublishedAt string `json:"published_at"`
}

type postListResponse struct {
	Items         []postResponse `json:"items"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

type reviewResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	Rating      int32  `json:"rating"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	Author      string `json:"author"`
	Verified    bool   `json:"verified"`
	PublishedAt string `json:"published_at"`
}

type reviewListResponse struct {
	Items         []reviewResponse `json:"items"`
	NextPageToken string           `json:"next_page_token,omitempty"`
}

func productFromModel(p models.EnrichedProduct) productResponse {
	return productResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Slug:        p.Slug,
		Category:    p.Category,
		TechStack:   p.TechStack,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		PublishedAt: p.PublishedAt.UTC().Format(time.RFC3339Nano),
		AvgRating:   p.Rating.AvgRating,
		ReviewCount: p.Rating.ReviewCount,
	}
}

func productListFromModel(page *models.EnrichedProductPage) productListResponse {
	out := productListResponse{
		Items:         make([]productResponse, 0, len(page.Items)),
		NextPageToken: page.NextPageToken,
	}
	for _, p := range page.Items {
		out.Items = append(out.Items, productFromModel(p))
	}
	return out
}

func postFromModel(p models.Post) postResponse {
	return postResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Author:      p.Author,
		Content:     p.Content,
		PublishedAt: p.PublishedAt.UTC().Format(time.RFC3339Nano),
	}
}

func postListFromModel(page *models.PostPage) postListResponse {
	out := postListResponse{
		Items:         make([]postResponse, 0, len(page.Items)),
		NextPageToken: page.NextPageToken,
	}
	for _, p := range page.Items {
		out.Items = append(out.Items, postFromModel(p))
	}
	return out
}

// Email автора наружу не отдаём.
func reviewFromModel(r models.Review) reviewResponse {
	return reviewResponse{
		ID:          r.ID,
		ProductID:   r.ProductID.String(),
		Rating:      r.Rating,
		Title:       r.Title,
		Text:        r.Content,
		Author:      r.Author,
		Verified:    r.Verified,
		PublishedAt: r.PublishedAt.UTC().Format(time.RFC3339Nano),
	}
}

func reviewListFromModel(page *models.ReviewPage) reviewListResponse {
	out := reviewListResponse{
		Items:         make([]reviewResponse, 0, len(page.Items)),
		NextPageToken: page.NextPageToken,
	}
	for _, r := range page.Items {
		out.Items = append(out.Items, reviewFromModel(r))
	}
	return out
}
