package service

// Тесты блога (internal/service/posts.go).

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
	"github.com/pribylovaa/go-marketplace-storefront/internal/storage"
	"github.com/stretchr/testify/require"
)

func mustPost(title string) models.Post {
	return models.Post{
		ID:          uuid.New(),
		Title:       title,
		Slug:        title,
		Author:      "alice",
		PublishedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestListPosts_OK(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p1 := mustPost("launch")

	ms.EXPECT().
		ListPosts(gomock.Any(), gomock.AssignableToTypeOf(models.PostListOptions{})).
		DoAndReturn(func(_ context.Context, opts models.PostListOptions) (*models.PostPage, error) {
			require.EqualValues(t, 20, opts.PageSize)
			return &models.PostPage{Items: []models.Post{p1}, NextPageToken: "tok"}, nil
		})

	page, err := s.ListPosts(context.Background(), models.PostListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "tok", page.NextPageToken)
}

func TestListPosts_InvalidCursor(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInvalidCursor)

	_, err := s.ListPosts(context.Background(), models.PostListOptions{
		ListOptions: models.ListOptions{PageToken: "broken"},
	})
	require.ErrorIs(t, err, ErrInvalidCursor)
}

func TestListPosts_FailsOpen(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	page, err := s.ListPosts(context.Background(), models.PostListOptions{})
	require.NoError(t, err)
	require.Empty(t, page.Items)
}

func TestPostByID_OK(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	p := mustPost("launch")
	ms.EXPECT().PostByID(gomock.Any(), p.ID).Return(&p, nil)

	got, err := s.PostByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, &p, got)
}

func TestPostByID_NotFound(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().PostByID(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

	_, err := s.PostByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPostByID_StorageError(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().PostByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := s.PostByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrInternal)
}
