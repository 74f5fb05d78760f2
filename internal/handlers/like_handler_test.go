package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/inkwell-app/inkwell/backend/internal/models"
	"github.com/stretchr/testify/require"
)

func seedPost(t *testing.T, repo *fakePostRepo, userID uint, status string) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:    "A",
		Content:  "<p>hello</p>",
		Status:   status,
		UserID:   userID,
		UserName: "Al",
	}
	require.NoError(t, repo.CreatePost(context.Background(), post))
	return post
}

func TestToggleLikePair(t *testing.T) {
	repo := newFakePostRepo()
	h := NewLikeHandler(repo)
	post := seedPost(t, repo, 1, models.PostStatusActive)
	claims := &models.JwtCustomClaims{UserID: 2, Name: "Bea"}

	// Fresh post starts with zero engagement.
	stored, err := repo.GetPostByID(context.Background(), post.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, 0, stored.Likes)
	require.Empty(t, stored.UserLikes)

	c, rec := newTestContext(http.MethodPost, "/", nil, claims)
	c.SetParamNames("id")
	c.SetParamValues(post.ID.Hex())
	require.NoError(t, h.ToggleLike(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var liked models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &liked))
	require.Equal(t, 1, liked.Likes)
	require.Equal(t, []uint{2}, liked.UserLikes)

	// Toggling again restores the original state.
	c, rec = newTestContext(http.MethodPost, "/", nil, claims)
	c.SetParamNames("id")
	c.SetParamValues(post.ID.Hex())
	require.NoError(t, h.ToggleLike(c))

	var unliked models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &unliked))
	require.Equal(t, 0, unliked.Likes)
	require.Empty(t, unliked.UserLikes)
}

func TestToggleLikeCountMatchesSet(t *testing.T) {
	repo := newFakePostRepo()
	h := NewLikeHandler(repo)
	post := seedPost(t, repo, 1, models.PostStatusActive)

	for _, userID := range []uint{2, 3, 4} {
		c, _ := newTestContext(http.MethodPost, "/", nil, &models.JwtCustomClaims{UserID: userID})
		c.SetParamNames("id")
		c.SetParamValues(post.ID.Hex())
		require.NoError(t, h.ToggleLike(c))
	}

	stored, err := repo.GetPostByID(context.Background(), post.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, len(stored.UserLikes), stored.Likes)
	require.Equal(t, 3, stored.Likes)
}

func TestToggleLikeMissingPost(t *testing.T) {
	h := NewLikeHandler(newFakePostRepo())

	c, _ := newTestContext(http.MethodPost, "/", nil, &models.JwtCustomClaims{UserID: 2})
	c.SetParamNames("id")
	c.SetParamValues("64b0c1f2a3d4e5f601234567")

	err := h.ToggleLike(c)
	requireHTTPError(t, err, http.StatusNotFound)
}

func TestGetLikedPostsOnlyActive(t *testing.T) {
	repo := newFakePostRepo()
	h := NewLikeHandler(repo)

	active := seedPost(t, repo, 1, models.PostStatusActive)
	inactive := seedPost(t, repo, 1, models.PostStatusInactive)
	claims := &models.JwtCustomClaims{UserID: 7}

	for _, p := range []*models.Post{active, inactive} {
		c, _ := newTestContext(http.MethodPost, "/", nil, claims)
		c.SetParamNames("id")
		c.SetParamValues(p.ID.Hex())
		require.NoError(t, h.ToggleLike(c))
	}

	c, rec := newTestContext(http.MethodGet, "/", nil, claims)
	require.NoError(t, h.GetLikedPosts(c))

	var posts []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	require.Equal(t, active.ID, posts[0].ID)
}
