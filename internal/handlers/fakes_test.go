package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inkwell-app/inkwell/backend/internal/models"
	"github.com/inkwell-app/inkwell/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
}

// In-memory repository fakes mirroring the store-side semantics the Mongo
// and Postgres implementations rely on.

type fakePostRepo struct {
	posts      map[string]*models.Post
	batchCalls int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*models.Post{}}
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.Likes = 0
	if post.UserLikes == nil {
		post.UserLikes = []uint{}
	}
	post.CommentsCount = 0
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	cp := *post
	r.posts[post.ID.Hex()] = &cp
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *post
	return &cp, nil
}

func (r *fakePostRepo) GetPostsByStatus(_ context.Context, status string, _, _ int64) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range r.posts {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) GetPostsByUserID(_ context.Context, userID uint, _, _ int64) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range r.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) GetPostsByIDs(_ context.Context, ids []string) ([]models.Post, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty id set")
	}
	r.batchCalls++
	out := []models.Post{}
	for _, id := range ids {
		if p, ok := r.posts[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) GetPostsLikedBy(_ context.Context, userID uint) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range r.posts {
		if p.Status != models.PostStatusActive {
			continue
		}
		for _, id := range p.UserLikes {
			if id == userID {
				out = append(out, *p)
				break
			}
		}
	}
	return out, nil
}

func (r *fakePostRepo) UpdatePost(_ context.Context, id string, post *models.Post) error {
	stored, ok := r.posts[id]
	if !ok {
		return fmt.Errorf("post not found")
	}
	stored.Title = post.Title
	stored.Content = post.Content
	stored.FeaturedImage = post.FeaturedImage
	stored.Status = post.Status
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post not found")
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) ToggleLike(_ context.Context, postID string, userID uint) (*models.Post, error) {
	post, ok := r.posts[postID]
	if !ok {
		return nil, nil
	}
	updated := make([]uint, 0, len(post.UserLikes)+1)
	found := false
	for _, id := range post.UserLikes {
		if id == userID {
			found = true
			continue
		}
		updated = append(updated, id)
	}
	if !found {
		updated = append(updated, userID)
	}
	post.UserLikes = updated
	post.Likes = len(updated)
	cp := *post
	return &cp, nil
}

func (r *fakePostRepo) IncrementCommentsCount(_ context.Context, postID string) error {
	if p, ok := r.posts[postID]; ok {
		p.CommentsCount++
	}
	return nil
}

func (r *fakePostRepo) DecrementCommentsCount(_ context.Context, postID string) error {
	if p, ok := r.posts[postID]; ok {
		p.CommentsCount--
	}
	return nil
}

type fakeCommentRepo struct {
	comments []models.Comment
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now()
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) GetCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, postID, commentID string, userID uint) (bool, error) {
	for i, c := range r.comments {
		if c.ID == commentID && c.PostID == postID && c.UserID == userID {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCommentRepo) DeleteCommentsByPostID(_ context.Context, postID string) error {
	kept := r.comments[:0]
	for _, c := range r.comments {
		if c.PostID != postID {
			kept = append(kept, c)
		}
	}
	r.comments = kept
	return nil
}

func (r *fakeCommentRepo) EnsureIndexes(_ context.Context) error { return nil }

type fakeBookmarkRepo struct {
	rows   []models.Bookmark
	nextID uint
}

func (r *fakeBookmarkRepo) Create(bookmark *models.Bookmark) error {
	for _, row := range r.rows {
		if row.UserID == bookmark.UserID && row.PostID == bookmark.PostID {
			return fmt.Errorf("duplicate key value violates unique constraint")
		}
	}
	r.nextID++
	bookmark.ID = r.nextID
	bookmark.CreatedAt = time.Now()
	r.rows = append(r.rows, *bookmark)
	return nil
}

func (r *fakeBookmarkRepo) Delete(userID uint, postID string) error {
	for i, row := range r.rows {
		if row.UserID == userID && row.PostID == postID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("bookmark not found")
}

func (r *fakeBookmarkRepo) Exists(userID uint, postID string) (bool, error) {
	for _, row := range r.rows {
		if row.UserID == userID && row.PostID == postID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookmarkRepo) ListByUser(userID uint) ([]models.Bookmark, error) {
	out := []models.Bookmark{}
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	for _, u := range r.users {
		if u.FirebaseUID == firebaseUID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

type fakeObjectStore struct {
	deleted []string
}

func (s *fakeObjectStore) Upload(_ context.Context, filename, _ string, body io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, body)
	return uuid.NewString(), nil
}

func (s *fakeObjectStore) Delete(_ context.Context, fileID string) error {
	s.deleted = append(s.deleted, fileID)
	return nil
}

func (s *fakeObjectStore) PreviewURL(fileID string) string {
	return "http://files.test/media/" + fileID
}

// newTestContext builds an echo context the way the router would, with the
// validator installed and the JWT claims already resolved.
func newTestContext(method, target string, body any, claims *models.JwtCustomClaims) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validators.NewValidator()

	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = strings.NewReader(string(data))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set("user", claims)
	}
	return c, rec
}
