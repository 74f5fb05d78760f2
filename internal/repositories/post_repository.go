package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/inkwell-app/inkwell/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations.
//
// Lookups that miss return (nil, nil) rather than an error: a missing post
// is an expected outcome, not a failure. Any non-nil error is a transport
// or store failure.
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	GetPostsByStatus(ctx context.Context, status string, skip, limit int64) ([]models.Post, error)
	GetPostsByUserID(ctx context.Context, userID uint, skip, limit int64) ([]models.Post, error)
	GetPostsByIDs(ctx context.Context, ids []string) ([]models.Post, error)
	GetPostsLikedBy(ctx context.Context, userID uint) ([]models.Post, error)
	UpdatePost(ctx context.Context, id string, post *models.Post) error
	DeletePost(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, postID string, userID uint) (*models.Post, error)
	IncrementCommentsCount(ctx context.Context, postID string) error
	DecrementCommentsCount(ctx context.Context, postID string) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database, collection string) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection(collection)}
}

// CreatePost creates a new post in MongoDB. Engagement fields are
// initialized to empty/zero, never left unset.
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.Likes = 0
	if post.UserLikes == nil {
		post.UserLikes = []uint{}
	}
	post.CommentsCount = 0
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByID retrieves a post by ID. A malformed ID cannot name a
// document, so it is treated the same as a miss.
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetPostsByStatus retrieves posts with the given status, newest first.
func (r *MongoPostRepository) GetPostsByStatus(ctx context.Context, status string, skip, limit int64) ([]models.Post, error) {
	return r.findPosts(ctx, bson.M{"status": status}, skip, limit)
}

// GetPostsByUserID retrieves posts by a specific author, newest first.
func (r *MongoPostRepository) GetPostsByUserID(ctx context.Context, userID uint, skip, limit int64) ([]models.Post, error) {
	return r.findPosts(ctx, bson.M{"user_id": userID}, skip, limit)
}

// GetPostsByIDs resolves a batch of post IDs in a single query. Callers
// must not pass an empty set; an empty filter would match everything.
func (r *MongoPostRepository) GetPostsByIDs(ctx context.Context, ids []string) ([]models.Post, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty id set")
	}
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue // stale link records may reference deleted posts
		}
		objIDs = append(objIDs, objID)
	}
	return r.findPosts(ctx, bson.M{"_id": bson.M{"$in": objIDs}}, 0, 0)
}

// GetPostsLikedBy retrieves active posts whose like-set contains the user,
// via a structured array-containment match.
func (r *MongoPostRepository) GetPostsLikedBy(ctx context.Context, userID uint) ([]models.Post, error) {
	filter := bson.M{
		"user_likes": userID,
		"status":     models.PostStatusActive,
	}
	return r.findPosts(ctx, filter, 0, 0)
}

func (r *MongoPostRepository) findPosts(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if skip > 0 {
		findOptions.SetSkip(skip)
	}
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost replaces the mutable content fields of an existing post.
func (r *MongoPostRepository) UpdatePost(ctx context.Context, id string, post *models.Post) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid post ID format: %w", err)
	}

	post.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":          post.Title,
			"content":        post.Content,
			"featured_image": post.FeaturedImage,
			"status":         post.Status,
			"updated_at":     post.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("post not found")
	}
	return nil
}

// DeletePost deletes a post by ID from MongoDB
func (r *MongoPostRepository) DeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid post ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("post not found")
	}
	return nil
}

// ToggleLike inverts the user's membership in the post's like-set and
// recomputes the like count as the set size, in one pipeline update. The
// whole read-invert-write happens server-side in a single document write,
// so two users toggling concurrently cannot drop each other's like.
// Returns the updated post, or (nil, nil) if the post does not exist.
func (r *MongoPostRepository) ToggleLike(ctx context.Context, postID string, userID uint) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"user_likes": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{userID, bson.M{"$ifNull": bson.A{"$user_likes", bson.A{}}}}},
				bson.M{"$setDifference": bson.A{"$user_likes", bson.A{userID}}},
				bson.M{"$concatArrays": bson.A{bson.M{"$ifNull": bson.A{"$user_likes", bson.A{}}}, bson.A{userID}}},
			}},
			"updated_at": time.Now(),
		}}},
		{{Key: "$set", Value: bson.M{
			"likes": bson.M{"$size": "$user_likes"},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.Post
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, pipeline, opts).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// IncrementCommentsCount increments the comments count of a post
func (r *MongoPostRepository) IncrementCommentsCount(ctx context.Context, postID string) error {
	return r.adjustCommentsCount(ctx, postID, 1)
}

// DecrementCommentsCount decrements the comments count of a post
func (r *MongoPostRepository) DecrementCommentsCount(ctx context.Context, postID string) error {
	return r.adjustCommentsCount(ctx, postID, -1)
}

func (r *MongoPostRepository) adjustCommentsCount(ctx context.Context, postID string, delta int) error {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return fmt.Errorf("invalid post ID format: %w", err)
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"comments_count": delta}})
	return err
}
