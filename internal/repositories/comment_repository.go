package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/inkwell-app/inkwell/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentRepository defines the interface for comment data operations.
// Comments are independent documents keyed by post ID, so appending or
// removing one never rewrites any other comment or the post itself.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string, userID uint) (bool, error)
	DeleteCommentsByPostID(ctx context.Context, postID string) error
	EnsureIndexes(ctx context.Context) error
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database, collection string) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection(collection)}
}

// EnsureIndexes creates the post_id index the per-post listing relies on.
func (r *MongoCommentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "post_id", Value: 1}},
	})
	return err
}

// CreateComment appends a new comment. The ID and timestamp are assigned
// here, at append time.
func (r *MongoCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// GetCommentsByPostID retrieves all comments for a post, oldest first.
func (r *MongoCommentRepository) GetCommentsByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"post_id": postID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment removes a comment only when both the comment ID and the
// author match; a mismatched pair deletes nothing and reports false.
// Authorship is part of the delete filter, so the check and the delete are
// one operation.
func (r *MongoCommentRepository) DeleteComment(ctx context.Context, postID, commentID string, userID uint) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{
		"_id":     commentID,
		"post_id": postID,
		"user_id": userID,
	})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// DeleteCommentsByPostID removes every comment of a post. Used as a
// follow-up step after the post itself is deleted.
func (r *MongoCommentRepository) DeleteCommentsByPostID(ctx context.Context, postID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"post_id": postID})
	return err
}
