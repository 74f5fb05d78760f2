package repositories

import (
	"fmt"

	"github.com/inkwell-app/inkwell/backend/internal/models"
	"gorm.io/gorm"
)

// BookmarkRepository defines the interface for bookmark link records
type BookmarkRepository interface {
	Create(bookmark *models.Bookmark) error
	Delete(userID uint, postID string) error
	Exists(userID uint, postID string) (bool, error)
	ListByUser(userID uint) ([]models.Bookmark, error)
}

// PostgresBookmarkRepository implements BookmarkRepository
type PostgresBookmarkRepository struct {
	db *gorm.DB
}

func NewPostgresBookmarkRepository(db *gorm.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

// Create inserts a bookmark row. The unique (user_id, post_id) index
// rejects a duplicate insert from a concurrent toggle.
func (r *PostgresBookmarkRepository) Create(bookmark *models.Bookmark) error {
	return r.db.Create(bookmark).Error
}

func (r *PostgresBookmarkRepository) Delete(userID uint, postID string) error {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Bookmark{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("bookmark not found")
	}
	return nil
}

func (r *PostgresBookmarkRepository) Exists(userID uint, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bookmark{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

func (r *PostgresBookmarkRepository) ListByUser(userID uint) ([]models.Bookmark, error) {
	bookmarks := []models.Bookmark{}
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookmarks).Error
	return bookmarks, err
}
