package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/tubeblog/internal/domain/entities"
)

// BlogRepository implements the blog repository interface using GORM
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

// Create persists a new article
func (r *BlogRepository) Create(ctx context.Context, article *entities.BlogArticle) error {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("failed to create blog article: %w", err)
	}
	return nil
}

// FindByID finds an article by ID
func (r *BlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.BlogArticle, error) {
	var article entities.BlogArticle
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to find blog article: %w", err)
	}
	return &article, nil
}

// ListByUser returns the user's articles, newest first
func (r *BlogRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BlogArticle, error) {
	var articles []*entities.BlogArticle
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list blog articles: %w", err)
	}
	return articles, nil
}

// CountByUser returns how many articles the user owns
func (r *BlogRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.BlogArticle{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count blog articles: %w", err)
	}
	return count, nil
}

// Delete removes an article
func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.BlogArticle{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrBlogNotFound
	}
	return nil
}
