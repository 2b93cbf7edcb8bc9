package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/tubeblog/internal/domain/entities"
)

// BlogRepository defines the interface for blog article data access
type BlogRepository interface {
	// Create persists a new article
	Create(ctx context.Context, article *entities.BlogArticle) error

	// FindByID finds an article regardless of owner
	FindByID(ctx context.Context, id uuid.UUID) (*entities.BlogArticle, error)

	// ListByUser returns the user's articles, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.BlogArticle, error)

	// CountByUser returns how many articles the user owns
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Delete removes an article
	Delete(ctx context.Context, id uuid.UUID) error
}
