package repositories

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// RatingRepositoryFacade defines persistence for credit ratings.
type RatingRepositoryFacade interface {
	FindRatingByID(ctx context.Context, ratingID string) (*domain.Rating, error)
	// ListRatings returns ratings with the most recent rating date first.
	ListRatings(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Rating, error)
	SaveRating(ctx context.Context, rating domain.Rating) error
	UpdateRating(ctx context.Context, rating domain.Rating) error
}
