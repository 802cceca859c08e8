package services

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
)

// RatingSvcFacade defines operations on counterparty credit ratings
type RatingSvcFacade interface {
	// AddRating stores a rating with an optional supporting file.
	AddRating(ctx context.Context, counterpartyID string, req dto.CreateRatingRequest, file *dto.FileUpload, actor domain.Actor) (*domain.Rating, error)
	GetRating(ctx context.Context, ratingID string) (*domain.Rating, error)
	ListRatings(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Rating, error)
	UpdateRating(ctx context.Context, ratingID string, req dto.UpdateRatingRequest, actor domain.Actor) (*domain.Rating, error)
	DeactivateRating(ctx context.Context, ratingID string, actor domain.Actor) error
}
