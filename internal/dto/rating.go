package dto

import (
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// CreateRatingRequest holds the form fields of a rating, sent as multipart
// so a supporting file can accompany it.
type CreateRatingRequest struct {
	RaterID    string    `form:"raterID" binding:"required"`
	OutlookID  string    `form:"outlookID" binding:"required"`
	Rating     string    `form:"rating" binding:"required,max=20"`
	Scope      string    `form:"scope" binding:"required,rating_scope"`
	RatingDate time.Time `form:"ratingDate" time_format:"2006-01-02" binding:"required,notfuture"`
}

// UpdateRatingRequest defines the updatable rating fields.
type UpdateRatingRequest struct {
	RaterID    *string    `json:"raterID"`
	OutlookID  *string    `json:"outlookID"`
	Rating     *string    `json:"rating" binding:"omitempty,max=20"`
	Scope      *string    `json:"scope" binding:"omitempty,rating_scope"`
	RatingDate *time.Time `json:"ratingDate" binding:"omitempty,notfuture"`
}

// ToListRatingResponse returns ratings as-is; the domain type is the wire shape.
func ToListRatingResponse(ratings []domain.Rating) []domain.Rating {
	if ratings == nil {
		return []domain.Rating{}
	}
	return ratings
}
