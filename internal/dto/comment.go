package dto

import (
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// CommentRequest defines the body of a comment create or update.
type CommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// CommentResponse defines the data returned for a comment.
type CommentResponse struct {
	CommentID      string    `json:"commentID"`
	CounterpartyID string    `json:"counterpartyID"`
	Content        string    `json:"content"`
	Edited         bool      `json:"edited"`
	IsActive       bool      `json:"isActive"`
	AuthorID       string    `json:"authorID"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// ToCommentResponse converts a domain.Comment to its DTO.
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID:      c.CommentID,
		CounterpartyID: c.CounterpartyID,
		Content:        c.Content,
		Edited:         c.Edited,
		IsActive:       c.IsActive(),
		AuthorID:       c.AuthorID(),
		CreatedAt:      c.CreatedAt,
		LastUpdatedAt:  c.LastUpdatedAt,
	}
}

// ToListCommentResponse converts a slice of comments.
func ToListCommentResponse(comments []domain.Comment) []CommentResponse {
	res := make([]CommentResponse, len(comments))
	for i := range comments {
		res[i] = ToCommentResponse(&comments[i])
	}
	return res
}
