package services

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
)

// CommentSvcFacade defines operations on counterparty comments
type CommentSvcFacade interface {
	AddComment(ctx context.Context, counterpartyID string, req dto.CommentRequest, actor domain.Actor) (*domain.Comment, error)
	GetComment(ctx context.Context, commentID string) (*domain.Comment, error)
	ListComments(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Comment, error)
	UpdateComment(ctx context.Context, commentID string, req dto.CommentRequest, actor domain.Actor) (*domain.Comment, error)
	DeactivateComment(ctx context.Context, commentID string, actor domain.Actor) error
}
