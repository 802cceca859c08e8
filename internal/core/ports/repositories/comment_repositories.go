package repositories

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// CommentRepositoryFacade defines persistence for counterparty comments.
type CommentRepositoryFacade interface {
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)
	// ListComments returns comments newest first.
	ListComments(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Comment, error)
	SaveComment(ctx context.Context, comment domain.Comment) error
	UpdateComment(ctx context.Context, comment domain.Comment) error
}
