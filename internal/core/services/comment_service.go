package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/google/uuid"
)

const kindComment = "comment"

type commentService struct {
	BaseService
	commentRepo      portsrepo.CommentRepositoryFacade
	counterpartyRepo portsrepo.CounterpartyReader
}

func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, counterpartyRepo portsrepo.CounterpartyReader, opts ...Option) portssvc.CommentSvcFacade {
	return &commentService{
		BaseService:      newBaseService(opts),
		commentRepo:      commentRepo,
		counterpartyRepo: counterpartyRepo,
	}
}

var _ portssvc.CommentSvcFacade = (*commentService)(nil)

func (s *commentService) AddComment(ctx context.Context, counterpartyID string, req dto.CommentRequest, actor domain.Actor) (*domain.Comment, error) {
	if _, err := s.counterpartyRepo.FindCounterpartyByID(ctx, counterpartyID); err != nil {
		return nil, err
	}

	c := domain.Comment{
		CommentID:      uuid.NewString(),
		CounterpartyID: counterpartyID,
		Content:        strings.TrimSpace(req.Content),
		SoftDelete:     domain.Activated(),
		AuditFields:    domain.NewAuditFields(actor.UserID, s.Now()),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.commentRepo.SaveComment(ctx, c); err != nil {
		s.LogError(ctx, err, "Failed to save comment", slog.String("counterparty_id", counterpartyID))
		return nil, err
	}
	s.Metrics.IncrementRecordsCreated(kindComment)
	return &c, nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID string, req dto.CommentRequest, actor domain.Actor) (*domain.Comment, error) {
	c, err := s.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeMutation(ctx, actor, c, kindComment, commentID); err != nil {
		return nil, err
	}

	c.Content = strings.TrimSpace(req.Content)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.Edited = true
	c.Touch(actor.UserID, s.Now())

	if err := s.commentRepo.UpdateComment(ctx, *c); err != nil {
		s.LogError(ctx, err, "Failed to update comment", slog.String("comment_id", commentID))
		return nil, err
	}
	return c, nil
}

func (s *commentService) DeactivateComment(ctx context.Context, commentID string, actor domain.Actor) error {
	c, err := s.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeMutation(ctx, actor, c, kindComment, commentID); err != nil {
		return err
	}

	now := s.Now()
	c.Deactivate(actor.UserID, now)
	c.Edited = true
	c.Touch(actor.UserID, now)
	if err := s.commentRepo.UpdateComment(ctx, *c); err != nil {
		s.LogError(ctx, err, "Failed to deactivate comment", slog.String("comment_id", commentID))
		return err
	}
	s.Metrics.IncrementRecordsRemoved(kindComment)
	return nil
}

func (s *commentService) GetComment(ctx context.Context, commentID string) (*domain.Comment, error) {
	c, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get comment", slog.String("comment_id", commentID))
		}
		return nil, err
	}
	return c, nil
}

func (s *commentService) ListComments(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Comment, error) {
	comments, err := s.commentRepo.ListComments(ctx, counterpartyID, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list comments", slog.String("counterparty_id", counterpartyID))
		return nil, err
	}
	return domain.FilterActive(comments, vis), nil
}
