package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/core/ports/storage"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/google/uuid"
)

const kindRating = "rating"

type ratingService struct {
	BaseService
	ratingRepo       portsrepo.RatingRepositoryFacade
	counterpartyRepo portsrepo.CounterpartyReader
	refRepo          portsrepo.ReferenceDataReader
	blobs            storage.BlobStore
}

func NewRatingService(
	ratingRepo portsrepo.RatingRepositoryFacade,
	counterpartyRepo portsrepo.CounterpartyReader,
	refRepo portsrepo.ReferenceDataReader,
	blobs storage.BlobStore,
	opts ...Option,
) portssvc.RatingSvcFacade {
	return &ratingService{
		BaseService:      newBaseService(opts),
		ratingRepo:       ratingRepo,
		counterpartyRepo: counterpartyRepo,
		refRepo:          refRepo,
		blobs:            blobs,
	}
}

var _ portssvc.RatingSvcFacade = (*ratingService)(nil)

func (s *ratingService) AddRating(ctx context.Context, counterpartyID string, req dto.CreateRatingRequest, file *dto.FileUpload, actor domain.Actor) (*domain.Rating, error) {
	if _, err := s.counterpartyRepo.FindCounterpartyByID(ctx, counterpartyID); err != nil {
		return nil, err
	}
	if file != nil {
		if err := domain.StandardUploadPolicy().Check(file.FileName, file.Size); err != nil {
			return nil, err
		}
	}

	now := s.Now()
	r := domain.Rating{
		RatingID:       uuid.NewString(),
		CounterpartyID: counterpartyID,
		RaterID:        req.RaterID,
		OutlookID:      req.OutlookID,
		Rating:         strings.TrimSpace(req.Rating),
		Scope:          domain.RatingScope(req.Scope),
		SoftDelete:     domain.Activated(),
		AuditFields:    domain.NewAuditFields(actor.UserID, now),
	}
	if !req.RatingDate.IsZero() {
		r.RatingDate = lifecycle.Date(req.RatingDate)
	}
	if err := s.validate(ctx, r, now); err != nil {
		return nil, err
	}

	if file != nil {
		ref, err := storeUpload(ctx, &s.BaseService, s.blobs, fmt.Sprintf("counterparties/%s/ratings", counterpartyID), r.RatingID, *file)
		if err != nil {
			return nil, err
		}
		r.SupportingFile = &ref
	}

	if err := s.ratingRepo.SaveRating(ctx, r); err != nil {
		s.LogError(ctx, err, "Failed to save rating", slog.String("counterparty_id", counterpartyID))
		if r.SupportingFile != nil {
			if delErr := s.blobs.Delete(ctx, r.SupportingFile.Key); delErr != nil {
				s.LogError(ctx, delErr, "Failed to remove orphaned file", slog.String("key", r.SupportingFile.Key))
			}
		}
		return nil, err
	}

	s.Metrics.IncrementRecordsCreated(kindRating)
	if file != nil {
		s.Metrics.ObserveUpload(kindRating, file.Size)
	}
	return &r, nil
}

func (s *ratingService) UpdateRating(ctx context.Context, ratingID string, req dto.UpdateRatingRequest, actor domain.Actor) (*domain.Rating, error) {
	r, err := s.GetRating(ctx, ratingID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeMutation(ctx, actor, r, kindRating, ratingID); err != nil {
		return nil, err
	}

	setString(&r.RaterID, req.RaterID)
	setString(&r.OutlookID, req.OutlookID)
	if req.Rating != nil {
		r.Rating = strings.TrimSpace(*req.Rating)
	}
	if req.Scope != nil {
		r.Scope = domain.RatingScope(*req.Scope)
	}
	if d := normalizeDate(req.RatingDate); d != nil {
		r.RatingDate = *d
	}

	now := s.Now()
	if err := s.validate(ctx, *r, now); err != nil {
		return nil, err
	}
	r.Touch(actor.UserID, now)
	if err := s.ratingRepo.UpdateRating(ctx, *r); err != nil {
		s.LogError(ctx, err, "Failed to update rating", slog.String("rating_id", ratingID))
		return nil, err
	}
	return r, nil
}

func (s *ratingService) DeactivateRating(ctx context.Context, ratingID string, actor domain.Actor) error {
	r, err := s.GetRating(ctx, ratingID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeMutation(ctx, actor, r, kindRating, ratingID); err != nil {
		return err
	}

	now := s.Now()
	r.Deactivate(actor.UserID, now)
	r.Touch(actor.UserID, now)
	if err := s.ratingRepo.UpdateRating(ctx, *r); err != nil {
		s.LogError(ctx, err, "Failed to deactivate rating", slog.String("rating_id", ratingID))
		return err
	}
	s.Metrics.IncrementRecordsRemoved(kindRating)
	return nil
}

func (s *ratingService) GetRating(ctx context.Context, ratingID string) (*domain.Rating, error) {
	r, err := s.ratingRepo.FindRatingByID(ctx, ratingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get rating", slog.String("rating_id", ratingID))
		}
		return nil, err
	}
	return r, nil
}

func (s *ratingService) ListRatings(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Rating, error) {
	ratings, err := s.ratingRepo.ListRatings(ctx, counterpartyID, vis)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ratings", slog.String("counterparty_id", counterpartyID))
		return nil, err
	}
	return domain.FilterActive(ratings, vis), nil
}

// validate applies the rating rules and checks that rater and outlook exist.
func (s *ratingService) validate(ctx context.Context, r domain.Rating, now time.Time) error {
	v := &apperrors.ValidationError{}
	if err := r.Validate(now); err != nil {
		var ve *apperrors.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		v = ve
	}
	if r.RaterID != "" {
		if _, err := s.refRepo.FindRater(ctx, r.RaterID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			v.Add("raterID", "does not exist")
		}
	}
	if r.OutlookID != "" {
		if _, err := s.refRepo.FindOutlook(ctx, r.OutlookID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
			v.Add("outlookID", "does not exist")
		}
	}
	return v.OrNil()
}
