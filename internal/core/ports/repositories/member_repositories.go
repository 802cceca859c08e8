package repositories

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// MemberReader defines read operations for member data
type MemberReader interface {
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// FindMemberByIdentification looks up a member of a counterparty by identification number.
	FindMemberByIdentification(ctx context.Context, counterpartyID, identificationNumber string) (*domain.Member, error)

	ListMembers(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Member, error)
}

// MemberWriter defines write operations for member data
type MemberWriter interface {
	// SaveMember inserts a member. A duplicate identification number within the
	// counterparty yields apperrors.ErrDuplicate.
	SaveMember(ctx context.Context, member domain.Member) error
	UpdateMember(ctx context.Context, member domain.Member) error
}

// MemberRepositoryFacade combines all member-related repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
