package services

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
)

// MemberSvcFacade defines operations on the members of a counterparty
type MemberSvcFacade interface {
	AddMember(ctx context.Context, counterpartyID string, req dto.CreateMemberRequest, actor domain.Actor) (*domain.Member, error)
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, counterpartyID string, vis domain.Visibility) ([]domain.Member, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, actor domain.Actor) (*domain.Member, error)
	DeactivateMember(ctx context.Context, memberID string, actor domain.Actor) error
}
