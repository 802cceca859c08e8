package mapping

import (
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone,
		Department:   d.Department,
		Position:     d.Position,
		IsStaff:      d.IsStaff,
		IsActive:     d.IsActive,
		LastLoginAt:  d.LastLoginAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Phone:        m.Phone,
		Department:   m.Department,
		Position:     m.Position,
		IsStaff:      m.IsStaff,
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
