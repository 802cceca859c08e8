package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// NewAuditFields stamps creation and update with the same user and instant.
func NewAuditFields(userID string, at time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     at,
		CreatedBy:     userID,
		LastUpdatedAt: at,
		LastUpdatedBy: userID,
	}
}

// Touch records an update.
func (a *AuditFields) Touch(userID string, at time.Time) {
	a.LastUpdatedAt = at
	a.LastUpdatedBy = userID
}

// OwnerID returns the user that created the record.
func (a AuditFields) OwnerID() string {
	return a.CreatedBy
}

// Actor identifies who performs a mutation.
type Actor struct {
	UserID  string `json:"userID"`
	IsStaff bool   `json:"isStaff"`
}

// Owned is implemented by records subject to the creator-or-staff rule.
type Owned interface {
	OwnerID() string
}

// CanMutate reports whether the actor may change a record owned by ownerID.
func (a Actor) CanMutate(ownerID string) bool {
	return a.IsStaff || (a.UserID != "" && a.UserID == ownerID)
}

// Deletable is implemented by records removed through soft deletion.
type Deletable interface {
	IsActive() bool
	Deactivate(userID string, at time.Time)
}

// SoftDelete carries the active flag for soft-deletable records.
type SoftDelete struct {
	Active        bool       `json:"isActive"`
	DeactivatedAt *time.Time `json:"deactivatedAt,omitempty"`
	DeactivatedBy *string    `json:"deactivatedBy,omitempty"`
}

// Activated returns the initial state of a new record.
func Activated() SoftDelete {
	return SoftDelete{Active: true}
}

func (s SoftDelete) IsActive() bool {
	return s.Active
}

// Deactivate marks the record inactive. Repeated calls keep the first stamp.
func (s *SoftDelete) Deactivate(userID string, at time.Time) {
	if !s.Active && s.DeactivatedAt != nil {
		return
	}
	s.Active = false
	s.DeactivatedAt = &at
	s.DeactivatedBy = &userID
}

// Visibility selects whether list queries include soft-deleted rows.
// The zero value hides them.
type Visibility int

const (
	ActiveOnly Visibility = iota
	IncludeInactive
)

// Includes reports whether a row with the given active flag is visible.
func (v Visibility) Includes(active bool) bool {
	return active || v == IncludeInactive
}

// FilterActive drops inactive records unless v includes them.
func FilterActive[T interface{ IsActive() bool }](items []T, v Visibility) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if v.Includes(it.IsActive()) {
			out = append(out, it)
		}
	}
	return out
}
