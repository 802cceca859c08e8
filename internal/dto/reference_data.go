package dto

// ReferenceDataRequest is the payload for saving any lookup entry. Fields that
// do not apply to a kind are ignored (Color for statuses, RequiresExpiration
// for document types).
type ReferenceDataRequest struct {
	Code               string `json:"code" binding:"max=50"`
	Name               string `json:"name" binding:"required,max=100"`
	Description        string `json:"description" binding:"max=500"`
	Color              string `json:"color" binding:"omitempty,hexcolor"`
	RequiresExpiration bool   `json:"requiresExpiration"`
	IsActive           *bool  `json:"isActive"`
}

// Active returns the requested active flag, defaulting to true.
func (r ReferenceDataRequest) Active() bool {
	return r.IsActive == nil || *r.IsActive
}
