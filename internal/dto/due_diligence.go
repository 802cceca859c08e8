package dto

// RequestDueDiligenceRequest opens a screening for a member.
type RequestDueDiligenceRequest struct {
	MemberID string `json:"memberID" binding:"required"`
}

// DueDiligenceResultRequest is the screening provider callback payload.
// One of DueDiligenceID or ExternalRequestID identifies the request.
type DueDiligenceResultRequest struct {
	DueDiligenceID    string  `json:"dueDiligenceID" binding:"required_without=ExternalRequestID"`
	ExternalRequestID string  `json:"externalRequestID" binding:"required_without=DueDiligenceID"`
	State             string  `json:"state" binding:"required,oneof=pending in_progress completed failed cancelled"`
	RiskLevel         *string `json:"riskLevel" binding:"omitempty,oneof=low medium high critical"`
	Summary           string  `json:"summary"`
	PositiveMatches   int     `json:"positiveMatches" binding:"min=0"`
}

// DueDiligenceDecisionRequest carries the analyst comments of an approval or rejection.
type DueDiligenceDecisionRequest struct {
	Comments string `json:"comments" binding:"max=5000"`
}
