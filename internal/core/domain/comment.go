package domain

import (
	"strings"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
)

// MaxCommentLength bounds comment content.
const MaxCommentLength = 5000

// Comment is a free-text note on a counterparty. Edited flips to true on
// every update after creation.
type Comment struct {
	CommentID      string `json:"commentID"`
	CounterpartyID string `json:"counterpartyID"`
	Content        string `json:"content"`
	Edited         bool   `json:"edited"`
	SoftDelete
	AuditFields
}

// AuthorID returns the comment author.
func (c Comment) AuthorID() string {
	return c.CreatedBy
}

func (c Comment) Validate() error {
	v := &apperrors.ValidationError{}
	content := strings.TrimSpace(c.Content)
	if content == "" {
		v.Add("content", "is required")
	}
	if len(content) > MaxCommentLength {
		v.Add("content", "is too long")
	}
	return v.OrNil()
}
