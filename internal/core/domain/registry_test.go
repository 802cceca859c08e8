package domain

import (
	"testing"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCounterpartyApplyDefaults(t *testing.T) {
	c := Counterparty{}
	c.ApplyDefaults(today)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), c.NextDueDiligenceDate)

	set := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	c2 := Counterparty{NextDueDiligenceDate: set}
	c2.ApplyDefaults(today)
	assert.Equal(t, set, c2.NextDueDiligenceDate)
}

func TestCounterpartyRenewal(t *testing.T) {
	c := Counterparty{CounterpartyID: "cp", NextDueDiligenceDate: time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)}

	r := c.Renewal(today)

	assert.Equal(t, 30, r.DaysRemaining)
	assert.Equal(t, lifecycle.StatusDueSoon, r.Status)
	assert.True(t, c.RequiresDueDiligenceSoon(today))

	c.NextDueDiligenceDate = time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, lifecycle.StatusOnTrack, c.DueDiligenceStatus(today))
	assert.False(t, c.RequiresDueDiligenceSoon(today))
}

func TestCounterpartyValidate(t *testing.T) {
	listed := true
	c := Counterparty{TypeID: "t", StatusID: "s", ContactEmail: "not-an-email", IsPubliclyListed: &listed}

	fields, ok := apperrors.FieldErrors(c.Validate())

	require.True(t, ok)
	assert.Contains(t, fields, "fullCompanyName")
	assert.Contains(t, fields, "contactEmail")
	assert.Contains(t, fields, "publiclyListedCountry")
}

func TestMemberValidate_PEPRequiresPosition(t *testing.T) {
	m := Member{
		CounterpartyID:       "cp",
		PersonType:           PersonNatural,
		FullName:             "Ana Gómez",
		IdentificationNumber: "52123456",
		Category:             MemberExecutive,
		IsPEP:                true,
	}

	fields, ok := apperrors.FieldErrors(m.Validate(today))
	require.True(t, ok)
	assert.Equal(t, []string{"pepPosition"}, keys(fields))

	m.PEPPosition = "Senator"
	assert.NoError(t, m.Validate(today))
}

func TestMemberValidate_BirthDateInFuture(t *testing.T) {
	m := Member{
		CounterpartyID:       "cp",
		PersonType:           PersonNatural,
		FullName:             "Ana",
		IdentificationNumber: "1",
		Category:             MemberShareholder,
		BirthDate:            datePtr(2030, 1, 1),
	}

	fields, ok := apperrors.FieldErrors(m.Validate(today))
	require.True(t, ok)
	assert.Contains(t, fields, "birthDate")
}

func TestMemberAge(t *testing.T) {
	tests := []struct {
		name  string
		birth *time.Time
		want  *int
	}{
		{"birthday already passed", datePtr(1980, 3, 15), intPtr(44)},
		{"birthday today", datePtr(1980, 7, 1), intPtr(44)},
		{"birthday tomorrow", datePtr(1980, 7, 2), intPtr(43)},
		{"unknown", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Member{BirthDate: tt.birth}.Age(today))
		})
	}
}

func TestDocumentValidate_ExpiringType(t *testing.T) {
	docType := DocumentType{TypeID: "dt", RequiresExpiration: true, IsActive: true}

	d := Document{CounterpartyID: "cp", Category: DocCategoryCompliance}
	fields, ok := apperrors.FieldErrors(d.Validate(docType))
	require.True(t, ok)
	assert.Contains(t, fields, "issueDate")
	assert.Contains(t, fields, "expiryDate")

	d.IssueDate = datePtr(2024, 5, 1)
	d.ExpiryDate = datePtr(2024, 5, 1)
	fields, ok = apperrors.FieldErrors(d.Validate(docType))
	require.True(t, ok)
	assert.Equal(t, []string{"expiryDate"}, keys(fields))

	d.ExpiryDate = datePtr(2025, 5, 1)
	assert.NoError(t, d.Validate(docType))
}

func TestDocumentValidate_NonExpiringType(t *testing.T) {
	docType := DocumentType{TypeID: "dt", IsActive: true}
	d := Document{CounterpartyID: "cp", Category: DocCategoryGeneralFinancial}

	assert.NoError(t, d.Validate(docType))
}

func TestDocumentExpiry(t *testing.T) {
	tests := []struct {
		name    string
		expiry  *time.Time
		status  lifecycle.Status
		expired bool
		soon    bool
	}{
		{"yesterday", datePtr(2024, 6, 30), lifecycle.StatusOverdue, true, false},
		{"today", datePtr(2024, 7, 1), lifecycle.StatusDueToday, false, true},
		{"in thirty days", datePtr(2024, 7, 31), lifecycle.StatusDueSoon, false, true},
		{"in thirty one days", datePtr(2024, 8, 1), lifecycle.StatusOnTrack, false, false},
		{"never", nil, "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Document{DocumentID: "d", ExpiryDate: tt.expiry}
			s := d.Expiry(today)
			assert.Equal(t, tt.status, s.Status)
			assert.Equal(t, tt.expired, s.Expired)
			assert.Equal(t, tt.soon, s.ExpiringSoon)
			assert.Equal(t, tt.expired, d.IsExpired(today))
			assert.Equal(t, tt.soon, d.ExpiringSoon(today))
		})
	}
}

func TestUploadPolicy(t *testing.T) {
	std := StandardUploadPolicy()
	bulk := BulkUploadPolicy()

	assert.NoError(t, std.Check("statements.PDF", 1024))
	assert.NoError(t, bulk.Check("big.xlsx", 40<<20))

	for _, err := range []error{
		std.Check("malware.exe", 10),
		std.Check("big.pdf", 11<<20),
		bulk.Check("huge.pdf", 51<<20),
		std.Check("", 10),
		std.Check("empty.txt", 0),
	} {
		fields, ok := apperrors.FieldErrors(err)
		require.True(t, ok)
		assert.Contains(t, fields, "file")
	}
}

func TestGroupDocuments(t *testing.T) {
	docs := []Document{
		{DocumentID: "a", Category: DocCategoryCompliance},
		{DocumentID: "b", Category: DocCategoryCompliance},
		{DocumentID: "c", Category: DocCategoryGeneralFinancial},
	}

	groups := GroupDocuments(docs)

	require.Len(t, groups, 2)
	assert.Equal(t, DocCategoryCompliance, groups[0].Category)
	assert.Len(t, groups[0].Documents, 2)
	assert.Equal(t, DocCategoryGeneralFinancial, groups[1].Category)
}

func TestSoftDelete(t *testing.T) {
	c := Comment{SoftDelete: Activated()}
	var d Deletable = &c

	d.Deactivate("u1", today)
	d.Deactivate("u2", today.Add(time.Hour))

	assert.False(t, c.IsActive())
	require.NotNil(t, c.DeactivatedBy)
	assert.Equal(t, "u1", *c.DeactivatedBy)
}

func TestFilterActive(t *testing.T) {
	items := []Comment{{CommentID: "a", SoftDelete: Activated()}, {CommentID: "b"}}

	assert.Len(t, FilterActive(items, ActiveOnly), 1)
	assert.Len(t, FilterActive(items, IncludeInactive), 2)
}

func TestActorCanMutate(t *testing.T) {
	assert.True(t, Actor{UserID: "u1"}.CanMutate("u1"))
	assert.False(t, Actor{UserID: "u2"}.CanMutate("u1"))
	assert.True(t, Actor{UserID: "u2", IsStaff: true}.CanMutate("u1"))
	assert.False(t, Actor{}.CanMutate(""))
}

func TestNotificationMarkReadIsIdempotent(t *testing.T) {
	n := Notification{}
	n.MarkRead(today)
	n.MarkRead(today.Add(time.Hour))

	assert.True(t, n.Read)
	assert.Equal(t, today, *n.ReadAt)
}

func TestDueDiligenceResultAndDuration(t *testing.T) {
	dd := DueDiligence{State: DDPending, AuditFields: AuditFields{CreatedAt: today}}
	assert.Nil(t, dd.DurationDays())

	dd.ApplyResult(DDCompleted, today.AddDate(0, 0, 3))
	dd.ApplyResult(DDCompleted, today.AddDate(0, 0, 9))

	require.NotNil(t, dd.DurationDays())
	assert.Equal(t, 3, *dd.DurationDays())
}

func intPtr(i int) *int { return &i }

func keys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
