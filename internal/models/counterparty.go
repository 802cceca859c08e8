package models

import "time"

// Counterparty is a row of counterparties.
type Counterparty struct {
	CounterpartyID                   string     `db:"counterparty_id"`
	FullCompanyName                  string     `db:"full_company_name"`
	TradingName                      string     `db:"trading_name"`
	CompanyWebsite                   string     `db:"company_website"`
	HomeRegulatoryBody               string     `db:"home_regulatory_body"`
	IsLicensedByRegulatoryBody       *bool      `db:"is_licensed_by_regulatory_body"`
	IsPubliclyListed                 *bool      `db:"is_publicly_listed"`
	PubliclyListedCountry            string     `db:"publicly_listed_country"`
	IsHoldingCompany                 *bool      `db:"is_holding_company"`
	ExternalAuditors                 string     `db:"external_auditors"`
	RegisteredAddress                string     `db:"registered_address"`
	BusinessAddress                  string     `db:"business_address"`
	ContactTelephone                 string     `db:"contact_telephone"`
	ContactEmail                     string     `db:"contact_email"`
	CompanyNatureBusiness            string     `db:"company_nature_business"`
	Domicile                         string     `db:"domicile"`
	CompanyIncorporationRegistration string     `db:"company_incorporation_registration"`
	DateIncorporation                *time.Time `db:"date_incorporation"`
	NumberOfEmployees                *int32     `db:"number_of_employees"`
	TypeID                           string     `db:"type_id"`
	StatusID                         string     `db:"status_id"`
	NextDueDiligenceDate             time.Time  `db:"next_due_diligence_date"`
	Description                      string     `db:"description"`
	Notes                            string     `db:"notes"`
	AuditFields
}

// Member is a row of members.
type Member struct {
	MemberID             string     `db:"member_id"`
	CounterpartyID       string     `db:"counterparty_id"`
	PersonType           string     `db:"person_type"`
	FullName             string     `db:"full_name"`
	IdentificationNumber string     `db:"identification_number"`
	Nationality          string     `db:"nationality"`
	BirthDate            *time.Time `db:"birth_date"`
	Category             string     `db:"category"`
	IsPEP                bool       `db:"is_pep"`
	PEPPosition          string     `db:"pep_position"`
	SoftDelete
	AuditFields
}

// Document is a row of documents.
type Document struct {
	DocumentID      string     `db:"document_id"`
	CounterpartyID  string     `db:"counterparty_id"`
	DocumentTypeID  string     `db:"document_type_id"`
	Category        string     `db:"category"`
	Description     string     `db:"description"`
	FileKey         string     `db:"file_key"`
	FileName        string     `db:"file_name"`
	FileSize        int64      `db:"file_size"`
	FileContentType string     `db:"file_content_type"`
	IssueDate       *time.Time `db:"issue_date"`
	ExpiryDate      *time.Time `db:"expiry_date"`
	SoftDelete
	AuditFields
}

// Comment is a row of comments.
type Comment struct {
	CommentID      string `db:"comment_id"`
	CounterpartyID string `db:"counterparty_id"`
	Content        string `db:"content"`
	Edited         bool   `db:"edited"`
	SoftDelete
	AuditFields
}

// Rating is a row of ratings.
type Rating struct {
	RatingID       string    `db:"rating_id"`
	CounterpartyID string    `db:"counterparty_id"`
	RaterID        string    `db:"rater_id"`
	OutlookID      string    `db:"outlook_id"`
	Rating         string    `db:"rating"`
	Scope          string    `db:"scope"`
	RatingDate     time.Time `db:"rating_date"`
	BlobColumns
	SoftDelete
	AuditFields
}
