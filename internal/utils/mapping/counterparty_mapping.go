package mapping

import (
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/models"
)

// ToModelCounterparty converts a domain Counterparty to a model Counterparty
func ToModelCounterparty(d domain.Counterparty) models.Counterparty {
	m := models.Counterparty{
		CounterpartyID:                   d.CounterpartyID,
		FullCompanyName:                  d.FullCompanyName,
		TradingName:                      d.TradingName,
		CompanyWebsite:                   d.CompanyWebsite,
		HomeRegulatoryBody:               d.HomeRegulatoryBody,
		IsLicensedByRegulatoryBody:       d.IsLicensedByRegulatoryBody,
		IsPubliclyListed:                 d.IsPubliclyListed,
		PubliclyListedCountry:            d.PubliclyListedCountry,
		IsHoldingCompany:                 d.IsHoldingCompany,
		ExternalAuditors:                 d.ExternalAuditors,
		RegisteredAddress:                d.RegisteredAddress,
		BusinessAddress:                  d.BusinessAddress,
		ContactTelephone:                 d.ContactTelephone,
		ContactEmail:                     d.ContactEmail,
		CompanyNatureBusiness:            d.CompanyNatureBusiness,
		Domicile:                         d.Domicile,
		CompanyIncorporationRegistration: d.CompanyIncorporationRegistration,
		DateIncorporation:                d.DateIncorporation,
		TypeID:                           d.TypeID,
		StatusID:                         d.StatusID,
		NextDueDiligenceDate:             d.NextDueDiligenceDate,
		Description:                      d.Description,
		Notes:                            d.Notes,
		AuditFields:                      ToModelAuditFields(d.AuditFields),
	}
	if d.NumberOfEmployees != nil {
		n := int32(*d.NumberOfEmployees)
		m.NumberOfEmployees = &n
	}
	return m
}

// ToDomainCounterparty converts a model Counterparty to a domain Counterparty
func ToDomainCounterparty(m models.Counterparty) domain.Counterparty {
	d := domain.Counterparty{
		CounterpartyID:                   m.CounterpartyID,
		FullCompanyName:                  m.FullCompanyName,
		TradingName:                      m.TradingName,
		CompanyWebsite:                   m.CompanyWebsite,
		HomeRegulatoryBody:               m.HomeRegulatoryBody,
		IsLicensedByRegulatoryBody:       m.IsLicensedByRegulatoryBody,
		IsPubliclyListed:                 m.IsPubliclyListed,
		PubliclyListedCountry:            m.PubliclyListedCountry,
		IsHoldingCompany:                 m.IsHoldingCompany,
		ExternalAuditors:                 m.ExternalAuditors,
		RegisteredAddress:                m.RegisteredAddress,
		BusinessAddress:                  m.BusinessAddress,
		ContactTelephone:                 m.ContactTelephone,
		ContactEmail:                     m.ContactEmail,
		CompanyNatureBusiness:            m.CompanyNatureBusiness,
		Domicile:                         m.Domicile,
		CompanyIncorporationRegistration: m.CompanyIncorporationRegistration,
		DateIncorporation:                utcPtr(m.DateIncorporation),
		TypeID:                           m.TypeID,
		StatusID:                         m.StatusID,
		NextDueDiligenceDate:             m.NextDueDiligenceDate.UTC(),
		Description:                      m.Description,
		Notes:                            m.Notes,
		AuditFields:                      ToDomainAuditFields(m.AuditFields),
	}
	if m.NumberOfEmployees != nil {
		n := int(*m.NumberOfEmployees)
		d.NumberOfEmployees = &n
	}
	return d
}

func ToDomainCounterpartySlice(ms []models.Counterparty) []domain.Counterparty {
	return mapSlice(ms, ToDomainCounterparty)
}

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:             d.MemberID,
		CounterpartyID:       d.CounterpartyID,
		PersonType:           string(d.PersonType),
		FullName:             d.FullName,
		IdentificationNumber: d.IdentificationNumber,
		Nationality:          d.Nationality,
		BirthDate:            d.BirthDate,
		Category:             string(d.Category),
		IsPEP:                d.IsPEP,
		PEPPosition:          d.PEPPosition,
		SoftDelete:           ToModelSoftDelete(d.SoftDelete),
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:             m.MemberID,
		CounterpartyID:       m.CounterpartyID,
		PersonType:           domain.PersonType(m.PersonType),
		FullName:             m.FullName,
		IdentificationNumber: m.IdentificationNumber,
		Nationality:          m.Nationality,
		BirthDate:            utcPtr(m.BirthDate),
		Category:             domain.MemberCategory(m.Category),
		IsPEP:                m.IsPEP,
		PEPPosition:          m.PEPPosition,
		SoftDelete:           ToDomainSoftDelete(m.SoftDelete),
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainMemberSlice(ms []models.Member) []domain.Member {
	return mapSlice(ms, ToDomainMember)
}

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:      d.DocumentID,
		CounterpartyID:  d.CounterpartyID,
		DocumentTypeID:  d.DocumentTypeID,
		Category:        string(d.Category),
		Description:     d.Description,
		FileKey:         d.File.Key,
		FileName:        d.File.FileName,
		FileSize:        d.File.Size,
		FileContentType: d.File.ContentType,
		IssueDate:       d.IssueDate,
		ExpiryDate:      d.ExpiryDate,
		SoftDelete:      ToModelSoftDelete(d.SoftDelete),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:     m.DocumentID,
		CounterpartyID: m.CounterpartyID,
		DocumentTypeID: m.DocumentTypeID,
		Category:       domain.DocumentCategory(m.Category),
		Description:    m.Description,
		File: domain.BlobRef{
			Key:         m.FileKey,
			FileName:    m.FileName,
			Size:        m.FileSize,
			ContentType: m.FileContentType,
		},
		IssueDate:   utcPtr(m.IssueDate),
		ExpiryDate:  utcPtr(m.ExpiryDate),
		SoftDelete:  ToDomainSoftDelete(m.SoftDelete),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	return mapSlice(ms, ToDomainDocument)
}

func ToModelComment(d domain.Comment) models.Comment {
	return models.Comment{
		CommentID:      d.CommentID,
		CounterpartyID: d.CounterpartyID,
		Content:        d.Content,
		Edited:         d.Edited,
		SoftDelete:     ToModelSoftDelete(d.SoftDelete),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID:      m.CommentID,
		CounterpartyID: m.CounterpartyID,
		Content:        m.Content,
		Edited:         m.Edited,
		SoftDelete:     ToDomainSoftDelete(m.SoftDelete),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCommentSlice(ms []models.Comment) []domain.Comment {
	return mapSlice(ms, ToDomainComment)
}

func ToModelRating(d domain.Rating) models.Rating {
	return models.Rating{
		RatingID:       d.RatingID,
		CounterpartyID: d.CounterpartyID,
		RaterID:        d.RaterID,
		OutlookID:      d.OutlookID,
		Rating:         d.Rating,
		Scope:          string(d.Scope),
		RatingDate:     d.RatingDate,
		BlobColumns:    ToModelBlob(d.SupportingFile),
		SoftDelete:     ToModelSoftDelete(d.SoftDelete),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainRating(m models.Rating) domain.Rating {
	return domain.Rating{
		RatingID:       m.RatingID,
		CounterpartyID: m.CounterpartyID,
		RaterID:        m.RaterID,
		OutlookID:      m.OutlookID,
		Rating:         m.Rating,
		Scope:          domain.RatingScope(m.Scope),
		RatingDate:     m.RatingDate.UTC(),
		SupportingFile: ToDomainBlob(m.BlobColumns),
		SoftDelete:     ToDomainSoftDelete(m.SoftDelete),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainRatingSlice(ms []models.Rating) []domain.Rating {
	return mapSlice(ms, ToDomainRating)
}
