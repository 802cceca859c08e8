package mapping

import (
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/models"
)

func ToModelCounterpartyType(d domain.CounterpartyType) models.CounterpartyType {
	return models.CounterpartyType{
		TypeID:      d.TypeID,
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCounterpartyType(m models.CounterpartyType) domain.CounterpartyType {
	return domain.CounterpartyType{
		TypeID:      m.TypeID,
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCounterpartyTypeSlice(ms []models.CounterpartyType) []domain.CounterpartyType {
	return mapSlice(ms, ToDomainCounterpartyType)
}

func ToModelCounterpartyStatus(d domain.CounterpartyStatus) models.CounterpartyStatus {
	return models.CounterpartyStatus{
		StatusID:    d.StatusID,
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		Color:       d.Color,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCounterpartyStatus(m models.CounterpartyStatus) domain.CounterpartyStatus {
	return domain.CounterpartyStatus{
		StatusID:    m.StatusID,
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		Color:       m.Color,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCounterpartyStatusSlice(ms []models.CounterpartyStatus) []domain.CounterpartyStatus {
	return mapSlice(ms, ToDomainCounterpartyStatus)
}

func ToModelDocumentType(d domain.DocumentType) models.DocumentType {
	return models.DocumentType{
		TypeID:             d.TypeID,
		Code:               d.Code,
		Name:               d.Name,
		Description:        d.Description,
		RequiresExpiration: d.RequiresExpiration,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainDocumentType(m models.DocumentType) domain.DocumentType {
	return domain.DocumentType{
		TypeID:             m.TypeID,
		Code:               m.Code,
		Name:               m.Name,
		Description:        m.Description,
		RequiresExpiration: m.RequiresExpiration,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainDocumentTypeSlice(ms []models.DocumentType) []domain.DocumentType {
	return mapSlice(ms, ToDomainDocumentType)
}

func ToModelRater(d domain.Rater) models.Rater {
	return models.Rater{RaterID: d.RaterID, Name: d.Name, IsActive: d.IsActive, AuditFields: ToModelAuditFields(d.AuditFields)}
}

func ToDomainRater(m models.Rater) domain.Rater {
	return domain.Rater{RaterID: m.RaterID, Name: m.Name, IsActive: m.IsActive, AuditFields: ToDomainAuditFields(m.AuditFields)}
}

func ToDomainRaterSlice(ms []models.Rater) []domain.Rater {
	return mapSlice(ms, ToDomainRater)
}

func ToModelOutlook(d domain.Outlook) models.Outlook {
	return models.Outlook{OutlookID: d.OutlookID, Name: d.Name, IsActive: d.IsActive, AuditFields: ToModelAuditFields(d.AuditFields)}
}

func ToDomainOutlook(m models.Outlook) domain.Outlook {
	return domain.Outlook{OutlookID: m.OutlookID, Name: m.Name, IsActive: m.IsActive, AuditFields: ToDomainAuditFields(m.AuditFields)}
}

func ToDomainOutlookSlice(ms []models.Outlook) []domain.Outlook {
	return mapSlice(ms, ToDomainOutlook)
}
