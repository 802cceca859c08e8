package dto

import (
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
	Symbol       string `json:"symbol" binding:"required,max=10"`
	Name         string `json:"name" binding:"required,max=100"`
}

// UpdateCurrencyRequest defines the data allowed for updating a currency.
type UpdateCurrencyRequest struct {
	Symbol   *string `json:"symbol" binding:"omitempty,max=10"`
	Name     *string `json:"name" binding:"omitempty,max=100"`
	IsActive *bool   `json:"isActive"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string    `json:"currencyCode"`
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Symbol:        curr.Symbol,
		Name:          curr.Name,
		IsActive:      curr.IsActive,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
