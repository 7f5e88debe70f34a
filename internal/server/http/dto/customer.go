package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/qorikusi/backend/internal/domain/model"
)

// CustomerResponse is the storefront account projection.
type CustomerResponse struct {
	UUID          uuid.UUID `json:"uuid"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Phone         string    `json:"phone"`
	RegisteredAt  time.Time `json:"registeredAt"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
	ZodiacSign    string    `json:"zodiacSign"`
	MoonPhase     string    `json:"moonPhase"`
}

// NewCustomerResponse maps a customer onto its API projection.
func NewCustomerResponse(c *model.Customer) CustomerResponse {
	return CustomerResponse{
		UUID:          c.UUID,
		Email:         c.Email,
		FirstName:     c.Person.FirstName,
		LastName:      c.Person.LastName,
		Phone:         c.Person.Phone,
		RegisteredAt:  c.RegisteredAt,
		LoyaltyPoints: c.LoyaltyPoints,
		ZodiacSign:    c.ZodiacSign,
		MoonPhase:     c.MoonPhase,
	}
}

// UpdateProfileRequest rewrites the editable profile fields.
type UpdateProfileRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	ZodiacSign string `json:"zodiacSign"`
	MoonPhase  string `json:"moonPhase"`
}

// AddressRequest creates or rewrites a shipping address.
type AddressRequest struct {
	Street     string `json:"street" binding:"required"`
	UbigeoCode string `json:"ubigeoCode"`
	Department string `json:"department"`
	Province   string `json:"province"`
	District   string `json:"district"`
}

// AddressResponse is the shipping address projection.
type AddressResponse struct {
	UUID       uuid.UUID `json:"uuid"`
	Street     string    `json:"street"`
	UbigeoCode string    `json:"ubigeoCode"`
	Department string    `json:"department"`
	Province   string    `json:"province"`
	District   string    `json:"district"`
}

// NewAddressResponse maps an address onto its API projection.
func NewAddressResponse(a *model.Address) AddressResponse {
	return AddressResponse{
		UUID:       a.UUID,
		Street:     a.Street,
		UbigeoCode: a.UbigeoCode,
		Department: a.Department,
		Province:   a.Province,
		District:   a.District,
	}
}
