package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/qorikusi/backend/internal/domain/model"
	"github.com/qorikusi/backend/internal/domain/repository"
)

// CustomerUseCase covers the storefront account profile and its shipping
// addresses.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	addresses repository.AddressRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository, addresses repository.AddressRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, addresses: addresses}
}

// Profile returns the customer behind the token.
func (u *CustomerUseCase) Profile(ctx context.Context, customerUUID uuid.UUID) (*model.Customer, error) {
	return u.customers.GetByUUID(ctx, customerUUID)
}

// UpdateProfile rewrites the editable profile fields and returns the fresh
// projection.
func (u *CustomerUseCase) UpdateProfile(ctx context.Context, customerUUID uuid.UUID, person model.Person, zodiacSign, moonPhase string) (*model.Customer, error) {
	customer, err := u.customers.GetByUUID(ctx, customerUUID)
	if err != nil {
		return nil, err
	}
	if err := u.customers.UpdateProfile(ctx, customer.ID, person, zodiacSign, moonPhase); err != nil {
		return nil, err
	}
	customer.Person = person
	customer.ZodiacSign = zodiacSign
	customer.MoonPhase = moonPhase
	return customer, nil
}

// Addresses lists the customer's shipping addresses.
func (u *CustomerUseCase) Addresses(ctx context.Context, customerUUID uuid.UUID) ([]model.Address, error) {
	customer, err := u.customers.GetByUUID(ctx, customerUUID)
	if err != nil {
		return nil, err
	}
	return u.addresses.ListByCustomer(ctx, customer.ID)
}

// AddAddress stores a new shipping address for the customer.
func (u *CustomerUseCase) AddAddress(ctx context.Context, customerUUID uuid.UUID, address model.Address) (*model.Address, error) {
	customer, err := u.customers.GetByUUID(ctx, customerUUID)
	if err != nil {
		return nil, err
	}
	address.CustomerID = customer.ID
	return u.addresses.Create(ctx, &address)
}

// UpdateAddress rewrites one of the customer's addresses. Addresses owned by
// someone else are invisible here and report not found.
func (u *CustomerUseCase) UpdateAddress(ctx context.Context, customerUUID uuid.UUID, address model.Address) (*model.Address, error) {
	customer, err := u.customers.GetByUUID(ctx, customerUUID)
	if err != nil {
		return nil, err
	}
	return u.addresses.Update(ctx, customer.ID, &address)
}

// DeleteAddress removes one of the customer's addresses.
func (u *CustomerUseCase) DeleteAddress(ctx context.Context, customerUUID, addressUUID uuid.UUID) error {
	customer, err := u.customers.GetByUUID(ctx, customerUUID)
	if err != nil {
		return err
	}
	return u.addresses.Delete(ctx, customer.ID, addressUUID)
}
