package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/qorikusi/backend/internal/domain/errors"
	"github.com/qorikusi/backend/internal/domain/model"
	testhelpers "github.com/qorikusi/backend/internal/test"
)

func TestUpdateProfile(t *testing.T) {
	customers := testhelpers.NewCustomerRepositoryStub()
	seeded := customers.Seed(&model.Customer{Email: "maria@example.test", Active: true})
	uc := NewCustomerUseCase(customers, testhelpers.AddressRepositoryStub{})

	person := model.Person{FirstName: "Maria", LastName: "Quispe", Phone: "+51999888777"}
	updated, err := uc.UpdateProfile(context.Background(), seeded.UUID, person, "Aries", "WaxingCrescent")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Person != person {
		t.Fatalf("expected updated person, got %+v", updated.Person)
	}
	if updated.ZodiacSign != "Aries" || updated.MoonPhase != "WaxingCrescent" {
		t.Fatalf("expected esoteric fields persisted, got %q/%q", updated.ZodiacSign, updated.MoonPhase)
	}
	if customers.ByUUID[seeded.UUID].Person != person {
		t.Fatal("expected repository to hold the new profile")
	}
}

func TestProfileUnknownCustomer(t *testing.T) {
	uc := NewCustomerUseCase(testhelpers.NewCustomerRepositoryStub(), testhelpers.AddressRepositoryStub{})
	if _, err := uc.Profile(context.Background(), uuid.New()); !errors.Is(err, domainErrors.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestAddAddressScopesToCustomer(t *testing.T) {
	customers := testhelpers.NewCustomerRepositoryStub()
	seeded := customers.Seed(&model.Customer{Email: "maria@example.test", Active: true})

	var created *model.Address
	addresses := testhelpers.AddressRepositoryStub{
		CreateFn: func(_ context.Context, address *model.Address) (*model.Address, error) {
			address.UUID = uuid.New()
			created = address
			return address, nil
		},
	}
	uc := NewCustomerUseCase(customers, addresses)

	address := model.Address{Street: "Av. Larco 101", UbigeoCode: "150122", Department: "Lima", Province: "Lima", District: "Miraflores"}
	result, err := uc.AddAddress(context.Background(), seeded.UUID, address)
	if err != nil {
		t.Fatalf("add address failed: %v", err)
	}
	if created == nil || created.CustomerID != seeded.ID {
		t.Fatalf("expected address bound to customer %d, got %+v", seeded.ID, created)
	}
	if result.UUID == uuid.Nil {
		t.Fatal("expected assigned uuid")
	}
}

func TestDeleteAddressForeignAddress(t *testing.T) {
	customers := testhelpers.NewCustomerRepositoryStub()
	seeded := customers.Seed(&model.Customer{Email: "maria@example.test", Active: true})

	addresses := testhelpers.AddressRepositoryStub{
		DeleteFn: func(_ context.Context, customerID int64, _ uuid.UUID) error {
			if customerID != seeded.ID {
				t.Fatalf("expected scoping to customer %d, got %d", seeded.ID, customerID)
			}
			return domainErrors.ErrNotFound
		},
	}
	uc := NewCustomerUseCase(customers, addresses)

	if err := uc.DeleteAddress(context.Background(), seeded.UUID, uuid.New()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
