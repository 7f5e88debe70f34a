package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a registered shop client.
type Customer struct {
	ID            int64
	UUID          uuid.UUID
	Person        Person
	Email         string
	PasswordHash  string
	RegisteredAt  time.Time
	LoyaltyPoints int
	ZodiacSign    string
	MoonPhase     string
	Active        bool
}

// Admin represents a back-office account.
type Admin struct {
	ID           int64
	UUID         uuid.UUID
	Person       Person
	Username     string
	PasswordHash string
	Active       bool
}

// Address is a customer shipping address.
type Address struct {
	ID         int64
	UUID       uuid.UUID
	CustomerID int64
	Street     string
	UbigeoCode string
	Department string
	Province   string
	District   string
}

// Roles carried in access tokens.
const (
	RoleClient = "CLIENT"
	RoleAdmin  = "ADMIN"
)
