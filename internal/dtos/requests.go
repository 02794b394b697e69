package dtos

import (
	"github.com/google/uuid"

	"github.com/homeseek/backend/internal/models"
)

// ----------------------
// Users
// ----------------------

type RegisterUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=255"`
	Email    string `json:"email_address" validate:"required,email"`
	Address  string `json:"address" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email_address" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ----------------------
// Listings (multipart forms, assembled by the controllers)
// ----------------------

type CreateRentPropertyRequest struct {
	Owner        string `validate:"required"`
	Title        string `validate:"required,min=1,max=255"`
	Description  string `validate:"required"`
	Address      string `validate:"required"`
	LandSize     int32  `validate:"gte=0"`
	BuildingSize int32  `validate:"gte=0"`
	Bedroom      int16  `validate:"gte=0"`
	Bathroom     int16  `validate:"gte=0"`
	MonthlyRent  int64  `validate:"gt=0"`

	PictureFilename string
	Picture         []byte
}

type CreateSalePropertyRequest struct {
	Owner         string `validate:"required"`
	Title         string `validate:"required,min=1,max=255"`
	Description   string `validate:"required"`
	Address       string `validate:"required"`
	LandSize      int32  `validate:"gte=0"`
	BuildingSize  int32  `validate:"gte=0"`
	Bedroom       int16  `validate:"gte=0"`
	Bathroom      int16  `validate:"gte=0"`
	PropertyPrice int64  `validate:"gt=0"`

	PictureFilename string
	Picture         []byte
}

// ----------------------
// Transactions
// ----------------------

type BookRentRequest struct {
	RentPropertyID uuid.UUID   `json:"rent_property_id" validate:"required"`
	StartDate      models.Date `json:"start_date"`
	EndDate        models.Date `json:"end_date"`
}

type BookSaleRequest struct {
	SalePropertyID      uuid.UUID `json:"sale_property_id" validate:"required"`
	DownPayment         int64     `json:"down_payment" validate:"gte=0"`
	InstallmentDuration int32     `json:"installment_duration" validate:"gt=0"`
}
