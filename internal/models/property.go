package models

import "github.com/google/uuid"

// PropertyStatusAvailable is the only listing status in use; listing
// lifecycle is driven by the presence of an active transaction, not by
// this field.
const PropertyStatusAvailable = "Available"

// RentProperty is a listing offered for monthly rent. The lt/lb wire
// names (land size / building size, in square meters) are kept for
// front-end compatibility.
type RentProperty struct {
	ID           uuid.UUID `json:"rent_property_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	OwnerID      uuid.UUID `json:"owner_id"`
	LandSize     int32     `json:"lt"`
	BuildingSize int32     `json:"lb"`
	Bedroom      int16     `json:"bedroom"`
	Bathroom     int16     `json:"bathroom"`
	MonthlyRent  int64     `json:"monthly_rent"`
	PictureURL   string    `json:"picture_url"`
	Status       string    `json:"status"`
}

// SaleProperty is a listing offered for one-time purchase.
type SaleProperty struct {
	ID            uuid.UUID `json:"sale_property_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	OwnerID       uuid.UUID `json:"owner_id"`
	LandSize      int32     `json:"lt"`
	BuildingSize  int32     `json:"lb"`
	Bedroom       int16     `json:"bedroom"`
	Bathroom      int16     `json:"bathroom"`
	PropertyPrice int64     `json:"property_price"`
	PictureURL    string    `json:"picture_url"`
	Status        string    `json:"status"`
}
