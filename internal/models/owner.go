package models

import "github.com/google/uuid"

// Owner is immutable reference data for listings.
type Owner struct {
	ID      uuid.UUID `json:"owner_id"`
	Name    string    `json:"owner_name"`
	Address string    `json:"address"`
	Email   string    `json:"email"`
}
