package domain

import "context"

// Vendor is an exhibitor in the vendor hall.
// swagger:model Vendor
type Vendor struct {
	ID           string  `json:"id" db:"id"`
	ConferenceID string  `json:"conferenceId" db:"conference_id"`
	Name         string  `json:"name" db:"name"`
	BoothNumber  string  `json:"boothNumber" db:"booth_number"`
	Category     string  `json:"category" db:"category"`
	Description  string  `json:"description" db:"description"`
	Website      *string `json:"website,omitempty" db:"website"`
}

// VendorRepository defines vendor storage.
type VendorRepository interface {
	ListVendors(ctx context.Context, conferenceID string) ([]*Vendor, error)
	GetVendorByID(ctx context.Context, id string) (*Vendor, error)
}
