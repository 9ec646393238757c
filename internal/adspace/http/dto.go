package http

import (
	"github.com/generatik/adspace-booking-backend/internal/adspace"
)

type AdSpaceResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	PricePerDay        int    `json:"pricePerDay"`
	City               string `json:"city"`
	Address            string `json:"address"`
	AvailabilityStatus string `json:"availabilityStatus"`
	Type               string `json:"type"`
}

func NewAdSpaceResponse(s *adspace.AdSpace) AdSpaceResponse {
	return AdSpaceResponse{
		ID:                 s.ID,
		Name:               s.Name,
		PricePerDay:        s.PricePerDay,
		City:               string(s.City),
		Address:            s.Address,
		AvailabilityStatus: string(s.AvailabilityStatus),
		Type:               string(s.Type),
	}
}

// UpdateAdSpaceRequest replaces the full record; there is no partial patch.
type UpdateAdSpaceRequest struct {
	Name               string `json:"name" binding:"required,max=50"`
	PricePerDay        int    `json:"pricePerDay" binding:"required"`
	City               string `json:"city" binding:"required"`
	Address            string `json:"address" binding:"required"`
	AvailabilityStatus string `json:"availabilityStatus" binding:"required"`
	Type               string `json:"type" binding:"required"`
}
