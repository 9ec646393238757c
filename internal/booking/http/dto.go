package http

import (
	"time"

	"github.com/generatik/adspace-booking-backend/internal/booking"
	"github.com/generatik/adspace-booking-backend/internal/pkg/dateonly"
)

type BookingResponse struct {
	ID              string        `json:"id"`
	AdSpaceID       string        `json:"adSpaceId"`
	AdvertiserName  string        `json:"advertiserName"`
	AdvertiserEmail string        `json:"advertiserEmail"`
	StartDate       dateonly.Date `json:"startDate"`
	EndDate         dateonly.Date `json:"endDate"`
	CreatedAt       time.Time     `json:"createdAt"`
	Status          string        `json:"status"`
	TotalCost       int           `json:"totalCost"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		AdSpaceID:       b.AdSpaceID,
		AdvertiserName:  b.AdvertiserName,
		AdvertiserEmail: b.AdvertiserEmail,
		StartDate:       dateonly.FromTime(b.StartDate),
		EndDate:         dateonly.FromTime(b.EndDate),
		CreatedAt:       b.CreatedAt,
		Status:          string(b.Status),
		TotalCost:       b.TotalCost,
	}
}

// CreateBookingRequest carries a new booking request. The dates are not
// marked required here: the lifecycle manager checks presence itself so the
// contractual "startDate and endDate are required" message is produced.
type CreateBookingRequest struct {
	AdSpaceID       string        `json:"adSpaceId" binding:"required,uuid"`
	AdvertiserName  string        `json:"advertiserName" binding:"required"`
	AdvertiserEmail string        `json:"advertiserEmail" binding:"required,email"`
	StartDate       dateonly.Date `json:"startDate"`
	EndDate         dateonly.Date `json:"endDate"`
}
