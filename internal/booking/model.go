package booking

import (
	"net/http"
	"time"

	"github.com/generatik/adspace-booking-backend/internal/pkg/apperror"
)

// These messages are part of the client contract and must not be reworded.
var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrAdSpaceNotFound     = apperror.New(http.StatusNotFound, "ad space not found")
	ErrMissingDates        = apperror.New(http.StatusBadRequest, "startDate and endDate are required")
	ErrDatesNotFuture      = apperror.New(http.StatusBadRequest, "startDate and endDate must both be in the future")
	ErrEndBeforeStart      = apperror.New(http.StatusBadRequest, "endDate must be after startDate")
	ErrOnlyPendingApproved = apperror.New(http.StatusBadRequest, "Only pending bookings can be approved")
	ErrOnlyPendingRejected = apperror.New(http.StatusBadRequest, "Only pending bookings can be rejected")
	ErrDuplicateAdvertiser = apperror.New(http.StatusBadRequest, "Advertiser name or email already exists")
	ErrNameTooLong         = apperror.New(http.StatusBadRequest, "Name is too long - max 20 characters permitted")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "invalid booking status")
)

// Status is the approval workflow state of a booking.
// Pending is initial; Approved and Rejected are terminal.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Booking is an advertiser's request to reserve an ad space for a date range.
// TotalCost is computed once at creation and never recomputed.
type Booking struct {
	ID              string
	AdSpaceID       string
	AdvertiserName  string
	AdvertiserEmail string
	StartDate       time.Time // calendar date, midnight UTC
	EndDate         time.Time // calendar date, midnight UTC
	CreatedAt       time.Time
	Status          Status
	TotalCost       int
}

// Filter defines parameters for listing bookings.
type Filter struct {
	Status Status
}
