package adspace

import (
	"net/http"

	"github.com/generatik/adspace-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "ad space not found")
	ErrDuplicateName       = apperror.New(http.StatusConflict, "ad space name already exists")
	ErrReferencedByBooking = apperror.New(http.StatusConflict, "ad space is referenced by existing bookings")
	ErrEmptyName           = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidPrice        = apperror.New(http.StatusBadRequest, "pricePerDay must be a positive integer")
	ErrInvalidType         = apperror.New(http.StatusBadRequest, "invalid ad space type")
	ErrInvalidCity         = apperror.New(http.StatusBadRequest, "invalid city")
	ErrInvalidAvailability = apperror.New(http.StatusBadRequest, "invalid availability status")
)

// Type is the kind of physical display an ad space is.
// The string tokens are persisted as-is and must not change.
type Type string

const (
	TypeBillboard   Type = "Billboard"
	TypeMallDisplay Type = "MallDisplay"
	TypeBusStop     Type = "BusStop"
	TypeTransitAd   Type = "TransitAd"
)

var validTypes = []Type{TypeBillboard, TypeMallDisplay, TypeBusStop, TypeTransitAd}

func (t Type) Valid() bool {
	for _, v := range validTypes {
		if t == v {
			return true
		}
	}
	return false
}

// City is the closed set of cities the catalog operates in.
type City string

const (
	CityBucuresti City = "Bucuresti"
	CityCluj      City = "Cluj"
	CityRoman     City = "Roman"
	CityBrasov    City = "Brasov"
	CitySibiu     City = "Sibiu"
	CityConstanta City = "Constanta"
	CityCraiova   City = "Craiova"
	CityIasi      City = "Iasi"
	CitySuceava   City = "Suceava"
)

var validCities = []City{
	CityBucuresti, CityCluj, CityRoman, CityBrasov, CitySibiu,
	CityConstanta, CityCraiova, CityIasi, CitySuceava,
}

func (c City) Valid() bool {
	for _, v := range validCities {
		if c == v {
			return true
		}
	}
	return false
}

// AvailabilityStatus flags whether an ad space is bookable at all,
// independent of any booking's state.
type AvailabilityStatus string

const (
	Available   AvailabilityStatus = "Available"
	Unavailable AvailabilityStatus = "Unavailable"
)

func (s AvailabilityStatus) Valid() bool {
	return s == Available || s == Unavailable
}

// AdSpace is a physical or display location available for advertisement placement.
type AdSpace struct {
	ID                 string
	Name               string
	Type               Type
	City               City
	PricePerDay        int
	Address            string
	AvailabilityStatus AvailabilityStatus
}

// Filter defines parameters for listing ad spaces.
// Listings only ever return Available items; Type and City narrow further.
type Filter struct {
	Type Type
	City City
}
