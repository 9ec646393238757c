// Package seed loads the demo catalog and two pending booking requests
// into an empty database, so a fresh instance has something to show.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/generatik/adspace-booking-backend/internal/adspace"
	"github.com/generatik/adspace-booking-backend/internal/booking"
)

// Run inserts the demo data unless either table already has rows.
func Run(ctx context.Context, adSpaceRepo adspace.Repository, bookingRepo booking.Repository) error {
	adSpaceCount, err := adSpaceRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	bookingCount, err := bookingRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if adSpaceCount > 0 || bookingCount > 0 {
		logrus.Debug("seed skipped, database is not empty")
		return nil
	}

	spaces := []*adspace.AdSpace{
		{Name: "Times Square", Type: adspace.TypeBillboard, PricePerDay: 300, City: adspace.CityBucuresti, Address: "Piata Unirii 1", AvailabilityStatus: adspace.Available},
		{Name: "Mall Entrance", Type: adspace.TypeMallDisplay, PricePerDay: 200, City: adspace.CityCluj, Address: "Iulius Mall, intrarea principala", AvailabilityStatus: adspace.Available},
		{Name: "Bus Stop", Type: adspace.TypeBusStop, PricePerDay: 100, City: adspace.CityIasi, Address: "Str. Victoriei, statia 3", AvailabilityStatus: adspace.Available},
		{Name: "Transit ad", Type: adspace.TypeTransitAd, PricePerDay: 100, City: adspace.CityIasi, Address: "Str. Roman Musat", AvailabilityStatus: adspace.Available},
		{Name: "Times Square 2", Type: adspace.TypeBillboard, PricePerDay: 300, City: adspace.CityBucuresti, Address: "Piata Unirii 1", AvailabilityStatus: adspace.Available},
		{Name: "Mall Entrance 2", Type: adspace.TypeMallDisplay, PricePerDay: 200, City: adspace.CityCluj, Address: "Iulius Mall, intrarea principala", AvailabilityStatus: adspace.Available},
		{Name: "Bus Stop 2", Type: adspace.TypeBusStop, PricePerDay: 100, City: adspace.CityIasi, Address: "Str. Victoriei, statia 3", AvailabilityStatus: adspace.Available},
		{Name: "Transit ad 2", Type: adspace.TypeTransitAd, PricePerDay: 100, City: adspace.CityIasi, Address: "Str. Roman Musat", AvailabilityStatus: adspace.Available},
	}

	for _, s := range spaces {
		if err := adSpaceRepo.Create(ctx, s); err != nil {
			return fmt.Errorf("seed ad space %q: %w", s.Name, err)
		}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	bookings := []*booking.Booking{
		{
			AdSpaceID:       spaces[0].ID,
			AdvertiserName:  "Acme Corp",
			AdvertiserEmail: "contact@acme.com",
			StartDate:       today.AddDate(0, 0, 3),
			EndDate:         today.AddDate(0, 0, 10),
			Status:          booking.StatusPending,
		},
		{
			AdSpaceID:       spaces[1].ID,
			AdvertiserName:  "Cool Startup",
			AdvertiserEmail: "hello@cool.io",
			StartDate:       today.AddDate(0, 0, 5),
			EndDate:         today.AddDate(0, 0, 8),
			Status:          booking.StatusPending,
		},
	}
	prices := []int{spaces[0].PricePerDay, spaces[1].PricePerDay}

	for i, b := range bookings {
		b.TotalCost = booking.TotalCost(b.StartDate, b.EndDate, prices[i])
		if err := bookingRepo.Create(ctx, b); err != nil {
			return fmt.Errorf("seed booking for %q: %w", b.AdvertiserName, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"ad_spaces": len(spaces),
		"bookings":  len(bookings),
	}).Info("demo data seeded")
	return nil
}
