package booking

import (
	"context"
	"errors"
	"time"

	"github.com/generatik/adspace-booking-backend/internal/adspace"
)

type CreateRequest struct {
	AdSpaceID       string
	AdvertiserName  string
	AdvertiserEmail string
	StartDate       time.Time
	EndDate         time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	Approve(ctx context.Context, id string) (*Booking, error)
	Reject(ctx context.Context, id string) (*Booking, error)
}

type service struct {
	repo           Repository
	adSpaceService adspace.Service
}

func NewService(repo Repository, adSpaceService adspace.Service) Service {
	return &service{
		repo:           repo,
		adSpaceService: adSpaceService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Validate the booking window against today's calendar date.
	today := startOfDay(time.Now().UTC())
	if err := ValidateWindow(req.StartDate, req.EndDate, today); err != nil {
		return nil, err
	}

	// 2. Resolve the ad space first; its per-day price drives the total cost.
	space, err := s.adSpaceService.GetByID(ctx, req.AdSpaceID)
	if err != nil {
		switch {
		case errors.Is(err, adspace.ErrNotFound):
			return nil, ErrAdSpaceNotFound
		default:
			return nil, err
		}
	}

	// 3. Cost is fixed at creation time and never recomputed.
	totalCost := TotalCost(req.StartDate, req.EndDate, space.PricePerDay)

	booking := &Booking{
		AdSpaceID:       space.ID,
		AdvertiserName:  req.AdvertiserName,
		AdvertiserEmail: req.AdvertiserEmail,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          StatusPending,
		TotalCost:       totalCost,
	}

	// Advertiser name/email uniqueness and the name length bound are database
	// constraints; the repository reports them as typed conflicts.
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Approve(ctx context.Context, id string) (*Booking, error) {
	return s.transition(ctx, id, StatusApproved, ErrOnlyPendingApproved)
}

func (s *service) Reject(ctx context.Context, id string) (*Booking, error) {
	return s.transition(ctx, id, StatusRejected, ErrOnlyPendingRejected)
}

// transition moves a Pending booking to a terminal state. Approved and
// Rejected are irreversible; any attempt out of a terminal state fails
// with the guard error.
func (s *service) transition(ctx context.Context, id string, to Status, guardErr error) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusPending {
		return nil, guardErr
	}

	updated, err := s.repo.UpdateStatus(ctx, id, StatusPending, to)
	if err != nil {
		// The booking existed a moment ago, so a zero-row update means a
		// concurrent transition won the race.
		if errors.Is(err, ErrNotFound) {
			return nil, guardErr
		}
		return nil, err
	}
	return updated, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
