package adspace

import (
	"context"
	"strings"
)

// UpdateRequest is a full-record replacement: every mutable field is written.
type UpdateRequest struct {
	Name               string
	Type               Type
	City               City
	PricePerDay        int
	Address            string
	AvailabilityStatus AvailabilityStatus
}

type Service interface {
	GetByID(ctx context.Context, id string) (*AdSpace, error)
	List(ctx context.Context, filter Filter) ([]*AdSpace, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*AdSpace, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*AdSpace, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns only Available ad spaces; Unavailable ones never show up
// in the catalog regardless of filters.
func (s *service) List(ctx context.Context, filter Filter) ([]*AdSpace, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, ErrInvalidType
	}
	if filter.City != "" && !filter.City.Valid() {
		return nil, ErrInvalidCity
	}
	return s.repo.ListAvailable(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*AdSpace, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.PricePerDay <= 0 {
		return nil, ErrInvalidPrice
	}
	if !req.Type.Valid() {
		return nil, ErrInvalidType
	}
	if !req.City.Valid() {
		return nil, ErrInvalidCity
	}
	if !req.AvailabilityStatus.Valid() {
		return nil, ErrInvalidAvailability
	}

	space, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	space.Name = req.Name
	space.Type = req.Type
	space.City = req.City
	space.PricePerDay = req.PricePerDay
	space.Address = req.Address
	space.AvailabilityStatus = req.AvailabilityStatus

	if err := s.repo.Update(ctx, space); err != nil {
		return nil, err
	}
	return space, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
