package services

import (
	"resellx/internal/domain"
	"resellx/internal/repos"

	"github.com/google/uuid"
)

type BookingService struct {
	Bookings *repos.BookingRepo
}

func NewBookingService(bookings *repos.BookingRepo) *BookingService {
	return &BookingService{Bookings: bookings}
}

// BookingResult is a tagged variant: exactly one of Created or
// AlreadyBooked is set. A duplicate is a normal outcome, not an error.
type BookingResult struct {
	Created       *domain.Booking
	AlreadyBooked bool
}

// Create books a product for an email. An existing booking for the
// same (productId, email) pair yields AlreadyBooked; the store's
// uniqueness constraint backs the check, so two racing calls still
// end with exactly one stored booking.
func (s *BookingService) Create(b domain.Booking) (BookingResult, error) {
	existing, err := s.Bookings.ByProductAndEmail(b.ProductID, b.Email)
	if err != nil {
		return BookingResult{}, err
	}
	if existing != nil {
		return BookingResult{AlreadyBooked: true}, nil
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	inserted, err := s.Bookings.Insert(b)
	if err != nil {
		return BookingResult{}, err
	}
	if !inserted {
		return BookingResult{AlreadyBooked: true}, nil
	}
	return BookingResult{Created: &b}, nil
}
