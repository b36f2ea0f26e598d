package repos

import (
	"database/sql"
	"errors"

	"resellx/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BookingRepo struct{ db *sqlx.DB }

func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

// ByProductAndEmail returns (nil, nil) when no booking matches.
func (r *BookingRepo) ByProductAndEmail(productID, email string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.Get(&b, `
  SELECT id, product_id, email, product_name, price, phone, location
  FROM bookings WHERE product_id = ? AND email = ?`, productID, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Insert reports false without error when a booking for the same
// (product_id, email) already exists. The uniqueness constraint does
// the check, so two concurrent inserts cannot both land.
func (r *BookingRepo) Insert(b domain.Booking) (bool, error) {
	res, err := r.db.NamedExec(`
  INSERT INTO bookings(id, product_id, email, product_name, price, phone, location)
  VALUES(:id, :product_id, :email, :product_name, :price, :phone, :location)
  ON CONFLICT(product_id, email) DO NOTHING`, b)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
