package repos

import (
	"database/sql"
	"errors"

	"resellx/internal/domain"

	"github.com/jmoiron/sqlx"
)

type IdentityRepo struct{ DB *sqlx.DB }

func NewIdentityRepo(db *sqlx.DB) *IdentityRepo { return &IdentityRepo{DB: db} }

// ByEmail returns (nil, nil) when no identity is registered under email.
func (r *IdentityRepo) ByEmail(email string) (*domain.Identity, error) {
	var id domain.Identity
	err := r.DB.Get(&id, `SELECT email,name,role,verified FROM identities WHERE LOWER(email)=LOWER(?)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (r *IdentityRepo) Insert(id domain.Identity) error {
	_, err := r.DB.Exec(`INSERT INTO identities(email,name,role,verified) VALUES(?,?,?,?)`,
		id.Email, id.Name, id.Role, id.Verified)
	return err
}

// SetVerified flips the verification flag. The flag is owned by an
// out-of-band review process; products snapshot it at post time.
func (r *IdentityRepo) SetVerified(email string, verified bool) error {
	_, err := r.DB.Exec(`UPDATE identities SET verified=? WHERE LOWER(email)=LOWER(?)`, verified, email)
	return err
}
