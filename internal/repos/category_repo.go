package repos

import (
	"database/sql"
	"errors"

	"resellx/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `SELECT id, name FROM categories ORDER BY name`)
	return out, err
}

// ByID returns (nil, nil) when the category does not exist.
func (r *CategoryRepo) ByID(id string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `SELECT id, name FROM categories WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
