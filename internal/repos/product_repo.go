package repos

import (
	"database/sql"
	"errors"

	"resellx/internal/domain"

	"github.com/jmoiron/sqlx"
)

const productCols = `id, seller_email, seller_name, category, name, price, location, phone,
  posted, seller_verified, sale_status, advertised`

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.NamedExec(`
  INSERT INTO products(`+productCols+`)
  VALUES(:id, :seller_email, :seller_name, :category, :name, :price, :location, :phone,
    :posted, :seller_verified, :sale_status, :advertised)`, p)
	return err
}

// ByID returns (nil, nil) when no product has this id.
func (r *ProductRepo) ByID(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByCategoryName matches the denormalized category name stored on
// each product, not the category id.
func (r *ProductRepo) ListByCategoryName(name string) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
  SELECT `+productCols+` FROM products WHERE category = ? ORDER BY posted DESC`, name)
	return out, err
}

func (r *ProductRepo) ListBySeller(email string) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
  SELECT `+productCols+` FROM products WHERE seller_email = ? ORDER BY posted DESC`, email)
	return out, err
}

func (r *ProductRepo) ListAdvertised() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
  SELECT `+productCols+` FROM products WHERE advertised = 1 AND sale_status = 'unsold'
  ORDER BY posted DESC`)
	return out, err
}

func (r *ProductRepo) Delete(id string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Upsert writes the whole row back, inserting if the id vanished since
// it was read. A delete racing with an advertise call can therefore
// resurrect the product; accepted anomaly of the merge-and-write-back
// advertising flow.
func (r *ProductRepo) Upsert(p domain.Product) error {
	_, err := r.db.NamedExec(`
  INSERT INTO products(`+productCols+`)
  VALUES(:id, :seller_email, :seller_name, :category, :name, :price, :location, :phone,
    :posted, :seller_verified, :sale_status, :advertised)
  ON CONFLICT(id) DO UPDATE SET
    seller_email=excluded.seller_email,
    seller_name=excluded.seller_name,
    category=excluded.category,
    name=excluded.name,
    price=excluded.price,
    location=excluded.location,
    phone=excluded.phone,
    posted=excluded.posted,
    seller_verified=excluded.seller_verified,
    sale_status=excluded.sale_status,
    advertised=excluded.advertised`, p)
	return err
}

func (r *ProductRepo) SetSaleStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE products SET sale_status = ? WHERE id = ?`, status, id)
	return err
}
