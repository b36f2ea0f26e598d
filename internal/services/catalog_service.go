package services

import (
	"time"

	"resellx/internal/domain"
	"resellx/internal/repos"

	"github.com/google/uuid"
)

type CatalogService struct {
	Cats       *repos.CategoryRepo
	Prods      *repos.ProductRepo
	Identities *repos.IdentityRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo, identities *repos.IdentityRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods, Identities: identities}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

// ListProductsByCategory resolves the category by id, then matches
// products on the category name string they store.
func (s *CatalogService) ListProductsByCategory(catID string) ([]domain.Product, error) {
	cat, err := s.Cats.ByID(catID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrNotFound
	}
	return s.Prods.ListByCategoryName(cat.Name)
}

// CreateProduct stamps the posting time and snapshots the caller's
// verification flag. The snapshot is a copy; later verification
// changes never touch already-posted products.
func (s *CatalogService) CreateProduct(p domain.Product, callerEmail string) (domain.Product, error) {
	seller, err := s.Identities.ByEmail(callerEmail)
	if err != nil {
		return domain.Product{}, err
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Posted = time.Now().UTC().Format(time.RFC3339)
	p.SellerVerified = seller != nil && seller.Verified
	p.SaleStatus = domain.SaleStatusUnsold
	p.Advertised = false

	if err := s.Prods.Insert(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) ListOwn(email string) ([]domain.Product, error) {
	return s.Prods.ListBySeller(email)
}

// Delete removes by id with no ownership check; the route is open in
// this design.
func (s *CatalogService) Delete(id string) (int64, error) {
	return s.Prods.Delete(id)
}

// SetAdvertised merges advertised=true into the stored product and
// writes the whole row back. Concurrent advertise calls are safe
// because the merged value is identical either way.
func (s *CatalogService) SetAdvertised(id string) (domain.Product, error) {
	p, err := s.Prods.ByID(id)
	if err != nil {
		return domain.Product{}, err
	}
	if p == nil {
		return domain.Product{}, ErrNotFound
	}
	p.Advertised = true
	if err := s.Prods.Upsert(*p); err != nil {
		return domain.Product{}, err
	}
	return *p, nil
}

// ListAdvertised drops sold products even though their advertised
// flag stays true; the flag is sticky and never cleared.
func (s *CatalogService) ListAdvertised() ([]domain.Product, error) {
	return s.Prods.ListAdvertised()
}
