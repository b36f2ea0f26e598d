package handlers

import (
	"resellx/internal/config"
	"resellx/internal/repos"
	"resellx/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Tokens     *services.TokenService
	Identities *repos.IdentityRepo

	IdentityHandler *IdentityHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	BookingHandler  *BookingHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	identityRepo := repos.NewIdentityRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	bookingRepo := repos.NewBookingRepo(db)

	tokenSvc := services.NewTokenService(cfg.TokenSecret, identityRepo)
	identitySvc := services.NewIdentityService(identityRepo)
	catalogSvc := services.NewCatalogService(catRepo, prodRepo, identityRepo)
	bookingSvc := services.NewBookingService(bookingRepo)

	return &Deps{
		Tokens:     tokenSvc,
		Identities: identityRepo,

		IdentityHandler: &IdentityHandler{Identity: identitySvc, Tokens: tokenSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		BookingHandler:  &BookingHandler{Bookings: bookingSvc},
	}
}
