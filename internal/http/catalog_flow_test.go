package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"resellx/internal/domain"
)

// Seller lifecycle: register, list own (empty), post a product, list
// own again, advertise it, see it in the advertisement feed.
func TestSellerProductFlow(t *testing.T) {
	app, db, _ := newTestApp(t)
	tok := registerAndToken(t, app, "a@x.com", domain.RoleSeller)

	req := httptest.NewRequest("GET", "/myproducts?email=a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var products []domain.Product
	decodeBody(t, resp, &products)
	if len(products) != 0 {
		t.Fatalf("fresh seller should own nothing, got %+v", products)
	}

	req = jsonReq("POST", "/products", `{"sellerEmail":"a@x.com","category":"Apple","name":"MacBook Air","price":700}`)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create product: want 200, got %d", resp.StatusCode)
	}
	var created domain.Product
	decodeBody(t, resp, &created)
	if created.SaleStatus != domain.SaleStatusUnsold {
		t.Fatalf("want unsold, got %q", created.SaleStatus)
	}
	if created.ID == "" {
		t.Fatal("created product has no id")
	}

	req = httptest.NewRequest("GET", "/myproducts?email=a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	products = nil
	decodeBody(t, resp, &products)
	if len(products) != 1 || products[0].SaleStatus != domain.SaleStatusUnsold {
		t.Fatalf("want one unsold product, got %+v", products)
	}

	// advertise twice; both calls succeed identically
	for i := 0; i < 2; i++ {
		resp, err = app.Test(httptest.NewRequest("GET", "/advertisement/"+created.ID, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("advertise call %d: want 200, got %d", i+1, resp.StatusCode)
		}
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/advertisement", nil))
	if err != nil {
		t.Fatal(err)
	}
	var ads []domain.Product
	decodeBody(t, resp, &ads)
	if len(ads) != 1 || ads[0].ID != created.ID {
		t.Fatalf("want the advertised product, got %+v", ads)
	}

	// marking it sold hides it from the feed
	if _, err := db.Exec(`UPDATE products SET sale_status='sold' WHERE id=?`, created.ID); err != nil {
		t.Fatal(err)
	}
	resp, err = app.Test(httptest.NewRequest("GET", "/advertisement", nil))
	if err != nil {
		t.Fatal(err)
	}
	ads = nil
	decodeBody(t, resp, &ads)
	if len(ads) != 0 {
		t.Fatalf("sold product must not be advertised, got %+v", ads)
	}
}

func TestCategoryListingAndNameJoin(t *testing.T) {
	app, _, _ := newTestApp(t)
	tok := registerAndToken(t, app, "a@x.com", domain.RoleSeller)

	resp, err := app.Test(httptest.NewRequest("GET", "/categories", nil))
	if err != nil {
		t.Fatal(err)
	}
	var cats []domain.Category
	decodeBody(t, resp, &cats)
	if len(cats) == 0 {
		t.Fatal("seeded categories missing")
	}

	req := jsonReq("POST", "/products", `{"sellerEmail":"a@x.com","category":"Apple","name":"MacBook Air"}`)
	req.Header.Set("Authorization", "Bearer "+tok)
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/category/cat-apple", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var products []domain.Product
	decodeBody(t, resp, &products)
	if len(products) != 1 || products[0].Category != "Apple" {
		t.Fatalf("want one Apple product, got %+v", products)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/category/cat-missing", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown category: want 404, got %d", resp.StatusCode)
	}
}

func TestDeleteProductIsOpenByDesign(t *testing.T) {
	app, _, _ := newTestApp(t)
	tok := registerAndToken(t, app, "a@x.com", domain.RoleSeller)

	req := jsonReq("POST", "/products", `{"sellerEmail":"a@x.com","category":"Apple"}`)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var created domain.Product
	decodeBody(t, resp, &created)

	// no Authorization header at all
	resp, err = app.Test(httptest.NewRequest("DELETE", "/products/"+created.ID, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var body map[string]float64
	decodeBody(t, resp, &body)
	if body["deletedCount"] != 1 {
		t.Fatalf("want deletedCount 1, got %+v", body)
	}
}

func TestAdvertiseUnknownProductIs404(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/advertisement/missing-id", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}
