package domain

const (
	SaleStatusUnsold = "unsold"
	SaleStatusSold   = "sold"
)

type Category struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Product struct {
	ID             string  `db:"id" json:"id"`
	SellerEmail    string  `db:"seller_email" json:"sellerEmail"`
	SellerName     string  `db:"seller_name" json:"sellerName"`
	Category       string  `db:"category" json:"category"` // category name, not id
	Name           string  `db:"name" json:"name"`
	Price          float64 `db:"price" json:"price"`
	Location       string  `db:"location" json:"location"`
	Phone          string  `db:"phone" json:"phone"`
	Posted         string  `db:"posted" json:"posted"`
	SellerVerified bool    `db:"seller_verified" json:"sellerVerification"`
	SaleStatus     string  `db:"sale_status" json:"saleStatus"`
	Advertised     bool    `db:"advertised" json:"advertised"`
}

type Booking struct {
	ID          string  `db:"id" json:"id"`
	ProductID   string  `db:"product_id" json:"productId"`
	Email       string  `db:"email" json:"email"`
	ProductName string  `db:"product_name" json:"productName"`
	Price       float64 `db:"price" json:"price"`
	Phone       string  `db:"phone" json:"phone"`
	Location    string  `db:"location" json:"location"`
}
