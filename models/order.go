package models

import "time"

type OrderItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

type Order struct {
	ID            int         `json:"id"`
	Invoice       string      `json:"invoice"`
	PaymentStatus string      `json:"payment_status"`
	Status        string      `json:"status"`
	Shop          Shop        `json:"shop"`
	Total         int         `json:"total"`
	CreatedAt     time.Time   `json:"created_at"`
	Items         []OrderItem `json:"items"`
}

// ---- upstream payload shapes (GET /orders/my) ----

type UpstreamOrderItem struct {
	ID            int             `json:"id"`
	ProductID     int             `json:"productId"`
	ShopID        int             `json:"shopId"`
	Qty           int             `json:"qty"`
	PriceSnapshot int             `json:"priceSnapshot"`
	Status        string          `json:"status"`
	Product       UpstreamProduct `json:"product"`
	Shop          UpstreamShop    `json:"shop"`
}

type UpstreamOrder struct {
	ID            int                 `json:"id"`
	Code          string              `json:"code"`
	PaymentStatus string              `json:"paymentStatus"`
	Address       string              `json:"address"`
	TotalAmount   int                 `json:"totalAmount"`
	CreatedAt     time.Time           `json:"createdAt"`
	Items         []UpstreamOrderItem `json:"items"`
}

type OrdersEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		Orders []UpstreamOrder `json:"orders"`
	} `json:"data"`
}

type UpstreamProductDetail struct {
	Success bool `json:"success"`
	Data    *struct {
		UpstreamProduct
	} `json:"data"`
}
