package models

type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0"`
	Quantity  int `json:"quantity" binding:"required,gte=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CartViewResponse is what the cart page renders: lines grouped by shop,
// the current selection and the total over selected lines only.
type CartViewResponse struct {
	Groups      []ShopGroup `json:"groups"`
	SelectedIDs []int       `json:"selected_ids"`
	AllSelected bool        `json:"all_selected"`
	Total       int         `json:"total"`
	LineCount   int         `json:"line_count"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

// CheckoutViewResponse is the checkout page payload, built from the
// carried-over selection rather than the live cart.
type CheckoutViewResponse struct {
	Groups          []ShopGroup      `json:"groups"`
	Profile         *Profile         `json:"profile,omitempty"`
	GoodsTotal      int              `json:"goods_total"`
	ShippingOptions []ShippingOption `json:"shipping_options"`
	PaymentChannels []PaymentChannel `json:"payment_channels"`
}

type ShippingOption struct {
	Method ShippingMethod `json:"method"`
	Label  string         `json:"label"`
	Cost   int            `json:"cost"`
}

type CheckoutResultResponse struct {
	State    CheckoutState `json:"state"`
	Message  string        `json:"message,omitempty"`
	Redirect string        `json:"redirect"`
	Total    int           `json:"total,omitempty"`
}
