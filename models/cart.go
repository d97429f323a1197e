package models

// PlaceholderImage is served when a product has no image of its own.
const PlaceholderImage = "/assets/images/no-image.png"

// Shop is the seller a cart line belongs to. It is never fetched on its own;
// it rides along on cart and order payloads.
type Shop struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

// CartLine is one product offer at a specific quantity in the user's cart.
// UnitPrice is the price snapshot taken when the line was added; it does not
// follow the product's live price.
type CartLine struct {
	CartLineID int    `json:"cart_line_id"`
	ProductID  int    `json:"product_id"`
	Title      string `json:"title"`
	UnitPrice  int    `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	ImageURL   string `json:"image_url"`
	Shop       Shop   `json:"shop"`
}

func (l CartLine) Subtotal() int {
	return l.UnitPrice * l.Quantity
}

// ShopGroup is a view-only aggregate of the lines belonging to one seller.
type ShopGroup struct {
	ShopID   int        `json:"shop_id"`
	ShopName string     `json:"shop_name"`
	ShopLogo string     `json:"shop_logo,omitempty"`
	Lines    []CartLine `json:"lines"`
}

// ---- upstream payload shapes (GET /cart) ----

type UpstreamShop struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Logo string `json:"logo"`
}

type UpstreamProduct struct {
	ID     int          `json:"id"`
	Title  string       `json:"title"`
	Price  int          `json:"price"`
	Images []string     `json:"images"`
	Shop   UpstreamShop `json:"shop"`
}

type UpstreamCartItem struct {
	ID            int             `json:"id"`
	ProductID     int             `json:"productId"`
	Qty           int             `json:"qty"`
	PriceSnapshot int             `json:"priceSnapshot"`
	Subtotal      int             `json:"subtotal"`
	Product       UpstreamProduct `json:"product"`
}

type UpstreamCart struct {
	CartID int                `json:"cartId"`
	Items  []UpstreamCartItem `json:"items"`
}

type CartEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *UpstreamCart `json:"data"`
}

// Lines normalizes the nested upstream cart into flat cart lines. Everything
// past this boundary works with CartLine only.
func (c *UpstreamCart) Lines() []CartLine {
	if c == nil {
		return []CartLine{}
	}

	lines := make([]CartLine, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Qty < 1 {
			continue
		}

		image := PlaceholderImage
		if len(item.Product.Images) > 0 && item.Product.Images[0] != "" {
			image = item.Product.Images[0]
		}

		lines = append(lines, CartLine{
			CartLineID: item.ID,
			ProductID:  item.ProductID,
			Title:      item.Product.Title,
			UnitPrice:  item.PriceSnapshot,
			Quantity:   item.Qty,
			ImageURL:   image,
			Shop: Shop{
				ID:      item.Product.Shop.ID,
				Name:    item.Product.Shop.Name,
				LogoURL: item.Product.Shop.Logo,
			},
		})
	}
	return lines
}
