package services

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/adiafa-dev/e-commerce-mvp/models"
	"github.com/adiafa-dev/e-commerce-mvp/repositories"
)

const fallbackShopLogo = "/assets/images/icons/store.svg"

// OrderService maps upstream order history into the storefront's shape. Shop
// logos are not on the order payload; they are resolved through the product
// detail endpoint and cached per shop.
type OrderService struct {
	orderRepo   *repositories.OrderRepository
	productRepo *repositories.ProductRepository
	logger      *zap.Logger

	mu        sync.Mutex
	logoCache map[int]string
}

func NewOrderService(orderRepo *repositories.OrderRepository, productRepo *repositories.ProductRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
		logoCache:   make(map[int]string),
	}
}

func (s *OrderService) GetOrders(ctx context.Context, token string) ([]models.Order, error) {
	upstream, err := s.orderRepo.FetchOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(upstream))
	for _, o := range upstream {
		order := models.Order{
			ID:            o.ID,
			Invoice:       o.Code,
			PaymentStatus: o.PaymentStatus,
			Total:         o.TotalAmount,
			CreatedAt:     o.CreatedAt,
			Items:         make([]models.OrderItem, 0, len(o.Items)),
		}

		// "PAID" reads as completed on the storefront tabs.
		if o.PaymentStatus == "PAID" {
			order.Status = "completed"
		} else {
			order.Status = strings.ToLower(o.PaymentStatus)
		}

		if len(o.Items) > 0 {
			first := o.Items[0]
			order.Shop = models.Shop{
				ID:      first.ShopID,
				Name:    first.Shop.Name,
				LogoURL: s.shopLogo(ctx, first.ProductID, first.ShopID),
			}
		}

		for _, item := range o.Items {
			image := models.PlaceholderImage
			if len(item.Product.Images) > 0 && item.Product.Images[0] != "" {
				image = item.Product.Images[0]
			}
			order.Items = append(order.Items, models.OrderItem{
				ID:       item.ID,
				Title:    item.Product.Title,
				ImageURL: image,
				Price:    item.PriceSnapshot,
				Quantity: item.Qty,
				Status:   item.Status,
			})
		}

		orders = append(orders, order)
	}
	return orders, nil
}

func (s *OrderService) CompleteItem(ctx context.Context, token string, orderItemID int) error {
	return s.orderRepo.CompleteItem(ctx, token, orderItemID)
}

func (s *OrderService) CancelItem(ctx context.Context, token string, orderItemID int) error {
	return s.orderRepo.CancelItem(ctx, token, orderItemID)
}

func (s *OrderService) shopLogo(ctx context.Context, productID, shopID int) string {
	s.mu.Lock()
	logo, ok := s.logoCache[shopID]
	s.mu.Unlock()
	if ok {
		return logo
	}

	logo = fallbackShopLogo
	product, err := s.productRepo.FetchProduct(ctx, productID)
	if err != nil {
		s.logger.Warn("shop logo lookup failed", zap.Int("product_id", productID), zap.Error(err))
	} else if strings.TrimSpace(product.Shop.Logo) != "" {
		logo = product.Shop.Logo
	}

	s.mu.Lock()
	s.logoCache[shopID] = logo
	s.mu.Unlock()
	return logo
}
