package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adiafa-dev/e-commerce-mvp/models"
	"github.com/adiafa-dev/e-commerce-mvp/services"
)

type CartController struct {
	cartService  *services.CartService
	badgeService *services.BadgeService
}

func NewCartController(cartService *services.CartService, badgeService *services.BadgeService) *CartController {
	return &CartController{
		cartService:  cartService,
		badgeService: badgeService,
	}
}

// @Summary Get cart view
// @Description Cart lines grouped by shop with selection state and selected total. Renders empty when not logged in.
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")
	token := c.GetString("token")

	view := ctrl.cartService.View(c.Request.Context(), token, userID)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data:    view,
	})
}

// @Summary Get cart badge count
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/count [get]
func (ctrl *CartController) GetCount(c *gin.Context) {
	userID := c.GetInt("user_id")
	token := c.GetString("token")

	count := ctrl.badgeService.Count(c.Request.Context(), token, userID)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart count retrieved successfully",
		Data:    models.CartCountResponse{Count: count},
	})
}

// @Summary Add product to cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 201 {object} models.Response
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID := c.GetInt("user_id")
	token := c.GetString("token")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.cartService.AddLine(c.Request.Context(), token, userID, req.ProductID, req.Quantity); err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Added to cart",
	})
}

// @Summary Update line quantity
// @Description Quantity is clamped to a minimum of 1.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Cart line ID"
// @Param request body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	userID := c.GetInt("user_id")
	token := c.GetString("token")

	cartLineID, err := strconv.Atoi(c.Param("id"))
	if err != nil || cartLineID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid cart line ID",
		})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.cartService.SetQuantity(c.Request.Context(), token, userID, cartLineID, req.Quantity); err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Quantity updated",
	})
}

// @Summary Remove one cart line
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart line ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetInt("user_id")
	token := c.GetString("token")

	cartLineID, err := strconv.Atoi(c.Param("id"))
	if err != nil || cartLineID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid cart line ID",
		})
		return
	}

	if err := ctrl.cartService.RemoveLine(c.Request.Context(), token, userID, cartLineID); err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Removed from cart",
	})
}

// @Summary Remove all selected cart lines
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/items [delete]
func (ctrl *CartController) RemoveSelected(c *gin.Context) {
	userID := c.GetInt("user_id")
	token := c.GetString("token")

	err := ctrl.cartService.RemoveSelected(c.Request.Context(), token, userID)
	if errors.Is(err, services.ErrNothingSelected) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Nothing selected",
		})
		return
	}
	if err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Selected items removed",
	})
}

// @Summary Toggle select all
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/select-all [post]
func (ctrl *CartController) ToggleSelectAll(c *gin.Context) {
	userID := c.GetInt("user_id")

	ctrl.cartService.ToggleSelectAll(userID)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Selection updated",
		Data:    ctrl.cartService.Snapshot(userID),
	})
}

// @Summary Toggle selection for one shop's lines
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} models.Response
// @Router /cart/shops/{id}/select [post]
func (ctrl *CartController) ToggleSelectShop(c *gin.Context) {
	userID := c.GetInt("user_id")

	shopID, err := strconv.Atoi(c.Param("id"))
	if err != nil || shopID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid shop ID",
		})
		return
	}

	ctrl.cartService.ToggleSelectShop(userID, shopID)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Selection updated",
		Data:    ctrl.cartService.Snapshot(userID),
	})
}

// @Summary Toggle selection for one cart line
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart line ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id}/select [post]
func (ctrl *CartController) ToggleSelectItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	cartLineID, err := strconv.Atoi(c.Param("id"))
	if err != nil || cartLineID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid cart line ID",
		})
		return
	}

	ctrl.cartService.ToggleSelectLine(userID, cartLineID)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Selection updated",
		Data:    ctrl.cartService.Snapshot(userID),
	})
}

// @Summary Carry the selected lines over to checkout
// @Description Snapshots the selected lines into durable storage so the checkout page can load them on its own.
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/checkout [post]
func (ctrl *CartController) BeginCheckout(c *gin.Context) {
	userID := c.GetInt("user_id")
	token := c.GetString("token")

	snapshots, err := ctrl.cartService.BeginCheckout(c.Request.Context(), token, userID)
	if errors.Is(err, services.ErrNothingSelected) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Nothing selected",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save selection",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Selection carried over to checkout",
		Data:    gin.H{"lines": snapshots},
	})
}
