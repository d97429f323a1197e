package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adiafa-dev/e-commerce-mvp/models"
	"github.com/adiafa-dev/e-commerce-mvp/services"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// @Summary Get order history
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	token := c.GetString("token")

	orders, err := ctrl.orderService.GetOrders(c.Request.Context(), token)
	if err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    gin.H{"orders": orders},
	})
}

// @Summary Mark an order item as completed
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order item ID"
// @Success 200 {object} models.Response
// @Router /orders/items/{id}/complete [patch]
func (ctrl *OrderController) CompleteItem(c *gin.Context) {
	ctrl.transitionItem(c, ctrl.orderService.CompleteItem, "Order marked as completed")
}

// @Summary Cancel an order item
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order item ID"
// @Success 200 {object} models.Response
// @Router /orders/items/{id}/cancel [patch]
func (ctrl *OrderController) CancelItem(c *gin.Context) {
	ctrl.transitionItem(c, ctrl.orderService.CancelItem, "Order cancelled successfully")
}

func (ctrl *OrderController) transitionItem(c *gin.Context, transition func(ctx context.Context, token string, id int) error, message string) {
	token := c.GetString("token")

	orderItemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || orderItemID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order item ID",
		})
		return
	}

	if err := transition(c.Request.Context(), token, orderItemID); err != nil {
		respondAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
	})
}
