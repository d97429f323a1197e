package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiafa-dev/e-commerce-mvp/models"
	"github.com/adiafa-dev/e-commerce-mvp/services"
)

type CheckoutController struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutController(checkoutService *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// @Summary Get checkout view
// @Description The carried-over selection grouped by shop, plus shipping and payment options.
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [get]
func (ctrl *CheckoutController) GetCheckout(c *gin.Context) {
	userID := c.GetInt("user_id")

	view, err := ctrl.checkoutService.View(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load checkout",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Checkout retrieved successfully",
		Data:    view,
	})
}

// @Summary Submit checkout
// @Description Validates the draft, composes the order and submits it upstream. Validation failures return per-field errors and no network call is made.
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutDraft true "Checkout draft"
// @Success 200 {object} models.Response
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) SubmitCheckout(c *gin.Context) {
	userID := c.GetInt("user_id")
	token := c.GetString("token")

	var draft models.CheckoutDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	result, fieldErrors := ctrl.checkoutService.Submit(c.Request.Context(), token, userID, draft)
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  fieldErrors,
		})
		return
	}

	switch result.State {
	case models.CheckoutSucceeded:
		c.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: "Order placed successfully",
			Data:    result,
		})
	case models.CheckoutFailed:
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Message: result.Message,
			Data:    result,
		})
	default:
		// Guard rejection: empty carry-over or missing credential.
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: result.Message,
		})
	}
}
