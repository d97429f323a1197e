package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adiafa-dev/e-commerce-mvp/models"
	"github.com/adiafa-dev/e-commerce-mvp/repositories"
)

// ProductController proxies the catalog so the storefront UI talks to one
// origin. Filtering and sorting parameters pass through untouched.
type ProductController struct {
	productRepo *repositories.ProductRepository
}

func NewProductController(productRepo *repositories.ProductRepository) *ProductController {
	return &ProductController{productRepo: productRepo}
}

// @Summary List products
// @Description Catalog passthrough; query parameters are forwarded verbatim.
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	raw, err := ctrl.productRepo.ListProducts(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondAPIError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// @Summary Get product detail
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product ID",
		})
		return
	}

	raw, err := ctrl.productRepo.GetProductDetail(c.Request.Context(), productID)
	if err != nil {
		respondAPIError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}
