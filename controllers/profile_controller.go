package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiafa-dev/e-commerce-mvp/models"
	"github.com/adiafa-dev/e-commerce-mvp/repositories"
)

// ProfileController keeps the serialized profile snapshot in durable storage,
// the storefront's analog of the "user" key next to the bearer credential.
type ProfileController struct {
	store repositories.CarryOverStore
}

func NewProfileController(store repositories.CarryOverStore) *ProfileController {
	return &ProfileController{store: store}
}

// @Summary Get stored profile snapshot
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /profile [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	profile, err := ctrl.store.LoadProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load profile",
		})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    profile,
	})
}

// @Summary Store profile snapshot
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.Profile true "Profile"
// @Success 200 {object} models.Response
// @Router /profile [put]
func (ctrl *ProfileController) SaveProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}
	profile.ID = userID

	if err := ctrl.store.SaveProfile(c.Request.Context(), userID, profile); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save profile",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile saved",
	})
}
