package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiafa-dev/e-commerce-mvp/libs"
	"github.com/adiafa-dev/e-commerce-mvp/models"
)

// respondAPIError converts an upstream failure into a user-visible
// notification. Transport and decode failures map to 502; rejections keep the
// upstream status when it is known.
func respondAPIError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	message := "Unexpected server error"

	if apiErr, ok := libs.AsAPIError(err); ok {
		message = apiErr.Message
		if apiErr.Kind == libs.ErrKindRejected && apiErr.StatusCode > 0 {
			status = apiErr.StatusCode
		}
	}

	c.JSON(status, models.ErrorResponse{
		Success: false,
		Message: message,
	})
}
