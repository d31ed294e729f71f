package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}

// respondValidation writes a 400 carrying the validation message when err is one,
// and a generic message otherwise.
func respondValidation(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		respondError(c, http.StatusBadRequest, verr.Message)
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid request body")
}
