package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/gdugdh24/thirdplace-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
	logger         *zap.Logger
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// CreateProfile handles POST /api/profiles
// @Summary Create profile
// @Description Submit the onboarding questionnaire
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body profile.CreateProfileRequest true "Profile data"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req profile.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.profileUseCase.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondValidation(c, err)
			return
		}
		h.logger.Error("create profile failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetProfile handles GET /api/profiles/:id
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.profileUseCase.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			respondError(c, http.StatusNotFound, "Profile not found")
			return
		}
		h.logger.Error("get profile failed", zap.String("profile_id", c.Param("id")), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, p)
}
