package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/thirdplace-backend/internal/domain"
	"github.com/gdugdh24/thirdplace-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MatchSourceHeader tells the client which strategy produced the gatherings.
const MatchSourceHeader = "X-Match-Source"

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
	logger       *zap.Logger
}

func NewMatchHandler(matchUseCase *match.MatchUseCase, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
		logger:       logger,
	}
}

// Match handles POST /api/match
// @Summary Match a profile into gatherings
// @Description Returns a single gathering or three gatherings with a recommendation
// @Tags match
// @Accept json
// @Produce json
// @Param request body match.MatchRequest true "Profile to match"
// @Success 200 {object} domain.MultiMatchResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /match [post]
func (h *MatchHandler) Match(c *gin.Context) {
	var req match.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.matchUseCase.Match(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondValidation(c, err)
		case errors.Is(err, domain.ErrProfileNotFound):
			respondError(c, http.StatusNotFound, "Profile not found")
		default:
			h.logger.Error("match failed", zap.String("profile_id", req.ProfileID), zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to match profile")
		}
		return
	}

	c.Header(MatchSourceHeader, string(result.Source))
	c.JSON(http.StatusOK, result.Payload())
}

// ListCandidates handles GET /api/candidates
// @Summary List the candidate pool
// @Tags match
// @Produce json
// @Success 200 {array} domain.Candidate
// @Router /candidates [get]
func (h *MatchHandler) ListCandidates(c *gin.Context) {
	c.JSON(http.StatusOK, h.matchUseCase.Candidates())
}
