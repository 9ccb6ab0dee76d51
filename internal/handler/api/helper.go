package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "helperhub/internal/handler/dto/request"
	resdto "helperhub/internal/handler/dto/response"
	"helperhub/internal/handler/httperr"
	"helperhub/internal/handler/middleware"
	"helperhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HelperHandler struct {
	helperUseCase usecase.HelperUseCase
}

func NewHelperHandler(helperUseCase usecase.HelperUseCase) *HelperHandler {
	return &HelperHandler{
		helperUseCase: helperUseCase,
	}
}

// @Summary Search helpers
// @Description Browse the public helper directory with optional filters
// @Tags helpers
// @Produce json
// @Param keyword query string false "Match against name and bio"
// @Param city query string false "City"
// @Param service query string false "Offered service"
// @Param minRating query number false "Minimum average rating"
// @Param minExperience query int false "Minimum years of experience"
// @Param areaOfOperation query string false "Operating area"
// @Param availability query string false "Availability"
// @Success 200 {object} resdto.HelperListResponse
// @Router /helpers [get]
func (h *HelperHandler) SearchHelpers(c *gin.Context) {
	filter := usecase.HelperFilter{
		Keyword:         c.Query("keyword"),
		City:            c.Query("city"),
		Service:         c.Query("service"),
		AreaOfOperation: c.Query("areaOfOperation"),
		Availability:    c.Query("availability"),
	}
	if v := c.Query("minRating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = rating
		}
	}
	if v := c.Query("minExperience"); v != "" {
		if years, err := strconv.Atoi(v); err == nil {
			filter.MinExperience = years
		}
	}

	helpers, err := h.helperUseCase.SearchHelpers(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHelperViews(helpers))
}

// @Summary Get helper by ID
// @Description Public view of a single helper
// @Tags helpers
// @Produce json
// @Param id path string true "Helper ID"
// @Success 200 {object} readmodel.HelperPublicRM
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /helpers/{id} [get]
func (h *HelperHandler) GetHelperByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid helper ID",
		})
		return
	}

	rm, err := h.helperUseCase.GetHelperByID(c.Request.Context(), id)
	if err != nil {
		handleHelperError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Get own helper profile
// @Description Get the authenticated helper's full profile
// @Tags helpers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} readmodel.AccountRM
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /helpers/profile [get]
func (h *HelperHandler) GetProfile(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	rm, err := h.helperUseCase.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		handleHelperError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Update own helper profile
// @Description Apply a partial update to the authenticated helper's profile
// @Tags helpers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateHelperProfileRequest true "Helper profile update"
// @Success 200 {object} readmodel.AccountRM
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /helpers/profile [put]
func (h *HelperHandler) UpdateProfile(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	var req reqdto.UpdateHelperProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.helperUseCase.UpdateProfile(c.Request.Context(), accountID, req.ToPatch())
	if err != nil {
		handleHelperError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

func handleHelperError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	case errors.Is(err, usecase.ErrHelperNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Helper not found",
		})
	case errors.Is(err, usecase.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{
			"error": "An account with this email already exists",
		})
	case errors.Is(err, usecase.ErrDuplicatePhone):
		c.JSON(http.StatusConflict, gin.H{
			"error": "An account with this phone number already exists",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
