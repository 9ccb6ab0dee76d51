package api

import (
	"errors"
	"net/http"

	reqdto "helperhub/internal/handler/dto/request"
	"helperhub/internal/handler/httperr"
	"helperhub/internal/handler/middleware"
	"helperhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// @Summary Get own profile
// @Description Get the authenticated account's profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} readmodel.AccountRM
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	rm, err := h.profileUseCase.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		handleProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Update own profile
// @Description Apply a partial update to the authenticated account's profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile update"
// @Success 200 {object} readmodel.AccountRM
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.profileUseCase.UpdateProfile(c.Request.Context(), accountID, req.ToPatch())
	if err != nil {
		handleProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

func handleProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	case errors.Is(err, usecase.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Account not found",
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
