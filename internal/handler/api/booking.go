package api

import (
	"errors"
	"net/http"

	reqdto "helperhub/internal/handler/dto/request"
	resdto "helperhub/internal/handler/dto/response"
	"helperhub/internal/handler/httperr"
	"helperhub/internal/handler/middleware"
	"helperhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Book a helper for a service
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "All required booking details must be provided",
		})
		return
	}

	view, err := h.bookingUseCase.CreateBooking(c.Request.Context(), accountID, req.ToParams())
	if err != nil {
		handleBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.BookingResponse{Booking: view})
}

// @Summary List own bookings as customer
// @Description Bookings created by the authenticated customer, newest first
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/my-bookings [get]
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	views, err := h.bookingUseCase.GetCustomerBookings(c.Request.Context(), accountID)
	if err != nil {
		handleBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List assigned bookings as helper
// @Description Bookings assigned to the authenticated helper, newest first
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/assigned-to-me [get]
func (h *BookingHandler) GetAssignedBookings(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	views, err := h.bookingUseCase.GetHelperBookings(c.Request.Context(), accountID)
	if err != nil {
		handleBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Update booking status
// @Description Move a booking to a new status as customer or assigned helper
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Status is required",
		})
		return
	}

	view, err := h.bookingUseCase.UpdateStatus(c.Request.Context(), bookingID, accountID, req.Status)
	if err != nil {
		handleBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.BookingResponse{Booking: view})
}

// @Summary Get booking by ID
// @Description Full booking view for one of its parties
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	view, err := h.bookingUseCase.GetBooking(c.Request.Context(), bookingID, accountID)
	if err != nil {
		handleBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.BookingResponse{Booking: view})
}

func handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMissingBookingFields):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "All required booking details must be provided",
		})
	case errors.Is(err, usecase.ErrInvalidHelperStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status for helper",
		})
	case errors.Is(err, usecase.ErrCustomerRoleRequired):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Only customers can create bookings",
		})
	case errors.Is(err, usecase.ErrNotBookingParty):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not authorized to view this booking",
		})
	case errors.Is(err, usecase.ErrStatusNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not authorized to update this booking status",
		})
	case errors.Is(err, usecase.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, usecase.ErrHelperNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Selected helper not found or is not a service provider",
		})
	case errors.Is(err, usecase.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Account not found",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
