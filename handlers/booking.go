package handlers

import (
	"errors"
	"net/http"

	"venuedesk/models"
	"venuedesk/services/booking"
	"venuedesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully!",
		"booking": created,
	})
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByIDHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingHandler handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var upd models.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.", err.Error())
		return
	}

	updated, err := h.Service.UpdateBooking(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated successfully!",
		"booking": updated,
	})
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully!"})
}

// writeServiceError maps service error types to HTTP responses with enough
// structured detail for the client to render an actionable message.
func (h *BookingHandler) writeServiceError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"code":  validationErr.Code,
			"field": validationErr.Field,
		})
		return
	}

	var conflictErr *booking.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error": conflictErr.Message,
			"code":  conflictErr.Code,
			"venue": conflictErr.Venue,
		})
		return
	}

	var notFoundErr *booking.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found.", "id": notFoundErr.ID})
		return
	}

	h.Logger.Error("booking operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal server error.", "")
}
